package wa

import (
	"context"
	"fmt"

	"tora-app.io/tora/ent"
	"tora-app.io/tora/ent/whatsappsession"
)

// sessionRowID is the key of the single session status row.
const sessionRowID = "primary"

// EntStatusStore persists session status in the shared database.
type EntStatusStore struct {
	client *ent.Client
}

// NewEntStatusStore creates the Ent-backed status store.
func NewEntStatusStore(client *ent.Client) *EntStatusStore {
	return &EntStatusStore{client: client}
}

// SaveQR implements StatusStore.
func (s *EntStatusStore) SaveQR(ctx context.Context, code string) error {
	n, err := s.client.WhatsAppSession.Update().
		Where(whatsappsession.IDEQ(sessionRowID)).
		SetLastQrCode(code).
		SetAuthenticated(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session qr: %w", err)
	}
	if n == 0 {
		_, err = s.client.WhatsAppSession.Create().
			SetID(sessionRowID).
			SetLastQrCode(code).
			SetAuthenticated(false).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create session row: %w", err)
		}
	}
	return nil
}

// SetAuthenticated implements StatusStore. Pairing clears the stored QR.
func (s *EntStatusStore) SetAuthenticated(ctx context.Context, authenticated bool) error {
	upd := s.client.WhatsAppSession.Update().
		Where(whatsappsession.IDEQ(sessionRowID)).
		SetAuthenticated(authenticated)
	if authenticated {
		upd = upd.SetLastQrCode("")
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}
	if n == 0 {
		_, err = s.client.WhatsAppSession.Create().
			SetID(sessionRowID).
			SetAuthenticated(authenticated).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create session row: %w", err)
		}
	}
	return nil
}
