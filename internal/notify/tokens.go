package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tora-app.io/tora/ent"
	"tora-app.io/tora/ent/devicetoken"
	apperrors "tora-app.io/tora/internal/pkg/errors"
	"tora-app.io/tora/internal/pkg/logger"
)

// TokenRegistry manages device token registration lifecycle.
//
// A token string identifies a physical device, not a user. When a device
// changes hands (a sibling logs in on the same tablet) registering the
// existing token reassigns it to the new owner and reactivates it.
type TokenRegistry struct {
	client *ent.Client
}

// NewTokenRegistry creates a TokenRegistry backed by the Ent client.
func NewTokenRegistry(client *ent.Client) *TokenRegistry {
	return &TokenRegistry{client: client}
}

// Register stores a device token for a user, reassigning and reactivating
// it if the token already exists.
func (r *TokenRegistry) Register(ctx context.Context, userID, token, deviceType string) (*ent.DeviceToken, error) {
	dt, err := parseDeviceType(deviceType)
	if err != nil {
		return nil, err
	}

	existing, err := r.client.DeviceToken.Query().
		Where(devicetoken.TokenEQ(token)).
		Only(ctx)
	switch {
	case err == nil:
		updated, err := existing.Update().
			SetUserID(userID).
			SetDeviceType(dt).
			SetActive(true).
			SetLastUsed(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("reassign device token: %w", err)
		}
		logger.Info("Device token reassigned",
			zap.String("user_id", userID),
			zap.String("device_type", deviceType),
		)
		return updated, nil
	case ent.IsNotFound(err):
		created, err := r.client.DeviceToken.Create().
			SetToken(token).
			SetUserID(userID).
			SetDeviceType(dt).
			SetActive(true).
			SetLastUsed(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create device token: %w", err)
		}
		logger.Info("Device token registered",
			zap.String("user_id", userID),
			zap.String("device_type", deviceType),
		)
		return created, nil
	default:
		return nil, fmt.Errorf("query device token: %w", err)
	}
}

// Unregister deactivates a single token owned by the user.
func (r *TokenRegistry) Unregister(ctx context.Context, userID, token string) error {
	n, err := r.client.DeviceToken.Update().
		Where(
			devicetoken.TokenEQ(token),
			devicetoken.UserIDEQ(userID),
			devicetoken.ActiveEQ(true),
		).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("unregister device token: %w", err)
	}
	if n == 0 {
		return apperrors.NotFound(apperrors.CodeTokenNotFound, "device token not found for user")
	}
	return nil
}

// UnregisterAll deactivates every active token for the user and returns
// how many were affected. Used on logout from all devices.
func (r *TokenRegistry) UnregisterAll(ctx context.Context, userID string) (int, error) {
	n, err := r.client.DeviceToken.Update().
		Where(
			devicetoken.UserIDEQ(userID),
			devicetoken.ActiveEQ(true),
		).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("unregister all device tokens: %w", err)
	}
	return n, nil
}

// ActiveTokens returns the active token strings for a user.
func (r *TokenRegistry) ActiveTokens(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.client.DeviceToken.Query().
		Where(
			devicetoken.UserIDEQ(userID),
			devicetoken.ActiveEQ(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active tokens: %w", err)
	}
	tokens := make([]string, 0, len(rows))
	for _, row := range rows {
		tokens = append(tokens, row.Token)
	}
	return tokens, nil
}

// Deactivate marks the given tokens inactive. Called after the push
// provider reports them unregistered; the device uninstalled the app or
// rotated its token.
func (r *TokenRegistry) Deactivate(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	n, err := r.client.DeviceToken.Update().
		Where(devicetoken.TokenIn(tokens...)).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("deactivate device tokens: %w", err)
	}
	if n > 0 {
		tokensDeactivatedTotal.Add(float64(n))
		logger.Info("Deactivated rejected device tokens", zap.Int("count", n))
	}
	return nil
}

// DeactivateStale marks tokens unused since the cutoff as inactive and
// returns how many were affected. Called by the periodic cleanup job.
func (r *TokenRegistry) DeactivateStale(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.client.DeviceToken.Update().
		Where(
			devicetoken.ActiveEQ(true),
			devicetoken.LastUsedLT(cutoff),
		).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("deactivate stale tokens: %w", err)
	}
	return n, nil
}

func parseDeviceType(s string) (devicetoken.DeviceType, error) {
	dt := devicetoken.DeviceType(s)
	if err := devicetoken.DeviceTypeValidator(dt); err != nil {
		return "", apperrors.BadRequest(apperrors.CodeValidationFailed,
			fmt.Sprintf("invalid device type %q", s))
	}
	return dt, nil
}
