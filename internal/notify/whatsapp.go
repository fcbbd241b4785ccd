package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tora-app.io/tora/internal/pkg/logger"
)

// WhatsAppSender dispatches alert messages through a paired session client.
//
// The session requires a QR pairing handshake before it can send. Until
// the client reports ready, batches fail fast with every contact counted
// as failed; alert fan-out must not block on a provider that may never
// come up.
type WhatsAppSender struct {
	client             SessionClient
	defaultCountryCode string
	delay              time.Duration
	clock              Clock
}

// NewWhatsAppSender creates a WhatsAppSender. A nil client disables the
// channel.
func NewWhatsAppSender(client SessionClient, defaultCountryCode string, delay time.Duration) *WhatsAppSender {
	return &WhatsAppSender{
		client:             client,
		defaultCountryCode: defaultCountryCode,
		delay:              delay,
		clock:              RealClock{},
	}
}

// Ready reports whether the session is paired and connected.
func (w *WhatsAppSender) Ready() bool {
	return w.client != nil && w.client.State() == StateReady
}

// SendBatch sends the composed text to every opted-in contact with a
// phone number, sequentially with a throttle delay. A phone that cannot
// be normalized counts as a failed send; only contacts without any phone
// are skipped.
func (w *WhatsAppSender) SendBatch(ctx context.Context, contacts []Contact, text string) BatchResult {
	if !w.Ready() {
		recordDispatch("whatsapp", 0, len(contacts))
		logger.Warn("WhatsApp dispatch skipped: session not ready",
			zap.Int("contacts", len(contacts)),
		)
		return BatchResult{Failed: len(contacts)}
	}

	targets := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Phone != "" && c.ReceiveAlerts {
			targets = append(targets, c)
		}
	}

	res := dispatchBatch(ctx, "whatsapp", targets, w.delay, w.clock,
		func(ctx context.Context, c Contact) error {
			phone := NormalizePhone(c.Phone, w.defaultCountryCode)
			if phone == "" {
				return fmt.Errorf("phone %q cannot be normalized", c.Phone)
			}
			return w.client.SendText(ctx, phone, text)
		})

	recordDispatch("whatsapp", res.Sent, res.Failed)
	logger.Info("WhatsApp batch dispatched",
		zap.Int("sent", res.Sent),
		zap.Int("failed", res.Failed),
	)
	return res
}
