package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	apperrors "tora-app.io/tora/internal/pkg/errors"
	"tora-app.io/tora/internal/pkg/logger"
)

// Emailer dispatches alert emails through an SMTP transport guarded by a
// circuit breaker. A flapping SMTP relay must not stall alert fan-out for
// the other channels.
type Emailer struct {
	transport EmailTransport
	from      string
	delay     time.Duration
	clock     Clock
	breaker   *gobreaker.CircuitBreaker
}

// NewEmailer creates an Emailer. A nil transport disables the channel.
func NewEmailer(transport EmailTransport, from string, delay time.Duration) *Emailer {
	return &Emailer{
		transport: transport,
		from:      from,
		delay:     delay,
		clock:     RealClock{},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "smtp",
			MaxRequests: 3,
			Interval:    10 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Circuit breaker state changed",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		}),
	}
}

// Ready reports whether the channel can accept sends.
func (e *Emailer) Ready() bool {
	return e.transport != nil && e.breaker.State() != gobreaker.StateOpen
}

// SendBatch emails the composed message to every opted-in contact with
// an email address, sequentially, spacing sends to stay under relay rate
// limits.
func (e *Emailer) SendBatch(ctx context.Context, contacts []Contact, subject, html, text string) BatchResult {
	if e.transport == nil {
		recordDispatch("email", 0, len(contacts))
		return BatchResult{Failed: len(contacts)}
	}

	targets := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Email != "" && c.ReceiveAlerts {
			targets = append(targets, c)
		}
	}

	res := dispatchBatch(ctx, "email", targets, e.delay, e.clock,
		func(ctx context.Context, c Contact) error {
			return e.send(ctx, EmailMessage{
				To:      c.Email,
				Subject: subject,
				HTML:    html,
				Text:    text,
			})
		})

	recordDispatch("email", res.Sent, res.Failed)
	logger.Info("Email batch dispatched",
		zap.Int("sent", res.Sent),
		zap.Int("failed", res.Failed),
	)
	return res
}

// SendTest sends a plain test email, used by the operator test endpoint.
func (e *Emailer) SendTest(ctx context.Context, to string) error {
	if e.transport == nil {
		return apperrors.Internal(apperrors.CodeEmailUnavailable, "email channel is disabled")
	}
	err := e.send(ctx, EmailMessage{
		To:      to,
		Subject: "TORA test email",
		Text:    "This is a test email from the TORA notification service.",
		HTML:    "<p>This is a test email from the <b>TORA</b> notification service.</p>",
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeEmailUnavailable,
			"test email failed", http.StatusBadGateway)
	}
	return nil
}

func (e *Emailer) send(ctx context.Context, msg EmailMessage) error {
	_, err := e.breaker.Execute(func() (interface{}, error) {
		return nil, e.transport.Send(ctx, e.from, msg)
	})
	if err != nil {
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}
	return nil
}
