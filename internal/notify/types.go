// Package notify implements the multi-channel notification fan-out:
// push via FCM, email via SMTP, and WhatsApp via a paired session client.
//
// Dispatchers in this package take pre-composed content; message wording
// lives in the alert package. Provider clients are injected so handlers and
// tests can substitute fakes.
package notify

import (
	"context"
	"time"
)

// ClientState describes the lifecycle of an injected provider client.
type ClientState int32

const (
	// StateInitializing means the client is still connecting or pairing.
	StateInitializing ClientState = iota
	// StateReady means the client can send.
	StateReady
	// StateFailed means initialization failed permanently; sends fail fast.
	StateFailed
)

func (s ClientState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Contact is a dispatch target resolved from the emergency contact list.
type Contact struct {
	ID            string
	Name          string
	Phone         string
	Email         string
	Relationship  string
	ReceiveAlerts bool
	Priority      int
}

// TokenResult reports the outcome of a push send to a single device token.
type TokenResult struct {
	Token        string
	Success      bool
	Error        string
	Unregistered bool
}

// PushResult aggregates a multicast push dispatch.
type PushResult struct {
	Success     bool          `json:"success"`
	Message     string        `json:"message"`
	SentCount   int           `json:"sentCount"`
	FailedCount int           `json:"failedCount"`
	Responses   []TokenResult `json:"-"`
}

// BatchResult aggregates a sequential per-recipient dispatch (email, WhatsApp).
type BatchResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// Total returns the number of attempted recipients.
func (r BatchResult) Total() int { return r.Sent + r.Failed }

// EmailMessage is a composed email ready for transport.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// MulticastMessage is the provider-neutral shape of a push send. Data values
// are already string-coerced; FCM rejects non-string data fields.
type MulticastMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
}

// SendResponse is the per-token outcome reported by a push provider.
type SendResponse struct {
	Success      bool
	Err          error
	Unregistered bool
}

// MulticastResponse is the aggregate outcome reported by a push provider.
type MulticastResponse struct {
	SuccessCount int
	FailureCount int
	Responses    []SendResponse
}

// PushClient abstracts the FCM messaging client.
type PushClient interface {
	State() ClientState
	SendEachForMulticast(ctx context.Context, msg MulticastMessage) (*MulticastResponse, error)
}

// EmailTransport abstracts the SMTP dialer.
type EmailTransport interface {
	Send(ctx context.Context, from string, msg EmailMessage) error
}

// SessionClient abstracts the WhatsApp session connection.
type SessionClient interface {
	State() ClientState
	SendText(ctx context.Context, phone, text string) error
}

// Clock abstracts time for the throttled batch dispatch so tests do not
// sleep for real.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock sleeps on the wall clock, returning early if ctx is cancelled.
type RealClock struct{}

// Sleep waits for d or until ctx is done.
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
