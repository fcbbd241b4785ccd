package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	sent []EmailMessage
	errs map[string]error
}

func (f *fakeTransport) Send(_ context.Context, _ string, msg EmailMessage) error {
	if err, ok := f.errs[msg.To]; ok {
		return err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestEmailerSendBatchSkipsIneligibleContacts(t *testing.T) {
	transport := &fakeTransport{}
	e := NewEmailer(transport, "alerts@tora.app", 0)

	contacts := []Contact{
		{ID: "c1", Email: "grandma@example.com", ReceiveAlerts: true},
		{ID: "c2", Email: "", ReceiveAlerts: true},
		{ID: "c3", Email: "uncle@example.com", ReceiveAlerts: true},
		{ID: "c4", Email: "optout@example.com", ReceiveAlerts: false},
	}
	res := e.SendBatch(context.Background(), contacts, "Alert", "<p>hi</p>", "hi")

	assert.Equal(t, BatchResult{Sent: 2, Failed: 0}, res)
	require.Len(t, transport.sent, 2)
	assert.Equal(t, "grandma@example.com", transport.sent[0].To)
}

func TestEmailerSendBatchCountsFailures(t *testing.T) {
	transport := &fakeTransport{errs: map[string]error{
		"bad@example.com": errors.New("mailbox full"),
	}}
	e := NewEmailer(transport, "alerts@tora.app", 0)

	res := e.SendBatch(context.Background(), []Contact{
		{ID: "c1", Email: "ok@example.com", ReceiveAlerts: true},
		{ID: "c2", Email: "bad@example.com", ReceiveAlerts: true},
	}, "Alert", "", "hi")

	assert.Equal(t, BatchResult{Sent: 1, Failed: 1}, res)
}

func TestEmailerDisabledChannel(t *testing.T) {
	e := NewEmailer(nil, "alerts@tora.app", 0)
	res := e.SendBatch(context.Background(), []Contact{{ID: "c1", Email: "a@b.c", ReceiveAlerts: true}}, "s", "", "t")
	assert.Equal(t, BatchResult{Failed: 1}, res)
	assert.False(t, e.Ready())

	err := e.SendTest(context.Background(), "a@b.c")
	require.Error(t, err)
}

func TestEmailerBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	transport := &fakeTransport{errs: map[string]error{
		"down@example.com": errors.New("connection refused"),
	}}
	e := NewEmailer(transport, "alerts@tora.app", 0)

	for i := 0; i < 3; i++ {
		_ = e.send(context.Background(), EmailMessage{To: "down@example.com"})
	}
	assert.False(t, e.Ready())

	// With the breaker open the transport is no longer called.
	before := len(transport.sent)
	err := e.send(context.Background(), EmailMessage{To: "ok@example.com"})
	require.Error(t, err)
	assert.Equal(t, before, len(transport.sent))
}

func TestEmailerSendTest(t *testing.T) {
	transport := &fakeTransport{}
	e := NewEmailer(transport, "alerts@tora.app", 500*time.Millisecond)

	err := e.SendTest(context.Background(), "parent@example.com")
	require.NoError(t, err)
	require.Len(t, transport.sent, 1)
	assert.Equal(t, "parent@example.com", transport.sent[0].To)
	assert.NotEmpty(t, transport.sent[0].Subject)
}
