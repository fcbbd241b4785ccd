package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	state ClientState
	sent  map[string]string
	errs  map[string]error
}

func (f *fakeSession) State() ClientState { return f.state }

func (f *fakeSession) SendText(_ context.Context, phone, text string) error {
	if err, ok := f.errs[phone]; ok {
		return err
	}
	if f.sent == nil {
		f.sent = make(map[string]string)
	}
	f.sent[phone] = text
	return nil
}

func TestWhatsAppSendBatchFailsFastWhenNotReady(t *testing.T) {
	w := NewWhatsAppSender(&fakeSession{state: StateInitializing}, "56", 0)
	contacts := []Contact{{ID: "c1", Phone: "0912345678"}, {ID: "c2", Phone: "0987654321"}}

	res := w.SendBatch(context.Background(), contacts, "alert")

	assert.Equal(t, BatchResult{Sent: 0, Failed: 2}, res)
}

func TestWhatsAppSendBatchNormalizesPhones(t *testing.T) {
	session := &fakeSession{state: StateReady}
	w := NewWhatsAppSender(session, "56", 0)

	contacts := []Contact{
		{ID: "c1", Phone: "09 1234-5678", ReceiveAlerts: true},
		{ID: "c2", Phone: "+1234567890", ReceiveAlerts: true},
		{ID: "c3", Phone: "", ReceiveAlerts: true}, // no phone, skipped
		{ID: "c4", Phone: "0933333333", ReceiveAlerts: false},
	}
	res := w.SendBatch(context.Background(), contacts, "high alert")

	assert.Equal(t, BatchResult{Sent: 2, Failed: 0}, res)
	require.Contains(t, session.sent, "+56912345678")
	require.Contains(t, session.sent, "+1234567890")
	assert.NotContains(t, session.sent, "+56933333333")
	assert.Equal(t, "high alert", session.sent["+56912345678"])
}

func TestWhatsAppSendBatchCountsUnnormalizablePhoneAsFailed(t *testing.T) {
	session := &fakeSession{state: StateReady}
	w := NewWhatsAppSender(session, "56", 0)

	res := w.SendBatch(context.Background(), []Contact{
		{ID: "c1", Phone: "abc", ReceiveAlerts: true},
		{ID: "c2", Phone: "0911111111", ReceiveAlerts: true},
	}, "alert")

	assert.Equal(t, BatchResult{Sent: 1, Failed: 1}, res)
	require.Len(t, session.sent, 1)
	require.Contains(t, session.sent, "+56911111111")
}

func TestWhatsAppSendBatchCountsPerContactFailures(t *testing.T) {
	session := &fakeSession{
		state: StateReady,
		errs:  map[string]error{"+56911111111": errors.New("not on whatsapp")},
	}
	w := NewWhatsAppSender(session, "56", 0)

	res := w.SendBatch(context.Background(), []Contact{
		{ID: "c1", Phone: "0911111111", ReceiveAlerts: true},
		{ID: "c2", Phone: "0922222222", ReceiveAlerts: true},
	}, "alert")

	assert.Equal(t, BatchResult{Sent: 1, Failed: 1}, res)
}

func TestWhatsAppNilClient(t *testing.T) {
	w := NewWhatsAppSender(nil, "56", 0)
	assert.False(t, w.Ready())
	res := w.SendBatch(context.Background(), []Contact{{ID: "c1", Phone: "0911111111", ReceiveAlerts: true}}, "alert")
	assert.Equal(t, BatchResult{Failed: 1}, res)
}
