package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tora-app.io/tora/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

// fakeClock records requested sleeps without waiting.
type fakeClock struct {
	slept []time.Duration
	err   error
}

func (f *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	f.slept = append(f.slept, d)
	return f.err
}

func TestDispatchBatchCountsFailuresAndContinues(t *testing.T) {
	contacts := []Contact{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}
	clock := &fakeClock{}

	var sent []string
	res := dispatchBatch(context.Background(), "email", contacts, 500*time.Millisecond, clock,
		func(_ context.Context, c Contact) error {
			if c.ID == "c2" {
				return errors.New("smtp refused")
			}
			sent = append(sent, c.ID)
			return nil
		})

	assert.Equal(t, BatchResult{Sent: 2, Failed: 1}, res)
	assert.Equal(t, []string{"c1", "c3"}, sent)
}

func TestDispatchBatchThrottlesBetweenSends(t *testing.T) {
	contacts := []Contact{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}
	clock := &fakeClock{}

	res := dispatchBatch(context.Background(), "whatsapp", contacts, time.Second, clock,
		func(_ context.Context, _ Contact) error { return nil })

	require.Equal(t, BatchResult{Sent: 3, Failed: 0}, res)
	// No delay before the first send, one between each pair after.
	require.Len(t, clock.slept, 2)
	assert.Equal(t, time.Second, clock.slept[0])
}

func TestDispatchBatchStopsOnCancelledContext(t *testing.T) {
	contacts := []Contact{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}
	clock := &fakeClock{err: context.Canceled}

	var calls int
	res := dispatchBatch(context.Background(), "email", contacts, time.Second, clock,
		func(_ context.Context, _ Contact) error {
			calls++
			return nil
		})

	assert.Equal(t, 1, calls)
	assert.Equal(t, BatchResult{Sent: 1, Failed: 2}, res)
}

func TestDispatchBatchEmpty(t *testing.T) {
	res := dispatchBatch(context.Background(), "email", nil, time.Second, &fakeClock{},
		func(_ context.Context, _ Contact) error { return nil })
	assert.Equal(t, BatchResult{}, res)
}

func TestRealClockHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RealClock{}.Sleep(ctx, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
}
