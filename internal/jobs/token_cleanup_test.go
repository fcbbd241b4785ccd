package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tora-app.io/tora/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

type fakeDeactivator struct {
	cutoff time.Time
	count  int
	err    error
}

func (f *fakeDeactivator) DeactivateStale(_ context.Context, cutoff time.Time) (int, error) {
	f.cutoff = cutoff
	return f.count, f.err
}

func TestTokenCleanupWorker(t *testing.T) {
	reg := &fakeDeactivator{count: 4}
	w := NewTokenCleanupWorker(reg, 30*24*time.Hour)

	err := w.Work(context.Background(), &river.Job[TokenCleanupArgs]{})
	require.NoError(t, err)

	wantCutoff := time.Now().UTC().Add(-30 * 24 * time.Hour)
	assert.WithinDuration(t, wantCutoff, reg.cutoff, time.Minute)
}

func TestTokenCleanupWorkerDefaultsRetention(t *testing.T) {
	w := NewTokenCleanupWorker(&fakeDeactivator{}, 0)
	assert.Equal(t, DefaultTokenRetention, w.retention)
}

func TestTokenCleanupWorkerPropagatesError(t *testing.T) {
	reg := &fakeDeactivator{err: errors.New("db down")}
	w := NewTokenCleanupWorker(reg, time.Hour)

	err := w.Work(context.Background(), &river.Job[TokenCleanupArgs]{})
	require.Error(t, err)
}

func TestTokenCleanupArgsKind(t *testing.T) {
	assert.Equal(t, "device_token_cleanup", TokenCleanupArgs{}.Kind())
	assert.Equal(t, "task_reminder_sweep", TaskReminderArgs{}.Kind())
}
