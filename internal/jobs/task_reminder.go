// Package jobs contains River background jobs: the pending-task reminder
// sweep and stale device-token cleanup.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"tora-app.io/tora/ent"
	"tora-app.io/tora/ent/task"
	"tora-app.io/tora/internal/notify"
	"tora-app.io/tora/internal/pkg/logger"
)

// reminderLookahead bounds how far past due a task can be and still get a
// reminder; older tasks are considered abandoned rather than nagged.
const reminderLookahead = 24 * time.Hour

// TaskReminderArgs is the periodic sweep that reminds children of pending
// tasks that have reached their due time.
type TaskReminderArgs struct{}

// Kind returns the job kind identifier for the reminder sweep.
func (TaskReminderArgs) Kind() string { return "task_reminder_sweep" }

// InsertOpts deduplicates overlapping sweeps.
func (TaskReminderArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 15 * time.Minute,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// ReminderSender sends one task reminder push.
type ReminderSender interface {
	SendReminder(ctx context.Context, taskID string) (notify.PushResult, error)
}

// TaskReminderWorker finds pending tasks whose due time has passed and
// pushes a reminder for each.
type TaskReminderWorker struct {
	river.WorkerDefaults[TaskReminderArgs]
	entClient *ent.Client
	sender    ReminderSender
}

// NewTaskReminderWorker creates the sweep worker.
func NewTaskReminderWorker(entClient *ent.Client, sender ReminderSender) *TaskReminderWorker {
	return &TaskReminderWorker{entClient: entClient, sender: sender}
}

// Work runs one sweep. Per-task send failures are logged and do not fail
// the sweep; the next run retries naturally.
func (w *TaskReminderWorker) Work(ctx context.Context, _ *river.Job[TaskReminderArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("task reminder worker is not initialized")
	}

	now := time.Now().UTC()
	due, err := w.entClient.Task.Query().
		Where(
			task.StatusEQ(task.StatusPENDING),
			task.DueAtLTE(now),
			task.DueAtGT(now.Add(-reminderLookahead)),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query due tasks: %w", err)
	}

	var sent, failed int
	for _, t := range due {
		if _, err := w.sender.SendReminder(ctx, t.ID); err != nil {
			failed++
			logger.Warn("Task reminder send failed",
				zap.String("task_id", t.ID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	logger.Info("Task reminder sweep completed",
		zap.Int("due_tasks", len(due)),
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)
	return nil
}
