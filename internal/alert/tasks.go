package alert

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tora-app.io/tora/ent"
	apperrors "tora-app.io/tora/internal/pkg/errors"
	"tora-app.io/tora/internal/notify"
	"tora-app.io/tora/internal/pkg/logger"
)

// taskPusher is the push surface task notifications need.
type taskPusher interface {
	SendToUser(ctx context.Context, userID, title, body string, payload notify.Payload) notify.PushResult
	SendToChild(ctx context.Context, childID, parentID, title, body string, payload notify.Payload) notify.PushResult
}

// TaskNotifier sends task lifecycle pushes: assignment and reminders go
// to the child (mirrored to the parent's devices), completion notices go
// to the parent.
type TaskNotifier struct {
	client     *ent.Client
	recipients recipientSource
	push       taskPusher
}

// NewTaskNotifier wires the task notification flow.
func NewTaskNotifier(client *ent.Client, recipients recipientSource, push taskPusher) *TaskNotifier {
	return &TaskNotifier{client: client, recipients: recipients, push: push}
}

// NotifyNewTask tells a child about a newly assigned task.
func (n *TaskNotifier) NotifyNewTask(ctx context.Context, taskID string) (notify.PushResult, error) {
	task, child, err := n.load(ctx, taskID)
	if err != nil {
		return notify.PushResult{}, err
	}
	res := n.push.SendToChild(ctx, child.ID, child.ParentID,
		"New Task",
		fmt.Sprintf("You have a new task: %s", task.Title),
		notify.TaskPayload{PayloadKind: notify.KindNewTask, TaskID: task.ID, Title: task.Title},
	)
	n.log("new_task", task.ID, res)
	return res, nil
}

// NotifyTaskCompleted tells the parent a task was completed.
func (n *TaskNotifier) NotifyTaskCompleted(ctx context.Context, taskID string) (notify.PushResult, error) {
	task, child, err := n.load(ctx, taskID)
	if err != nil {
		return notify.PushResult{}, err
	}
	if child.ParentID == "" {
		logger.Warn("Task completion with no parent to notify",
			zap.String("task_id", task.ID),
			zap.String("child_id", child.ID),
		)
		return notify.PushResult{Success: false, Message: "No parent to notify"}, nil
	}
	res := n.push.SendToUser(ctx, child.ParentID,
		"Task Completed",
		fmt.Sprintf("%s completed the task: %s", child.Name, task.Title),
		notify.TaskPayload{PayloadKind: notify.KindTaskCompleted, TaskID: task.ID, Title: task.Title},
	)
	n.log("task_completed", task.ID, res)
	return res, nil
}

// SendReminder nudges a child about a pending task.
func (n *TaskNotifier) SendReminder(ctx context.Context, taskID string) (notify.PushResult, error) {
	task, child, err := n.load(ctx, taskID)
	if err != nil {
		return notify.PushResult{}, err
	}
	res := n.push.SendToChild(ctx, child.ID, child.ParentID,
		"Task Reminder",
		fmt.Sprintf("Remember your task: %s", task.Title),
		notify.TaskPayload{PayloadKind: notify.KindTaskReminder, TaskID: task.ID, Title: task.Title},
	)
	n.log("task_reminder", task.ID, res)
	return res, nil
}

func (n *TaskNotifier) load(ctx context.Context, taskID string) (*ent.Task, *ent.User, error) {
	task, err := n.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, apperrors.NotFound(apperrors.CodeTaskNotFound, "task not found")
		}
		return nil, nil, fmt.Errorf("get task: %w", err)
	}
	child, err := n.recipients.Child(ctx, task.ChildID)
	if err != nil {
		return nil, nil, err
	}
	return task, child, nil
}

func (n *TaskNotifier) log(kind, taskID string, res notify.PushResult) {
	logger.Info("Task notification dispatched",
		zap.String("kind", kind),
		zap.String("task_id", taskID),
		zap.Bool("success", res.Success),
		zap.Int("sent", res.SentCount),
		zap.Int("failed", res.FailedCount),
	)
}
