package alert

import (
	"context"

	"go.uber.org/zap"

	"tora-app.io/tora/ent"
	"tora-app.io/tora/internal/notify"
	"tora-app.io/tora/internal/pkg/logger"
	"tora-app.io/tora/internal/pkg/worker"
)

// eventPersister is the store surface the orchestrator needs.
type eventPersister interface {
	Create(ctx context.Context, in ActivationInput) (*ent.SelfRegulationEvent, error)
	Resolve(ctx context.Context, eventID, resolvedBy, notes string) (*ent.SelfRegulationEvent, error)
	History(ctx context.Context, childID string, days int) ([]*ent.SelfRegulationEvent, error)
	Unresolved(ctx context.Context, childIDs []string) ([]*ent.SelfRegulationEvent, error)
}

// recipientSource resolves children and their alert recipients.
type recipientSource interface {
	Child(ctx context.Context, childID string) (*ent.User, error)
	ChildIDs(ctx context.Context, parentID string) ([]string, error)
	Resolve(ctx context.Context, childID string) (Recipients, error)
}

// pushDispatcher is the push channel surface.
type pushDispatcher interface {
	Ready() bool
	SendToChild(ctx context.Context, childID, parentID, title, body string, payload notify.Payload) notify.PushResult
}

// batchDispatcher is the shared shape of the email and WhatsApp channels.
type batchDispatcher interface {
	Ready() bool
}

// emailDispatcher is the email channel surface.
type emailDispatcher interface {
	batchDispatcher
	SendBatch(ctx context.Context, contacts []notify.Contact, subject, html, text string) notify.BatchResult
}

// waDispatcher is the WhatsApp channel surface.
type waDispatcher interface {
	batchDispatcher
	SendBatch(ctx context.Context, contacts []notify.Contact, text string) notify.BatchResult
}

// detacher submits fan-out work that outlives the activation request.
type detacher interface {
	SubmitDetached(poolName string, task worker.Task) error
}

// Orchestrator coordinates the alert pipeline: persist the event, then
// fan out to every channel in the background.
//
// Persistence is the only step that can fail an activation. Once the
// event row exists the request succeeds; channel failures are logged and
// counted but never surface to the child pressing the button.
type Orchestrator struct {
	store      eventPersister
	recipients recipientSource
	push       pushDispatcher
	email      emailDispatcher
	whatsapp   waDispatcher
	pools      detacher
}

// NewOrchestrator wires the alert pipeline.
func NewOrchestrator(
	store eventPersister,
	recipients recipientSource,
	push pushDispatcher,
	email emailDispatcher,
	whatsapp waDispatcher,
	pools detacher,
) *Orchestrator {
	return &Orchestrator{
		store:      store,
		recipients: recipients,
		push:       push,
		email:      email,
		whatsapp:   whatsapp,
		pools:      pools,
	}
}

// Activate validates the child, persists the event, and schedules the
// fan-out. Returns the created event; fan-out outcomes are observable
// through logs and metrics only.
func (o *Orchestrator) Activate(ctx context.Context, in ActivationInput) (*ent.SelfRegulationEvent, error) {
	child, err := o.recipients.Child(ctx, in.ChildID)
	if err != nil {
		return nil, err
	}

	event, err := o.store.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	logger.Info("Self-regulation event created",
		zap.String("event_id", event.ID),
		zap.String("child_id", in.ChildID),
		zap.String("level", in.Level),
		zap.Bool("assistance_requested", in.AssistanceRequested),
	)

	msg := Compose(Context{
		EventID:             event.ID,
		ChildID:             child.ID,
		ChildName:           child.Name,
		Level:               string(event.Level),
		Emotion:             event.Emotion,
		Trigger:             event.Trigger,
		AssistanceRequested: event.AssistanceRequested,
		OccurredAt:          event.CreatedAt,
	})

	// The coordinator runs on the general pool and the channel sends on
	// the notify pool. A task never submits to the pool it runs on; a
	// fan-out that occupied a notify worker while queueing its own
	// channel tasks would wedge a saturated pool.
	if err := o.pools.SubmitDetached("general", func(ctx context.Context) {
		o.fanOut(ctx, child.ID, event.ID, msg)
	}); err != nil {
		// The event is saved; delivery failed to schedule. Surface loudly
		// in logs, but the activation still succeeds.
		logger.Error("Alert fan-out submit failed",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
	}

	return event, nil
}

// fanOut resolves recipients once and dispatches each channel on its own
// worker so one slow provider never delays the others.
func (o *Orchestrator) fanOut(ctx context.Context, childID, eventID string, msg Message) {
	// Resolution failure degrades the alert, it never cancels it: the
	// push channel can still reach the child's own devices.
	recipients, err := o.recipients.Resolve(ctx, childID)
	if err != nil {
		logger.Error("Recipient resolution failed, dispatching to child devices only",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
		recipients = Recipients{}
	}

	channels := []struct {
		name string
		run  func(ctx context.Context)
	}{
		{"push", func(ctx context.Context) {
			res := o.push.SendToChild(ctx, childID, recipients.ParentID, msg.Title, msg.Body, msg.Payload)
			logger.Info("Push channel dispatched",
				zap.String("event_id", eventID),
				zap.Bool("success", res.Success),
				zap.Int("sent", res.SentCount),
				zap.Int("failed", res.FailedCount),
				zap.String("message", res.Message),
			)
		}},
		{"email", func(ctx context.Context) {
			res := o.email.SendBatch(ctx, recipients.Contacts, msg.Subject, msg.HTML, msg.Text)
			logger.Info("Email channel dispatched",
				zap.String("event_id", eventID),
				zap.Int("sent", res.Sent),
				zap.Int("failed", res.Failed),
			)
		}},
		{"whatsapp", func(ctx context.Context) {
			res := o.whatsapp.SendBatch(ctx, recipients.Contacts, msg.WhatsAppText)
			logger.Info("WhatsApp channel dispatched",
				zap.String("event_id", eventID),
				zap.Int("sent", res.Sent),
				zap.Int("failed", res.Failed),
			)
		}},
	}

	for _, ch := range channels {
		ch := ch
		if err := o.pools.SubmitDetached("notify", ch.run); err != nil {
			logger.Error("Channel dispatch submit failed",
				zap.String("channel", ch.name),
				zap.String("event_id", eventID),
				zap.Error(err),
			)
		}
	}
}

// Resolve marks an event resolved on behalf of a parent.
func (o *Orchestrator) Resolve(ctx context.Context, eventID, resolvedBy, notes string) (*ent.SelfRegulationEvent, error) {
	event, err := o.store.Resolve(ctx, eventID, resolvedBy, notes)
	if err != nil {
		return nil, err
	}
	logger.Info("Self-regulation event resolved",
		zap.String("event_id", eventID),
		zap.String("resolved_by", resolvedBy),
	)
	return event, nil
}

// History returns a child's events over the given window, verifying the
// child exists first.
func (o *Orchestrator) History(ctx context.Context, childID string, days int) ([]*ent.SelfRegulationEvent, error) {
	if _, err := o.recipients.Child(ctx, childID); err != nil {
		return nil, err
	}
	return o.store.History(ctx, childID, days)
}

// Unresolved returns the open events across all of a parent's children,
// newest first. Backs the parent dashboard.
func (o *Orchestrator) Unresolved(ctx context.Context, parentID string) ([]*ent.SelfRegulationEvent, error) {
	childIDs, err := o.recipients.ChildIDs(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return o.store.Unresolved(ctx, childIDs)
}

// ChannelStatus reports per-channel readiness for the health endpoint.
func (o *Orchestrator) ChannelStatus() map[string]bool {
	return map[string]bool{
		"push":     o.push.Ready(),
		"email":    o.email.Ready(),
		"whatsapp": o.whatsapp.Ready(),
	}
}
