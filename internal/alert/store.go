package alert

import (
	"context"
	"fmt"
	"time"

	"tora-app.io/tora/ent"
	"tora-app.io/tora/ent/selfregulationevent"
	apperrors "tora-app.io/tora/internal/pkg/errors"
)

// ActivationInput is the validated payload of a button activation.
type ActivationInput struct {
	ChildID             string
	Level               string
	Emotion             string
	Trigger             string
	StrategyUsed        string
	Notes               string
	AssistanceRequested bool
}

// EventStore persists self-regulation events. Events are append-only
// except the single unresolved to resolved transition.
type EventStore struct {
	client *ent.Client
}

// NewEventStore creates an Ent-backed event store.
func NewEventStore(client *ent.Client) *EventStore {
	return &EventStore{client: client}
}

// Create persists a new unresolved event.
func (s *EventStore) Create(ctx context.Context, in ActivationInput) (*ent.SelfRegulationEvent, error) {
	level := selfregulationevent.Level(in.Level)
	if err := selfregulationevent.LevelValidator(level); err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed,
			fmt.Sprintf("invalid severity level %q", in.Level))
	}

	create := s.client.SelfRegulationEvent.Create().
		SetChildID(in.ChildID).
		SetLevel(level).
		SetAssistanceRequested(in.AssistanceRequested)
	if in.Emotion != "" {
		create = create.SetEmotion(in.Emotion)
	}
	if in.Trigger != "" {
		create = create.SetTrigger(in.Trigger)
	}
	if in.StrategyUsed != "" {
		create = create.SetStrategyUsed(in.StrategyUsed)
	}
	if in.Notes != "" {
		create = create.SetNotes(in.Notes)
	}

	event, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Resolve marks an unresolved event resolved. A second resolution attempt
// is rejected; the first resolver's record stays intact.
func (s *EventStore) Resolve(ctx context.Context, eventID, resolvedBy, notes string) (*ent.SelfRegulationEvent, error) {
	event, err := s.client.SelfRegulationEvent.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrEventNotFoundf(eventID)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Resolved {
		return nil, apperrors.ErrEventAlreadyResolvedf(eventID)
	}

	upd := event.Update().
		SetResolved(true).
		SetResolvedAt(time.Now()).
		SetResolvedBy(resolvedBy)
	if notes != "" {
		upd = upd.SetResolutionNotes(notes)
	}
	resolved, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve event: %w", err)
	}
	return resolved, nil
}

// History returns a child's events from the last N days, newest first.
func (s *EventStore) History(ctx context.Context, childID string, days int) ([]*ent.SelfRegulationEvent, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	events, err := s.client.SelfRegulationEvent.Query().
		Where(
			selfregulationevent.ChildIDEQ(childID),
			selfregulationevent.CreatedAtGTE(since),
		).
		Order(ent.Desc(selfregulationevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return events, nil
}

// Unresolved returns the currently unresolved events for the children of
// a parent, newest first. Backs the parent dashboard.
func (s *EventStore) Unresolved(ctx context.Context, childIDs []string) ([]*ent.SelfRegulationEvent, error) {
	if len(childIDs) == 0 {
		return nil, nil
	}
	events, err := s.client.SelfRegulationEvent.Query().
		Where(
			selfregulationevent.ChildIDIn(childIDs...),
			selfregulationevent.ResolvedEQ(false),
		).
		Order(ent.Desc(selfregulationevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unresolved events: %w", err)
	}
	return events, nil
}
