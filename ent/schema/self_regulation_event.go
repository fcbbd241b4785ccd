package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// SelfRegulationEvent is the system of record for every activation of the
// self-regulation button. Rows are append-only except the single
// unresolved → resolved transition; events are never physically deleted.
type SelfRegulationEvent struct {
	ent.Schema
}

// Mixin of the SelfRegulationEvent.
func (SelfRegulationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the SelfRegulationEvent.
func (SelfRegulationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			DefaultFunc(uuid.NewString),
		field.String("child_id").
			NotEmpty().
			Immutable(),
		field.Enum("level").
			Values("LOW", "MEDIUM", "HIGH", "CRITICAL").
			Immutable(),
		field.String("emotion").
			Optional().
			Immutable(),
		field.String("trigger").
			Optional().
			Immutable(),
		field.String("strategy_used").
			Optional().
			Immutable(),
		field.Bool("assistance_requested").
			Default(false).
			Immutable(),
		field.String("notes").
			Optional().
			Immutable(),
		field.Bool("resolved").
			Default(false),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.String("resolved_by").
			Optional(),
		field.String("resolution_notes").
			Optional(),
	}
}

// Indexes of the SelfRegulationEvent.
func (SelfRegulationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id", "created_at"), // history queries, newest first
		index.Fields("resolved"),
	}
}
