package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// EmergencyContact holds a parent-managed alert recipient.
// Deletion is a one-way soft delete (active=false); rows are never removed.
// Only contacts with active AND receive_alerts are alerting targets.
type EmergencyContact struct {
	ent.Schema
}

// Mixin of the EmergencyContact.
func (EmergencyContact) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the EmergencyContact.
func (EmergencyContact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			DefaultFunc(uuid.NewString),
		field.String("parent_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("phone").
			NotEmpty().
			MaxLen(64),
		field.String("email").
			Optional().
			MaxLen(255),
		field.String("relationship").
			Optional().
			MaxLen(128),
		field.Bool("active").
			Default(true),
		field.Bool("receive_alerts").
			Default(true),
		field.Int("priority").
			Default(0).
			Comment("Lower value dispatches first"),
	}
}

// Indexes of the EmergencyContact.
func (EmergencyContact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_id", "active", "receive_alerts"),
		index.Fields("parent_id", "priority"),
	}
}
