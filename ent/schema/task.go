package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task is a scheduled activity assigned to a child. Task CRUD belongs to the
// external task module; this backend reads tasks to drive lifecycle
// notifications and the pending-reminder sweep.
type Task struct {
	ent.Schema
}

// Mixin of the Task.
func (Task) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("child_id").
			NotEmpty(),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.Enum("status").
			Values("PENDING", "DONE").
			Default("PENDING"),
		field.Time("due_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id", "status"),
		index.Fields("status", "due_at"), // reminder sweep
	}
}
