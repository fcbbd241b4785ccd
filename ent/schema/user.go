package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for parent and child accounts.
// The alerting core only reads users; account lifecycle belongs to the
// identity service.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("email").
			Optional().
			MaxLen(255),
		field.Enum("role").
			Values("PARENT", "CHILD"),
		field.String("parent_id").
			Optional().
			Comment("Owning parent; set for CHILD rows only"),
		field.Bool("active").
			Default(true),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_id"),
		index.Fields("email"),
	}
}
