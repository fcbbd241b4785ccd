package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// DeviceToken maps one installed-app instance to a user for push delivery.
// A token string has at most one active owner; re-registering an existing
// token reassigns ownership and reactivates it, while deactivation comes
// from explicit unregister or provider-reported invalidity.
type DeviceToken struct {
	ent.Schema
}

// Mixin of the DeviceToken.
func (DeviceToken) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the DeviceToken.
func (DeviceToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			DefaultFunc(uuid.NewString),
		field.String("token").
			NotEmpty().
			Unique(),
		field.String("user_id").
			NotEmpty(),
		field.Enum("device_type").
			Values("ANDROID", "IOS", "WEB"),
		field.Bool("active").
			Default(true),
		field.Time("last_used").
			Default(time.Now),
	}
}

// Indexes of the DeviceToken.
func (DeviceToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "active"),
		index.Fields("last_used"), // stale token cleanup
	}
}
