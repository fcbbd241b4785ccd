package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// WhatsAppSession persists the observable state of the single process-wide
// WhatsApp session: the last pairing QR payload and whether the session is
// authenticated. The pairing state machine itself lives in the session
// adapter; this row only mirrors it for the frontend.
type WhatsAppSession struct {
	ent.Schema
}

// Mixin of the WhatsAppSession.
func (WhatsAppSession) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the WhatsAppSession.
func (WhatsAppSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("last_qr_code").
			Optional().
			Sensitive(),
		field.Bool("authenticated").
			Default(false),
	}
}
