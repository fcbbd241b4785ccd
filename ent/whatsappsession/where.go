// Code generated by ent, DO NOT EDIT.

package whatsappsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"tora-app.io/tora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// LastQrCode applies equality check predicate on the "last_qr_code" field. It's identical to LastQrCodeEQ.
func LastQrCode(v string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldEQ(FieldLastQrCode, v))
}

// Authenticated applies equality check predicate on the "authenticated" field. It's identical to AuthenticatedEQ.
func Authenticated(v bool) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldEQ(FieldAuthenticated, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// LastQrCodeEQ applies the EQ predicate on the "last_qr_code" field.
func LastQrCodeEQ(v string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldEQ(FieldLastQrCode, v))
}

// LastQrCodeNEQ applies the NEQ predicate on the "last_qr_code" field.
func LastQrCodeNEQ(v string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldNEQ(FieldLastQrCode, v))
}

// LastQrCodeIn applies the In predicate on the "last_qr_code" field.
func LastQrCodeIn(vs ...string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldIn(FieldLastQrCode, vs...))
}

// LastQrCodeNotIn applies the NotIn predicate on the "last_qr_code" field.
func LastQrCodeNotIn(vs ...string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldNotIn(FieldLastQrCode, vs...))
}

// LastQrCodeGT applies the GT predicate on the "last_qr_code" field.
func LastQrCodeGT(v string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldGT(FieldLastQrCode, v))
}

// LastQrCodeGTE applies the GTE predicate on the "last_qr_code" field.
func LastQrCodeGTE(v string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldGTE(FieldLastQrCode, v))
}

// LastQrCodeLT applies the LT predicate on the "last_qr_code" field.
func LastQrCodeLT(v string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldLT(FieldLastQrCode, v))
}

// LastQrCodeLTE applies the LTE predicate on the "last_qr_code" field.
func LastQrCodeLTE(v string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldLTE(FieldLastQrCode, v))
}

// LastQrCodeContains applies the Contains predicate on the "last_qr_code" field.
func LastQrCodeContains(v string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldContains(FieldLastQrCode, v))
}

// LastQrCodeHasPrefix applies the HasPrefix predicate on the "last_qr_code" field.
func LastQrCodeHasPrefix(v string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldHasPrefix(FieldLastQrCode, v))
}

// LastQrCodeHasSuffix applies the HasSuffix predicate on the "last_qr_code" field.
func LastQrCodeHasSuffix(v string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldHasSuffix(FieldLastQrCode, v))
}

// LastQrCodeIsNil applies the IsNil predicate on the "last_qr_code" field.
func LastQrCodeIsNil() predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldIsNull(FieldLastQrCode))
}

// LastQrCodeNotNil applies the NotNil predicate on the "last_qr_code" field.
func LastQrCodeNotNil() predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldNotNull(FieldLastQrCode))
}

// LastQrCodeEqualFold applies the EqualFold predicate on the "last_qr_code" field.
func LastQrCodeEqualFold(v string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldEqualFold(FieldLastQrCode, v))
}

// LastQrCodeContainsFold applies the ContainsFold predicate on the "last_qr_code" field.
func LastQrCodeContainsFold(v string) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldContainsFold(FieldLastQrCode, v))
}

// AuthenticatedEQ applies the EQ predicate on the "authenticated" field.
func AuthenticatedEQ(v bool) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldEQ(FieldAuthenticated, v))
}

// AuthenticatedNEQ applies the NEQ predicate on the "authenticated" field.
func AuthenticatedNEQ(v bool) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.FieldNEQ(FieldAuthenticated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WhatsAppSession) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WhatsAppSession) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WhatsAppSession) predicate.WhatsAppSession {
	return predicate.WhatsAppSession(sql.NotPredicates(p))
}
