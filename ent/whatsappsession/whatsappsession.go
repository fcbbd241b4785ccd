// Code generated by ent, DO NOT EDIT.

package whatsappsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the whatsappsession type in the database.
	Label = "whats_app_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldLastQrCode holds the string denoting the last_qr_code field in the database.
	FieldLastQrCode = "last_qr_code"
	// FieldAuthenticated holds the string denoting the authenticated field in the database.
	FieldAuthenticated = "authenticated"
	// Table holds the table name of the whatsappsession in the database.
	Table = "whats_app_sessions"
)

// Columns holds all SQL columns for whatsappsession fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldLastQrCode,
	FieldAuthenticated,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultAuthenticated holds the default value on creation for the "authenticated" field.
	DefaultAuthenticated bool
)

// OrderOption defines the ordering options for the WhatsAppSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLastQrCode orders the results by the last_qr_code field.
func ByLastQrCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastQrCode, opts...).ToFunc()
}

// ByAuthenticated orders the results by the authenticated field.
func ByAuthenticated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthenticated, opts...).ToFunc()
}
