// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"tora-app.io/tora/ent/whatsappsession"
)

// WhatsAppSession is the model entity for the WhatsAppSession schema.
type WhatsAppSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// LastQrCode holds the value of the "last_qr_code" field.
	LastQrCode string `json:"-"`
	// Authenticated holds the value of the "authenticated" field.
	Authenticated bool `json:"authenticated,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WhatsAppSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case whatsappsession.FieldAuthenticated:
			values[i] = new(sql.NullBool)
		case whatsappsession.FieldID, whatsappsession.FieldLastQrCode:
			values[i] = new(sql.NullString)
		case whatsappsession.FieldCreatedAt, whatsappsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WhatsAppSession fields.
func (_m *WhatsAppSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case whatsappsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case whatsappsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case whatsappsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case whatsappsession.FieldLastQrCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_qr_code", values[i])
			} else if value.Valid {
				_m.LastQrCode = value.String
			}
		case whatsappsession.FieldAuthenticated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field authenticated", values[i])
			} else if value.Valid {
				_m.Authenticated = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WhatsAppSession.
// This includes values selected through modifiers, order, etc.
func (_m *WhatsAppSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WhatsAppSession.
// Note that you need to call WhatsAppSession.Unwrap() before calling this method if this WhatsAppSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WhatsAppSession) Update() *WhatsAppSessionUpdateOne {
	return NewWhatsAppSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WhatsAppSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WhatsAppSession) Unwrap() *WhatsAppSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WhatsAppSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WhatsAppSession) String() string {
	var builder strings.Builder
	builder.WriteString("WhatsAppSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_qr_code=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("authenticated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Authenticated))
	builder.WriteByte(')')
	return builder.String()
}

// WhatsAppSessions is a parsable slice of WhatsAppSession.
type WhatsAppSessions []*WhatsAppSession
