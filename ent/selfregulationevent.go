// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"tora-app.io/tora/ent/selfregulationevent"
)

// SelfRegulationEvent is the model entity for the SelfRegulationEvent schema.
type SelfRegulationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID string `json:"child_id,omitempty"`
	// Level holds the value of the "level" field.
	Level selfregulationevent.Level `json:"level,omitempty"`
	// Emotion holds the value of the "emotion" field.
	Emotion string `json:"emotion,omitempty"`
	// Trigger holds the value of the "trigger" field.
	Trigger string `json:"trigger,omitempty"`
	// StrategyUsed holds the value of the "strategy_used" field.
	StrategyUsed string `json:"strategy_used,omitempty"`
	// AssistanceRequested holds the value of the "assistance_requested" field.
	AssistanceRequested bool `json:"assistance_requested,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// Resolved holds the value of the "resolved" field.
	Resolved bool `json:"resolved,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// ResolvedBy holds the value of the "resolved_by" field.
	ResolvedBy string `json:"resolved_by,omitempty"`
	// ResolutionNotes holds the value of the "resolution_notes" field.
	ResolutionNotes string `json:"resolution_notes,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SelfRegulationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case selfregulationevent.FieldAssistanceRequested, selfregulationevent.FieldResolved:
			values[i] = new(sql.NullBool)
		case selfregulationevent.FieldID, selfregulationevent.FieldChildID, selfregulationevent.FieldLevel, selfregulationevent.FieldEmotion, selfregulationevent.FieldTrigger, selfregulationevent.FieldStrategyUsed, selfregulationevent.FieldNotes, selfregulationevent.FieldResolvedBy, selfregulationevent.FieldResolutionNotes:
			values[i] = new(sql.NullString)
		case selfregulationevent.FieldCreatedAt, selfregulationevent.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SelfRegulationEvent fields.
func (_m *SelfRegulationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case selfregulationevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case selfregulationevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case selfregulationevent.FieldChildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value.Valid {
				_m.ChildID = value.String
			}
		case selfregulationevent.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = selfregulationevent.Level(value.String)
			}
		case selfregulationevent.FieldEmotion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emotion", values[i])
			} else if value.Valid {
				_m.Emotion = value.String
			}
		case selfregulationevent.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = value.String
			}
		case selfregulationevent.FieldStrategyUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy_used", values[i])
			} else if value.Valid {
				_m.StrategyUsed = value.String
			}
		case selfregulationevent.FieldAssistanceRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field assistance_requested", values[i])
			} else if value.Valid {
				_m.AssistanceRequested = value.Bool
			}
		case selfregulationevent.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case selfregulationevent.FieldResolved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field resolved", values[i])
			} else if value.Valid {
				_m.Resolved = value.Bool
			}
		case selfregulationevent.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case selfregulationevent.FieldResolvedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_by", values[i])
			} else if value.Valid {
				_m.ResolvedBy = value.String
			}
		case selfregulationevent.FieldResolutionNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_notes", values[i])
			} else if value.Valid {
				_m.ResolutionNotes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SelfRegulationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SelfRegulationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SelfRegulationEvent.
// Note that you need to call SelfRegulationEvent.Unwrap() before calling this method if this SelfRegulationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SelfRegulationEvent) Update() *SelfRegulationEventUpdateOne {
	return NewSelfRegulationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SelfRegulationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SelfRegulationEvent) Unwrap() *SelfRegulationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SelfRegulationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SelfRegulationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SelfRegulationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("child_id=")
	builder.WriteString(_m.ChildID)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("emotion=")
	builder.WriteString(_m.Emotion)
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(_m.Trigger)
	builder.WriteString(", ")
	builder.WriteString("strategy_used=")
	builder.WriteString(_m.StrategyUsed)
	builder.WriteString(", ")
	builder.WriteString("assistance_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssistanceRequested))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("resolved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolved))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("resolved_by=")
	builder.WriteString(_m.ResolvedBy)
	builder.WriteString(", ")
	builder.WriteString("resolution_notes=")
	builder.WriteString(_m.ResolutionNotes)
	builder.WriteByte(')')
	return builder.String()
}

// SelfRegulationEvents is a parsable slice of SelfRegulationEvent.
type SelfRegulationEvents []*SelfRegulationEvent
