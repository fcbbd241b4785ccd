// Code generated by ent, DO NOT EDIT.

package selfregulationevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the selfregulationevent type in the database.
	Label = "self_regulation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldChildID holds the string denoting the child_id field in the database.
	FieldChildID = "child_id"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldEmotion holds the string denoting the emotion field in the database.
	FieldEmotion = "emotion"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldStrategyUsed holds the string denoting the strategy_used field in the database.
	FieldStrategyUsed = "strategy_used"
	// FieldAssistanceRequested holds the string denoting the assistance_requested field in the database.
	FieldAssistanceRequested = "assistance_requested"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldResolved holds the string denoting the resolved field in the database.
	FieldResolved = "resolved"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldResolvedBy holds the string denoting the resolved_by field in the database.
	FieldResolvedBy = "resolved_by"
	// FieldResolutionNotes holds the string denoting the resolution_notes field in the database.
	FieldResolutionNotes = "resolution_notes"
	// Table holds the table name of the selfregulationevent in the database.
	Table = "self_regulation_events"
)

// Columns holds all SQL columns for selfregulationevent fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldChildID,
	FieldLevel,
	FieldEmotion,
	FieldTrigger,
	FieldStrategyUsed,
	FieldAssistanceRequested,
	FieldNotes,
	FieldResolved,
	FieldResolvedAt,
	FieldResolvedBy,
	FieldResolutionNotes,
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
	// ChildIDValidator is a validator for the "child_id" field. It is called by the builders before save.
	ChildIDValidator func(string) error
	// DefaultAssistanceRequested holds the default value on creation for the "assistance_requested" field.
	DefaultAssistanceRequested bool
	// DefaultResolved holds the default value on creation for the "resolved" field.
	DefaultResolved bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// Level defines the type for the "level" enum field.
type Level string

// Level values.
const (
	LevelLOW      Level = "LOW"
	LevelMEDIUM   Level = "MEDIUM"
	LevelHIGH     Level = "HIGH"
	LevelCRITICAL Level = "CRITICAL"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelLOW, LevelMEDIUM, LevelHIGH, LevelCRITICAL:
		return nil
	default:
		return fmt.Errorf("selfregulationevent: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the SelfRegulationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByChildID orders the results by the child_id field.
func ByChildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildID, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByEmotion orders the results by the emotion field.
func ByEmotion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmotion, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByStrategyUsed orders the results by the strategy_used field.
func ByStrategyUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategyUsed, opts...).ToFunc()
}

// ByAssistanceRequested orders the results by the assistance_requested field.
func ByAssistanceRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssistanceRequested, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByResolved orders the results by the resolved field.
func ByResolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolved, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByResolvedBy orders the results by the resolved_by field.
func ByResolvedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedBy, opts...).ToFunc()
}

// ByResolutionNotes orders the results by the resolution_notes field.
func ByResolutionNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionNotes, opts...).ToFunc()
}
