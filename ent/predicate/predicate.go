// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DeviceToken is the predicate function for devicetoken builders.
type DeviceToken func(*sql.Selector)

// EmergencyContact is the predicate function for emergencycontact builders.
type EmergencyContact func(*sql.Selector)

// SelfRegulationEvent is the predicate function for selfregulationevent builders.
type SelfRegulationEvent func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WhatsAppSession is the predicate function for whatsappsession builders.
type WhatsAppSession func(*sql.Selector)
