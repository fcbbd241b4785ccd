// Code generated by ent, DO NOT EDIT.

package selfregulationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"tora-app.io/tora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldChildID, v))
}

// Emotion applies equality check predicate on the "emotion" field. It's identical to EmotionEQ.
func Emotion(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldEmotion, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldTrigger, v))
}

// StrategyUsed applies equality check predicate on the "strategy_used" field. It's identical to StrategyUsedEQ.
func StrategyUsed(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldStrategyUsed, v))
}

// AssistanceRequested applies equality check predicate on the "assistance_requested" field. It's identical to AssistanceRequestedEQ.
func AssistanceRequested(v bool) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldAssistanceRequested, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldNotes, v))
}

// Resolved applies equality check predicate on the "resolved" field. It's identical to ResolvedEQ.
func Resolved(v bool) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldResolved, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedBy applies equality check predicate on the "resolved_by" field. It's identical to ResolvedByEQ.
func ResolvedBy(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldResolvedBy, v))
}

// ResolutionNotes applies equality check predicate on the "resolution_notes" field. It's identical to ResolutionNotesEQ.
func ResolutionNotes(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldResolutionNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotIn(FieldChildID, vs...))
}

// ChildIDGT applies the GT predicate on the "child_id" field.
func ChildIDGT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGT(FieldChildID, v))
}

// ChildIDGTE applies the GTE predicate on the "child_id" field.
func ChildIDGTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGTE(FieldChildID, v))
}

// ChildIDLT applies the LT predicate on the "child_id" field.
func ChildIDLT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLT(FieldChildID, v))
}

// ChildIDLTE applies the LTE predicate on the "child_id" field.
func ChildIDLTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLTE(FieldChildID, v))
}

// ChildIDContains applies the Contains predicate on the "child_id" field.
func ChildIDContains(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContains(FieldChildID, v))
}

// ChildIDHasPrefix applies the HasPrefix predicate on the "child_id" field.
func ChildIDHasPrefix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasPrefix(FieldChildID, v))
}

// ChildIDHasSuffix applies the HasSuffix predicate on the "child_id" field.
func ChildIDHasSuffix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasSuffix(FieldChildID, v))
}

// ChildIDEqualFold applies the EqualFold predicate on the "child_id" field.
func ChildIDEqualFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEqualFold(FieldChildID, v))
}

// ChildIDContainsFold applies the ContainsFold predicate on the "child_id" field.
func ChildIDContainsFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContainsFold(FieldChildID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// EmotionEQ applies the EQ predicate on the "emotion" field.
func EmotionEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldEmotion, v))
}

// EmotionNEQ applies the NEQ predicate on the "emotion" field.
func EmotionNEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldEmotion, v))
}

// EmotionIn applies the In predicate on the "emotion" field.
func EmotionIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIn(FieldEmotion, vs...))
}

// EmotionNotIn applies the NotIn predicate on the "emotion" field.
func EmotionNotIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotIn(FieldEmotion, vs...))
}

// EmotionGT applies the GT predicate on the "emotion" field.
func EmotionGT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGT(FieldEmotion, v))
}

// EmotionGTE applies the GTE predicate on the "emotion" field.
func EmotionGTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGTE(FieldEmotion, v))
}

// EmotionLT applies the LT predicate on the "emotion" field.
func EmotionLT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLT(FieldEmotion, v))
}

// EmotionLTE applies the LTE predicate on the "emotion" field.
func EmotionLTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLTE(FieldEmotion, v))
}

// EmotionContains applies the Contains predicate on the "emotion" field.
func EmotionContains(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContains(FieldEmotion, v))
}

// EmotionHasPrefix applies the HasPrefix predicate on the "emotion" field.
func EmotionHasPrefix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasPrefix(FieldEmotion, v))
}

// EmotionHasSuffix applies the HasSuffix predicate on the "emotion" field.
func EmotionHasSuffix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasSuffix(FieldEmotion, v))
}

// EmotionIsNil applies the IsNil predicate on the "emotion" field.
func EmotionIsNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIsNull(FieldEmotion))
}

// EmotionNotNil applies the NotNil predicate on the "emotion" field.
func EmotionNotNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotNull(FieldEmotion))
}

// EmotionEqualFold applies the EqualFold predicate on the "emotion" field.
func EmotionEqualFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEqualFold(FieldEmotion, v))
}

// EmotionContainsFold applies the ContainsFold predicate on the "emotion" field.
func EmotionContainsFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContainsFold(FieldEmotion, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerIsNil applies the IsNil predicate on the "trigger" field.
func TriggerIsNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIsNull(FieldTrigger))
}

// TriggerNotNil applies the NotNil predicate on the "trigger" field.
func TriggerNotNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotNull(FieldTrigger))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// StrategyUsedEQ applies the EQ predicate on the "strategy_used" field.
func StrategyUsedEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldStrategyUsed, v))
}

// StrategyUsedNEQ applies the NEQ predicate on the "strategy_used" field.
func StrategyUsedNEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldStrategyUsed, v))
}

// StrategyUsedIn applies the In predicate on the "strategy_used" field.
func StrategyUsedIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIn(FieldStrategyUsed, vs...))
}

// StrategyUsedNotIn applies the NotIn predicate on the "strategy_used" field.
func StrategyUsedNotIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotIn(FieldStrategyUsed, vs...))
}

// StrategyUsedGT applies the GT predicate on the "strategy_used" field.
func StrategyUsedGT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGT(FieldStrategyUsed, v))
}

// StrategyUsedGTE applies the GTE predicate on the "strategy_used" field.
func StrategyUsedGTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGTE(FieldStrategyUsed, v))
}

// StrategyUsedLT applies the LT predicate on the "strategy_used" field.
func StrategyUsedLT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLT(FieldStrategyUsed, v))
}

// StrategyUsedLTE applies the LTE predicate on the "strategy_used" field.
func StrategyUsedLTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLTE(FieldStrategyUsed, v))
}

// StrategyUsedContains applies the Contains predicate on the "strategy_used" field.
func StrategyUsedContains(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContains(FieldStrategyUsed, v))
}

// StrategyUsedHasPrefix applies the HasPrefix predicate on the "strategy_used" field.
func StrategyUsedHasPrefix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasPrefix(FieldStrategyUsed, v))
}

// StrategyUsedHasSuffix applies the HasSuffix predicate on the "strategy_used" field.
func StrategyUsedHasSuffix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasSuffix(FieldStrategyUsed, v))
}

// StrategyUsedIsNil applies the IsNil predicate on the "strategy_used" field.
func StrategyUsedIsNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIsNull(FieldStrategyUsed))
}

// StrategyUsedNotNil applies the NotNil predicate on the "strategy_used" field.
func StrategyUsedNotNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotNull(FieldStrategyUsed))
}

// StrategyUsedEqualFold applies the EqualFold predicate on the "strategy_used" field.
func StrategyUsedEqualFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEqualFold(FieldStrategyUsed, v))
}

// StrategyUsedContainsFold applies the ContainsFold predicate on the "strategy_used" field.
func StrategyUsedContainsFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContainsFold(FieldStrategyUsed, v))
}

// AssistanceRequestedEQ applies the EQ predicate on the "assistance_requested" field.
func AssistanceRequestedEQ(v bool) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldAssistanceRequested, v))
}

// AssistanceRequestedNEQ applies the NEQ predicate on the "assistance_requested" field.
func AssistanceRequestedNEQ(v bool) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldAssistanceRequested, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContainsFold(FieldNotes, v))
}

// ResolvedEQ applies the EQ predicate on the "resolved" field.
func ResolvedEQ(v bool) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldResolved, v))
}

// ResolvedNEQ applies the NEQ predicate on the "resolved" field.
func ResolvedNEQ(v bool) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldResolved, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotNull(FieldResolvedAt))
}

// ResolvedByEQ applies the EQ predicate on the "resolved_by" field.
func ResolvedByEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldResolvedBy, v))
}

// ResolvedByNEQ applies the NEQ predicate on the "resolved_by" field.
func ResolvedByNEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldResolvedBy, v))
}

// ResolvedByIn applies the In predicate on the "resolved_by" field.
func ResolvedByIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIn(FieldResolvedBy, vs...))
}

// ResolvedByNotIn applies the NotIn predicate on the "resolved_by" field.
func ResolvedByNotIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotIn(FieldResolvedBy, vs...))
}

// ResolvedByGT applies the GT predicate on the "resolved_by" field.
func ResolvedByGT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGT(FieldResolvedBy, v))
}

// ResolvedByGTE applies the GTE predicate on the "resolved_by" field.
func ResolvedByGTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGTE(FieldResolvedBy, v))
}

// ResolvedByLT applies the LT predicate on the "resolved_by" field.
func ResolvedByLT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLT(FieldResolvedBy, v))
}

// ResolvedByLTE applies the LTE predicate on the "resolved_by" field.
func ResolvedByLTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLTE(FieldResolvedBy, v))
}

// ResolvedByContains applies the Contains predicate on the "resolved_by" field.
func ResolvedByContains(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContains(FieldResolvedBy, v))
}

// ResolvedByHasPrefix applies the HasPrefix predicate on the "resolved_by" field.
func ResolvedByHasPrefix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasPrefix(FieldResolvedBy, v))
}

// ResolvedByHasSuffix applies the HasSuffix predicate on the "resolved_by" field.
func ResolvedByHasSuffix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasSuffix(FieldResolvedBy, v))
}

// ResolvedByIsNil applies the IsNil predicate on the "resolved_by" field.
func ResolvedByIsNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIsNull(FieldResolvedBy))
}

// ResolvedByNotNil applies the NotNil predicate on the "resolved_by" field.
func ResolvedByNotNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotNull(FieldResolvedBy))
}

// ResolvedByEqualFold applies the EqualFold predicate on the "resolved_by" field.
func ResolvedByEqualFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEqualFold(FieldResolvedBy, v))
}

// ResolvedByContainsFold applies the ContainsFold predicate on the "resolved_by" field.
func ResolvedByContainsFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContainsFold(FieldResolvedBy, v))
}

// ResolutionNotesEQ applies the EQ predicate on the "resolution_notes" field.
func ResolutionNotesEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEQ(FieldResolutionNotes, v))
}

// ResolutionNotesNEQ applies the NEQ predicate on the "resolution_notes" field.
func ResolutionNotesNEQ(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNEQ(FieldResolutionNotes, v))
}

// ResolutionNotesIn applies the In predicate on the "resolution_notes" field.
func ResolutionNotesIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIn(FieldResolutionNotes, vs...))
}

// ResolutionNotesNotIn applies the NotIn predicate on the "resolution_notes" field.
func ResolutionNotesNotIn(vs ...string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotIn(FieldResolutionNotes, vs...))
}

// ResolutionNotesGT applies the GT predicate on the "resolution_notes" field.
func ResolutionNotesGT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGT(FieldResolutionNotes, v))
}

// ResolutionNotesGTE applies the GTE predicate on the "resolution_notes" field.
func ResolutionNotesGTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldGTE(FieldResolutionNotes, v))
}

// ResolutionNotesLT applies the LT predicate on the "resolution_notes" field.
func ResolutionNotesLT(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLT(FieldResolutionNotes, v))
}

// ResolutionNotesLTE applies the LTE predicate on the "resolution_notes" field.
func ResolutionNotesLTE(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldLTE(FieldResolutionNotes, v))
}

// ResolutionNotesContains applies the Contains predicate on the "resolution_notes" field.
func ResolutionNotesContains(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContains(FieldResolutionNotes, v))
}

// ResolutionNotesHasPrefix applies the HasPrefix predicate on the "resolution_notes" field.
func ResolutionNotesHasPrefix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasPrefix(FieldResolutionNotes, v))
}

// ResolutionNotesHasSuffix applies the HasSuffix predicate on the "resolution_notes" field.
func ResolutionNotesHasSuffix(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldHasSuffix(FieldResolutionNotes, v))
}

// ResolutionNotesIsNil applies the IsNil predicate on the "resolution_notes" field.
func ResolutionNotesIsNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldIsNull(FieldResolutionNotes))
}

// ResolutionNotesNotNil applies the NotNil predicate on the "resolution_notes" field.
func ResolutionNotesNotNil() predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldNotNull(FieldResolutionNotes))
}

// ResolutionNotesEqualFold applies the EqualFold predicate on the "resolution_notes" field.
func ResolutionNotesEqualFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldEqualFold(FieldResolutionNotes, v))
}

// ResolutionNotesContainsFold applies the ContainsFold predicate on the "resolution_notes" field.
func ResolutionNotesContainsFold(v string) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.FieldContainsFold(FieldResolutionNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SelfRegulationEvent) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SelfRegulationEvent) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SelfRegulationEvent) predicate.SelfRegulationEvent {
	return predicate.SelfRegulationEvent(sql.NotPredicates(p))
}
