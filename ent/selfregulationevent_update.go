// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tora-app.io/tora/ent/predicate"
	"tora-app.io/tora/ent/selfregulationevent"
)

// SelfRegulationEventUpdate is the builder for updating SelfRegulationEvent entities.
type SelfRegulationEventUpdate struct {
	config
	hooks    []Hook
	mutation *SelfRegulationEventMutation
}

// Where appends a list predicates to the SelfRegulationEventUpdate builder.
func (_u *SelfRegulationEventUpdate) Where(ps ...predicate.SelfRegulationEvent) *SelfRegulationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *SelfRegulationEventUpdate) SetResolved(v bool) *SelfRegulationEventUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *SelfRegulationEventUpdate) SetNillableResolved(v *bool) *SelfRegulationEventUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *SelfRegulationEventUpdate) SetResolvedAt(v time.Time) *SelfRegulationEventUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *SelfRegulationEventUpdate) SetNillableResolvedAt(v *time.Time) *SelfRegulationEventUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *SelfRegulationEventUpdate) ClearResolvedAt() *SelfRegulationEventUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *SelfRegulationEventUpdate) SetResolvedBy(v string) *SelfRegulationEventUpdate {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *SelfRegulationEventUpdate) SetNillableResolvedBy(v *string) *SelfRegulationEventUpdate {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *SelfRegulationEventUpdate) ClearResolvedBy() *SelfRegulationEventUpdate {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_u *SelfRegulationEventUpdate) SetResolutionNotes(v string) *SelfRegulationEventUpdate {
	_u.mutation.SetResolutionNotes(v)
	return _u
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_u *SelfRegulationEventUpdate) SetNillableResolutionNotes(v *string) *SelfRegulationEventUpdate {
	if v != nil {
		_u.SetResolutionNotes(*v)
	}
	return _u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (_u *SelfRegulationEventUpdate) ClearResolutionNotes() *SelfRegulationEventUpdate {
	_u.mutation.ClearResolutionNotes()
	return _u
}

// Mutation returns the SelfRegulationEventMutation object of the builder.
func (_u *SelfRegulationEventUpdate) Mutation() *SelfRegulationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SelfRegulationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SelfRegulationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SelfRegulationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SelfRegulationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SelfRegulationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(selfregulationevent.Table, selfregulationevent.Columns, sqlgraph.NewFieldSpec(selfregulationevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.EmotionCleared() {
		_spec.ClearField(selfregulationevent.FieldEmotion, field.TypeString)
	}
	if _u.mutation.TriggerCleared() {
		_spec.ClearField(selfregulationevent.FieldTrigger, field.TypeString)
	}
	if _u.mutation.StrategyUsedCleared() {
		_spec.ClearField(selfregulationevent.FieldStrategyUsed, field.TypeString)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(selfregulationevent.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(selfregulationevent.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(selfregulationevent.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(selfregulationevent.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(selfregulationevent.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(selfregulationevent.FieldResolvedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ResolutionNotes(); ok {
		_spec.SetField(selfregulationevent.FieldResolutionNotes, field.TypeString, value)
	}
	if _u.mutation.ResolutionNotesCleared() {
		_spec.ClearField(selfregulationevent.FieldResolutionNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{selfregulationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SelfRegulationEventUpdateOne is the builder for updating a single SelfRegulationEvent entity.
type SelfRegulationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SelfRegulationEventMutation
}

// SetResolved sets the "resolved" field.
func (_u *SelfRegulationEventUpdateOne) SetResolved(v bool) *SelfRegulationEventUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *SelfRegulationEventUpdateOne) SetNillableResolved(v *bool) *SelfRegulationEventUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *SelfRegulationEventUpdateOne) SetResolvedAt(v time.Time) *SelfRegulationEventUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *SelfRegulationEventUpdateOne) SetNillableResolvedAt(v *time.Time) *SelfRegulationEventUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *SelfRegulationEventUpdateOne) ClearResolvedAt() *SelfRegulationEventUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *SelfRegulationEventUpdateOne) SetResolvedBy(v string) *SelfRegulationEventUpdateOne {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *SelfRegulationEventUpdateOne) SetNillableResolvedBy(v *string) *SelfRegulationEventUpdateOne {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *SelfRegulationEventUpdateOne) ClearResolvedBy() *SelfRegulationEventUpdateOne {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_u *SelfRegulationEventUpdateOne) SetResolutionNotes(v string) *SelfRegulationEventUpdateOne {
	_u.mutation.SetResolutionNotes(v)
	return _u
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_u *SelfRegulationEventUpdateOne) SetNillableResolutionNotes(v *string) *SelfRegulationEventUpdateOne {
	if v != nil {
		_u.SetResolutionNotes(*v)
	}
	return _u
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (_u *SelfRegulationEventUpdateOne) ClearResolutionNotes() *SelfRegulationEventUpdateOne {
	_u.mutation.ClearResolutionNotes()
	return _u
}

// Mutation returns the SelfRegulationEventMutation object of the builder.
func (_u *SelfRegulationEventUpdateOne) Mutation() *SelfRegulationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SelfRegulationEventUpdate builder.
func (_u *SelfRegulationEventUpdateOne) Where(ps ...predicate.SelfRegulationEvent) *SelfRegulationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SelfRegulationEventUpdateOne) Select(field string, fields ...string) *SelfRegulationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SelfRegulationEvent entity.
func (_u *SelfRegulationEventUpdateOne) Save(ctx context.Context) (*SelfRegulationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SelfRegulationEventUpdateOne) SaveX(ctx context.Context) *SelfRegulationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SelfRegulationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SelfRegulationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SelfRegulationEventUpdateOne) sqlSave(ctx context.Context) (_node *SelfRegulationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(selfregulationevent.Table, selfregulationevent.Columns, sqlgraph.NewFieldSpec(selfregulationevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SelfRegulationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, selfregulationevent.FieldID)
		for _, f := range fields {
			if !selfregulationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != selfregulationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.EmotionCleared() {
		_spec.ClearField(selfregulationevent.FieldEmotion, field.TypeString)
	}
	if _u.mutation.TriggerCleared() {
		_spec.ClearField(selfregulationevent.FieldTrigger, field.TypeString)
	}
	if _u.mutation.StrategyUsedCleared() {
		_spec.ClearField(selfregulationevent.FieldStrategyUsed, field.TypeString)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(selfregulationevent.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(selfregulationevent.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(selfregulationevent.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(selfregulationevent.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(selfregulationevent.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(selfregulationevent.FieldResolvedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ResolutionNotes(); ok {
		_spec.SetField(selfregulationevent.FieldResolutionNotes, field.TypeString, value)
	}
	if _u.mutation.ResolutionNotesCleared() {
		_spec.ClearField(selfregulationevent.FieldResolutionNotes, field.TypeString)
	}
	_node = &SelfRegulationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{selfregulationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
