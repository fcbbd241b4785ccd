// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tora-app.io/tora/ent/selfregulationevent"
)

// SelfRegulationEventCreate is the builder for creating a SelfRegulationEvent entity.
type SelfRegulationEventCreate struct {
	config
	mutation *SelfRegulationEventMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SelfRegulationEventCreate) SetCreatedAt(v time.Time) *SelfRegulationEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SelfRegulationEventCreate) SetNillableCreatedAt(v *time.Time) *SelfRegulationEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *SelfRegulationEventCreate) SetChildID(v string) *SelfRegulationEventCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *SelfRegulationEventCreate) SetLevel(v selfregulationevent.Level) *SelfRegulationEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetEmotion sets the "emotion" field.
func (_c *SelfRegulationEventCreate) SetEmotion(v string) *SelfRegulationEventCreate {
	_c.mutation.SetEmotion(v)
	return _c
}

// SetNillableEmotion sets the "emotion" field if the given value is not nil.
func (_c *SelfRegulationEventCreate) SetNillableEmotion(v *string) *SelfRegulationEventCreate {
	if v != nil {
		_c.SetEmotion(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *SelfRegulationEventCreate) SetTrigger(v string) *SelfRegulationEventCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *SelfRegulationEventCreate) SetNillableTrigger(v *string) *SelfRegulationEventCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetStrategyUsed sets the "strategy_used" field.
func (_c *SelfRegulationEventCreate) SetStrategyUsed(v string) *SelfRegulationEventCreate {
	_c.mutation.SetStrategyUsed(v)
	return _c
}

// SetNillableStrategyUsed sets the "strategy_used" field if the given value is not nil.
func (_c *SelfRegulationEventCreate) SetNillableStrategyUsed(v *string) *SelfRegulationEventCreate {
	if v != nil {
		_c.SetStrategyUsed(*v)
	}
	return _c
}

// SetAssistanceRequested sets the "assistance_requested" field.
func (_c *SelfRegulationEventCreate) SetAssistanceRequested(v bool) *SelfRegulationEventCreate {
	_c.mutation.SetAssistanceRequested(v)
	return _c
}

// SetNillableAssistanceRequested sets the "assistance_requested" field if the given value is not nil.
func (_c *SelfRegulationEventCreate) SetNillableAssistanceRequested(v *bool) *SelfRegulationEventCreate {
	if v != nil {
		_c.SetAssistanceRequested(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *SelfRegulationEventCreate) SetNotes(v string) *SelfRegulationEventCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *SelfRegulationEventCreate) SetNillableNotes(v *string) *SelfRegulationEventCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *SelfRegulationEventCreate) SetResolved(v bool) *SelfRegulationEventCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *SelfRegulationEventCreate) SetNillableResolved(v *bool) *SelfRegulationEventCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *SelfRegulationEventCreate) SetResolvedAt(v time.Time) *SelfRegulationEventCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *SelfRegulationEventCreate) SetNillableResolvedAt(v *time.Time) *SelfRegulationEventCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetResolvedBy sets the "resolved_by" field.
func (_c *SelfRegulationEventCreate) SetResolvedBy(v string) *SelfRegulationEventCreate {
	_c.mutation.SetResolvedBy(v)
	return _c
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_c *SelfRegulationEventCreate) SetNillableResolvedBy(v *string) *SelfRegulationEventCreate {
	if v != nil {
		_c.SetResolvedBy(*v)
	}
	return _c
}

// SetResolutionNotes sets the "resolution_notes" field.
func (_c *SelfRegulationEventCreate) SetResolutionNotes(v string) *SelfRegulationEventCreate {
	_c.mutation.SetResolutionNotes(v)
	return _c
}

// SetNillableResolutionNotes sets the "resolution_notes" field if the given value is not nil.
func (_c *SelfRegulationEventCreate) SetNillableResolutionNotes(v *string) *SelfRegulationEventCreate {
	if v != nil {
		_c.SetResolutionNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SelfRegulationEventCreate) SetID(v string) *SelfRegulationEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SelfRegulationEventCreate) SetNillableID(v *string) *SelfRegulationEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SelfRegulationEventMutation object of the builder.
func (_c *SelfRegulationEventCreate) Mutation() *SelfRegulationEventMutation {
	return _c.mutation
}

// Save creates the SelfRegulationEvent in the database.
func (_c *SelfRegulationEventCreate) Save(ctx context.Context) (*SelfRegulationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SelfRegulationEventCreate) SaveX(ctx context.Context) *SelfRegulationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SelfRegulationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SelfRegulationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SelfRegulationEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := selfregulationevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.AssistanceRequested(); !ok {
		v := selfregulationevent.DefaultAssistanceRequested
		_c.mutation.SetAssistanceRequested(v)
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		v := selfregulationevent.DefaultResolved
		_c.mutation.SetResolved(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := selfregulationevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SelfRegulationEventCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SelfRegulationEvent.created_at"`)}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "SelfRegulationEvent.child_id"`)}
	}
	if v, ok := _c.mutation.ChildID(); ok {
		if err := selfregulationevent.ChildIDValidator(v); err != nil {
			return &ValidationError{Name: "child_id", err: fmt.Errorf(`ent: validator failed for field "SelfRegulationEvent.child_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "SelfRegulationEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := selfregulationevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SelfRegulationEvent.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssistanceRequested(); !ok {
		return &ValidationError{Name: "assistance_requested", err: errors.New(`ent: missing required field "SelfRegulationEvent.assistance_requested"`)}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "SelfRegulationEvent.resolved"`)}
	}
	return nil
}

func (_c *SelfRegulationEventCreate) sqlSave(ctx context.Context) (*SelfRegulationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SelfRegulationEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SelfRegulationEventCreate) createSpec() (*SelfRegulationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SelfRegulationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(selfregulationevent.Table, sqlgraph.NewFieldSpec(selfregulationevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(selfregulationevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ChildID(); ok {
		_spec.SetField(selfregulationevent.FieldChildID, field.TypeString, value)
		_node.ChildID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(selfregulationevent.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Emotion(); ok {
		_spec.SetField(selfregulationevent.FieldEmotion, field.TypeString, value)
		_node.Emotion = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(selfregulationevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.StrategyUsed(); ok {
		_spec.SetField(selfregulationevent.FieldStrategyUsed, field.TypeString, value)
		_node.StrategyUsed = value
	}
	if value, ok := _c.mutation.AssistanceRequested(); ok {
		_spec.SetField(selfregulationevent.FieldAssistanceRequested, field.TypeBool, value)
		_node.AssistanceRequested = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(selfregulationevent.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(selfregulationevent.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(selfregulationevent.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.ResolvedBy(); ok {
		_spec.SetField(selfregulationevent.FieldResolvedBy, field.TypeString, value)
		_node.ResolvedBy = value
	}
	if value, ok := _c.mutation.ResolutionNotes(); ok {
		_spec.SetField(selfregulationevent.FieldResolutionNotes, field.TypeString, value)
		_node.ResolutionNotes = value
	}
	return _node, _spec
}

// SelfRegulationEventCreateBulk is the builder for creating many SelfRegulationEvent entities in bulk.
type SelfRegulationEventCreateBulk struct {
	config
	err      error
	builders []*SelfRegulationEventCreate
}

// Save creates the SelfRegulationEvent entities in the database.
func (_c *SelfRegulationEventCreateBulk) Save(ctx context.Context) ([]*SelfRegulationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SelfRegulationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SelfRegulationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SelfRegulationEventCreateBulk) SaveX(ctx context.Context) []*SelfRegulationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SelfRegulationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SelfRegulationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
