// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tora-app.io/tora/ent/predicate"
	"tora-app.io/tora/ent/selfregulationevent"
)

// SelfRegulationEventDelete is the builder for deleting a SelfRegulationEvent entity.
type SelfRegulationEventDelete struct {
	config
	hooks    []Hook
	mutation *SelfRegulationEventMutation
}

// Where appends a list predicates to the SelfRegulationEventDelete builder.
func (_d *SelfRegulationEventDelete) Where(ps ...predicate.SelfRegulationEvent) *SelfRegulationEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SelfRegulationEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SelfRegulationEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SelfRegulationEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(selfregulationevent.Table, sqlgraph.NewFieldSpec(selfregulationevent.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SelfRegulationEventDeleteOne is the builder for deleting a single SelfRegulationEvent entity.
type SelfRegulationEventDeleteOne struct {
	_d *SelfRegulationEventDelete
}

// Where appends a list predicates to the SelfRegulationEventDelete builder.
func (_d *SelfRegulationEventDeleteOne) Where(ps ...predicate.SelfRegulationEvent) *SelfRegulationEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SelfRegulationEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{selfregulationevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SelfRegulationEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
