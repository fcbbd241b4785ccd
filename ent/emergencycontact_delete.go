// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tora-app.io/tora/ent/emergencycontact"
	"tora-app.io/tora/ent/predicate"
)

// EmergencyContactDelete is the builder for deleting a EmergencyContact entity.
type EmergencyContactDelete struct {
	config
	hooks    []Hook
	mutation *EmergencyContactMutation
}

// Where appends a list predicates to the EmergencyContactDelete builder.
func (_d *EmergencyContactDelete) Where(ps ...predicate.EmergencyContact) *EmergencyContactDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EmergencyContactDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EmergencyContactDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EmergencyContactDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(emergencycontact.Table, sqlgraph.NewFieldSpec(emergencycontact.FieldID, field.TypeString))
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

// EmergencyContactDeleteOne is the builder for deleting a single EmergencyContact entity.
type EmergencyContactDeleteOne struct {
	_d *EmergencyContactDelete
}

// Where appends a list predicates to the EmergencyContactDelete builder.
func (_d *EmergencyContactDeleteOne) Where(ps ...predicate.EmergencyContact) *EmergencyContactDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EmergencyContactDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{emergencycontact.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EmergencyContactDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
