// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tora-app.io/tora/ent/predicate"
	"tora-app.io/tora/ent/whatsappsession"
)

// WhatsAppSessionDelete is the builder for deleting a WhatsAppSession entity.
type WhatsAppSessionDelete struct {
	config
	hooks    []Hook
	mutation *WhatsAppSessionMutation
}

// Where appends a list predicates to the WhatsAppSessionDelete builder.
func (_d *WhatsAppSessionDelete) Where(ps ...predicate.WhatsAppSession) *WhatsAppSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WhatsAppSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WhatsAppSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WhatsAppSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(whatsappsession.Table, sqlgraph.NewFieldSpec(whatsappsession.FieldID, field.TypeString))
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

// WhatsAppSessionDeleteOne is the builder for deleting a single WhatsAppSession entity.
type WhatsAppSessionDeleteOne struct {
	_d *WhatsAppSessionDelete
}

// Where appends a list predicates to the WhatsAppSessionDelete builder.
func (_d *WhatsAppSessionDeleteOne) Where(ps ...predicate.WhatsAppSession) *WhatsAppSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WhatsAppSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{whatsappsession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WhatsAppSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
