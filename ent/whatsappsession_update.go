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
	"tora-app.io/tora/ent/whatsappsession"
)

// WhatsAppSessionUpdate is the builder for updating WhatsAppSession entities.
type WhatsAppSessionUpdate struct {
	config
	hooks    []Hook
	mutation *WhatsAppSessionMutation
}

// Where appends a list predicates to the WhatsAppSessionUpdate builder.
func (_u *WhatsAppSessionUpdate) Where(ps ...predicate.WhatsAppSession) *WhatsAppSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WhatsAppSessionUpdate) SetUpdatedAt(v time.Time) *WhatsAppSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastQrCode sets the "last_qr_code" field.
func (_u *WhatsAppSessionUpdate) SetLastQrCode(v string) *WhatsAppSessionUpdate {
	_u.mutation.SetLastQrCode(v)
	return _u
}

// SetNillableLastQrCode sets the "last_qr_code" field if the given value is not nil.
func (_u *WhatsAppSessionUpdate) SetNillableLastQrCode(v *string) *WhatsAppSessionUpdate {
	if v != nil {
		_u.SetLastQrCode(*v)
	}
	return _u
}

// ClearLastQrCode clears the value of the "last_qr_code" field.
func (_u *WhatsAppSessionUpdate) ClearLastQrCode() *WhatsAppSessionUpdate {
	_u.mutation.ClearLastQrCode()
	return _u
}

// SetAuthenticated sets the "authenticated" field.
func (_u *WhatsAppSessionUpdate) SetAuthenticated(v bool) *WhatsAppSessionUpdate {
	_u.mutation.SetAuthenticated(v)
	return _u
}

// SetNillableAuthenticated sets the "authenticated" field if the given value is not nil.
func (_u *WhatsAppSessionUpdate) SetNillableAuthenticated(v *bool) *WhatsAppSessionUpdate {
	if v != nil {
		_u.SetAuthenticated(*v)
	}
	return _u
}

// Mutation returns the WhatsAppSessionMutation object of the builder.
func (_u *WhatsAppSessionUpdate) Mutation() *WhatsAppSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WhatsAppSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WhatsAppSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WhatsAppSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WhatsAppSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WhatsAppSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := whatsappsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WhatsAppSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(whatsappsession.Table, whatsappsession.Columns, sqlgraph.NewFieldSpec(whatsappsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(whatsappsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastQrCode(); ok {
		_spec.SetField(whatsappsession.FieldLastQrCode, field.TypeString, value)
	}
	if _u.mutation.LastQrCodeCleared() {
		_spec.ClearField(whatsappsession.FieldLastQrCode, field.TypeString)
	}
	if value, ok := _u.mutation.Authenticated(); ok {
		_spec.SetField(whatsappsession.FieldAuthenticated, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{whatsappsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WhatsAppSessionUpdateOne is the builder for updating a single WhatsAppSession entity.
type WhatsAppSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WhatsAppSessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WhatsAppSessionUpdateOne) SetUpdatedAt(v time.Time) *WhatsAppSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastQrCode sets the "last_qr_code" field.
func (_u *WhatsAppSessionUpdateOne) SetLastQrCode(v string) *WhatsAppSessionUpdateOne {
	_u.mutation.SetLastQrCode(v)
	return _u
}

// SetNillableLastQrCode sets the "last_qr_code" field if the given value is not nil.
func (_u *WhatsAppSessionUpdateOne) SetNillableLastQrCode(v *string) *WhatsAppSessionUpdateOne {
	if v != nil {
		_u.SetLastQrCode(*v)
	}
	return _u
}

// ClearLastQrCode clears the value of the "last_qr_code" field.
func (_u *WhatsAppSessionUpdateOne) ClearLastQrCode() *WhatsAppSessionUpdateOne {
	_u.mutation.ClearLastQrCode()
	return _u
}

// SetAuthenticated sets the "authenticated" field.
func (_u *WhatsAppSessionUpdateOne) SetAuthenticated(v bool) *WhatsAppSessionUpdateOne {
	_u.mutation.SetAuthenticated(v)
	return _u
}

// SetNillableAuthenticated sets the "authenticated" field if the given value is not nil.
func (_u *WhatsAppSessionUpdateOne) SetNillableAuthenticated(v *bool) *WhatsAppSessionUpdateOne {
	if v != nil {
		_u.SetAuthenticated(*v)
	}
	return _u
}

// Mutation returns the WhatsAppSessionMutation object of the builder.
func (_u *WhatsAppSessionUpdateOne) Mutation() *WhatsAppSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the WhatsAppSessionUpdate builder.
func (_u *WhatsAppSessionUpdateOne) Where(ps ...predicate.WhatsAppSession) *WhatsAppSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WhatsAppSessionUpdateOne) Select(field string, fields ...string) *WhatsAppSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WhatsAppSession entity.
func (_u *WhatsAppSessionUpdateOne) Save(ctx context.Context) (*WhatsAppSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WhatsAppSessionUpdateOne) SaveX(ctx context.Context) *WhatsAppSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WhatsAppSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WhatsAppSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WhatsAppSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := whatsappsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WhatsAppSessionUpdateOne) sqlSave(ctx context.Context) (_node *WhatsAppSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(whatsappsession.Table, whatsappsession.Columns, sqlgraph.NewFieldSpec(whatsappsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WhatsAppSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, whatsappsession.FieldID)
		for _, f := range fields {
			if !whatsappsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != whatsappsession.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(whatsappsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastQrCode(); ok {
		_spec.SetField(whatsappsession.FieldLastQrCode, field.TypeString, value)
	}
	if _u.mutation.LastQrCodeCleared() {
		_spec.ClearField(whatsappsession.FieldLastQrCode, field.TypeString)
	}
	if value, ok := _u.mutation.Authenticated(); ok {
		_spec.SetField(whatsappsession.FieldAuthenticated, field.TypeBool, value)
	}
	_node = &WhatsAppSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{whatsappsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
