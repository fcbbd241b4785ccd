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
	"tora-app.io/tora/ent/devicetoken"
	"tora-app.io/tora/ent/predicate"
)

// DeviceTokenUpdate is the builder for updating DeviceToken entities.
type DeviceTokenUpdate struct {
	config
	hooks    []Hook
	mutation *DeviceTokenMutation
}

// Where appends a list predicates to the DeviceTokenUpdate builder.
func (_u *DeviceTokenUpdate) Where(ps ...predicate.DeviceToken) *DeviceTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeviceTokenUpdate) SetUpdatedAt(v time.Time) *DeviceTokenUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetToken sets the "token" field.
func (_u *DeviceTokenUpdate) SetToken(v string) *DeviceTokenUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *DeviceTokenUpdate) SetNillableToken(v *string) *DeviceTokenUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DeviceTokenUpdate) SetUserID(v string) *DeviceTokenUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DeviceTokenUpdate) SetNillableUserID(v *string) *DeviceTokenUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDeviceType sets the "device_type" field.
func (_u *DeviceTokenUpdate) SetDeviceType(v devicetoken.DeviceType) *DeviceTokenUpdate {
	_u.mutation.SetDeviceType(v)
	return _u
}

// SetNillableDeviceType sets the "device_type" field if the given value is not nil.
func (_u *DeviceTokenUpdate) SetNillableDeviceType(v *devicetoken.DeviceType) *DeviceTokenUpdate {
	if v != nil {
		_u.SetDeviceType(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *DeviceTokenUpdate) SetActive(v bool) *DeviceTokenUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DeviceTokenUpdate) SetNillableActive(v *bool) *DeviceTokenUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetLastUsed sets the "last_used" field.
func (_u *DeviceTokenUpdate) SetLastUsed(v time.Time) *DeviceTokenUpdate {
	_u.mutation.SetLastUsed(v)
	return _u
}

// SetNillableLastUsed sets the "last_used" field if the given value is not nil.
func (_u *DeviceTokenUpdate) SetNillableLastUsed(v *time.Time) *DeviceTokenUpdate {
	if v != nil {
		_u.SetLastUsed(*v)
	}
	return _u
}

// Mutation returns the DeviceTokenMutation object of the builder.
func (_u *DeviceTokenUpdate) Mutation() *DeviceTokenMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeviceTokenUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeviceTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeviceTokenUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := devicetoken.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceTokenUpdate) check() error {
	if v, ok := _u.mutation.Token(); ok {
		if err := devicetoken.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "DeviceToken.token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := devicetoken.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DeviceToken.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeviceType(); ok {
		if err := devicetoken.DeviceTypeValidator(v); err != nil {
			return &ValidationError{Name: "device_type", err: fmt.Errorf(`ent: validator failed for field "DeviceToken.device_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DeviceTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(devicetoken.Table, devicetoken.Columns, sqlgraph.NewFieldSpec(devicetoken.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(devicetoken.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(devicetoken.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(devicetoken.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceType(); ok {
		_spec.SetField(devicetoken.FieldDeviceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(devicetoken.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUsed(); ok {
		_spec.SetField(devicetoken.FieldLastUsed, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{devicetoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeviceTokenUpdateOne is the builder for updating a single DeviceToken entity.
type DeviceTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeviceTokenMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeviceTokenUpdateOne) SetUpdatedAt(v time.Time) *DeviceTokenUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetToken sets the "token" field.
func (_u *DeviceTokenUpdateOne) SetToken(v string) *DeviceTokenUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *DeviceTokenUpdateOne) SetNillableToken(v *string) *DeviceTokenUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DeviceTokenUpdateOne) SetUserID(v string) *DeviceTokenUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DeviceTokenUpdateOne) SetNillableUserID(v *string) *DeviceTokenUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDeviceType sets the "device_type" field.
func (_u *DeviceTokenUpdateOne) SetDeviceType(v devicetoken.DeviceType) *DeviceTokenUpdateOne {
	_u.mutation.SetDeviceType(v)
	return _u
}

// SetNillableDeviceType sets the "device_type" field if the given value is not nil.
func (_u *DeviceTokenUpdateOne) SetNillableDeviceType(v *devicetoken.DeviceType) *DeviceTokenUpdateOne {
	if v != nil {
		_u.SetDeviceType(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *DeviceTokenUpdateOne) SetActive(v bool) *DeviceTokenUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DeviceTokenUpdateOne) SetNillableActive(v *bool) *DeviceTokenUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetLastUsed sets the "last_used" field.
func (_u *DeviceTokenUpdateOne) SetLastUsed(v time.Time) *DeviceTokenUpdateOne {
	_u.mutation.SetLastUsed(v)
	return _u
}

// SetNillableLastUsed sets the "last_used" field if the given value is not nil.
func (_u *DeviceTokenUpdateOne) SetNillableLastUsed(v *time.Time) *DeviceTokenUpdateOne {
	if v != nil {
		_u.SetLastUsed(*v)
	}
	return _u
}

// Mutation returns the DeviceTokenMutation object of the builder.
func (_u *DeviceTokenUpdateOne) Mutation() *DeviceTokenMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeviceTokenUpdate builder.
func (_u *DeviceTokenUpdateOne) Where(ps ...predicate.DeviceToken) *DeviceTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeviceTokenUpdateOne) Select(field string, fields ...string) *DeviceTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeviceToken entity.
func (_u *DeviceTokenUpdateOne) Save(ctx context.Context) (*DeviceToken, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceTokenUpdateOne) SaveX(ctx context.Context) *DeviceToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeviceTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeviceTokenUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := devicetoken.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceTokenUpdateOne) check() error {
	if v, ok := _u.mutation.Token(); ok {
		if err := devicetoken.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "DeviceToken.token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := devicetoken.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DeviceToken.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeviceType(); ok {
		if err := devicetoken.DeviceTypeValidator(v); err != nil {
			return &ValidationError{Name: "device_type", err: fmt.Errorf(`ent: validator failed for field "DeviceToken.device_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DeviceTokenUpdateOne) sqlSave(ctx context.Context) (_node *DeviceToken, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(devicetoken.Table, devicetoken.Columns, sqlgraph.NewFieldSpec(devicetoken.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeviceToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, devicetoken.FieldID)
		for _, f := range fields {
			if !devicetoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != devicetoken.FieldID {
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
		_spec.SetField(devicetoken.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(devicetoken.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(devicetoken.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceType(); ok {
		_spec.SetField(devicetoken.FieldDeviceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(devicetoken.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUsed(); ok {
		_spec.SetField(devicetoken.FieldLastUsed, field.TypeTime, value)
	}
	_node = &DeviceToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{devicetoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
