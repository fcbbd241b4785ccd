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
	"tora-app.io/tora/ent/emergencycontact"
	"tora-app.io/tora/ent/predicate"
)

// EmergencyContactUpdate is the builder for updating EmergencyContact entities.
type EmergencyContactUpdate struct {
	config
	hooks    []Hook
	mutation *EmergencyContactMutation
}

// Where appends a list predicates to the EmergencyContactUpdate builder.
func (_u *EmergencyContactUpdate) Where(ps ...predicate.EmergencyContact) *EmergencyContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmergencyContactUpdate) SetUpdatedAt(v time.Time) *EmergencyContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *EmergencyContactUpdate) SetName(v string) *EmergencyContactUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EmergencyContactUpdate) SetNillableName(v *string) *EmergencyContactUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *EmergencyContactUpdate) SetPhone(v string) *EmergencyContactUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *EmergencyContactUpdate) SetNillablePhone(v *string) *EmergencyContactUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *EmergencyContactUpdate) SetEmail(v string) *EmergencyContactUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *EmergencyContactUpdate) SetNillableEmail(v *string) *EmergencyContactUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *EmergencyContactUpdate) ClearEmail() *EmergencyContactUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *EmergencyContactUpdate) SetRelationship(v string) *EmergencyContactUpdate {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *EmergencyContactUpdate) SetNillableRelationship(v *string) *EmergencyContactUpdate {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// ClearRelationship clears the value of the "relationship" field.
func (_u *EmergencyContactUpdate) ClearRelationship() *EmergencyContactUpdate {
	_u.mutation.ClearRelationship()
	return _u
}

// SetActive sets the "active" field.
func (_u *EmergencyContactUpdate) SetActive(v bool) *EmergencyContactUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *EmergencyContactUpdate) SetNillableActive(v *bool) *EmergencyContactUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetReceiveAlerts sets the "receive_alerts" field.
func (_u *EmergencyContactUpdate) SetReceiveAlerts(v bool) *EmergencyContactUpdate {
	_u.mutation.SetReceiveAlerts(v)
	return _u
}

// SetNillableReceiveAlerts sets the "receive_alerts" field if the given value is not nil.
func (_u *EmergencyContactUpdate) SetNillableReceiveAlerts(v *bool) *EmergencyContactUpdate {
	if v != nil {
		_u.SetReceiveAlerts(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *EmergencyContactUpdate) SetPriority(v int) *EmergencyContactUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *EmergencyContactUpdate) SetNillablePriority(v *int) *EmergencyContactUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *EmergencyContactUpdate) AddPriority(v int) *EmergencyContactUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// Mutation returns the EmergencyContactMutation object of the builder.
func (_u *EmergencyContactUpdate) Mutation() *EmergencyContactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmergencyContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmergencyContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmergencyContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmergencyContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmergencyContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emergencycontact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmergencyContactUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := emergencycontact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := emergencycontact.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := emergencycontact.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Relationship(); ok {
		if err := emergencycontact.RelationshipValidator(v); err != nil {
			return &ValidationError{Name: "relationship", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.relationship": %w`, err)}
		}
	}
	return nil
}

func (_u *EmergencyContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emergencycontact.Table, emergencycontact.Columns, sqlgraph.NewFieldSpec(emergencycontact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emergencycontact.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(emergencycontact.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(emergencycontact.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(emergencycontact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(emergencycontact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(emergencycontact.FieldRelationship, field.TypeString, value)
	}
	if _u.mutation.RelationshipCleared() {
		_spec.ClearField(emergencycontact.FieldRelationship, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(emergencycontact.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReceiveAlerts(); ok {
		_spec.SetField(emergencycontact.FieldReceiveAlerts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(emergencycontact.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(emergencycontact.FieldPriority, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emergencycontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmergencyContactUpdateOne is the builder for updating a single EmergencyContact entity.
type EmergencyContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmergencyContactMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmergencyContactUpdateOne) SetUpdatedAt(v time.Time) *EmergencyContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *EmergencyContactUpdateOne) SetName(v string) *EmergencyContactUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EmergencyContactUpdateOne) SetNillableName(v *string) *EmergencyContactUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *EmergencyContactUpdateOne) SetPhone(v string) *EmergencyContactUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *EmergencyContactUpdateOne) SetNillablePhone(v *string) *EmergencyContactUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *EmergencyContactUpdateOne) SetEmail(v string) *EmergencyContactUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *EmergencyContactUpdateOne) SetNillableEmail(v *string) *EmergencyContactUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *EmergencyContactUpdateOne) ClearEmail() *EmergencyContactUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *EmergencyContactUpdateOne) SetRelationship(v string) *EmergencyContactUpdateOne {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *EmergencyContactUpdateOne) SetNillableRelationship(v *string) *EmergencyContactUpdateOne {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// ClearRelationship clears the value of the "relationship" field.
func (_u *EmergencyContactUpdateOne) ClearRelationship() *EmergencyContactUpdateOne {
	_u.mutation.ClearRelationship()
	return _u
}

// SetActive sets the "active" field.
func (_u *EmergencyContactUpdateOne) SetActive(v bool) *EmergencyContactUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *EmergencyContactUpdateOne) SetNillableActive(v *bool) *EmergencyContactUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetReceiveAlerts sets the "receive_alerts" field.
func (_u *EmergencyContactUpdateOne) SetReceiveAlerts(v bool) *EmergencyContactUpdateOne {
	_u.mutation.SetReceiveAlerts(v)
	return _u
}

// SetNillableReceiveAlerts sets the "receive_alerts" field if the given value is not nil.
func (_u *EmergencyContactUpdateOne) SetNillableReceiveAlerts(v *bool) *EmergencyContactUpdateOne {
	if v != nil {
		_u.SetReceiveAlerts(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *EmergencyContactUpdateOne) SetPriority(v int) *EmergencyContactUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *EmergencyContactUpdateOne) SetNillablePriority(v *int) *EmergencyContactUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *EmergencyContactUpdateOne) AddPriority(v int) *EmergencyContactUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// Mutation returns the EmergencyContactMutation object of the builder.
func (_u *EmergencyContactUpdateOne) Mutation() *EmergencyContactMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmergencyContactUpdate builder.
func (_u *EmergencyContactUpdateOne) Where(ps ...predicate.EmergencyContact) *EmergencyContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmergencyContactUpdateOne) Select(field string, fields ...string) *EmergencyContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmergencyContact entity.
func (_u *EmergencyContactUpdateOne) Save(ctx context.Context) (*EmergencyContact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmergencyContactUpdateOne) SaveX(ctx context.Context) *EmergencyContact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmergencyContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmergencyContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmergencyContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emergencycontact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmergencyContactUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := emergencycontact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := emergencycontact.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := emergencycontact.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Relationship(); ok {
		if err := emergencycontact.RelationshipValidator(v); err != nil {
			return &ValidationError{Name: "relationship", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.relationship": %w`, err)}
		}
	}
	return nil
}

func (_u *EmergencyContactUpdateOne) sqlSave(ctx context.Context) (_node *EmergencyContact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emergencycontact.Table, emergencycontact.Columns, sqlgraph.NewFieldSpec(emergencycontact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmergencyContact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emergencycontact.FieldID)
		for _, f := range fields {
			if !emergencycontact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emergencycontact.FieldID {
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
		_spec.SetField(emergencycontact.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(emergencycontact.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(emergencycontact.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(emergencycontact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(emergencycontact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(emergencycontact.FieldRelationship, field.TypeString, value)
	}
	if _u.mutation.RelationshipCleared() {
		_spec.ClearField(emergencycontact.FieldRelationship, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(emergencycontact.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReceiveAlerts(); ok {
		_spec.SetField(emergencycontact.FieldReceiveAlerts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(emergencycontact.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(emergencycontact.FieldPriority, field.TypeInt, value)
	}
	_node = &EmergencyContact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emergencycontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
