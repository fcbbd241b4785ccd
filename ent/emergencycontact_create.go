// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tora-app.io/tora/ent/emergencycontact"
)

// EmergencyContactCreate is the builder for creating a EmergencyContact entity.
type EmergencyContactCreate struct {
	config
	mutation *EmergencyContactMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmergencyContactCreate) SetCreatedAt(v time.Time) *EmergencyContactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillableCreatedAt(v *time.Time) *EmergencyContactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmergencyContactCreate) SetUpdatedAt(v time.Time) *EmergencyContactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillableUpdatedAt(v *time.Time) *EmergencyContactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *EmergencyContactCreate) SetParentID(v string) *EmergencyContactCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *EmergencyContactCreate) SetName(v string) *EmergencyContactCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *EmergencyContactCreate) SetPhone(v string) *EmergencyContactCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *EmergencyContactCreate) SetEmail(v string) *EmergencyContactCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillableEmail(v *string) *EmergencyContactCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetRelationship sets the "relationship" field.
func (_c *EmergencyContactCreate) SetRelationship(v string) *EmergencyContactCreate {
	_c.mutation.SetRelationship(v)
	return _c
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillableRelationship(v *string) *EmergencyContactCreate {
	if v != nil {
		_c.SetRelationship(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *EmergencyContactCreate) SetActive(v bool) *EmergencyContactCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillableActive(v *bool) *EmergencyContactCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetReceiveAlerts sets the "receive_alerts" field.
func (_c *EmergencyContactCreate) SetReceiveAlerts(v bool) *EmergencyContactCreate {
	_c.mutation.SetReceiveAlerts(v)
	return _c
}

// SetNillableReceiveAlerts sets the "receive_alerts" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillableReceiveAlerts(v *bool) *EmergencyContactCreate {
	if v != nil {
		_c.SetReceiveAlerts(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *EmergencyContactCreate) SetPriority(v int) *EmergencyContactCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillablePriority(v *int) *EmergencyContactCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmergencyContactCreate) SetID(v string) *EmergencyContactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillableID(v *string) *EmergencyContactCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EmergencyContactMutation object of the builder.
func (_c *EmergencyContactCreate) Mutation() *EmergencyContactMutation {
	return _c.mutation
}

// Save creates the EmergencyContact in the database.
func (_c *EmergencyContactCreate) Save(ctx context.Context) (*EmergencyContact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmergencyContactCreate) SaveX(ctx context.Context) *EmergencyContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmergencyContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmergencyContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmergencyContactCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emergencycontact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := emergencycontact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := emergencycontact.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.ReceiveAlerts(); !ok {
		v := emergencycontact.DefaultReceiveAlerts
		_c.mutation.SetReceiveAlerts(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := emergencycontact.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := emergencycontact.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmergencyContactCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmergencyContact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EmergencyContact.updated_at"`)}
	}
	if _, ok := _c.mutation.ParentID(); !ok {
		return &ValidationError{Name: "parent_id", err: errors.New(`ent: missing required field "EmergencyContact.parent_id"`)}
	}
	if v, ok := _c.mutation.ParentID(); ok {
		if err := emergencycontact.ParentIDValidator(v); err != nil {
			return &ValidationError{Name: "parent_id", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.parent_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "EmergencyContact.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := emergencycontact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "EmergencyContact.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := emergencycontact.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := emergencycontact.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Relationship(); ok {
		if err := emergencycontact.RelationshipValidator(v); err != nil {
			return &ValidationError{Name: "relationship", err: fmt.Errorf(`ent: validator failed for field "EmergencyContact.relationship": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "EmergencyContact.active"`)}
	}
	if _, ok := _c.mutation.ReceiveAlerts(); !ok {
		return &ValidationError{Name: "receive_alerts", err: errors.New(`ent: missing required field "EmergencyContact.receive_alerts"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "EmergencyContact.priority"`)}
	}
	return nil
}

func (_c *EmergencyContactCreate) sqlSave(ctx context.Context) (*EmergencyContact, error) {
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
			return nil, fmt.Errorf("unexpected EmergencyContact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EmergencyContactCreate) createSpec() (*EmergencyContact, *sqlgraph.CreateSpec) {
	var (
		_node = &EmergencyContact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emergencycontact.Table, sqlgraph.NewFieldSpec(emergencycontact.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emergencycontact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(emergencycontact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(emergencycontact.FieldParentID, field.TypeString, value)
		_node.ParentID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(emergencycontact.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(emergencycontact.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(emergencycontact.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Relationship(); ok {
		_spec.SetField(emergencycontact.FieldRelationship, field.TypeString, value)
		_node.Relationship = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(emergencycontact.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.ReceiveAlerts(); ok {
		_spec.SetField(emergencycontact.FieldReceiveAlerts, field.TypeBool, value)
		_node.ReceiveAlerts = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(emergencycontact.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	return _node, _spec
}

// EmergencyContactCreateBulk is the builder for creating many EmergencyContact entities in bulk.
type EmergencyContactCreateBulk struct {
	config
	err      error
	builders []*EmergencyContactCreate
}

// Save creates the EmergencyContact entities in the database.
func (_c *EmergencyContactCreateBulk) Save(ctx context.Context) ([]*EmergencyContact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmergencyContact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmergencyContactMutation)
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
func (_c *EmergencyContactCreateBulk) SaveX(ctx context.Context) []*EmergencyContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmergencyContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmergencyContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
