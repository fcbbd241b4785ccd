// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tora-app.io/tora/ent/whatsappsession"
)

// WhatsAppSessionCreate is the builder for creating a WhatsAppSession entity.
type WhatsAppSessionCreate struct {
	config
	mutation *WhatsAppSessionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *WhatsAppSessionCreate) SetCreatedAt(v time.Time) *WhatsAppSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WhatsAppSessionCreate) SetNillableCreatedAt(v *time.Time) *WhatsAppSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WhatsAppSessionCreate) SetUpdatedAt(v time.Time) *WhatsAppSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WhatsAppSessionCreate) SetNillableUpdatedAt(v *time.Time) *WhatsAppSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLastQrCode sets the "last_qr_code" field.
func (_c *WhatsAppSessionCreate) SetLastQrCode(v string) *WhatsAppSessionCreate {
	_c.mutation.SetLastQrCode(v)
	return _c
}

// SetNillableLastQrCode sets the "last_qr_code" field if the given value is not nil.
func (_c *WhatsAppSessionCreate) SetNillableLastQrCode(v *string) *WhatsAppSessionCreate {
	if v != nil {
		_c.SetLastQrCode(*v)
	}
	return _c
}

// SetAuthenticated sets the "authenticated" field.
func (_c *WhatsAppSessionCreate) SetAuthenticated(v bool) *WhatsAppSessionCreate {
	_c.mutation.SetAuthenticated(v)
	return _c
}

// SetNillableAuthenticated sets the "authenticated" field if the given value is not nil.
func (_c *WhatsAppSessionCreate) SetNillableAuthenticated(v *bool) *WhatsAppSessionCreate {
	if v != nil {
		_c.SetAuthenticated(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WhatsAppSessionCreate) SetID(v string) *WhatsAppSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WhatsAppSessionMutation object of the builder.
func (_c *WhatsAppSessionCreate) Mutation() *WhatsAppSessionMutation {
	return _c.mutation
}

// Save creates the WhatsAppSession in the database.
func (_c *WhatsAppSessionCreate) Save(ctx context.Context) (*WhatsAppSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WhatsAppSessionCreate) SaveX(ctx context.Context) *WhatsAppSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WhatsAppSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WhatsAppSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WhatsAppSessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := whatsappsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := whatsappsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Authenticated(); !ok {
		v := whatsappsession.DefaultAuthenticated
		_c.mutation.SetAuthenticated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WhatsAppSessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WhatsAppSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WhatsAppSession.updated_at"`)}
	}
	if _, ok := _c.mutation.Authenticated(); !ok {
		return &ValidationError{Name: "authenticated", err: errors.New(`ent: missing required field "WhatsAppSession.authenticated"`)}
	}
	return nil
}

func (_c *WhatsAppSessionCreate) sqlSave(ctx context.Context) (*WhatsAppSession, error) {
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
			return nil, fmt.Errorf("unexpected WhatsAppSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WhatsAppSessionCreate) createSpec() (*WhatsAppSession, *sqlgraph.CreateSpec) {
	var (
		_node = &WhatsAppSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(whatsappsession.Table, sqlgraph.NewFieldSpec(whatsappsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(whatsappsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(whatsappsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.LastQrCode(); ok {
		_spec.SetField(whatsappsession.FieldLastQrCode, field.TypeString, value)
		_node.LastQrCode = value
	}
	if value, ok := _c.mutation.Authenticated(); ok {
		_spec.SetField(whatsappsession.FieldAuthenticated, field.TypeBool, value)
		_node.Authenticated = value
	}
	return _node, _spec
}

// WhatsAppSessionCreateBulk is the builder for creating many WhatsAppSession entities in bulk.
type WhatsAppSessionCreateBulk struct {
	config
	err      error
	builders []*WhatsAppSessionCreate
}

// Save creates the WhatsAppSession entities in the database.
func (_c *WhatsAppSessionCreateBulk) Save(ctx context.Context) ([]*WhatsAppSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WhatsAppSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WhatsAppSessionMutation)
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
func (_c *WhatsAppSessionCreateBulk) SaveX(ctx context.Context) []*WhatsAppSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WhatsAppSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WhatsAppSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
