// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
)

// NegotiationMessageCreate is the builder for creating a NegotiationMessage entity.
type NegotiationMessageCreate struct {
	config
	mutation *NegotiationMessageMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *NegotiationMessageCreate) SetSessionID(v string) *NegotiationMessageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSenderID sets the "sender_id" field.
func (_c *NegotiationMessageCreate) SetSenderID(v string) *NegotiationMessageCreate {
	_c.mutation.SetSenderID(v)
	return _c
}

// SetReceiverID sets the "receiver_id" field.
func (_c *NegotiationMessageCreate) SetReceiverID(v string) *NegotiationMessageCreate {
	_c.mutation.SetReceiverID(v)
	return _c
}

// SetNillableReceiverID sets the "receiver_id" field if the given value is not nil.
func (_c *NegotiationMessageCreate) SetNillableReceiverID(v *string) *NegotiationMessageCreate {
	if v != nil {
		_c.SetReceiverID(*v)
	}
	return _c
}

// SetSenderName sets the "sender_name" field.
func (_c *NegotiationMessageCreate) SetSenderName(v string) *NegotiationMessageCreate {
	_c.mutation.SetSenderName(v)
	return _c
}

// SetType sets the "type" field.
func (_c *NegotiationMessageCreate) SetType(v negotiationmessage.Type) *NegotiationMessageCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetRound sets the "round" field.
func (_c *NegotiationMessageCreate) SetRound(v int) *NegotiationMessageCreate {
	_c.mutation.SetRound(v)
	return _c
}

// SetProse sets the "prose" field.
func (_c *NegotiationMessageCreate) SetProse(v string) *NegotiationMessageCreate {
	_c.mutation.SetProse(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *NegotiationMessageCreate) SetPayload(v map[string]interface{}) *NegotiationMessageCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NegotiationMessageCreate) SetCreatedAt(v time.Time) *NegotiationMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NegotiationMessageCreate) SetNillableCreatedAt(v *time.Time) *NegotiationMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NegotiationMessageCreate) SetID(v string) *NegotiationMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the NegotiationSession entity.
func (_c *NegotiationMessageCreate) SetSession(v *NegotiationSession) *NegotiationMessageCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the NegotiationMessageMutation object of the builder.
func (_c *NegotiationMessageCreate) Mutation() *NegotiationMessageMutation {
	return _c.mutation
}

// Save creates the NegotiationMessage in the database.
func (_c *NegotiationMessageCreate) Save(ctx context.Context) (*NegotiationMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NegotiationMessageCreate) SaveX(ctx context.Context) *NegotiationMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NegotiationMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NegotiationMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NegotiationMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := negotiationmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NegotiationMessageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "NegotiationMessage.session_id"`)}
	}
	if _, ok := _c.mutation.SenderID(); !ok {
		return &ValidationError{Name: "sender_id", err: errors.New(`ent: missing required field "NegotiationMessage.sender_id"`)}
	}
	if _, ok := _c.mutation.SenderName(); !ok {
		return &ValidationError{Name: "sender_name", err: errors.New(`ent: missing required field "NegotiationMessage.sender_name"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "NegotiationMessage.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := negotiationmessage.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "NegotiationMessage.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Round(); !ok {
		return &ValidationError{Name: "round", err: errors.New(`ent: missing required field "NegotiationMessage.round"`)}
	}
	if _, ok := _c.mutation.Prose(); !ok {
		return &ValidationError{Name: "prose", err: errors.New(`ent: missing required field "NegotiationMessage.prose"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NegotiationMessage.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "NegotiationMessage.session"`)}
	}
	return nil
}

func (_c *NegotiationMessageCreate) sqlSave(ctx context.Context) (*NegotiationMessage, error) {
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
			return nil, fmt.Errorf("unexpected NegotiationMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NegotiationMessageCreate) createSpec() (*NegotiationMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &NegotiationMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(negotiationmessage.Table, sqlgraph.NewFieldSpec(negotiationmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SenderID(); ok {
		_spec.SetField(negotiationmessage.FieldSenderID, field.TypeString, value)
		_node.SenderID = value
	}
	if value, ok := _c.mutation.ReceiverID(); ok {
		_spec.SetField(negotiationmessage.FieldReceiverID, field.TypeString, value)
		_node.ReceiverID = &value
	}
	if value, ok := _c.mutation.SenderName(); ok {
		_spec.SetField(negotiationmessage.FieldSenderName, field.TypeString, value)
		_node.SenderName = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(negotiationmessage.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Round(); ok {
		_spec.SetField(negotiationmessage.FieldRound, field.TypeInt, value)
		_node.Round = value
	}
	if value, ok := _c.mutation.Prose(); ok {
		_spec.SetField(negotiationmessage.FieldProse, field.TypeString, value)
		_node.Prose = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(negotiationmessage.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(negotiationmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   negotiationmessage.SessionTable,
			Columns: []string{negotiationmessage.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NegotiationMessageCreateBulk is the builder for creating many NegotiationMessage entities in bulk.
type NegotiationMessageCreateBulk struct {
	config
	err      error
	builders []*NegotiationMessageCreate
}

// Save creates the NegotiationMessage entities in the database.
func (_c *NegotiationMessageCreateBulk) Save(ctx context.Context) ([]*NegotiationMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NegotiationMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NegotiationMessageMutation)
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
func (_c *NegotiationMessageCreateBulk) SaveX(ctx context.Context) []*NegotiationMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NegotiationMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NegotiationMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
