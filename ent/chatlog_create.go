// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/chatsession"
	"github.com/moim-labs/moim/ent/user"
)

// ChatLogCreate is the builder for creating a ChatLog entity.
type ChatLogCreate struct {
	config
	mutation *ChatLogMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ChatLogCreate) SetUserID(v string) *ChatLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFriendID sets the "friend_id" field.
func (_c *ChatLogCreate) SetFriendID(v string) *ChatLogCreate {
	_c.mutation.SetFriendID(v)
	return _c
}

// SetNillableFriendID sets the "friend_id" field if the given value is not nil.
func (_c *ChatLogCreate) SetNillableFriendID(v *string) *ChatLogCreate {
	if v != nil {
		_c.SetFriendID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ChatLogCreate) SetSessionID(v string) *ChatLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ChatLogCreate) SetNillableSessionID(v *string) *ChatLogCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetChatSessionID sets the "chat_session_id" field.
func (_c *ChatLogCreate) SetChatSessionID(v string) *ChatLogCreate {
	_c.mutation.SetChatSessionID(v)
	return _c
}

// SetNillableChatSessionID sets the "chat_session_id" field if the given value is not nil.
func (_c *ChatLogCreate) SetNillableChatSessionID(v *string) *ChatLogCreate {
	if v != nil {
		_c.SetChatSessionID(*v)
	}
	return _c
}

// SetRequestText sets the "request_text" field.
func (_c *ChatLogCreate) SetRequestText(v string) *ChatLogCreate {
	_c.mutation.SetRequestText(v)
	return _c
}

// SetNillableRequestText sets the "request_text" field if the given value is not nil.
func (_c *ChatLogCreate) SetNillableRequestText(v *string) *ChatLogCreate {
	if v != nil {
		_c.SetRequestText(*v)
	}
	return _c
}

// SetResponseText sets the "response_text" field.
func (_c *ChatLogCreate) SetResponseText(v string) *ChatLogCreate {
	_c.mutation.SetResponseText(v)
	return _c
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_c *ChatLogCreate) SetNillableResponseText(v *string) *ChatLogCreate {
	if v != nil {
		_c.SetResponseText(*v)
	}
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *ChatLogCreate) SetMessageType(v chatlog.MessageType) *ChatLogCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ChatLogCreate) SetMetadata(v map[string]interface{}) *ChatLogCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatLogCreate) SetCreatedAt(v time.Time) *ChatLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatLogCreate) SetNillableCreatedAt(v *time.Time) *ChatLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatLogCreate) SetID(v string) *ChatLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ChatLogCreate) SetUser(v *User) *ChatLogCreate {
	return _c.SetUserID(v.ID)
}

// SetChatSession sets the "chat_session" edge to the ChatSession entity.
func (_c *ChatLogCreate) SetChatSession(v *ChatSession) *ChatLogCreate {
	return _c.SetChatSessionID(v.ID)
}

// Mutation returns the ChatLogMutation object of the builder.
func (_c *ChatLogCreate) Mutation() *ChatLogMutation {
	return _c.mutation
}

// Save creates the ChatLog in the database.
func (_c *ChatLogCreate) Save(ctx context.Context) (*ChatLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatLogCreate) SaveX(ctx context.Context) *ChatLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatLogCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ChatLog.user_id"`)}
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "ChatLog.message_type"`)}
	}
	if v, ok := _c.mutation.MessageType(); ok {
		if err := chatlog.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "ChatLog.message_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatLog.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "ChatLog.user"`)}
	}
	return nil
}

func (_c *ChatLogCreate) sqlSave(ctx context.Context) (*ChatLog, error) {
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
			return nil, fmt.Errorf("unexpected ChatLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatLogCreate) createSpec() (*ChatLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatlog.Table, sqlgraph.NewFieldSpec(chatlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FriendID(); ok {
		_spec.SetField(chatlog.FieldFriendID, field.TypeString, value)
		_node.FriendID = &value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(chatlog.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.RequestText(); ok {
		_spec.SetField(chatlog.FieldRequestText, field.TypeString, value)
		_node.RequestText = &value
	}
	if value, ok := _c.mutation.ResponseText(); ok {
		_spec.SetField(chatlog.FieldResponseText, field.TypeString, value)
		_node.ResponseText = &value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(chatlog.FieldMessageType, field.TypeEnum, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(chatlog.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatlog.UserTable,
			Columns: []string{chatlog.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatSessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatlog.ChatSessionTable,
			Columns: []string{chatlog.ChatSessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChatSessionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChatLogCreateBulk is the builder for creating many ChatLog entities in bulk.
type ChatLogCreateBulk struct {
	config
	err      error
	builders []*ChatLogCreate
}

// Save creates the ChatLog entities in the database.
func (_c *ChatLogCreateBulk) Save(ctx context.Context) ([]*ChatLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatLogMutation)
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
func (_c *ChatLogCreateBulk) SaveX(ctx context.Context) []*ChatLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
