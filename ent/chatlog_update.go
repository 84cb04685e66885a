// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/chatsession"
	"github.com/moim-labs/moim/ent/predicate"
)

// ChatLogUpdate is the builder for updating ChatLog entities.
type ChatLogUpdate struct {
	config
	hooks    []Hook
	mutation *ChatLogMutation
}

// Where appends a list predicates to the ChatLogUpdate builder.
func (_u *ChatLogUpdate) Where(ps ...predicate.ChatLog) *ChatLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFriendID sets the "friend_id" field.
func (_u *ChatLogUpdate) SetFriendID(v string) *ChatLogUpdate {
	_u.mutation.SetFriendID(v)
	return _u
}

// SetNillableFriendID sets the "friend_id" field if the given value is not nil.
func (_u *ChatLogUpdate) SetNillableFriendID(v *string) *ChatLogUpdate {
	if v != nil {
		_u.SetFriendID(*v)
	}
	return _u
}

// ClearFriendID clears the value of the "friend_id" field.
func (_u *ChatLogUpdate) ClearFriendID() *ChatLogUpdate {
	_u.mutation.ClearFriendID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChatLogUpdate) SetSessionID(v string) *ChatLogUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatLogUpdate) SetNillableSessionID(v *string) *ChatLogUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ChatLogUpdate) ClearSessionID() *ChatLogUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetChatSessionID sets the "chat_session_id" field.
func (_u *ChatLogUpdate) SetChatSessionID(v string) *ChatLogUpdate {
	_u.mutation.SetChatSessionID(v)
	return _u
}

// SetNillableChatSessionID sets the "chat_session_id" field if the given value is not nil.
func (_u *ChatLogUpdate) SetNillableChatSessionID(v *string) *ChatLogUpdate {
	if v != nil {
		_u.SetChatSessionID(*v)
	}
	return _u
}

// ClearChatSessionID clears the value of the "chat_session_id" field.
func (_u *ChatLogUpdate) ClearChatSessionID() *ChatLogUpdate {
	_u.mutation.ClearChatSessionID()
	return _u
}

// SetRequestText sets the "request_text" field.
func (_u *ChatLogUpdate) SetRequestText(v string) *ChatLogUpdate {
	_u.mutation.SetRequestText(v)
	return _u
}

// SetNillableRequestText sets the "request_text" field if the given value is not nil.
func (_u *ChatLogUpdate) SetNillableRequestText(v *string) *ChatLogUpdate {
	if v != nil {
		_u.SetRequestText(*v)
	}
	return _u
}

// ClearRequestText clears the value of the "request_text" field.
func (_u *ChatLogUpdate) ClearRequestText() *ChatLogUpdate {
	_u.mutation.ClearRequestText()
	return _u
}

// SetResponseText sets the "response_text" field.
func (_u *ChatLogUpdate) SetResponseText(v string) *ChatLogUpdate {
	_u.mutation.SetResponseText(v)
	return _u
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_u *ChatLogUpdate) SetNillableResponseText(v *string) *ChatLogUpdate {
	if v != nil {
		_u.SetResponseText(*v)
	}
	return _u
}

// ClearResponseText clears the value of the "response_text" field.
func (_u *ChatLogUpdate) ClearResponseText() *ChatLogUpdate {
	_u.mutation.ClearResponseText()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *ChatLogUpdate) SetMessageType(v chatlog.MessageType) *ChatLogUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *ChatLogUpdate) SetNillableMessageType(v *chatlog.MessageType) *ChatLogUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ChatLogUpdate) SetMetadata(v map[string]interface{}) *ChatLogUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ChatLogUpdate) ClearMetadata() *ChatLogUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetChatSession sets the "chat_session" edge to the ChatSession entity.
func (_u *ChatLogUpdate) SetChatSession(v *ChatSession) *ChatLogUpdate {
	return _u.SetChatSessionID(v.ID)
}

// Mutation returns the ChatLogMutation object of the builder.
func (_u *ChatLogUpdate) Mutation() *ChatLogMutation {
	return _u.mutation
}

// ClearChatSession clears the "chat_session" edge to the ChatSession entity.
func (_u *ChatLogUpdate) ClearChatSession() *ChatLogUpdate {
	_u.mutation.ClearChatSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatLogUpdate) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := chatlog.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "ChatLog.message_type": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatLog.user"`)
	}
	return nil
}

func (_u *ChatLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatlog.Table, chatlog.Columns, sqlgraph.NewFieldSpec(chatlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FriendID(); ok {
		_spec.SetField(chatlog.FieldFriendID, field.TypeString, value)
	}
	if _u.mutation.FriendIDCleared() {
		_spec.ClearField(chatlog.FieldFriendID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(chatlog.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(chatlog.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.RequestText(); ok {
		_spec.SetField(chatlog.FieldRequestText, field.TypeString, value)
	}
	if _u.mutation.RequestTextCleared() {
		_spec.ClearField(chatlog.FieldRequestText, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseText(); ok {
		_spec.SetField(chatlog.FieldResponseText, field.TypeString, value)
	}
	if _u.mutation.ResponseTextCleared() {
		_spec.ClearField(chatlog.FieldResponseText, field.TypeString)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(chatlog.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(chatlog.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(chatlog.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.ChatSessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatSessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatLogUpdateOne is the builder for updating a single ChatLog entity.
type ChatLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatLogMutation
}

// SetFriendID sets the "friend_id" field.
func (_u *ChatLogUpdateOne) SetFriendID(v string) *ChatLogUpdateOne {
	_u.mutation.SetFriendID(v)
	return _u
}

// SetNillableFriendID sets the "friend_id" field if the given value is not nil.
func (_u *ChatLogUpdateOne) SetNillableFriendID(v *string) *ChatLogUpdateOne {
	if v != nil {
		_u.SetFriendID(*v)
	}
	return _u
}

// ClearFriendID clears the value of the "friend_id" field.
func (_u *ChatLogUpdateOne) ClearFriendID() *ChatLogUpdateOne {
	_u.mutation.ClearFriendID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChatLogUpdateOne) SetSessionID(v string) *ChatLogUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatLogUpdateOne) SetNillableSessionID(v *string) *ChatLogUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ChatLogUpdateOne) ClearSessionID() *ChatLogUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetChatSessionID sets the "chat_session_id" field.
func (_u *ChatLogUpdateOne) SetChatSessionID(v string) *ChatLogUpdateOne {
	_u.mutation.SetChatSessionID(v)
	return _u
}

// SetNillableChatSessionID sets the "chat_session_id" field if the given value is not nil.
func (_u *ChatLogUpdateOne) SetNillableChatSessionID(v *string) *ChatLogUpdateOne {
	if v != nil {
		_u.SetChatSessionID(*v)
	}
	return _u
}

// ClearChatSessionID clears the value of the "chat_session_id" field.
func (_u *ChatLogUpdateOne) ClearChatSessionID() *ChatLogUpdateOne {
	_u.mutation.ClearChatSessionID()
	return _u
}

// SetRequestText sets the "request_text" field.
func (_u *ChatLogUpdateOne) SetRequestText(v string) *ChatLogUpdateOne {
	_u.mutation.SetRequestText(v)
	return _u
}

// SetNillableRequestText sets the "request_text" field if the given value is not nil.
func (_u *ChatLogUpdateOne) SetNillableRequestText(v *string) *ChatLogUpdateOne {
	if v != nil {
		_u.SetRequestText(*v)
	}
	return _u
}

// ClearRequestText clears the value of the "request_text" field.
func (_u *ChatLogUpdateOne) ClearRequestText() *ChatLogUpdateOne {
	_u.mutation.ClearRequestText()
	return _u
}

// SetResponseText sets the "response_text" field.
func (_u *ChatLogUpdateOne) SetResponseText(v string) *ChatLogUpdateOne {
	_u.mutation.SetResponseText(v)
	return _u
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_u *ChatLogUpdateOne) SetNillableResponseText(v *string) *ChatLogUpdateOne {
	if v != nil {
		_u.SetResponseText(*v)
	}
	return _u
}

// ClearResponseText clears the value of the "response_text" field.
func (_u *ChatLogUpdateOne) ClearResponseText() *ChatLogUpdateOne {
	_u.mutation.ClearResponseText()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *ChatLogUpdateOne) SetMessageType(v chatlog.MessageType) *ChatLogUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *ChatLogUpdateOne) SetNillableMessageType(v *chatlog.MessageType) *ChatLogUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ChatLogUpdateOne) SetMetadata(v map[string]interface{}) *ChatLogUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ChatLogUpdateOne) ClearMetadata() *ChatLogUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetChatSession sets the "chat_session" edge to the ChatSession entity.
func (_u *ChatLogUpdateOne) SetChatSession(v *ChatSession) *ChatLogUpdateOne {
	return _u.SetChatSessionID(v.ID)
}

// Mutation returns the ChatLogMutation object of the builder.
func (_u *ChatLogUpdateOne) Mutation() *ChatLogMutation {
	return _u.mutation
}

// ClearChatSession clears the "chat_session" edge to the ChatSession entity.
func (_u *ChatLogUpdateOne) ClearChatSession() *ChatLogUpdateOne {
	_u.mutation.ClearChatSession()
	return _u
}

// Where appends a list predicates to the ChatLogUpdate builder.
func (_u *ChatLogUpdateOne) Where(ps ...predicate.ChatLog) *ChatLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatLogUpdateOne) Select(field string, fields ...string) *ChatLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatLog entity.
func (_u *ChatLogUpdateOne) Save(ctx context.Context) (*ChatLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatLogUpdateOne) SaveX(ctx context.Context) *ChatLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatLogUpdateOne) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := chatlog.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "ChatLog.message_type": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatLog.user"`)
	}
	return nil
}

func (_u *ChatLogUpdateOne) sqlSave(ctx context.Context) (_node *ChatLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatlog.Table, chatlog.Columns, sqlgraph.NewFieldSpec(chatlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatlog.FieldID)
		for _, f := range fields {
			if !chatlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatlog.FieldID {
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
	if value, ok := _u.mutation.FriendID(); ok {
		_spec.SetField(chatlog.FieldFriendID, field.TypeString, value)
	}
	if _u.mutation.FriendIDCleared() {
		_spec.ClearField(chatlog.FieldFriendID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(chatlog.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(chatlog.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.RequestText(); ok {
		_spec.SetField(chatlog.FieldRequestText, field.TypeString, value)
	}
	if _u.mutation.RequestTextCleared() {
		_spec.ClearField(chatlog.FieldRequestText, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseText(); ok {
		_spec.SetField(chatlog.FieldResponseText, field.TypeString, value)
	}
	if _u.mutation.ResponseTextCleared() {
		_spec.ClearField(chatlog.FieldResponseText, field.TypeString)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(chatlog.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(chatlog.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(chatlog.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.ChatSessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatSessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChatLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
