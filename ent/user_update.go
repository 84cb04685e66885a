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
	"github.com/moim-labs/moim/ent/calendarevent"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/chatsession"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/ent/predicate"
	"github.com/moim-labs/moim/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *UserUpdate) SetAccessToken(v string) *UserUpdate {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAccessToken(v *string) *UserUpdate {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// ClearAccessToken clears the value of the "access_token" field.
func (_u *UserUpdate) ClearAccessToken() *UserUpdate {
	_u.mutation.ClearAccessToken()
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *UserUpdate) SetRefreshToken(v string) *UserUpdate {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRefreshToken(v *string) *UserUpdate {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (_u *UserUpdate) ClearRefreshToken() *UserUpdate {
	_u.mutation.ClearRefreshToken()
	return _u
}

// SetTokenExpiry sets the "token_expiry" field.
func (_u *UserUpdate) SetTokenExpiry(v time.Time) *UserUpdate {
	_u.mutation.SetTokenExpiry(v)
	return _u
}

// SetNillableTokenExpiry sets the "token_expiry" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTokenExpiry(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetTokenExpiry(*v)
	}
	return _u
}

// ClearTokenExpiry clears the value of the "token_expiry" field.
func (_u *UserUpdate) ClearTokenExpiry() *UserUpdate {
	_u.mutation.ClearTokenExpiry()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *UserUpdate) SetTimezone(v string) *UserUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTimezone(v *string) *UserUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// AddInitiatedSessionIDs adds the "initiated_sessions" edge to the NegotiationSession entity by IDs.
func (_u *UserUpdate) AddInitiatedSessionIDs(ids ...string) *UserUpdate {
	_u.mutation.AddInitiatedSessionIDs(ids...)
	return _u
}

// AddInitiatedSessions adds the "initiated_sessions" edges to the NegotiationSession entity.
func (_u *UserUpdate) AddInitiatedSessions(v ...*NegotiationSession) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInitiatedSessionIDs(ids...)
}

// AddChatLogIDs adds the "chat_logs" edge to the ChatLog entity by IDs.
func (_u *UserUpdate) AddChatLogIDs(ids ...string) *UserUpdate {
	_u.mutation.AddChatLogIDs(ids...)
	return _u
}

// AddChatLogs adds the "chat_logs" edges to the ChatLog entity.
func (_u *UserUpdate) AddChatLogs(v ...*ChatLog) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatLogIDs(ids...)
}

// AddChatSessionIDs adds the "chat_sessions" edge to the ChatSession entity by IDs.
func (_u *UserUpdate) AddChatSessionIDs(ids ...string) *UserUpdate {
	_u.mutation.AddChatSessionIDs(ids...)
	return _u
}

// AddChatSessions adds the "chat_sessions" edges to the ChatSession entity.
func (_u *UserUpdate) AddChatSessions(v ...*ChatSession) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatSessionIDs(ids...)
}

// AddCalendarEventIDs adds the "calendar_events" edge to the CalendarEvent entity by IDs.
func (_u *UserUpdate) AddCalendarEventIDs(ids ...string) *UserUpdate {
	_u.mutation.AddCalendarEventIDs(ids...)
	return _u
}

// AddCalendarEvents adds the "calendar_events" edges to the CalendarEvent entity.
func (_u *UserUpdate) AddCalendarEvents(v ...*CalendarEvent) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCalendarEventIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearInitiatedSessions clears all "initiated_sessions" edges to the NegotiationSession entity.
func (_u *UserUpdate) ClearInitiatedSessions() *UserUpdate {
	_u.mutation.ClearInitiatedSessions()
	return _u
}

// RemoveInitiatedSessionIDs removes the "initiated_sessions" edge to NegotiationSession entities by IDs.
func (_u *UserUpdate) RemoveInitiatedSessionIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveInitiatedSessionIDs(ids...)
	return _u
}

// RemoveInitiatedSessions removes "initiated_sessions" edges to NegotiationSession entities.
func (_u *UserUpdate) RemoveInitiatedSessions(v ...*NegotiationSession) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInitiatedSessionIDs(ids...)
}

// ClearChatLogs clears all "chat_logs" edges to the ChatLog entity.
func (_u *UserUpdate) ClearChatLogs() *UserUpdate {
	_u.mutation.ClearChatLogs()
	return _u
}

// RemoveChatLogIDs removes the "chat_logs" edge to ChatLog entities by IDs.
func (_u *UserUpdate) RemoveChatLogIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveChatLogIDs(ids...)
	return _u
}

// RemoveChatLogs removes "chat_logs" edges to ChatLog entities.
func (_u *UserUpdate) RemoveChatLogs(v ...*ChatLog) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatLogIDs(ids...)
}

// ClearChatSessions clears all "chat_sessions" edges to the ChatSession entity.
func (_u *UserUpdate) ClearChatSessions() *UserUpdate {
	_u.mutation.ClearChatSessions()
	return _u
}

// RemoveChatSessionIDs removes the "chat_sessions" edge to ChatSession entities by IDs.
func (_u *UserUpdate) RemoveChatSessionIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveChatSessionIDs(ids...)
	return _u
}

// RemoveChatSessions removes "chat_sessions" edges to ChatSession entities.
func (_u *UserUpdate) RemoveChatSessions(v ...*ChatSession) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatSessionIDs(ids...)
}

// ClearCalendarEvents clears all "calendar_events" edges to the CalendarEvent entity.
func (_u *UserUpdate) ClearCalendarEvents() *UserUpdate {
	_u.mutation.ClearCalendarEvents()
	return _u
}

// RemoveCalendarEventIDs removes the "calendar_events" edge to CalendarEvent entities by IDs.
func (_u *UserUpdate) RemoveCalendarEventIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveCalendarEventIDs(ids...)
	return _u
}

// RemoveCalendarEvents removes "calendar_events" edges to CalendarEvent entities.
func (_u *UserUpdate) RemoveCalendarEvents(v ...*CalendarEvent) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCalendarEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(user.FieldAccessToken, field.TypeString, value)
	}
	if _u.mutation.AccessTokenCleared() {
		_spec.ClearField(user.FieldAccessToken, field.TypeString)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(user.FieldRefreshToken, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenCleared() {
		_spec.ClearField(user.FieldRefreshToken, field.TypeString)
	}
	if value, ok := _u.mutation.TokenExpiry(); ok {
		_spec.SetField(user.FieldTokenExpiry, field.TypeTime, value)
	}
	if _u.mutation.TokenExpiryCleared() {
		_spec.ClearField(user.FieldTokenExpiry, field.TypeTime)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(user.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.InitiatedSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.InitiatedSessionsTable,
			Columns: []string{user.InitiatedSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInitiatedSessionsIDs(); len(nodes) > 0 && !_u.mutation.InitiatedSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.InitiatedSessionsTable,
			Columns: []string{user.InitiatedSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InitiatedSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.InitiatedSessionsTable,
			Columns: []string{user.InitiatedSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatLogsTable,
			Columns: []string{user.ChatLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatLogsIDs(); len(nodes) > 0 && !_u.mutation.ChatLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatLogsTable,
			Columns: []string{user.ChatLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatLogsTable,
			Columns: []string{user.ChatLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatSessionsTable,
			Columns: []string{user.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatSessionsIDs(); len(nodes) > 0 && !_u.mutation.ChatSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatSessionsTable,
			Columns: []string{user.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatSessionsTable,
			Columns: []string{user.ChatSessionsColumn},
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
	if _u.mutation.CalendarEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CalendarEventsTable,
			Columns: []string{user.CalendarEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCalendarEventsIDs(); len(nodes) > 0 && !_u.mutation.CalendarEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CalendarEventsTable,
			Columns: []string{user.CalendarEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CalendarEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CalendarEventsTable,
			Columns: []string{user.CalendarEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *UserUpdateOne) SetAccessToken(v string) *UserUpdateOne {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAccessToken(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// ClearAccessToken clears the value of the "access_token" field.
func (_u *UserUpdateOne) ClearAccessToken() *UserUpdateOne {
	_u.mutation.ClearAccessToken()
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *UserUpdateOne) SetRefreshToken(v string) *UserUpdateOne {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRefreshToken(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (_u *UserUpdateOne) ClearRefreshToken() *UserUpdateOne {
	_u.mutation.ClearRefreshToken()
	return _u
}

// SetTokenExpiry sets the "token_expiry" field.
func (_u *UserUpdateOne) SetTokenExpiry(v time.Time) *UserUpdateOne {
	_u.mutation.SetTokenExpiry(v)
	return _u
}

// SetNillableTokenExpiry sets the "token_expiry" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTokenExpiry(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetTokenExpiry(*v)
	}
	return _u
}

// ClearTokenExpiry clears the value of the "token_expiry" field.
func (_u *UserUpdateOne) ClearTokenExpiry() *UserUpdateOne {
	_u.mutation.ClearTokenExpiry()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *UserUpdateOne) SetTimezone(v string) *UserUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTimezone(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// AddInitiatedSessionIDs adds the "initiated_sessions" edge to the NegotiationSession entity by IDs.
func (_u *UserUpdateOne) AddInitiatedSessionIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddInitiatedSessionIDs(ids...)
	return _u
}

// AddInitiatedSessions adds the "initiated_sessions" edges to the NegotiationSession entity.
func (_u *UserUpdateOne) AddInitiatedSessions(v ...*NegotiationSession) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInitiatedSessionIDs(ids...)
}

// AddChatLogIDs adds the "chat_logs" edge to the ChatLog entity by IDs.
func (_u *UserUpdateOne) AddChatLogIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddChatLogIDs(ids...)
	return _u
}

// AddChatLogs adds the "chat_logs" edges to the ChatLog entity.
func (_u *UserUpdateOne) AddChatLogs(v ...*ChatLog) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatLogIDs(ids...)
}

// AddChatSessionIDs adds the "chat_sessions" edge to the ChatSession entity by IDs.
func (_u *UserUpdateOne) AddChatSessionIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddChatSessionIDs(ids...)
	return _u
}

// AddChatSessions adds the "chat_sessions" edges to the ChatSession entity.
func (_u *UserUpdateOne) AddChatSessions(v ...*ChatSession) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatSessionIDs(ids...)
}

// AddCalendarEventIDs adds the "calendar_events" edge to the CalendarEvent entity by IDs.
func (_u *UserUpdateOne) AddCalendarEventIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddCalendarEventIDs(ids...)
	return _u
}

// AddCalendarEvents adds the "calendar_events" edges to the CalendarEvent entity.
func (_u *UserUpdateOne) AddCalendarEvents(v ...*CalendarEvent) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCalendarEventIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearInitiatedSessions clears all "initiated_sessions" edges to the NegotiationSession entity.
func (_u *UserUpdateOne) ClearInitiatedSessions() *UserUpdateOne {
	_u.mutation.ClearInitiatedSessions()
	return _u
}

// RemoveInitiatedSessionIDs removes the "initiated_sessions" edge to NegotiationSession entities by IDs.
func (_u *UserUpdateOne) RemoveInitiatedSessionIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveInitiatedSessionIDs(ids...)
	return _u
}

// RemoveInitiatedSessions removes "initiated_sessions" edges to NegotiationSession entities.
func (_u *UserUpdateOne) RemoveInitiatedSessions(v ...*NegotiationSession) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInitiatedSessionIDs(ids...)
}

// ClearChatLogs clears all "chat_logs" edges to the ChatLog entity.
func (_u *UserUpdateOne) ClearChatLogs() *UserUpdateOne {
	_u.mutation.ClearChatLogs()
	return _u
}

// RemoveChatLogIDs removes the "chat_logs" edge to ChatLog entities by IDs.
func (_u *UserUpdateOne) RemoveChatLogIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveChatLogIDs(ids...)
	return _u
}

// RemoveChatLogs removes "chat_logs" edges to ChatLog entities.
func (_u *UserUpdateOne) RemoveChatLogs(v ...*ChatLog) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatLogIDs(ids...)
}

// ClearChatSessions clears all "chat_sessions" edges to the ChatSession entity.
func (_u *UserUpdateOne) ClearChatSessions() *UserUpdateOne {
	_u.mutation.ClearChatSessions()
	return _u
}

// RemoveChatSessionIDs removes the "chat_sessions" edge to ChatSession entities by IDs.
func (_u *UserUpdateOne) RemoveChatSessionIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveChatSessionIDs(ids...)
	return _u
}

// RemoveChatSessions removes "chat_sessions" edges to ChatSession entities.
func (_u *UserUpdateOne) RemoveChatSessions(v ...*ChatSession) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatSessionIDs(ids...)
}

// ClearCalendarEvents clears all "calendar_events" edges to the CalendarEvent entity.
func (_u *UserUpdateOne) ClearCalendarEvents() *UserUpdateOne {
	_u.mutation.ClearCalendarEvents()
	return _u
}

// RemoveCalendarEventIDs removes the "calendar_events" edge to CalendarEvent entities by IDs.
func (_u *UserUpdateOne) RemoveCalendarEventIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveCalendarEventIDs(ids...)
	return _u
}

// RemoveCalendarEvents removes "calendar_events" edges to CalendarEvent entities.
func (_u *UserUpdateOne) RemoveCalendarEvents(v ...*CalendarEvent) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCalendarEventIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(user.FieldAccessToken, field.TypeString, value)
	}
	if _u.mutation.AccessTokenCleared() {
		_spec.ClearField(user.FieldAccessToken, field.TypeString)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(user.FieldRefreshToken, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenCleared() {
		_spec.ClearField(user.FieldRefreshToken, field.TypeString)
	}
	if value, ok := _u.mutation.TokenExpiry(); ok {
		_spec.SetField(user.FieldTokenExpiry, field.TypeTime, value)
	}
	if _u.mutation.TokenExpiryCleared() {
		_spec.ClearField(user.FieldTokenExpiry, field.TypeTime)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(user.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.InitiatedSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.InitiatedSessionsTable,
			Columns: []string{user.InitiatedSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInitiatedSessionsIDs(); len(nodes) > 0 && !_u.mutation.InitiatedSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.InitiatedSessionsTable,
			Columns: []string{user.InitiatedSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InitiatedSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.InitiatedSessionsTable,
			Columns: []string{user.InitiatedSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatLogsTable,
			Columns: []string{user.ChatLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatLogsIDs(); len(nodes) > 0 && !_u.mutation.ChatLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatLogsTable,
			Columns: []string{user.ChatLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatLogsTable,
			Columns: []string{user.ChatLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatSessionsTable,
			Columns: []string{user.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatSessionsIDs(); len(nodes) > 0 && !_u.mutation.ChatSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatSessionsTable,
			Columns: []string{user.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatSessionsTable,
			Columns: []string{user.ChatSessionsColumn},
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
	if _u.mutation.CalendarEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CalendarEventsTable,
			Columns: []string{user.CalendarEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCalendarEventsIDs(); len(nodes) > 0 && !_u.mutation.CalendarEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CalendarEventsTable,
			Columns: []string{user.CalendarEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CalendarEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CalendarEventsTable,
			Columns: []string{user.CalendarEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
