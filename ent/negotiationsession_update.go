// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/ent/predicate"
)

// NegotiationSessionUpdate is the builder for updating NegotiationSession entities.
type NegotiationSessionUpdate struct {
	config
	hooks    []Hook
	mutation *NegotiationSessionMutation
}

// Where appends a list predicates to the NegotiationSessionUpdate builder.
func (_u *NegotiationSessionUpdate) Where(ps ...predicate.NegotiationSession) *NegotiationSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *NegotiationSessionUpdate) SetTargetID(v string) *NegotiationSessionUpdate {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *NegotiationSessionUpdate) SetNillableTargetID(v *string) *NegotiationSessionUpdate {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// ClearTargetID clears the value of the "target_id" field.
func (_u *NegotiationSessionUpdate) ClearTargetID() *NegotiationSessionUpdate {
	_u.mutation.ClearTargetID()
	return _u
}

// SetParticipantIds sets the "participant_ids" field.
func (_u *NegotiationSessionUpdate) SetParticipantIds(v []string) *NegotiationSessionUpdate {
	_u.mutation.SetParticipantIds(v)
	return _u
}

// AppendParticipantIds appends value to the "participant_ids" field.
func (_u *NegotiationSessionUpdate) AppendParticipantIds(v []string) *NegotiationSessionUpdate {
	_u.mutation.AppendParticipantIds(v)
	return _u
}

// SetIntent sets the "intent" field.
func (_u *NegotiationSessionUpdate) SetIntent(v string) *NegotiationSessionUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *NegotiationSessionUpdate) SetNillableIntent(v *string) *NegotiationSessionUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NegotiationSessionUpdate) SetStatus(v negotiationsession.Status) *NegotiationSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NegotiationSessionUpdate) SetNillableStatus(v *negotiationsession.Status) *NegotiationSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimeWindow sets the "time_window" field.
func (_u *NegotiationSessionUpdate) SetTimeWindow(v map[string]interface{}) *NegotiationSessionUpdate {
	_u.mutation.SetTimeWindow(v)
	return _u
}

// ClearTimeWindow clears the value of the "time_window" field.
func (_u *NegotiationSessionUpdate) ClearTimeWindow() *NegotiationSessionUpdate {
	_u.mutation.ClearTimeWindow()
	return _u
}

// SetPlacePref sets the "place_pref" field.
func (_u *NegotiationSessionUpdate) SetPlacePref(v map[string]interface{}) *NegotiationSessionUpdate {
	_u.mutation.SetPlacePref(v)
	return _u
}

// ClearPlacePref clears the value of the "place_pref" field.
func (_u *NegotiationSessionUpdate) ClearPlacePref() *NegotiationSessionUpdate {
	_u.mutation.ClearPlacePref()
	return _u
}

// SetFinalEventID sets the "final_event_id" field.
func (_u *NegotiationSessionUpdate) SetFinalEventID(v string) *NegotiationSessionUpdate {
	_u.mutation.SetFinalEventID(v)
	return _u
}

// SetNillableFinalEventID sets the "final_event_id" field if the given value is not nil.
func (_u *NegotiationSessionUpdate) SetNillableFinalEventID(v *string) *NegotiationSessionUpdate {
	if v != nil {
		_u.SetFinalEventID(*v)
	}
	return _u
}

// ClearFinalEventID clears the value of the "final_event_id" field.
func (_u *NegotiationSessionUpdate) ClearFinalEventID() *NegotiationSessionUpdate {
	_u.mutation.ClearFinalEventID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *NegotiationSessionUpdate) SetErrorMessage(v string) *NegotiationSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *NegotiationSessionUpdate) SetNillableErrorMessage(v *string) *NegotiationSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *NegotiationSessionUpdate) ClearErrorMessage() *NegotiationSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *NegotiationSessionUpdate) SetStartedAt(v time.Time) *NegotiationSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *NegotiationSessionUpdate) SetNillableStartedAt(v *time.Time) *NegotiationSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *NegotiationSessionUpdate) ClearStartedAt() *NegotiationSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *NegotiationSessionUpdate) SetCompletedAt(v time.Time) *NegotiationSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *NegotiationSessionUpdate) SetNillableCompletedAt(v *time.Time) *NegotiationSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *NegotiationSessionUpdate) ClearCompletedAt() *NegotiationSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *NegotiationSessionUpdate) SetLastHeartbeatAt(v time.Time) *NegotiationSessionUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *NegotiationSessionUpdate) SetNillableLastHeartbeatAt(v *time.Time) *NegotiationSessionUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *NegotiationSessionUpdate) ClearLastHeartbeatAt() *NegotiationSessionUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *NegotiationSessionUpdate) SetDeletedAt(v time.Time) *NegotiationSessionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *NegotiationSessionUpdate) SetNillableDeletedAt(v *time.Time) *NegotiationSessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *NegotiationSessionUpdate) ClearDeletedAt() *NegotiationSessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NegotiationSessionUpdate) SetUpdatedAt(v time.Time) *NegotiationSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the NegotiationMessage entity by IDs.
func (_u *NegotiationSessionUpdate) AddMessageIDs(ids ...string) *NegotiationSessionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the NegotiationMessage entity.
func (_u *NegotiationSessionUpdate) AddMessages(v ...*NegotiationMessage) *NegotiationSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the NegotiationSessionMutation object of the builder.
func (_u *NegotiationSessionUpdate) Mutation() *NegotiationSessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the NegotiationMessage entity.
func (_u *NegotiationSessionUpdate) ClearMessages() *NegotiationSessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to NegotiationMessage entities by IDs.
func (_u *NegotiationSessionUpdate) RemoveMessageIDs(ids ...string) *NegotiationSessionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to NegotiationMessage entities.
func (_u *NegotiationSessionUpdate) RemoveMessages(v ...*NegotiationMessage) *NegotiationSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NegotiationSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NegotiationSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NegotiationSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NegotiationSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NegotiationSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := negotiationsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NegotiationSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := negotiationsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NegotiationSession.status": %w`, err)}
		}
	}
	if _u.mutation.InitiatorCleared() && len(_u.mutation.InitiatorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NegotiationSession.initiator"`)
	}
	return nil
}

func (_u *NegotiationSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(negotiationsession.Table, negotiationsession.Columns, sqlgraph.NewFieldSpec(negotiationsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(negotiationsession.FieldTargetID, field.TypeString, value)
	}
	if _u.mutation.TargetIDCleared() {
		_spec.ClearField(negotiationsession.FieldTargetID, field.TypeString)
	}
	if value, ok := _u.mutation.ParticipantIds(); ok {
		_spec.SetField(negotiationsession.FieldParticipantIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipantIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, negotiationsession.FieldParticipantIds, value)
		})
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(negotiationsession.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(negotiationsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeWindow(); ok {
		_spec.SetField(negotiationsession.FieldTimeWindow, field.TypeJSON, value)
	}
	if _u.mutation.TimeWindowCleared() {
		_spec.ClearField(negotiationsession.FieldTimeWindow, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlacePref(); ok {
		_spec.SetField(negotiationsession.FieldPlacePref, field.TypeJSON, value)
	}
	if _u.mutation.PlacePrefCleared() {
		_spec.ClearField(negotiationsession.FieldPlacePref, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalEventID(); ok {
		_spec.SetField(negotiationsession.FieldFinalEventID, field.TypeString, value)
	}
	if _u.mutation.FinalEventIDCleared() {
		_spec.ClearField(negotiationsession.FieldFinalEventID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(negotiationsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(negotiationsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(negotiationsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(negotiationsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(negotiationsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(negotiationsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(negotiationsession.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(negotiationsession.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(negotiationsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(negotiationsession.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(negotiationsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   negotiationsession.MessagesTable,
			Columns: []string{negotiationsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   negotiationsession.MessagesTable,
			Columns: []string{negotiationsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   negotiationsession.MessagesTable,
			Columns: []string{negotiationsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{negotiationsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NegotiationSessionUpdateOne is the builder for updating a single NegotiationSession entity.
type NegotiationSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NegotiationSessionMutation
}

// SetTargetID sets the "target_id" field.
func (_u *NegotiationSessionUpdateOne) SetTargetID(v string) *NegotiationSessionUpdateOne {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *NegotiationSessionUpdateOne) SetNillableTargetID(v *string) *NegotiationSessionUpdateOne {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// ClearTargetID clears the value of the "target_id" field.
func (_u *NegotiationSessionUpdateOne) ClearTargetID() *NegotiationSessionUpdateOne {
	_u.mutation.ClearTargetID()
	return _u
}

// SetParticipantIds sets the "participant_ids" field.
func (_u *NegotiationSessionUpdateOne) SetParticipantIds(v []string) *NegotiationSessionUpdateOne {
	_u.mutation.SetParticipantIds(v)
	return _u
}

// AppendParticipantIds appends value to the "participant_ids" field.
func (_u *NegotiationSessionUpdateOne) AppendParticipantIds(v []string) *NegotiationSessionUpdateOne {
	_u.mutation.AppendParticipantIds(v)
	return _u
}

// SetIntent sets the "intent" field.
func (_u *NegotiationSessionUpdateOne) SetIntent(v string) *NegotiationSessionUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *NegotiationSessionUpdateOne) SetNillableIntent(v *string) *NegotiationSessionUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NegotiationSessionUpdateOne) SetStatus(v negotiationsession.Status) *NegotiationSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NegotiationSessionUpdateOne) SetNillableStatus(v *negotiationsession.Status) *NegotiationSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimeWindow sets the "time_window" field.
func (_u *NegotiationSessionUpdateOne) SetTimeWindow(v map[string]interface{}) *NegotiationSessionUpdateOne {
	_u.mutation.SetTimeWindow(v)
	return _u
}

// ClearTimeWindow clears the value of the "time_window" field.
func (_u *NegotiationSessionUpdateOne) ClearTimeWindow() *NegotiationSessionUpdateOne {
	_u.mutation.ClearTimeWindow()
	return _u
}

// SetPlacePref sets the "place_pref" field.
func (_u *NegotiationSessionUpdateOne) SetPlacePref(v map[string]interface{}) *NegotiationSessionUpdateOne {
	_u.mutation.SetPlacePref(v)
	return _u
}

// ClearPlacePref clears the value of the "place_pref" field.
func (_u *NegotiationSessionUpdateOne) ClearPlacePref() *NegotiationSessionUpdateOne {
	_u.mutation.ClearPlacePref()
	return _u
}

// SetFinalEventID sets the "final_event_id" field.
func (_u *NegotiationSessionUpdateOne) SetFinalEventID(v string) *NegotiationSessionUpdateOne {
	_u.mutation.SetFinalEventID(v)
	return _u
}

// SetNillableFinalEventID sets the "final_event_id" field if the given value is not nil.
func (_u *NegotiationSessionUpdateOne) SetNillableFinalEventID(v *string) *NegotiationSessionUpdateOne {
	if v != nil {
		_u.SetFinalEventID(*v)
	}
	return _u
}

// ClearFinalEventID clears the value of the "final_event_id" field.
func (_u *NegotiationSessionUpdateOne) ClearFinalEventID() *NegotiationSessionUpdateOne {
	_u.mutation.ClearFinalEventID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *NegotiationSessionUpdateOne) SetErrorMessage(v string) *NegotiationSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *NegotiationSessionUpdateOne) SetNillableErrorMessage(v *string) *NegotiationSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *NegotiationSessionUpdateOne) ClearErrorMessage() *NegotiationSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *NegotiationSessionUpdateOne) SetStartedAt(v time.Time) *NegotiationSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *NegotiationSessionUpdateOne) SetNillableStartedAt(v *time.Time) *NegotiationSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *NegotiationSessionUpdateOne) ClearStartedAt() *NegotiationSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *NegotiationSessionUpdateOne) SetCompletedAt(v time.Time) *NegotiationSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *NegotiationSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *NegotiationSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *NegotiationSessionUpdateOne) ClearCompletedAt() *NegotiationSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *NegotiationSessionUpdateOne) SetLastHeartbeatAt(v time.Time) *NegotiationSessionUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *NegotiationSessionUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *NegotiationSessionUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *NegotiationSessionUpdateOne) ClearLastHeartbeatAt() *NegotiationSessionUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *NegotiationSessionUpdateOne) SetDeletedAt(v time.Time) *NegotiationSessionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *NegotiationSessionUpdateOne) SetNillableDeletedAt(v *time.Time) *NegotiationSessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *NegotiationSessionUpdateOne) ClearDeletedAt() *NegotiationSessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NegotiationSessionUpdateOne) SetUpdatedAt(v time.Time) *NegotiationSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the NegotiationMessage entity by IDs.
func (_u *NegotiationSessionUpdateOne) AddMessageIDs(ids ...string) *NegotiationSessionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the NegotiationMessage entity.
func (_u *NegotiationSessionUpdateOne) AddMessages(v ...*NegotiationMessage) *NegotiationSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the NegotiationSessionMutation object of the builder.
func (_u *NegotiationSessionUpdateOne) Mutation() *NegotiationSessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the NegotiationMessage entity.
func (_u *NegotiationSessionUpdateOne) ClearMessages() *NegotiationSessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to NegotiationMessage entities by IDs.
func (_u *NegotiationSessionUpdateOne) RemoveMessageIDs(ids ...string) *NegotiationSessionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to NegotiationMessage entities.
func (_u *NegotiationSessionUpdateOne) RemoveMessages(v ...*NegotiationMessage) *NegotiationSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the NegotiationSessionUpdate builder.
func (_u *NegotiationSessionUpdateOne) Where(ps ...predicate.NegotiationSession) *NegotiationSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NegotiationSessionUpdateOne) Select(field string, fields ...string) *NegotiationSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NegotiationSession entity.
func (_u *NegotiationSessionUpdateOne) Save(ctx context.Context) (*NegotiationSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NegotiationSessionUpdateOne) SaveX(ctx context.Context) *NegotiationSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NegotiationSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NegotiationSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NegotiationSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := negotiationsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NegotiationSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := negotiationsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NegotiationSession.status": %w`, err)}
		}
	}
	if _u.mutation.InitiatorCleared() && len(_u.mutation.InitiatorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NegotiationSession.initiator"`)
	}
	return nil
}

func (_u *NegotiationSessionUpdateOne) sqlSave(ctx context.Context) (_node *NegotiationSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(negotiationsession.Table, negotiationsession.Columns, sqlgraph.NewFieldSpec(negotiationsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NegotiationSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, negotiationsession.FieldID)
		for _, f := range fields {
			if !negotiationsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != negotiationsession.FieldID {
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
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(negotiationsession.FieldTargetID, field.TypeString, value)
	}
	if _u.mutation.TargetIDCleared() {
		_spec.ClearField(negotiationsession.FieldTargetID, field.TypeString)
	}
	if value, ok := _u.mutation.ParticipantIds(); ok {
		_spec.SetField(negotiationsession.FieldParticipantIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipantIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, negotiationsession.FieldParticipantIds, value)
		})
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(negotiationsession.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(negotiationsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeWindow(); ok {
		_spec.SetField(negotiationsession.FieldTimeWindow, field.TypeJSON, value)
	}
	if _u.mutation.TimeWindowCleared() {
		_spec.ClearField(negotiationsession.FieldTimeWindow, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlacePref(); ok {
		_spec.SetField(negotiationsession.FieldPlacePref, field.TypeJSON, value)
	}
	if _u.mutation.PlacePrefCleared() {
		_spec.ClearField(negotiationsession.FieldPlacePref, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalEventID(); ok {
		_spec.SetField(negotiationsession.FieldFinalEventID, field.TypeString, value)
	}
	if _u.mutation.FinalEventIDCleared() {
		_spec.ClearField(negotiationsession.FieldFinalEventID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(negotiationsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(negotiationsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(negotiationsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(negotiationsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(negotiationsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(negotiationsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(negotiationsession.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(negotiationsession.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(negotiationsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(negotiationsession.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(negotiationsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   negotiationsession.MessagesTable,
			Columns: []string{negotiationsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   negotiationsession.MessagesTable,
			Columns: []string{negotiationsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   negotiationsession.MessagesTable,
			Columns: []string{negotiationsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiationmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &NegotiationSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{negotiationsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
