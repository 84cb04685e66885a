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
	"github.com/moim-labs/moim/ent/user"
)

// NegotiationSessionCreate is the builder for creating a NegotiationSession entity.
type NegotiationSessionCreate struct {
	config
	mutation *NegotiationSessionMutation
	hooks    []Hook
}

// SetInitiatorID sets the "initiator_id" field.
func (_c *NegotiationSessionCreate) SetInitiatorID(v string) *NegotiationSessionCreate {
	_c.mutation.SetInitiatorID(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *NegotiationSessionCreate) SetTargetID(v string) *NegotiationSessionCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_c *NegotiationSessionCreate) SetNillableTargetID(v *string) *NegotiationSessionCreate {
	if v != nil {
		_c.SetTargetID(*v)
	}
	return _c
}

// SetParticipantIds sets the "participant_ids" field.
func (_c *NegotiationSessionCreate) SetParticipantIds(v []string) *NegotiationSessionCreate {
	_c.mutation.SetParticipantIds(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *NegotiationSessionCreate) SetIntent(v string) *NegotiationSessionCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *NegotiationSessionCreate) SetStatus(v negotiationsession.Status) *NegotiationSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *NegotiationSessionCreate) SetNillableStatus(v *negotiationsession.Status) *NegotiationSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTimeWindow sets the "time_window" field.
func (_c *NegotiationSessionCreate) SetTimeWindow(v map[string]interface{}) *NegotiationSessionCreate {
	_c.mutation.SetTimeWindow(v)
	return _c
}

// SetPlacePref sets the "place_pref" field.
func (_c *NegotiationSessionCreate) SetPlacePref(v map[string]interface{}) *NegotiationSessionCreate {
	_c.mutation.SetPlacePref(v)
	return _c
}

// SetFinalEventID sets the "final_event_id" field.
func (_c *NegotiationSessionCreate) SetFinalEventID(v string) *NegotiationSessionCreate {
	_c.mutation.SetFinalEventID(v)
	return _c
}

// SetNillableFinalEventID sets the "final_event_id" field if the given value is not nil.
func (_c *NegotiationSessionCreate) SetNillableFinalEventID(v *string) *NegotiationSessionCreate {
	if v != nil {
		_c.SetFinalEventID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *NegotiationSessionCreate) SetErrorMessage(v string) *NegotiationSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *NegotiationSessionCreate) SetNillableErrorMessage(v *string) *NegotiationSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *NegotiationSessionCreate) SetStartedAt(v time.Time) *NegotiationSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *NegotiationSessionCreate) SetNillableStartedAt(v *time.Time) *NegotiationSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *NegotiationSessionCreate) SetCompletedAt(v time.Time) *NegotiationSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *NegotiationSessionCreate) SetNillableCompletedAt(v *time.Time) *NegotiationSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *NegotiationSessionCreate) SetLastHeartbeatAt(v time.Time) *NegotiationSessionCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *NegotiationSessionCreate) SetNillableLastHeartbeatAt(v *time.Time) *NegotiationSessionCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *NegotiationSessionCreate) SetDeletedAt(v time.Time) *NegotiationSessionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *NegotiationSessionCreate) SetNillableDeletedAt(v *time.Time) *NegotiationSessionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NegotiationSessionCreate) SetCreatedAt(v time.Time) *NegotiationSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NegotiationSessionCreate) SetNillableCreatedAt(v *time.Time) *NegotiationSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NegotiationSessionCreate) SetUpdatedAt(v time.Time) *NegotiationSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NegotiationSessionCreate) SetNillableUpdatedAt(v *time.Time) *NegotiationSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NegotiationSessionCreate) SetID(v string) *NegotiationSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInitiator sets the "initiator" edge to the User entity.
func (_c *NegotiationSessionCreate) SetInitiator(v *User) *NegotiationSessionCreate {
	return _c.SetInitiatorID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the NegotiationMessage entity by IDs.
func (_c *NegotiationSessionCreate) AddMessageIDs(ids ...string) *NegotiationSessionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the NegotiationMessage entity.
func (_c *NegotiationSessionCreate) AddMessages(v ...*NegotiationMessage) *NegotiationSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the NegotiationSessionMutation object of the builder.
func (_c *NegotiationSessionCreate) Mutation() *NegotiationSessionMutation {
	return _c.mutation
}

// Save creates the NegotiationSession in the database.
func (_c *NegotiationSessionCreate) Save(ctx context.Context) (*NegotiationSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NegotiationSessionCreate) SaveX(ctx context.Context) *NegotiationSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NegotiationSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NegotiationSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NegotiationSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := negotiationsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := negotiationsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := negotiationsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NegotiationSessionCreate) check() error {
	if _, ok := _c.mutation.InitiatorID(); !ok {
		return &ValidationError{Name: "initiator_id", err: errors.New(`ent: missing required field "NegotiationSession.initiator_id"`)}
	}
	if _, ok := _c.mutation.ParticipantIds(); !ok {
		return &ValidationError{Name: "participant_ids", err: errors.New(`ent: missing required field "NegotiationSession.participant_ids"`)}
	}
	if _, ok := _c.mutation.Intent(); !ok {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required field "NegotiationSession.intent"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "NegotiationSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := negotiationsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NegotiationSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NegotiationSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "NegotiationSession.updated_at"`)}
	}
	if len(_c.mutation.InitiatorIDs()) == 0 {
		return &ValidationError{Name: "initiator", err: errors.New(`ent: missing required edge "NegotiationSession.initiator"`)}
	}
	return nil
}

func (_c *NegotiationSessionCreate) sqlSave(ctx context.Context) (*NegotiationSession, error) {
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
			return nil, fmt.Errorf("unexpected NegotiationSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NegotiationSessionCreate) createSpec() (*NegotiationSession, *sqlgraph.CreateSpec) {
	var (
		_node = &NegotiationSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(negotiationsession.Table, sqlgraph.NewFieldSpec(negotiationsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(negotiationsession.FieldTargetID, field.TypeString, value)
		_node.TargetID = &value
	}
	if value, ok := _c.mutation.ParticipantIds(); ok {
		_spec.SetField(negotiationsession.FieldParticipantIds, field.TypeJSON, value)
		_node.ParticipantIds = value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(negotiationsession.FieldIntent, field.TypeString, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(negotiationsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TimeWindow(); ok {
		_spec.SetField(negotiationsession.FieldTimeWindow, field.TypeJSON, value)
		_node.TimeWindow = value
	}
	if value, ok := _c.mutation.PlacePref(); ok {
		_spec.SetField(negotiationsession.FieldPlacePref, field.TypeJSON, value)
		_node.PlacePref = value
	}
	if value, ok := _c.mutation.FinalEventID(); ok {
		_spec.SetField(negotiationsession.FieldFinalEventID, field.TypeString, value)
		_node.FinalEventID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(negotiationsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(negotiationsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(negotiationsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(negotiationsession.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(negotiationsession.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(negotiationsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(negotiationsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InitiatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   negotiationsession.InitiatorTable,
			Columns: []string{negotiationsession.InitiatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InitiatorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NegotiationSessionCreateBulk is the builder for creating many NegotiationSession entities in bulk.
type NegotiationSessionCreateBulk struct {
	config
	err      error
	builders []*NegotiationSessionCreate
}

// Save creates the NegotiationSession entities in the database.
func (_c *NegotiationSessionCreateBulk) Save(ctx context.Context) ([]*NegotiationSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NegotiationSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NegotiationSessionMutation)
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
func (_c *NegotiationSessionCreateBulk) SaveX(ctx context.Context) []*NegotiationSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NegotiationSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NegotiationSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
