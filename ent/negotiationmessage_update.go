// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/predicate"
)

// NegotiationMessageUpdate is the builder for updating NegotiationMessage entities.
type NegotiationMessageUpdate struct {
	config
	hooks    []Hook
	mutation *NegotiationMessageMutation
}

// Where appends a list predicates to the NegotiationMessageUpdate builder.
func (_u *NegotiationMessageUpdate) Where(ps ...predicate.NegotiationMessage) *NegotiationMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *NegotiationMessageUpdate) SetType(v negotiationmessage.Type) *NegotiationMessageUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *NegotiationMessageUpdate) SetNillableType(v *negotiationmessage.Type) *NegotiationMessageUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *NegotiationMessageUpdate) SetRound(v int) *NegotiationMessageUpdate {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *NegotiationMessageUpdate) SetNillableRound(v *int) *NegotiationMessageUpdate {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *NegotiationMessageUpdate) AddRound(v int) *NegotiationMessageUpdate {
	_u.mutation.AddRound(v)
	return _u
}

// SetProse sets the "prose" field.
func (_u *NegotiationMessageUpdate) SetProse(v string) *NegotiationMessageUpdate {
	_u.mutation.SetProse(v)
	return _u
}

// SetNillableProse sets the "prose" field if the given value is not nil.
func (_u *NegotiationMessageUpdate) SetNillableProse(v *string) *NegotiationMessageUpdate {
	if v != nil {
		_u.SetProse(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *NegotiationMessageUpdate) SetPayload(v map[string]interface{}) *NegotiationMessageUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *NegotiationMessageUpdate) ClearPayload() *NegotiationMessageUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the NegotiationMessageMutation object of the builder.
func (_u *NegotiationMessageUpdate) Mutation() *NegotiationMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NegotiationMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NegotiationMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NegotiationMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NegotiationMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NegotiationMessageUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := negotiationmessage.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "NegotiationMessage.type": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NegotiationMessage.session"`)
	}
	return nil
}

func (_u *NegotiationMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(negotiationmessage.Table, negotiationmessage.Columns, sqlgraph.NewFieldSpec(negotiationmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ReceiverIDCleared() {
		_spec.ClearField(negotiationmessage.FieldReceiverID, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(negotiationmessage.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(negotiationmessage.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(negotiationmessage.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prose(); ok {
		_spec.SetField(negotiationmessage.FieldProse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(negotiationmessage.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(negotiationmessage.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{negotiationmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NegotiationMessageUpdateOne is the builder for updating a single NegotiationMessage entity.
type NegotiationMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NegotiationMessageMutation
}

// SetType sets the "type" field.
func (_u *NegotiationMessageUpdateOne) SetType(v negotiationmessage.Type) *NegotiationMessageUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *NegotiationMessageUpdateOne) SetNillableType(v *negotiationmessage.Type) *NegotiationMessageUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *NegotiationMessageUpdateOne) SetRound(v int) *NegotiationMessageUpdateOne {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *NegotiationMessageUpdateOne) SetNillableRound(v *int) *NegotiationMessageUpdateOne {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *NegotiationMessageUpdateOne) AddRound(v int) *NegotiationMessageUpdateOne {
	_u.mutation.AddRound(v)
	return _u
}

// SetProse sets the "prose" field.
func (_u *NegotiationMessageUpdateOne) SetProse(v string) *NegotiationMessageUpdateOne {
	_u.mutation.SetProse(v)
	return _u
}

// SetNillableProse sets the "prose" field if the given value is not nil.
func (_u *NegotiationMessageUpdateOne) SetNillableProse(v *string) *NegotiationMessageUpdateOne {
	if v != nil {
		_u.SetProse(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *NegotiationMessageUpdateOne) SetPayload(v map[string]interface{}) *NegotiationMessageUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *NegotiationMessageUpdateOne) ClearPayload() *NegotiationMessageUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the NegotiationMessageMutation object of the builder.
func (_u *NegotiationMessageUpdateOne) Mutation() *NegotiationMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the NegotiationMessageUpdate builder.
func (_u *NegotiationMessageUpdateOne) Where(ps ...predicate.NegotiationMessage) *NegotiationMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NegotiationMessageUpdateOne) Select(field string, fields ...string) *NegotiationMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NegotiationMessage entity.
func (_u *NegotiationMessageUpdateOne) Save(ctx context.Context) (*NegotiationMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NegotiationMessageUpdateOne) SaveX(ctx context.Context) *NegotiationMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NegotiationMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NegotiationMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NegotiationMessageUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := negotiationmessage.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "NegotiationMessage.type": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NegotiationMessage.session"`)
	}
	return nil
}

func (_u *NegotiationMessageUpdateOne) sqlSave(ctx context.Context) (_node *NegotiationMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(negotiationmessage.Table, negotiationmessage.Columns, sqlgraph.NewFieldSpec(negotiationmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NegotiationMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, negotiationmessage.FieldID)
		for _, f := range fields {
			if !negotiationmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != negotiationmessage.FieldID {
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
	if _u.mutation.ReceiverIDCleared() {
		_spec.ClearField(negotiationmessage.FieldReceiverID, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(negotiationmessage.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(negotiationmessage.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(negotiationmessage.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prose(); ok {
		_spec.SetField(negotiationmessage.FieldProse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(negotiationmessage.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(negotiationmessage.FieldPayload, field.TypeJSON)
	}
	_node = &NegotiationMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{negotiationmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
