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
	"github.com/moim-labs/moim/ent/predicate"
)

// CalendarEventUpdate is the builder for updating CalendarEvent entities.
type CalendarEventUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarEventMutation
}

// Where appends a list predicates to the CalendarEventUpdate builder.
func (_u *CalendarEventUpdate) Where(ps ...predicate.CalendarEvent) *CalendarEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGoogleEventID sets the "google_event_id" field.
func (_u *CalendarEventUpdate) SetGoogleEventID(v string) *CalendarEventUpdate {
	_u.mutation.SetGoogleEventID(v)
	return _u
}

// SetNillableGoogleEventID sets the "google_event_id" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableGoogleEventID(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetGoogleEventID(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CalendarEventUpdate) SetSummary(v string) *CalendarEventUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableSummary(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *CalendarEventUpdate) SetLocation(v string) *CalendarEventUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableLocation(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *CalendarEventUpdate) ClearLocation() *CalendarEventUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *CalendarEventUpdate) SetStartAt(v time.Time) *CalendarEventUpdate {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableStartAt(v *time.Time) *CalendarEventUpdate {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// SetEndAt sets the "end_at" field.
func (_u *CalendarEventUpdate) SetEndAt(v time.Time) *CalendarEventUpdate {
	_u.mutation.SetEndAt(v)
	return _u
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableEndAt(v *time.Time) *CalendarEventUpdate {
	if v != nil {
		_u.SetEndAt(*v)
	}
	return _u
}

// SetHTMLLink sets the "html_link" field.
func (_u *CalendarEventUpdate) SetHTMLLink(v string) *CalendarEventUpdate {
	_u.mutation.SetHTMLLink(v)
	return _u
}

// SetNillableHTMLLink sets the "html_link" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableHTMLLink(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetHTMLLink(*v)
	}
	return _u
}

// ClearHTMLLink clears the value of the "html_link" field.
func (_u *CalendarEventUpdate) ClearHTMLLink() *CalendarEventUpdate {
	_u.mutation.ClearHTMLLink()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CalendarEventUpdate) SetStatus(v calendarevent.Status) *CalendarEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableStatus(v *calendarevent.Status) *CalendarEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_u *CalendarEventUpdate) Mutation() *CalendarEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarEventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := calendarevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CalendarEvent.owner"`)
	}
	return nil
}

func (_u *CalendarEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarevent.Table, calendarevent.Columns, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(calendarevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.GoogleEventID(); ok {
		_spec.SetField(calendarevent.FieldGoogleEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(calendarevent.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(calendarevent.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(calendarevent.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(calendarevent.FieldStartAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndAt(); ok {
		_spec.SetField(calendarevent.FieldEndAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.HTMLLink(); ok {
		_spec.SetField(calendarevent.FieldHTMLLink, field.TypeString, value)
	}
	if _u.mutation.HTMLLinkCleared() {
		_spec.ClearField(calendarevent.FieldHTMLLink, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(calendarevent.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarEventUpdateOne is the builder for updating a single CalendarEvent entity.
type CalendarEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarEventMutation
}

// SetGoogleEventID sets the "google_event_id" field.
func (_u *CalendarEventUpdateOne) SetGoogleEventID(v string) *CalendarEventUpdateOne {
	_u.mutation.SetGoogleEventID(v)
	return _u
}

// SetNillableGoogleEventID sets the "google_event_id" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableGoogleEventID(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetGoogleEventID(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CalendarEventUpdateOne) SetSummary(v string) *CalendarEventUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableSummary(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *CalendarEventUpdateOne) SetLocation(v string) *CalendarEventUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableLocation(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *CalendarEventUpdateOne) ClearLocation() *CalendarEventUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *CalendarEventUpdateOne) SetStartAt(v time.Time) *CalendarEventUpdateOne {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableStartAt(v *time.Time) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// SetEndAt sets the "end_at" field.
func (_u *CalendarEventUpdateOne) SetEndAt(v time.Time) *CalendarEventUpdateOne {
	_u.mutation.SetEndAt(v)
	return _u
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableEndAt(v *time.Time) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetEndAt(*v)
	}
	return _u
}

// SetHTMLLink sets the "html_link" field.
func (_u *CalendarEventUpdateOne) SetHTMLLink(v string) *CalendarEventUpdateOne {
	_u.mutation.SetHTMLLink(v)
	return _u
}

// SetNillableHTMLLink sets the "html_link" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableHTMLLink(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetHTMLLink(*v)
	}
	return _u
}

// ClearHTMLLink clears the value of the "html_link" field.
func (_u *CalendarEventUpdateOne) ClearHTMLLink() *CalendarEventUpdateOne {
	_u.mutation.ClearHTMLLink()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CalendarEventUpdateOne) SetStatus(v calendarevent.Status) *CalendarEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableStatus(v *calendarevent.Status) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_u *CalendarEventUpdateOne) Mutation() *CalendarEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalendarEventUpdate builder.
func (_u *CalendarEventUpdateOne) Where(ps ...predicate.CalendarEvent) *CalendarEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarEventUpdateOne) Select(field string, fields ...string) *CalendarEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarEvent entity.
func (_u *CalendarEventUpdateOne) Save(ctx context.Context) (*CalendarEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEventUpdateOne) SaveX(ctx context.Context) *CalendarEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarEventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := calendarevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CalendarEvent.owner"`)
	}
	return nil
}

func (_u *CalendarEventUpdateOne) sqlSave(ctx context.Context) (_node *CalendarEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarevent.Table, calendarevent.Columns, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalendarEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarevent.FieldID)
		for _, f := range fields {
			if !calendarevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calendarevent.FieldID {
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
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(calendarevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.GoogleEventID(); ok {
		_spec.SetField(calendarevent.FieldGoogleEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(calendarevent.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(calendarevent.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(calendarevent.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(calendarevent.FieldStartAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndAt(); ok {
		_spec.SetField(calendarevent.FieldEndAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.HTMLLink(); ok {
		_spec.SetField(calendarevent.FieldHTMLLink, field.TypeString, value)
	}
	if _u.mutation.HTMLLinkCleared() {
		_spec.ClearField(calendarevent.FieldHTMLLink, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(calendarevent.FieldStatus, field.TypeEnum, value)
	}
	_node = &CalendarEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
