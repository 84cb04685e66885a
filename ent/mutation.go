// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moim-labs/moim/ent/calendarevent"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/chatsession"
	"github.com/moim-labs/moim/ent/event"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/ent/predicate"
	"github.com/moim-labs/moim/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCalendarEvent      = "CalendarEvent"
	TypeChatLog            = "ChatLog"
	TypeChatSession        = "ChatSession"
	TypeEvent              = "Event"
	TypeNegotiationMessage = "NegotiationMessage"
	TypeNegotiationSession = "NegotiationSession"
	TypeUser               = "User"
)

// CalendarEventMutation represents an operation that mutates the CalendarEvent nodes in the graph.
type CalendarEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	session_id      *string
	google_event_id *string
	summary         *string
	location        *string
	start_at        *time.Time
	end_at          *time.Time
	html_link       *string
	status          *calendarevent.Status
	created_at      *time.Time
	clearedFields   map[string]struct{}
	owner           *string
	clearedowner    bool
	done            bool
	oldValue        func(context.Context) (*CalendarEvent, error)
	predicates      []predicate.CalendarEvent
}

var _ ent.Mutation = (*CalendarEventMutation)(nil)

// calendareventOption allows management of the mutation configuration using functional options.
type calendareventOption func(*CalendarEventMutation)

// newCalendarEventMutation creates new mutation for the CalendarEvent entity.
func newCalendarEventMutation(c config, op Op, opts ...calendareventOption) *CalendarEventMutation {
	m := &CalendarEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarEventID sets the ID field of the mutation.
func withCalendarEventID(id string) calendareventOption {
	return func(m *CalendarEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarEvent
		)
		m.oldValue = func(ctx context.Context) (*CalendarEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarEvent sets the old CalendarEvent of the mutation.
func withCalendarEvent(node *CalendarEvent) calendareventOption {
	return func(m *CalendarEventMutation) {
		m.oldValue = func(context.Context) (*CalendarEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalendarEvent entities.
func (m *CalendarEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *CalendarEventMutation) SetOwnerID(s string) {
	m.owner = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *CalendarEventMutation) OwnerID() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *CalendarEventMutation) ResetOwnerID() {
	m.owner = nil
}

// SetSessionID sets the "session_id" field.
func (m *CalendarEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CalendarEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *CalendarEventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[calendarevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *CalendarEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *CalendarEventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, calendarevent.FieldSessionID)
}

// SetGoogleEventID sets the "google_event_id" field.
func (m *CalendarEventMutation) SetGoogleEventID(s string) {
	m.google_event_id = &s
}

// GoogleEventID returns the value of the "google_event_id" field in the mutation.
func (m *CalendarEventMutation) GoogleEventID() (r string, exists bool) {
	v := m.google_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoogleEventID returns the old "google_event_id" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldGoogleEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoogleEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoogleEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoogleEventID: %w", err)
	}
	return oldValue.GoogleEventID, nil
}

// ResetGoogleEventID resets all changes to the "google_event_id" field.
func (m *CalendarEventMutation) ResetGoogleEventID() {
	m.google_event_id = nil
}

// SetSummary sets the "summary" field.
func (m *CalendarEventMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *CalendarEventMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *CalendarEventMutation) ResetSummary() {
	m.summary = nil
}

// SetLocation sets the "location" field.
func (m *CalendarEventMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *CalendarEventMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *CalendarEventMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[calendarevent.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *CalendarEventMutation) LocationCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *CalendarEventMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, calendarevent.FieldLocation)
}

// SetStartAt sets the "start_at" field.
func (m *CalendarEventMutation) SetStartAt(t time.Time) {
	m.start_at = &t
}

// StartAt returns the value of the "start_at" field in the mutation.
func (m *CalendarEventMutation) StartAt() (r time.Time, exists bool) {
	v := m.start_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartAt returns the old "start_at" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldStartAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartAt: %w", err)
	}
	return oldValue.StartAt, nil
}

// ResetStartAt resets all changes to the "start_at" field.
func (m *CalendarEventMutation) ResetStartAt() {
	m.start_at = nil
}

// SetEndAt sets the "end_at" field.
func (m *CalendarEventMutation) SetEndAt(t time.Time) {
	m.end_at = &t
}

// EndAt returns the value of the "end_at" field in the mutation.
func (m *CalendarEventMutation) EndAt() (r time.Time, exists bool) {
	v := m.end_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndAt returns the old "end_at" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldEndAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndAt: %w", err)
	}
	return oldValue.EndAt, nil
}

// ResetEndAt resets all changes to the "end_at" field.
func (m *CalendarEventMutation) ResetEndAt() {
	m.end_at = nil
}

// SetHTMLLink sets the "html_link" field.
func (m *CalendarEventMutation) SetHTMLLink(s string) {
	m.html_link = &s
}

// HTMLLink returns the value of the "html_link" field in the mutation.
func (m *CalendarEventMutation) HTMLLink() (r string, exists bool) {
	v := m.html_link
	if v == nil {
		return
	}
	return *v, true
}

// OldHTMLLink returns the old "html_link" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldHTMLLink(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHTMLLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHTMLLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHTMLLink: %w", err)
	}
	return oldValue.HTMLLink, nil
}

// ClearHTMLLink clears the value of the "html_link" field.
func (m *CalendarEventMutation) ClearHTMLLink() {
	m.html_link = nil
	m.clearedFields[calendarevent.FieldHTMLLink] = struct{}{}
}

// HTMLLinkCleared returns if the "html_link" field was cleared in this mutation.
func (m *CalendarEventMutation) HTMLLinkCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldHTMLLink]
	return ok
}

// ResetHTMLLink resets all changes to the "html_link" field.
func (m *CalendarEventMutation) ResetHTMLLink() {
	m.html_link = nil
	delete(m.clearedFields, calendarevent.FieldHTMLLink)
}

// SetStatus sets the "status" field.
func (m *CalendarEventMutation) SetStatus(c calendarevent.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CalendarEventMutation) Status() (r calendarevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldStatus(ctx context.Context) (v calendarevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CalendarEventMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CalendarEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CalendarEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CalendarEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *CalendarEventMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[calendarevent.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *CalendarEventMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *CalendarEventMutation) OwnerIDs() (ids []string) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *CalendarEventMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the CalendarEventMutation builder.
func (m *CalendarEventMutation) Where(ps ...predicate.CalendarEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarEvent).
func (m *CalendarEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.owner != nil {
		fields = append(fields, calendarevent.FieldOwnerID)
	}
	if m.session_id != nil {
		fields = append(fields, calendarevent.FieldSessionID)
	}
	if m.google_event_id != nil {
		fields = append(fields, calendarevent.FieldGoogleEventID)
	}
	if m.summary != nil {
		fields = append(fields, calendarevent.FieldSummary)
	}
	if m.location != nil {
		fields = append(fields, calendarevent.FieldLocation)
	}
	if m.start_at != nil {
		fields = append(fields, calendarevent.FieldStartAt)
	}
	if m.end_at != nil {
		fields = append(fields, calendarevent.FieldEndAt)
	}
	if m.html_link != nil {
		fields = append(fields, calendarevent.FieldHTMLLink)
	}
	if m.status != nil {
		fields = append(fields, calendarevent.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, calendarevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarevent.FieldOwnerID:
		return m.OwnerID()
	case calendarevent.FieldSessionID:
		return m.SessionID()
	case calendarevent.FieldGoogleEventID:
		return m.GoogleEventID()
	case calendarevent.FieldSummary:
		return m.Summary()
	case calendarevent.FieldLocation:
		return m.Location()
	case calendarevent.FieldStartAt:
		return m.StartAt()
	case calendarevent.FieldEndAt:
		return m.EndAt()
	case calendarevent.FieldHTMLLink:
		return m.HTMLLink()
	case calendarevent.FieldStatus:
		return m.Status()
	case calendarevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarevent.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case calendarevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case calendarevent.FieldGoogleEventID:
		return m.OldGoogleEventID(ctx)
	case calendarevent.FieldSummary:
		return m.OldSummary(ctx)
	case calendarevent.FieldLocation:
		return m.OldLocation(ctx)
	case calendarevent.FieldStartAt:
		return m.OldStartAt(ctx)
	case calendarevent.FieldEndAt:
		return m.OldEndAt(ctx)
	case calendarevent.FieldHTMLLink:
		return m.OldHTMLLink(ctx)
	case calendarevent.FieldStatus:
		return m.OldStatus(ctx)
	case calendarevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarevent.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case calendarevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case calendarevent.FieldGoogleEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoogleEventID(v)
		return nil
	case calendarevent.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case calendarevent.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case calendarevent.FieldStartAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartAt(v)
		return nil
	case calendarevent.FieldEndAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndAt(v)
		return nil
	case calendarevent.FieldHTMLLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHTMLLink(v)
		return nil
	case calendarevent.FieldStatus:
		v, ok := value.(calendarevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case calendarevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(calendarevent.FieldSessionID) {
		fields = append(fields, calendarevent.FieldSessionID)
	}
	if m.FieldCleared(calendarevent.FieldLocation) {
		fields = append(fields, calendarevent.FieldLocation)
	}
	if m.FieldCleared(calendarevent.FieldHTMLLink) {
		fields = append(fields, calendarevent.FieldHTMLLink)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarEventMutation) ClearField(name string) error {
	switch name {
	case calendarevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	case calendarevent.FieldLocation:
		m.ClearLocation()
		return nil
	case calendarevent.FieldHTMLLink:
		m.ClearHTMLLink()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarEventMutation) ResetField(name string) error {
	switch name {
	case calendarevent.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case calendarevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case calendarevent.FieldGoogleEventID:
		m.ResetGoogleEventID()
		return nil
	case calendarevent.FieldSummary:
		m.ResetSummary()
		return nil
	case calendarevent.FieldLocation:
		m.ResetLocation()
		return nil
	case calendarevent.FieldStartAt:
		m.ResetStartAt()
		return nil
	case calendarevent.FieldEndAt:
		m.ResetEndAt()
		return nil
	case calendarevent.FieldHTMLLink:
		m.ResetHTMLLink()
		return nil
	case calendarevent.FieldStatus:
		m.ResetStatus()
		return nil
	case calendarevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, calendarevent.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case calendarevent.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, calendarevent.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarEventMutation) EdgeCleared(name string) bool {
	switch name {
	case calendarevent.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarEventMutation) ClearEdge(name string) error {
	switch name {
	case calendarevent.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarEventMutation) ResetEdge(name string) error {
	switch name {
	case calendarevent.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent edge %s", name)
}

// ChatLogMutation represents an operation that mutates the ChatLog nodes in the graph.
type ChatLogMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	friend_id           *string
	session_id          *string
	request_text        *string
	response_text       *string
	message_type        *chatlog.MessageType
	metadata            *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	user                *string
	cleareduser         bool
	chat_session        *string
	clearedchat_session bool
	done                bool
	oldValue            func(context.Context) (*ChatLog, error)
	predicates          []predicate.ChatLog
}

var _ ent.Mutation = (*ChatLogMutation)(nil)

// chatlogOption allows management of the mutation configuration using functional options.
type chatlogOption func(*ChatLogMutation)

// newChatLogMutation creates new mutation for the ChatLog entity.
func newChatLogMutation(c config, op Op, opts ...chatlogOption) *ChatLogMutation {
	m := &ChatLogMutation{
		config:        c,
		op:            op,
		typ:           TypeChatLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatLogID sets the ID field of the mutation.
func withChatLogID(id string) chatlogOption {
	return func(m *ChatLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatLog
		)
		m.oldValue = func(ctx context.Context) (*ChatLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatLog sets the old ChatLog of the mutation.
func withChatLog(node *ChatLog) chatlogOption {
	return func(m *ChatLogMutation) {
		m.oldValue = func(context.Context) (*ChatLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatLog entities.
func (m *ChatLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ChatLogMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChatLogMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChatLog entity.
// If the ChatLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChatLogMutation) ResetUserID() {
	m.user = nil
}

// SetFriendID sets the "friend_id" field.
func (m *ChatLogMutation) SetFriendID(s string) {
	m.friend_id = &s
}

// FriendID returns the value of the "friend_id" field in the mutation.
func (m *ChatLogMutation) FriendID() (r string, exists bool) {
	v := m.friend_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFriendID returns the old "friend_id" field's value of the ChatLog entity.
// If the ChatLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatLogMutation) OldFriendID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFriendID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFriendID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFriendID: %w", err)
	}
	return oldValue.FriendID, nil
}

// ClearFriendID clears the value of the "friend_id" field.
func (m *ChatLogMutation) ClearFriendID() {
	m.friend_id = nil
	m.clearedFields[chatlog.FieldFriendID] = struct{}{}
}

// FriendIDCleared returns if the "friend_id" field was cleared in this mutation.
func (m *ChatLogMutation) FriendIDCleared() bool {
	_, ok := m.clearedFields[chatlog.FieldFriendID]
	return ok
}

// ResetFriendID resets all changes to the "friend_id" field.
func (m *ChatLogMutation) ResetFriendID() {
	m.friend_id = nil
	delete(m.clearedFields, chatlog.FieldFriendID)
}

// SetSessionID sets the "session_id" field.
func (m *ChatLogMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChatLogMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChatLog entity.
// If the ChatLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatLogMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *ChatLogMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[chatlog.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *ChatLogMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[chatlog.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChatLogMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, chatlog.FieldSessionID)
}

// SetChatSessionID sets the "chat_session_id" field.
func (m *ChatLogMutation) SetChatSessionID(s string) {
	m.chat_session = &s
}

// ChatSessionID returns the value of the "chat_session_id" field in the mutation.
func (m *ChatLogMutation) ChatSessionID() (r string, exists bool) {
	v := m.chat_session
	if v == nil {
		return
	}
	return *v, true
}

// OldChatSessionID returns the old "chat_session_id" field's value of the ChatLog entity.
// If the ChatLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatLogMutation) OldChatSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatSessionID: %w", err)
	}
	return oldValue.ChatSessionID, nil
}

// ClearChatSessionID clears the value of the "chat_session_id" field.
func (m *ChatLogMutation) ClearChatSessionID() {
	m.chat_session = nil
	m.clearedFields[chatlog.FieldChatSessionID] = struct{}{}
}

// ChatSessionIDCleared returns if the "chat_session_id" field was cleared in this mutation.
func (m *ChatLogMutation) ChatSessionIDCleared() bool {
	_, ok := m.clearedFields[chatlog.FieldChatSessionID]
	return ok
}

// ResetChatSessionID resets all changes to the "chat_session_id" field.
func (m *ChatLogMutation) ResetChatSessionID() {
	m.chat_session = nil
	delete(m.clearedFields, chatlog.FieldChatSessionID)
}

// SetRequestText sets the "request_text" field.
func (m *ChatLogMutation) SetRequestText(s string) {
	m.request_text = &s
}

// RequestText returns the value of the "request_text" field in the mutation.
func (m *ChatLogMutation) RequestText() (r string, exists bool) {
	v := m.request_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestText returns the old "request_text" field's value of the ChatLog entity.
// If the ChatLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatLogMutation) OldRequestText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestText: %w", err)
	}
	return oldValue.RequestText, nil
}

// ClearRequestText clears the value of the "request_text" field.
func (m *ChatLogMutation) ClearRequestText() {
	m.request_text = nil
	m.clearedFields[chatlog.FieldRequestText] = struct{}{}
}

// RequestTextCleared returns if the "request_text" field was cleared in this mutation.
func (m *ChatLogMutation) RequestTextCleared() bool {
	_, ok := m.clearedFields[chatlog.FieldRequestText]
	return ok
}

// ResetRequestText resets all changes to the "request_text" field.
func (m *ChatLogMutation) ResetRequestText() {
	m.request_text = nil
	delete(m.clearedFields, chatlog.FieldRequestText)
}

// SetResponseText sets the "response_text" field.
func (m *ChatLogMutation) SetResponseText(s string) {
	m.response_text = &s
}

// ResponseText returns the value of the "response_text" field in the mutation.
func (m *ChatLogMutation) ResponseText() (r string, exists bool) {
	v := m.response_text
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseText returns the old "response_text" field's value of the ChatLog entity.
// If the ChatLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatLogMutation) OldResponseText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseText: %w", err)
	}
	return oldValue.ResponseText, nil
}

// ClearResponseText clears the value of the "response_text" field.
func (m *ChatLogMutation) ClearResponseText() {
	m.response_text = nil
	m.clearedFields[chatlog.FieldResponseText] = struct{}{}
}

// ResponseTextCleared returns if the "response_text" field was cleared in this mutation.
func (m *ChatLogMutation) ResponseTextCleared() bool {
	_, ok := m.clearedFields[chatlog.FieldResponseText]
	return ok
}

// ResetResponseText resets all changes to the "response_text" field.
func (m *ChatLogMutation) ResetResponseText() {
	m.response_text = nil
	delete(m.clearedFields, chatlog.FieldResponseText)
}

// SetMessageType sets the "message_type" field.
func (m *ChatLogMutation) SetMessageType(ct chatlog.MessageType) {
	m.message_type = &ct
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *ChatLogMutation) MessageType() (r chatlog.MessageType, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the ChatLog entity.
// If the ChatLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatLogMutation) OldMessageType(ctx context.Context) (v chatlog.MessageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *ChatLogMutation) ResetMessageType() {
	m.message_type = nil
}

// SetMetadata sets the "metadata" field.
func (m *ChatLogMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ChatLogMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ChatLog entity.
// If the ChatLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatLogMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ChatLogMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[chatlog.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ChatLogMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[chatlog.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ChatLogMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, chatlog.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatLog entity.
// If the ChatLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *ChatLogMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[chatlog.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ChatLogMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ChatLogMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ChatLogMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearChatSession clears the "chat_session" edge to the ChatSession entity.
func (m *ChatLogMutation) ClearChatSession() {
	m.clearedchat_session = true
	m.clearedFields[chatlog.FieldChatSessionID] = struct{}{}
}

// ChatSessionCleared reports if the "chat_session" edge to the ChatSession entity was cleared.
func (m *ChatLogMutation) ChatSessionCleared() bool {
	return m.ChatSessionIDCleared() || m.clearedchat_session
}

// ChatSessionIDs returns the "chat_session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatSessionID instead. It exists only for internal usage by the builders.
func (m *ChatLogMutation) ChatSessionIDs() (ids []string) {
	if id := m.chat_session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChatSession resets all changes to the "chat_session" edge.
func (m *ChatLogMutation) ResetChatSession() {
	m.chat_session = nil
	m.clearedchat_session = false
}

// Where appends a list predicates to the ChatLogMutation builder.
func (m *ChatLogMutation) Where(ps ...predicate.ChatLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatLog).
func (m *ChatLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user != nil {
		fields = append(fields, chatlog.FieldUserID)
	}
	if m.friend_id != nil {
		fields = append(fields, chatlog.FieldFriendID)
	}
	if m.session_id != nil {
		fields = append(fields, chatlog.FieldSessionID)
	}
	if m.chat_session != nil {
		fields = append(fields, chatlog.FieldChatSessionID)
	}
	if m.request_text != nil {
		fields = append(fields, chatlog.FieldRequestText)
	}
	if m.response_text != nil {
		fields = append(fields, chatlog.FieldResponseText)
	}
	if m.message_type != nil {
		fields = append(fields, chatlog.FieldMessageType)
	}
	if m.metadata != nil {
		fields = append(fields, chatlog.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, chatlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatlog.FieldUserID:
		return m.UserID()
	case chatlog.FieldFriendID:
		return m.FriendID()
	case chatlog.FieldSessionID:
		return m.SessionID()
	case chatlog.FieldChatSessionID:
		return m.ChatSessionID()
	case chatlog.FieldRequestText:
		return m.RequestText()
	case chatlog.FieldResponseText:
		return m.ResponseText()
	case chatlog.FieldMessageType:
		return m.MessageType()
	case chatlog.FieldMetadata:
		return m.Metadata()
	case chatlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatlog.FieldUserID:
		return m.OldUserID(ctx)
	case chatlog.FieldFriendID:
		return m.OldFriendID(ctx)
	case chatlog.FieldSessionID:
		return m.OldSessionID(ctx)
	case chatlog.FieldChatSessionID:
		return m.OldChatSessionID(ctx)
	case chatlog.FieldRequestText:
		return m.OldRequestText(ctx)
	case chatlog.FieldResponseText:
		return m.OldResponseText(ctx)
	case chatlog.FieldMessageType:
		return m.OldMessageType(ctx)
	case chatlog.FieldMetadata:
		return m.OldMetadata(ctx)
	case chatlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatlog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chatlog.FieldFriendID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFriendID(v)
		return nil
	case chatlog.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chatlog.FieldChatSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatSessionID(v)
		return nil
	case chatlog.FieldRequestText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestText(v)
		return nil
	case chatlog.FieldResponseText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseText(v)
		return nil
	case chatlog.FieldMessageType:
		v, ok := value.(chatlog.MessageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case chatlog.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case chatlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatlog.FieldFriendID) {
		fields = append(fields, chatlog.FieldFriendID)
	}
	if m.FieldCleared(chatlog.FieldSessionID) {
		fields = append(fields, chatlog.FieldSessionID)
	}
	if m.FieldCleared(chatlog.FieldChatSessionID) {
		fields = append(fields, chatlog.FieldChatSessionID)
	}
	if m.FieldCleared(chatlog.FieldRequestText) {
		fields = append(fields, chatlog.FieldRequestText)
	}
	if m.FieldCleared(chatlog.FieldResponseText) {
		fields = append(fields, chatlog.FieldResponseText)
	}
	if m.FieldCleared(chatlog.FieldMetadata) {
		fields = append(fields, chatlog.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatLogMutation) ClearField(name string) error {
	switch name {
	case chatlog.FieldFriendID:
		m.ClearFriendID()
		return nil
	case chatlog.FieldSessionID:
		m.ClearSessionID()
		return nil
	case chatlog.FieldChatSessionID:
		m.ClearChatSessionID()
		return nil
	case chatlog.FieldRequestText:
		m.ClearRequestText()
		return nil
	case chatlog.FieldResponseText:
		m.ClearResponseText()
		return nil
	case chatlog.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ChatLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatLogMutation) ResetField(name string) error {
	switch name {
	case chatlog.FieldUserID:
		m.ResetUserID()
		return nil
	case chatlog.FieldFriendID:
		m.ResetFriendID()
		return nil
	case chatlog.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chatlog.FieldChatSessionID:
		m.ResetChatSessionID()
		return nil
	case chatlog.FieldRequestText:
		m.ResetRequestText()
		return nil
	case chatlog.FieldResponseText:
		m.ResetResponseText()
		return nil
	case chatlog.FieldMessageType:
		m.ResetMessageType()
		return nil
	case chatlog.FieldMetadata:
		m.ResetMetadata()
		return nil
	case chatlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, chatlog.EdgeUser)
	}
	if m.chat_session != nil {
		edges = append(edges, chatlog.EdgeChatSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatlog.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case chatlog.EdgeChatSession:
		if id := m.chat_session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, chatlog.EdgeUser)
	}
	if m.clearedchat_session {
		edges = append(edges, chatlog.EdgeChatSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatLogMutation) EdgeCleared(name string) bool {
	switch name {
	case chatlog.EdgeUser:
		return m.cleareduser
	case chatlog.EdgeChatSession:
		return m.clearedchat_session
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatLogMutation) ClearEdge(name string) error {
	switch name {
	case chatlog.EdgeUser:
		m.ClearUser()
		return nil
	case chatlog.EdgeChatSession:
		m.ClearChatSession()
		return nil
	}
	return fmt.Errorf("unknown ChatLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatLogMutation) ResetEdge(name string) error {
	switch name {
	case chatlog.EdgeUser:
		m.ResetUser()
		return nil
	case chatlog.EdgeChatSession:
		m.ResetChatSession()
		return nil
	}
	return fmt.Errorf("unknown ChatLog edge %s", name)
}

// ChatSessionMutation represents an operation that mutates the ChatSession nodes in the graph.
type ChatSessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	title         *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	logs          map[string]struct{}
	removedlogs   map[string]struct{}
	clearedlogs   bool
	done          bool
	oldValue      func(context.Context) (*ChatSession, error)
	predicates    []predicate.ChatSession
}

var _ ent.Mutation = (*ChatSessionMutation)(nil)

// chatsessionOption allows management of the mutation configuration using functional options.
type chatsessionOption func(*ChatSessionMutation)

// newChatSessionMutation creates new mutation for the ChatSession entity.
func newChatSessionMutation(c config, op Op, opts ...chatsessionOption) *ChatSessionMutation {
	m := &ChatSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeChatSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatSessionID sets the ID field of the mutation.
func withChatSessionID(id string) chatsessionOption {
	return func(m *ChatSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatSession
		)
		m.oldValue = func(ctx context.Context) (*ChatSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatSession sets the old ChatSession of the mutation.
func withChatSession(node *ChatSession) chatsessionOption {
	return func(m *ChatSessionMutation) {
		m.oldValue = func(context.Context) (*ChatSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatSession entities.
func (m *ChatSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ChatSessionMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChatSessionMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChatSessionMutation) ResetUserID() {
	m.user = nil
}

// SetTitle sets the "title" field.
func (m *ChatSessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChatSessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ChatSessionMutation) ResetTitle() {
	m.title = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *ChatSessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[chatsession.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ChatSessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ChatSessionMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ChatSessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddLogIDs adds the "logs" edge to the ChatLog entity by ids.
func (m *ChatSessionMutation) AddLogIDs(ids ...string) {
	if m.logs == nil {
		m.logs = make(map[string]struct{})
	}
	for i := range ids {
		m.logs[ids[i]] = struct{}{}
	}
}

// ClearLogs clears the "logs" edge to the ChatLog entity.
func (m *ChatSessionMutation) ClearLogs() {
	m.clearedlogs = true
}

// LogsCleared reports if the "logs" edge to the ChatLog entity was cleared.
func (m *ChatSessionMutation) LogsCleared() bool {
	return m.clearedlogs
}

// RemoveLogIDs removes the "logs" edge to the ChatLog entity by IDs.
func (m *ChatSessionMutation) RemoveLogIDs(ids ...string) {
	if m.removedlogs == nil {
		m.removedlogs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.logs, ids[i])
		m.removedlogs[ids[i]] = struct{}{}
	}
}

// RemovedLogs returns the removed IDs of the "logs" edge to the ChatLog entity.
func (m *ChatSessionMutation) RemovedLogsIDs() (ids []string) {
	for id := range m.removedlogs {
		ids = append(ids, id)
	}
	return
}

// LogsIDs returns the "logs" edge IDs in the mutation.
func (m *ChatSessionMutation) LogsIDs() (ids []string) {
	for id := range m.logs {
		ids = append(ids, id)
	}
	return
}

// ResetLogs resets all changes to the "logs" edge.
func (m *ChatSessionMutation) ResetLogs() {
	m.logs = nil
	m.clearedlogs = false
	m.removedlogs = nil
}

// Where appends a list predicates to the ChatSessionMutation builder.
func (m *ChatSessionMutation) Where(ps ...predicate.ChatSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatSession).
func (m *ChatSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatSessionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user != nil {
		fields = append(fields, chatsession.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, chatsession.FieldTitle)
	}
	if m.created_at != nil {
		fields = append(fields, chatsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldUserID:
		return m.UserID()
	case chatsession.FieldTitle:
		return m.Title()
	case chatsession.FieldCreatedAt:
		return m.CreatedAt()
	case chatsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatsession.FieldUserID:
		return m.OldUserID(ctx)
	case chatsession.FieldTitle:
		return m.OldTitle(ctx)
	case chatsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chatsession.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case chatsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChatSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatSessionMutation) ResetField(name string) error {
	switch name {
	case chatsession.FieldUserID:
		m.ResetUserID()
		return nil
	case chatsession.FieldTitle:
		m.ResetTitle()
		return nil
	case chatsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, chatsession.EdgeUser)
	}
	if m.logs != nil {
		edges = append(edges, chatsession.EdgeLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case chatsession.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.logs))
		for id := range m.logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlogs != nil {
		edges = append(edges, chatsession.EdgeLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.removedlogs))
		for id := range m.removedlogs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, chatsession.EdgeUser)
	}
	if m.clearedlogs {
		edges = append(edges, chatsession.EdgeLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case chatsession.EdgeUser:
		return m.cleareduser
	case chatsession.EdgeLogs:
		return m.clearedlogs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatSessionMutation) ClearEdge(name string) error {
	switch name {
	case chatsession.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown ChatSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatSessionMutation) ResetEdge(name string) error {
	switch name {
	case chatsession.EdgeUser:
		m.ResetUser()
		return nil
	case chatsession.EdgeLogs:
		m.ResetLogs()
		return nil
	}
	return fmt.Errorf("unknown ChatSession edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// NegotiationMessageMutation represents an operation that mutates the NegotiationMessage nodes in the graph.
type NegotiationMessageMutation struct {
	config
	op             Op
	typ            string
	id             *string
	sender_id      *string
	receiver_id    *string
	sender_name    *string
	_type          *negotiationmessage.Type
	round          *int
	addround       *int
	prose          *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*NegotiationMessage, error)
	predicates     []predicate.NegotiationMessage
}

var _ ent.Mutation = (*NegotiationMessageMutation)(nil)

// negotiationmessageOption allows management of the mutation configuration using functional options.
type negotiationmessageOption func(*NegotiationMessageMutation)

// newNegotiationMessageMutation creates new mutation for the NegotiationMessage entity.
func newNegotiationMessageMutation(c config, op Op, opts ...negotiationmessageOption) *NegotiationMessageMutation {
	m := &NegotiationMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeNegotiationMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNegotiationMessageID sets the ID field of the mutation.
func withNegotiationMessageID(id string) negotiationmessageOption {
	return func(m *NegotiationMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *NegotiationMessage
		)
		m.oldValue = func(ctx context.Context) (*NegotiationMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NegotiationMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNegotiationMessage sets the old NegotiationMessage of the mutation.
func withNegotiationMessage(node *NegotiationMessage) negotiationmessageOption {
	return func(m *NegotiationMessageMutation) {
		m.oldValue = func(context.Context) (*NegotiationMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NegotiationMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NegotiationMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NegotiationMessage entities.
func (m *NegotiationMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NegotiationMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NegotiationMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NegotiationMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *NegotiationMessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *NegotiationMessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the NegotiationMessage entity.
// If the NegotiationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *NegotiationMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetSenderID sets the "sender_id" field.
func (m *NegotiationMessageMutation) SetSenderID(s string) {
	m.sender_id = &s
}

// SenderID returns the value of the "sender_id" field in the mutation.
func (m *NegotiationMessageMutation) SenderID() (r string, exists bool) {
	v := m.sender_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderID returns the old "sender_id" field's value of the NegotiationMessage entity.
// If the NegotiationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMessageMutation) OldSenderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderID: %w", err)
	}
	return oldValue.SenderID, nil
}

// ResetSenderID resets all changes to the "sender_id" field.
func (m *NegotiationMessageMutation) ResetSenderID() {
	m.sender_id = nil
}

// SetReceiverID sets the "receiver_id" field.
func (m *NegotiationMessageMutation) SetReceiverID(s string) {
	m.receiver_id = &s
}

// ReceiverID returns the value of the "receiver_id" field in the mutation.
func (m *NegotiationMessageMutation) ReceiverID() (r string, exists bool) {
	v := m.receiver_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiverID returns the old "receiver_id" field's value of the NegotiationMessage entity.
// If the NegotiationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMessageMutation) OldReceiverID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiverID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiverID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiverID: %w", err)
	}
	return oldValue.ReceiverID, nil
}

// ClearReceiverID clears the value of the "receiver_id" field.
func (m *NegotiationMessageMutation) ClearReceiverID() {
	m.receiver_id = nil
	m.clearedFields[negotiationmessage.FieldReceiverID] = struct{}{}
}

// ReceiverIDCleared returns if the "receiver_id" field was cleared in this mutation.
func (m *NegotiationMessageMutation) ReceiverIDCleared() bool {
	_, ok := m.clearedFields[negotiationmessage.FieldReceiverID]
	return ok
}

// ResetReceiverID resets all changes to the "receiver_id" field.
func (m *NegotiationMessageMutation) ResetReceiverID() {
	m.receiver_id = nil
	delete(m.clearedFields, negotiationmessage.FieldReceiverID)
}

// SetSenderName sets the "sender_name" field.
func (m *NegotiationMessageMutation) SetSenderName(s string) {
	m.sender_name = &s
}

// SenderName returns the value of the "sender_name" field in the mutation.
func (m *NegotiationMessageMutation) SenderName() (r string, exists bool) {
	v := m.sender_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderName returns the old "sender_name" field's value of the NegotiationMessage entity.
// If the NegotiationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMessageMutation) OldSenderName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderName: %w", err)
	}
	return oldValue.SenderName, nil
}

// ResetSenderName resets all changes to the "sender_name" field.
func (m *NegotiationMessageMutation) ResetSenderName() {
	m.sender_name = nil
}

// SetType sets the "type" field.
func (m *NegotiationMessageMutation) SetType(n negotiationmessage.Type) {
	m._type = &n
}

// GetType returns the value of the "type" field in the mutation.
func (m *NegotiationMessageMutation) GetType() (r negotiationmessage.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the NegotiationMessage entity.
// If the NegotiationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMessageMutation) OldType(ctx context.Context) (v negotiationmessage.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NegotiationMessageMutation) ResetType() {
	m._type = nil
}

// SetRound sets the "round" field.
func (m *NegotiationMessageMutation) SetRound(i int) {
	m.round = &i
	m.addround = nil
}

// Round returns the value of the "round" field in the mutation.
func (m *NegotiationMessageMutation) Round() (r int, exists bool) {
	v := m.round
	if v == nil {
		return
	}
	return *v, true
}

// OldRound returns the old "round" field's value of the NegotiationMessage entity.
// If the NegotiationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMessageMutation) OldRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRound: %w", err)
	}
	return oldValue.Round, nil
}

// AddRound adds i to the "round" field.
func (m *NegotiationMessageMutation) AddRound(i int) {
	if m.addround != nil {
		*m.addround += i
	} else {
		m.addround = &i
	}
}

// AddedRound returns the value that was added to the "round" field in this mutation.
func (m *NegotiationMessageMutation) AddedRound() (r int, exists bool) {
	v := m.addround
	if v == nil {
		return
	}
	return *v, true
}

// ResetRound resets all changes to the "round" field.
func (m *NegotiationMessageMutation) ResetRound() {
	m.round = nil
	m.addround = nil
}

// SetProse sets the "prose" field.
func (m *NegotiationMessageMutation) SetProse(s string) {
	m.prose = &s
}

// Prose returns the value of the "prose" field in the mutation.
func (m *NegotiationMessageMutation) Prose() (r string, exists bool) {
	v := m.prose
	if v == nil {
		return
	}
	return *v, true
}

// OldProse returns the old "prose" field's value of the NegotiationMessage entity.
// If the NegotiationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMessageMutation) OldProse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProse: %w", err)
	}
	return oldValue.Prose, nil
}

// ResetProse resets all changes to the "prose" field.
func (m *NegotiationMessageMutation) ResetProse() {
	m.prose = nil
}

// SetPayload sets the "payload" field.
func (m *NegotiationMessageMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *NegotiationMessageMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the NegotiationMessage entity.
// If the NegotiationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMessageMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *NegotiationMessageMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[negotiationmessage.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *NegotiationMessageMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[negotiationmessage.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *NegotiationMessageMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, negotiationmessage.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *NegotiationMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NegotiationMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NegotiationMessage entity.
// If the NegotiationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NegotiationMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the NegotiationSession entity.
func (m *NegotiationMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[negotiationmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the NegotiationSession entity was cleared.
func (m *NegotiationMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *NegotiationMessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *NegotiationMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the NegotiationMessageMutation builder.
func (m *NegotiationMessageMutation) Where(ps ...predicate.NegotiationMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NegotiationMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NegotiationMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NegotiationMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NegotiationMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NegotiationMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NegotiationMessage).
func (m *NegotiationMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NegotiationMessageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session != nil {
		fields = append(fields, negotiationmessage.FieldSessionID)
	}
	if m.sender_id != nil {
		fields = append(fields, negotiationmessage.FieldSenderID)
	}
	if m.receiver_id != nil {
		fields = append(fields, negotiationmessage.FieldReceiverID)
	}
	if m.sender_name != nil {
		fields = append(fields, negotiationmessage.FieldSenderName)
	}
	if m._type != nil {
		fields = append(fields, negotiationmessage.FieldType)
	}
	if m.round != nil {
		fields = append(fields, negotiationmessage.FieldRound)
	}
	if m.prose != nil {
		fields = append(fields, negotiationmessage.FieldProse)
	}
	if m.payload != nil {
		fields = append(fields, negotiationmessage.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, negotiationmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NegotiationMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case negotiationmessage.FieldSessionID:
		return m.SessionID()
	case negotiationmessage.FieldSenderID:
		return m.SenderID()
	case negotiationmessage.FieldReceiverID:
		return m.ReceiverID()
	case negotiationmessage.FieldSenderName:
		return m.SenderName()
	case negotiationmessage.FieldType:
		return m.GetType()
	case negotiationmessage.FieldRound:
		return m.Round()
	case negotiationmessage.FieldProse:
		return m.Prose()
	case negotiationmessage.FieldPayload:
		return m.Payload()
	case negotiationmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NegotiationMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case negotiationmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case negotiationmessage.FieldSenderID:
		return m.OldSenderID(ctx)
	case negotiationmessage.FieldReceiverID:
		return m.OldReceiverID(ctx)
	case negotiationmessage.FieldSenderName:
		return m.OldSenderName(ctx)
	case negotiationmessage.FieldType:
		return m.OldType(ctx)
	case negotiationmessage.FieldRound:
		return m.OldRound(ctx)
	case negotiationmessage.FieldProse:
		return m.OldProse(ctx)
	case negotiationmessage.FieldPayload:
		return m.OldPayload(ctx)
	case negotiationmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NegotiationMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NegotiationMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case negotiationmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case negotiationmessage.FieldSenderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderID(v)
		return nil
	case negotiationmessage.FieldReceiverID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiverID(v)
		return nil
	case negotiationmessage.FieldSenderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderName(v)
		return nil
	case negotiationmessage.FieldType:
		v, ok := value.(negotiationmessage.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case negotiationmessage.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRound(v)
		return nil
	case negotiationmessage.FieldProse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProse(v)
		return nil
	case negotiationmessage.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case negotiationmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NegotiationMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NegotiationMessageMutation) AddedFields() []string {
	var fields []string
	if m.addround != nil {
		fields = append(fields, negotiationmessage.FieldRound)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NegotiationMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case negotiationmessage.FieldRound:
		return m.AddedRound()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NegotiationMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case negotiationmessage.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRound(v)
		return nil
	}
	return fmt.Errorf("unknown NegotiationMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NegotiationMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(negotiationmessage.FieldReceiverID) {
		fields = append(fields, negotiationmessage.FieldReceiverID)
	}
	if m.FieldCleared(negotiationmessage.FieldPayload) {
		fields = append(fields, negotiationmessage.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NegotiationMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NegotiationMessageMutation) ClearField(name string) error {
	switch name {
	case negotiationmessage.FieldReceiverID:
		m.ClearReceiverID()
		return nil
	case negotiationmessage.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown NegotiationMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NegotiationMessageMutation) ResetField(name string) error {
	switch name {
	case negotiationmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case negotiationmessage.FieldSenderID:
		m.ResetSenderID()
		return nil
	case negotiationmessage.FieldReceiverID:
		m.ResetReceiverID()
		return nil
	case negotiationmessage.FieldSenderName:
		m.ResetSenderName()
		return nil
	case negotiationmessage.FieldType:
		m.ResetType()
		return nil
	case negotiationmessage.FieldRound:
		m.ResetRound()
		return nil
	case negotiationmessage.FieldProse:
		m.ResetProse()
		return nil
	case negotiationmessage.FieldPayload:
		m.ResetPayload()
		return nil
	case negotiationmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown NegotiationMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NegotiationMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, negotiationmessage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NegotiationMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case negotiationmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NegotiationMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NegotiationMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NegotiationMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, negotiationmessage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NegotiationMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case negotiationmessage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NegotiationMessageMutation) ClearEdge(name string) error {
	switch name {
	case negotiationmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown NegotiationMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NegotiationMessageMutation) ResetEdge(name string) error {
	switch name {
	case negotiationmessage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown NegotiationMessage edge %s", name)
}

// NegotiationSessionMutation represents an operation that mutates the NegotiationSession nodes in the graph.
type NegotiationSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	target_id             *string
	participant_ids       *[]string
	appendparticipant_ids []string
	intent                *string
	status                *negotiationsession.Status
	time_window           *map[string]interface{}
	place_pref            *map[string]interface{}
	final_event_id        *string
	error_message         *string
	started_at            *time.Time
	completed_at          *time.Time
	last_heartbeat_at     *time.Time
	deleted_at            *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	initiator             *string
	clearedinitiator      bool
	messages              map[string]struct{}
	removedmessages       map[string]struct{}
	clearedmessages       bool
	done                  bool
	oldValue              func(context.Context) (*NegotiationSession, error)
	predicates            []predicate.NegotiationSession
}

var _ ent.Mutation = (*NegotiationSessionMutation)(nil)

// negotiationsessionOption allows management of the mutation configuration using functional options.
type negotiationsessionOption func(*NegotiationSessionMutation)

// newNegotiationSessionMutation creates new mutation for the NegotiationSession entity.
func newNegotiationSessionMutation(c config, op Op, opts ...negotiationsessionOption) *NegotiationSessionMutation {
	m := &NegotiationSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeNegotiationSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNegotiationSessionID sets the ID field of the mutation.
func withNegotiationSessionID(id string) negotiationsessionOption {
	return func(m *NegotiationSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *NegotiationSession
		)
		m.oldValue = func(ctx context.Context) (*NegotiationSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NegotiationSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNegotiationSession sets the old NegotiationSession of the mutation.
func withNegotiationSession(node *NegotiationSession) negotiationsessionOption {
	return func(m *NegotiationSessionMutation) {
		m.oldValue = func(context.Context) (*NegotiationSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NegotiationSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NegotiationSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NegotiationSession entities.
func (m *NegotiationSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NegotiationSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NegotiationSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NegotiationSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInitiatorID sets the "initiator_id" field.
func (m *NegotiationSessionMutation) SetInitiatorID(s string) {
	m.initiator = &s
}

// InitiatorID returns the value of the "initiator_id" field in the mutation.
func (m *NegotiationSessionMutation) InitiatorID() (r string, exists bool) {
	v := m.initiator
	if v == nil {
		return
	}
	return *v, true
}

// OldInitiatorID returns the old "initiator_id" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldInitiatorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitiatorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitiatorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitiatorID: %w", err)
	}
	return oldValue.InitiatorID, nil
}

// ResetInitiatorID resets all changes to the "initiator_id" field.
func (m *NegotiationSessionMutation) ResetInitiatorID() {
	m.initiator = nil
}

// SetTargetID sets the "target_id" field.
func (m *NegotiationSessionMutation) SetTargetID(s string) {
	m.target_id = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *NegotiationSessionMutation) TargetID() (r string, exists bool) {
	v := m.target_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldTargetID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ClearTargetID clears the value of the "target_id" field.
func (m *NegotiationSessionMutation) ClearTargetID() {
	m.target_id = nil
	m.clearedFields[negotiationsession.FieldTargetID] = struct{}{}
}

// TargetIDCleared returns if the "target_id" field was cleared in this mutation.
func (m *NegotiationSessionMutation) TargetIDCleared() bool {
	_, ok := m.clearedFields[negotiationsession.FieldTargetID]
	return ok
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *NegotiationSessionMutation) ResetTargetID() {
	m.target_id = nil
	delete(m.clearedFields, negotiationsession.FieldTargetID)
}

// SetParticipantIds sets the "participant_ids" field.
func (m *NegotiationSessionMutation) SetParticipantIds(s []string) {
	m.participant_ids = &s
	m.appendparticipant_ids = nil
}

// ParticipantIds returns the value of the "participant_ids" field in the mutation.
func (m *NegotiationSessionMutation) ParticipantIds() (r []string, exists bool) {
	v := m.participant_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantIds returns the old "participant_ids" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldParticipantIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantIds: %w", err)
	}
	return oldValue.ParticipantIds, nil
}

// AppendParticipantIds adds s to the "participant_ids" field.
func (m *NegotiationSessionMutation) AppendParticipantIds(s []string) {
	m.appendparticipant_ids = append(m.appendparticipant_ids, s...)
}

// AppendedParticipantIds returns the list of values that were appended to the "participant_ids" field in this mutation.
func (m *NegotiationSessionMutation) AppendedParticipantIds() ([]string, bool) {
	if len(m.appendparticipant_ids) == 0 {
		return nil, false
	}
	return m.appendparticipant_ids, true
}

// ResetParticipantIds resets all changes to the "participant_ids" field.
func (m *NegotiationSessionMutation) ResetParticipantIds() {
	m.participant_ids = nil
	m.appendparticipant_ids = nil
}

// SetIntent sets the "intent" field.
func (m *NegotiationSessionMutation) SetIntent(s string) {
	m.intent = &s
}

// Intent returns the value of the "intent" field in the mutation.
func (m *NegotiationSessionMutation) Intent() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ResetIntent resets all changes to the "intent" field.
func (m *NegotiationSessionMutation) ResetIntent() {
	m.intent = nil
}

// SetStatus sets the "status" field.
func (m *NegotiationSessionMutation) SetStatus(n negotiationsession.Status) {
	m.status = &n
}

// Status returns the value of the "status" field in the mutation.
func (m *NegotiationSessionMutation) Status() (r negotiationsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldStatus(ctx context.Context) (v negotiationsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *NegotiationSessionMutation) ResetStatus() {
	m.status = nil
}

// SetTimeWindow sets the "time_window" field.
func (m *NegotiationSessionMutation) SetTimeWindow(value map[string]interface{}) {
	m.time_window = &value
}

// TimeWindow returns the value of the "time_window" field in the mutation.
func (m *NegotiationSessionMutation) TimeWindow() (r map[string]interface{}, exists bool) {
	v := m.time_window
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeWindow returns the old "time_window" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldTimeWindow(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeWindow: %w", err)
	}
	return oldValue.TimeWindow, nil
}

// ClearTimeWindow clears the value of the "time_window" field.
func (m *NegotiationSessionMutation) ClearTimeWindow() {
	m.time_window = nil
	m.clearedFields[negotiationsession.FieldTimeWindow] = struct{}{}
}

// TimeWindowCleared returns if the "time_window" field was cleared in this mutation.
func (m *NegotiationSessionMutation) TimeWindowCleared() bool {
	_, ok := m.clearedFields[negotiationsession.FieldTimeWindow]
	return ok
}

// ResetTimeWindow resets all changes to the "time_window" field.
func (m *NegotiationSessionMutation) ResetTimeWindow() {
	m.time_window = nil
	delete(m.clearedFields, negotiationsession.FieldTimeWindow)
}

// SetPlacePref sets the "place_pref" field.
func (m *NegotiationSessionMutation) SetPlacePref(value map[string]interface{}) {
	m.place_pref = &value
}

// PlacePref returns the value of the "place_pref" field in the mutation.
func (m *NegotiationSessionMutation) PlacePref() (r map[string]interface{}, exists bool) {
	v := m.place_pref
	if v == nil {
		return
	}
	return *v, true
}

// OldPlacePref returns the old "place_pref" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldPlacePref(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlacePref is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlacePref requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlacePref: %w", err)
	}
	return oldValue.PlacePref, nil
}

// ClearPlacePref clears the value of the "place_pref" field.
func (m *NegotiationSessionMutation) ClearPlacePref() {
	m.place_pref = nil
	m.clearedFields[negotiationsession.FieldPlacePref] = struct{}{}
}

// PlacePrefCleared returns if the "place_pref" field was cleared in this mutation.
func (m *NegotiationSessionMutation) PlacePrefCleared() bool {
	_, ok := m.clearedFields[negotiationsession.FieldPlacePref]
	return ok
}

// ResetPlacePref resets all changes to the "place_pref" field.
func (m *NegotiationSessionMutation) ResetPlacePref() {
	m.place_pref = nil
	delete(m.clearedFields, negotiationsession.FieldPlacePref)
}

// SetFinalEventID sets the "final_event_id" field.
func (m *NegotiationSessionMutation) SetFinalEventID(s string) {
	m.final_event_id = &s
}

// FinalEventID returns the value of the "final_event_id" field in the mutation.
func (m *NegotiationSessionMutation) FinalEventID() (r string, exists bool) {
	v := m.final_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalEventID returns the old "final_event_id" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldFinalEventID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalEventID: %w", err)
	}
	return oldValue.FinalEventID, nil
}

// ClearFinalEventID clears the value of the "final_event_id" field.
func (m *NegotiationSessionMutation) ClearFinalEventID() {
	m.final_event_id = nil
	m.clearedFields[negotiationsession.FieldFinalEventID] = struct{}{}
}

// FinalEventIDCleared returns if the "final_event_id" field was cleared in this mutation.
func (m *NegotiationSessionMutation) FinalEventIDCleared() bool {
	_, ok := m.clearedFields[negotiationsession.FieldFinalEventID]
	return ok
}

// ResetFinalEventID resets all changes to the "final_event_id" field.
func (m *NegotiationSessionMutation) ResetFinalEventID() {
	m.final_event_id = nil
	delete(m.clearedFields, negotiationsession.FieldFinalEventID)
}

// SetErrorMessage sets the "error_message" field.
func (m *NegotiationSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *NegotiationSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *NegotiationSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[negotiationsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *NegotiationSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[negotiationsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *NegotiationSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, negotiationsession.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *NegotiationSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *NegotiationSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *NegotiationSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[negotiationsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *NegotiationSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[negotiationsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *NegotiationSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, negotiationsession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *NegotiationSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *NegotiationSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *NegotiationSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[negotiationsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *NegotiationSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[negotiationsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *NegotiationSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, negotiationsession.FieldCompletedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *NegotiationSessionMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *NegotiationSessionMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *NegotiationSessionMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[negotiationsession.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *NegotiationSessionMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[negotiationsession.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *NegotiationSessionMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, negotiationsession.FieldLastHeartbeatAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *NegotiationSessionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *NegotiationSessionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *NegotiationSessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[negotiationsession.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *NegotiationSessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[negotiationsession.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *NegotiationSessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, negotiationsession.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *NegotiationSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NegotiationSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NegotiationSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NegotiationSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NegotiationSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NegotiationSession entity.
// If the NegotiationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NegotiationSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearInitiator clears the "initiator" edge to the User entity.
func (m *NegotiationSessionMutation) ClearInitiator() {
	m.clearedinitiator = true
	m.clearedFields[negotiationsession.FieldInitiatorID] = struct{}{}
}

// InitiatorCleared reports if the "initiator" edge to the User entity was cleared.
func (m *NegotiationSessionMutation) InitiatorCleared() bool {
	return m.clearedinitiator
}

// InitiatorIDs returns the "initiator" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InitiatorID instead. It exists only for internal usage by the builders.
func (m *NegotiationSessionMutation) InitiatorIDs() (ids []string) {
	if id := m.initiator; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInitiator resets all changes to the "initiator" edge.
func (m *NegotiationSessionMutation) ResetInitiator() {
	m.initiator = nil
	m.clearedinitiator = false
}

// AddMessageIDs adds the "messages" edge to the NegotiationMessage entity by ids.
func (m *NegotiationSessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the NegotiationMessage entity.
func (m *NegotiationSessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the NegotiationMessage entity was cleared.
func (m *NegotiationSessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the NegotiationMessage entity by IDs.
func (m *NegotiationSessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the NegotiationMessage entity.
func (m *NegotiationSessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *NegotiationSessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *NegotiationSessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the NegotiationSessionMutation builder.
func (m *NegotiationSessionMutation) Where(ps ...predicate.NegotiationSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NegotiationSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NegotiationSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NegotiationSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NegotiationSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NegotiationSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NegotiationSession).
func (m *NegotiationSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NegotiationSessionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.initiator != nil {
		fields = append(fields, negotiationsession.FieldInitiatorID)
	}
	if m.target_id != nil {
		fields = append(fields, negotiationsession.FieldTargetID)
	}
	if m.participant_ids != nil {
		fields = append(fields, negotiationsession.FieldParticipantIds)
	}
	if m.intent != nil {
		fields = append(fields, negotiationsession.FieldIntent)
	}
	if m.status != nil {
		fields = append(fields, negotiationsession.FieldStatus)
	}
	if m.time_window != nil {
		fields = append(fields, negotiationsession.FieldTimeWindow)
	}
	if m.place_pref != nil {
		fields = append(fields, negotiationsession.FieldPlacePref)
	}
	if m.final_event_id != nil {
		fields = append(fields, negotiationsession.FieldFinalEventID)
	}
	if m.error_message != nil {
		fields = append(fields, negotiationsession.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, negotiationsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, negotiationsession.FieldCompletedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, negotiationsession.FieldLastHeartbeatAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, negotiationsession.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, negotiationsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, negotiationsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NegotiationSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case negotiationsession.FieldInitiatorID:
		return m.InitiatorID()
	case negotiationsession.FieldTargetID:
		return m.TargetID()
	case negotiationsession.FieldParticipantIds:
		return m.ParticipantIds()
	case negotiationsession.FieldIntent:
		return m.Intent()
	case negotiationsession.FieldStatus:
		return m.Status()
	case negotiationsession.FieldTimeWindow:
		return m.TimeWindow()
	case negotiationsession.FieldPlacePref:
		return m.PlacePref()
	case negotiationsession.FieldFinalEventID:
		return m.FinalEventID()
	case negotiationsession.FieldErrorMessage:
		return m.ErrorMessage()
	case negotiationsession.FieldStartedAt:
		return m.StartedAt()
	case negotiationsession.FieldCompletedAt:
		return m.CompletedAt()
	case negotiationsession.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case negotiationsession.FieldDeletedAt:
		return m.DeletedAt()
	case negotiationsession.FieldCreatedAt:
		return m.CreatedAt()
	case negotiationsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NegotiationSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case negotiationsession.FieldInitiatorID:
		return m.OldInitiatorID(ctx)
	case negotiationsession.FieldTargetID:
		return m.OldTargetID(ctx)
	case negotiationsession.FieldParticipantIds:
		return m.OldParticipantIds(ctx)
	case negotiationsession.FieldIntent:
		return m.OldIntent(ctx)
	case negotiationsession.FieldStatus:
		return m.OldStatus(ctx)
	case negotiationsession.FieldTimeWindow:
		return m.OldTimeWindow(ctx)
	case negotiationsession.FieldPlacePref:
		return m.OldPlacePref(ctx)
	case negotiationsession.FieldFinalEventID:
		return m.OldFinalEventID(ctx)
	case negotiationsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case negotiationsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case negotiationsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case negotiationsession.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case negotiationsession.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case negotiationsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case negotiationsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NegotiationSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NegotiationSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case negotiationsession.FieldInitiatorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitiatorID(v)
		return nil
	case negotiationsession.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case negotiationsession.FieldParticipantIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantIds(v)
		return nil
	case negotiationsession.FieldIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case negotiationsession.FieldStatus:
		v, ok := value.(negotiationsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case negotiationsession.FieldTimeWindow:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeWindow(v)
		return nil
	case negotiationsession.FieldPlacePref:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlacePref(v)
		return nil
	case negotiationsession.FieldFinalEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalEventID(v)
		return nil
	case negotiationsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case negotiationsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case negotiationsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case negotiationsession.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case negotiationsession.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case negotiationsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case negotiationsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NegotiationSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NegotiationSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NegotiationSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NegotiationSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NegotiationSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NegotiationSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(negotiationsession.FieldTargetID) {
		fields = append(fields, negotiationsession.FieldTargetID)
	}
	if m.FieldCleared(negotiationsession.FieldTimeWindow) {
		fields = append(fields, negotiationsession.FieldTimeWindow)
	}
	if m.FieldCleared(negotiationsession.FieldPlacePref) {
		fields = append(fields, negotiationsession.FieldPlacePref)
	}
	if m.FieldCleared(negotiationsession.FieldFinalEventID) {
		fields = append(fields, negotiationsession.FieldFinalEventID)
	}
	if m.FieldCleared(negotiationsession.FieldErrorMessage) {
		fields = append(fields, negotiationsession.FieldErrorMessage)
	}
	if m.FieldCleared(negotiationsession.FieldStartedAt) {
		fields = append(fields, negotiationsession.FieldStartedAt)
	}
	if m.FieldCleared(negotiationsession.FieldCompletedAt) {
		fields = append(fields, negotiationsession.FieldCompletedAt)
	}
	if m.FieldCleared(negotiationsession.FieldLastHeartbeatAt) {
		fields = append(fields, negotiationsession.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(negotiationsession.FieldDeletedAt) {
		fields = append(fields, negotiationsession.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NegotiationSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NegotiationSessionMutation) ClearField(name string) error {
	switch name {
	case negotiationsession.FieldTargetID:
		m.ClearTargetID()
		return nil
	case negotiationsession.FieldTimeWindow:
		m.ClearTimeWindow()
		return nil
	case negotiationsession.FieldPlacePref:
		m.ClearPlacePref()
		return nil
	case negotiationsession.FieldFinalEventID:
		m.ClearFinalEventID()
		return nil
	case negotiationsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case negotiationsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case negotiationsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case negotiationsession.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case negotiationsession.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown NegotiationSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NegotiationSessionMutation) ResetField(name string) error {
	switch name {
	case negotiationsession.FieldInitiatorID:
		m.ResetInitiatorID()
		return nil
	case negotiationsession.FieldTargetID:
		m.ResetTargetID()
		return nil
	case negotiationsession.FieldParticipantIds:
		m.ResetParticipantIds()
		return nil
	case negotiationsession.FieldIntent:
		m.ResetIntent()
		return nil
	case negotiationsession.FieldStatus:
		m.ResetStatus()
		return nil
	case negotiationsession.FieldTimeWindow:
		m.ResetTimeWindow()
		return nil
	case negotiationsession.FieldPlacePref:
		m.ResetPlacePref()
		return nil
	case negotiationsession.FieldFinalEventID:
		m.ResetFinalEventID()
		return nil
	case negotiationsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case negotiationsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case negotiationsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case negotiationsession.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case negotiationsession.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case negotiationsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case negotiationsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown NegotiationSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NegotiationSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.initiator != nil {
		edges = append(edges, negotiationsession.EdgeInitiator)
	}
	if m.messages != nil {
		edges = append(edges, negotiationsession.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NegotiationSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case negotiationsession.EdgeInitiator:
		if id := m.initiator; id != nil {
			return []ent.Value{*id}
		}
	case negotiationsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NegotiationSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, negotiationsession.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NegotiationSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case negotiationsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NegotiationSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedinitiator {
		edges = append(edges, negotiationsession.EdgeInitiator)
	}
	if m.clearedmessages {
		edges = append(edges, negotiationsession.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NegotiationSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case negotiationsession.EdgeInitiator:
		return m.clearedinitiator
	case negotiationsession.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NegotiationSessionMutation) ClearEdge(name string) error {
	switch name {
	case negotiationsession.EdgeInitiator:
		m.ClearInitiator()
		return nil
	}
	return fmt.Errorf("unknown NegotiationSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NegotiationSessionMutation) ResetEdge(name string) error {
	switch name {
	case negotiationsession.EdgeInitiator:
		m.ResetInitiator()
		return nil
	case negotiationsession.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown NegotiationSession edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	name                      *string
	email                     *string
	access_token              *string
	refresh_token             *string
	token_expiry              *time.Time
	timezone                  *string
	created_at                *time.Time
	clearedFields             map[string]struct{}
	initiated_sessions        map[string]struct{}
	removedinitiated_sessions map[string]struct{}
	clearedinitiated_sessions bool
	chat_logs                 map[string]struct{}
	removedchat_logs          map[string]struct{}
	clearedchat_logs          bool
	chat_sessions             map[string]struct{}
	removedchat_sessions      map[string]struct{}
	clearedchat_sessions      bool
	calendar_events           map[string]struct{}
	removedcalendar_events    map[string]struct{}
	clearedcalendar_events    bool
	done                      bool
	oldValue                  func(context.Context) (*User, error)
	predicates                []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetAccessToken sets the "access_token" field.
func (m *UserMutation) SetAccessToken(s string) {
	m.access_token = &s
}

// AccessToken returns the value of the "access_token" field in the mutation.
func (m *UserMutation) AccessToken() (r string, exists bool) {
	v := m.access_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessToken returns the old "access_token" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAccessToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessToken: %w", err)
	}
	return oldValue.AccessToken, nil
}

// ClearAccessToken clears the value of the "access_token" field.
func (m *UserMutation) ClearAccessToken() {
	m.access_token = nil
	m.clearedFields[user.FieldAccessToken] = struct{}{}
}

// AccessTokenCleared returns if the "access_token" field was cleared in this mutation.
func (m *UserMutation) AccessTokenCleared() bool {
	_, ok := m.clearedFields[user.FieldAccessToken]
	return ok
}

// ResetAccessToken resets all changes to the "access_token" field.
func (m *UserMutation) ResetAccessToken() {
	m.access_token = nil
	delete(m.clearedFields, user.FieldAccessToken)
}

// SetRefreshToken sets the "refresh_token" field.
func (m *UserMutation) SetRefreshToken(s string) {
	m.refresh_token = &s
}

// RefreshToken returns the value of the "refresh_token" field in the mutation.
func (m *UserMutation) RefreshToken() (r string, exists bool) {
	v := m.refresh_token
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshToken returns the old "refresh_token" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRefreshToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshToken: %w", err)
	}
	return oldValue.RefreshToken, nil
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (m *UserMutation) ClearRefreshToken() {
	m.refresh_token = nil
	m.clearedFields[user.FieldRefreshToken] = struct{}{}
}

// RefreshTokenCleared returns if the "refresh_token" field was cleared in this mutation.
func (m *UserMutation) RefreshTokenCleared() bool {
	_, ok := m.clearedFields[user.FieldRefreshToken]
	return ok
}

// ResetRefreshToken resets all changes to the "refresh_token" field.
func (m *UserMutation) ResetRefreshToken() {
	m.refresh_token = nil
	delete(m.clearedFields, user.FieldRefreshToken)
}

// SetTokenExpiry sets the "token_expiry" field.
func (m *UserMutation) SetTokenExpiry(t time.Time) {
	m.token_expiry = &t
}

// TokenExpiry returns the value of the "token_expiry" field in the mutation.
func (m *UserMutation) TokenExpiry() (r time.Time, exists bool) {
	v := m.token_expiry
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenExpiry returns the old "token_expiry" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTokenExpiry(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenExpiry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenExpiry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenExpiry: %w", err)
	}
	return oldValue.TokenExpiry, nil
}

// ClearTokenExpiry clears the value of the "token_expiry" field.
func (m *UserMutation) ClearTokenExpiry() {
	m.token_expiry = nil
	m.clearedFields[user.FieldTokenExpiry] = struct{}{}
}

// TokenExpiryCleared returns if the "token_expiry" field was cleared in this mutation.
func (m *UserMutation) TokenExpiryCleared() bool {
	_, ok := m.clearedFields[user.FieldTokenExpiry]
	return ok
}

// ResetTokenExpiry resets all changes to the "token_expiry" field.
func (m *UserMutation) ResetTokenExpiry() {
	m.token_expiry = nil
	delete(m.clearedFields, user.FieldTokenExpiry)
}

// SetTimezone sets the "timezone" field.
func (m *UserMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *UserMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *UserMutation) ResetTimezone() {
	m.timezone = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddInitiatedSessionIDs adds the "initiated_sessions" edge to the NegotiationSession entity by ids.
func (m *UserMutation) AddInitiatedSessionIDs(ids ...string) {
	if m.initiated_sessions == nil {
		m.initiated_sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.initiated_sessions[ids[i]] = struct{}{}
	}
}

// ClearInitiatedSessions clears the "initiated_sessions" edge to the NegotiationSession entity.
func (m *UserMutation) ClearInitiatedSessions() {
	m.clearedinitiated_sessions = true
}

// InitiatedSessionsCleared reports if the "initiated_sessions" edge to the NegotiationSession entity was cleared.
func (m *UserMutation) InitiatedSessionsCleared() bool {
	return m.clearedinitiated_sessions
}

// RemoveInitiatedSessionIDs removes the "initiated_sessions" edge to the NegotiationSession entity by IDs.
func (m *UserMutation) RemoveInitiatedSessionIDs(ids ...string) {
	if m.removedinitiated_sessions == nil {
		m.removedinitiated_sessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.initiated_sessions, ids[i])
		m.removedinitiated_sessions[ids[i]] = struct{}{}
	}
}

// RemovedInitiatedSessions returns the removed IDs of the "initiated_sessions" edge to the NegotiationSession entity.
func (m *UserMutation) RemovedInitiatedSessionsIDs() (ids []string) {
	for id := range m.removedinitiated_sessions {
		ids = append(ids, id)
	}
	return
}

// InitiatedSessionsIDs returns the "initiated_sessions" edge IDs in the mutation.
func (m *UserMutation) InitiatedSessionsIDs() (ids []string) {
	for id := range m.initiated_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetInitiatedSessions resets all changes to the "initiated_sessions" edge.
func (m *UserMutation) ResetInitiatedSessions() {
	m.initiated_sessions = nil
	m.clearedinitiated_sessions = false
	m.removedinitiated_sessions = nil
}

// AddChatLogIDs adds the "chat_logs" edge to the ChatLog entity by ids.
func (m *UserMutation) AddChatLogIDs(ids ...string) {
	if m.chat_logs == nil {
		m.chat_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_logs[ids[i]] = struct{}{}
	}
}

// ClearChatLogs clears the "chat_logs" edge to the ChatLog entity.
func (m *UserMutation) ClearChatLogs() {
	m.clearedchat_logs = true
}

// ChatLogsCleared reports if the "chat_logs" edge to the ChatLog entity was cleared.
func (m *UserMutation) ChatLogsCleared() bool {
	return m.clearedchat_logs
}

// RemoveChatLogIDs removes the "chat_logs" edge to the ChatLog entity by IDs.
func (m *UserMutation) RemoveChatLogIDs(ids ...string) {
	if m.removedchat_logs == nil {
		m.removedchat_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_logs, ids[i])
		m.removedchat_logs[ids[i]] = struct{}{}
	}
}

// RemovedChatLogs returns the removed IDs of the "chat_logs" edge to the ChatLog entity.
func (m *UserMutation) RemovedChatLogsIDs() (ids []string) {
	for id := range m.removedchat_logs {
		ids = append(ids, id)
	}
	return
}

// ChatLogsIDs returns the "chat_logs" edge IDs in the mutation.
func (m *UserMutation) ChatLogsIDs() (ids []string) {
	for id := range m.chat_logs {
		ids = append(ids, id)
	}
	return
}

// ResetChatLogs resets all changes to the "chat_logs" edge.
func (m *UserMutation) ResetChatLogs() {
	m.chat_logs = nil
	m.clearedchat_logs = false
	m.removedchat_logs = nil
}

// AddChatSessionIDs adds the "chat_sessions" edge to the ChatSession entity by ids.
func (m *UserMutation) AddChatSessionIDs(ids ...string) {
	if m.chat_sessions == nil {
		m.chat_sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_sessions[ids[i]] = struct{}{}
	}
}

// ClearChatSessions clears the "chat_sessions" edge to the ChatSession entity.
func (m *UserMutation) ClearChatSessions() {
	m.clearedchat_sessions = true
}

// ChatSessionsCleared reports if the "chat_sessions" edge to the ChatSession entity was cleared.
func (m *UserMutation) ChatSessionsCleared() bool {
	return m.clearedchat_sessions
}

// RemoveChatSessionIDs removes the "chat_sessions" edge to the ChatSession entity by IDs.
func (m *UserMutation) RemoveChatSessionIDs(ids ...string) {
	if m.removedchat_sessions == nil {
		m.removedchat_sessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_sessions, ids[i])
		m.removedchat_sessions[ids[i]] = struct{}{}
	}
}

// RemovedChatSessions returns the removed IDs of the "chat_sessions" edge to the ChatSession entity.
func (m *UserMutation) RemovedChatSessionsIDs() (ids []string) {
	for id := range m.removedchat_sessions {
		ids = append(ids, id)
	}
	return
}

// ChatSessionsIDs returns the "chat_sessions" edge IDs in the mutation.
func (m *UserMutation) ChatSessionsIDs() (ids []string) {
	for id := range m.chat_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetChatSessions resets all changes to the "chat_sessions" edge.
func (m *UserMutation) ResetChatSessions() {
	m.chat_sessions = nil
	m.clearedchat_sessions = false
	m.removedchat_sessions = nil
}

// AddCalendarEventIDs adds the "calendar_events" edge to the CalendarEvent entity by ids.
func (m *UserMutation) AddCalendarEventIDs(ids ...string) {
	if m.calendar_events == nil {
		m.calendar_events = make(map[string]struct{})
	}
	for i := range ids {
		m.calendar_events[ids[i]] = struct{}{}
	}
}

// ClearCalendarEvents clears the "calendar_events" edge to the CalendarEvent entity.
func (m *UserMutation) ClearCalendarEvents() {
	m.clearedcalendar_events = true
}

// CalendarEventsCleared reports if the "calendar_events" edge to the CalendarEvent entity was cleared.
func (m *UserMutation) CalendarEventsCleared() bool {
	return m.clearedcalendar_events
}

// RemoveCalendarEventIDs removes the "calendar_events" edge to the CalendarEvent entity by IDs.
func (m *UserMutation) RemoveCalendarEventIDs(ids ...string) {
	if m.removedcalendar_events == nil {
		m.removedcalendar_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.calendar_events, ids[i])
		m.removedcalendar_events[ids[i]] = struct{}{}
	}
}

// RemovedCalendarEvents returns the removed IDs of the "calendar_events" edge to the CalendarEvent entity.
func (m *UserMutation) RemovedCalendarEventsIDs() (ids []string) {
	for id := range m.removedcalendar_events {
		ids = append(ids, id)
	}
	return
}

// CalendarEventsIDs returns the "calendar_events" edge IDs in the mutation.
func (m *UserMutation) CalendarEventsIDs() (ids []string) {
	for id := range m.calendar_events {
		ids = append(ids, id)
	}
	return
}

// ResetCalendarEvents resets all changes to the "calendar_events" edge.
func (m *UserMutation) ResetCalendarEvents() {
	m.calendar_events = nil
	m.clearedcalendar_events = false
	m.removedcalendar_events = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.access_token != nil {
		fields = append(fields, user.FieldAccessToken)
	}
	if m.refresh_token != nil {
		fields = append(fields, user.FieldRefreshToken)
	}
	if m.token_expiry != nil {
		fields = append(fields, user.FieldTokenExpiry)
	}
	if m.timezone != nil {
		fields = append(fields, user.FieldTimezone)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldAccessToken:
		return m.AccessToken()
	case user.FieldRefreshToken:
		return m.RefreshToken()
	case user.FieldTokenExpiry:
		return m.TokenExpiry()
	case user.FieldTimezone:
		return m.Timezone()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldAccessToken:
		return m.OldAccessToken(ctx)
	case user.FieldRefreshToken:
		return m.OldRefreshToken(ctx)
	case user.FieldTokenExpiry:
		return m.OldTokenExpiry(ctx)
	case user.FieldTimezone:
		return m.OldTimezone(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldAccessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessToken(v)
		return nil
	case user.FieldRefreshToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshToken(v)
		return nil
	case user.FieldTokenExpiry:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenExpiry(v)
		return nil
	case user.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldAccessToken) {
		fields = append(fields, user.FieldAccessToken)
	}
	if m.FieldCleared(user.FieldRefreshToken) {
		fields = append(fields, user.FieldRefreshToken)
	}
	if m.FieldCleared(user.FieldTokenExpiry) {
		fields = append(fields, user.FieldTokenExpiry)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldAccessToken:
		m.ClearAccessToken()
		return nil
	case user.FieldRefreshToken:
		m.ClearRefreshToken()
		return nil
	case user.FieldTokenExpiry:
		m.ClearTokenExpiry()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldAccessToken:
		m.ResetAccessToken()
		return nil
	case user.FieldRefreshToken:
		m.ResetRefreshToken()
		return nil
	case user.FieldTokenExpiry:
		m.ResetTokenExpiry()
		return nil
	case user.FieldTimezone:
		m.ResetTimezone()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.initiated_sessions != nil {
		edges = append(edges, user.EdgeInitiatedSessions)
	}
	if m.chat_logs != nil {
		edges = append(edges, user.EdgeChatLogs)
	}
	if m.chat_sessions != nil {
		edges = append(edges, user.EdgeChatSessions)
	}
	if m.calendar_events != nil {
		edges = append(edges, user.EdgeCalendarEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeInitiatedSessions:
		ids := make([]ent.Value, 0, len(m.initiated_sessions))
		for id := range m.initiated_sessions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeChatLogs:
		ids := make([]ent.Value, 0, len(m.chat_logs))
		for id := range m.chat_logs {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeChatSessions:
		ids := make([]ent.Value, 0, len(m.chat_sessions))
		for id := range m.chat_sessions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCalendarEvents:
		ids := make([]ent.Value, 0, len(m.calendar_events))
		for id := range m.calendar_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedinitiated_sessions != nil {
		edges = append(edges, user.EdgeInitiatedSessions)
	}
	if m.removedchat_logs != nil {
		edges = append(edges, user.EdgeChatLogs)
	}
	if m.removedchat_sessions != nil {
		edges = append(edges, user.EdgeChatSessions)
	}
	if m.removedcalendar_events != nil {
		edges = append(edges, user.EdgeCalendarEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeInitiatedSessions:
		ids := make([]ent.Value, 0, len(m.removedinitiated_sessions))
		for id := range m.removedinitiated_sessions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeChatLogs:
		ids := make([]ent.Value, 0, len(m.removedchat_logs))
		for id := range m.removedchat_logs {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeChatSessions:
		ids := make([]ent.Value, 0, len(m.removedchat_sessions))
		for id := range m.removedchat_sessions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCalendarEvents:
		ids := make([]ent.Value, 0, len(m.removedcalendar_events))
		for id := range m.removedcalendar_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedinitiated_sessions {
		edges = append(edges, user.EdgeInitiatedSessions)
	}
	if m.clearedchat_logs {
		edges = append(edges, user.EdgeChatLogs)
	}
	if m.clearedchat_sessions {
		edges = append(edges, user.EdgeChatSessions)
	}
	if m.clearedcalendar_events {
		edges = append(edges, user.EdgeCalendarEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeInitiatedSessions:
		return m.clearedinitiated_sessions
	case user.EdgeChatLogs:
		return m.clearedchat_logs
	case user.EdgeChatSessions:
		return m.clearedchat_sessions
	case user.EdgeCalendarEvents:
		return m.clearedcalendar_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeInitiatedSessions:
		m.ResetInitiatedSessions()
		return nil
	case user.EdgeChatLogs:
		m.ResetChatLogs()
		return nil
	case user.EdgeChatSessions:
		m.ResetChatSessions()
		return nil
	case user.EdgeCalendarEvents:
		m.ResetCalendarEvents()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
