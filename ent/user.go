// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moim-labs/moim/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Google Calendar OAuth access token
	AccessToken *string `json:"-"`
	// RefreshToken holds the value of the "refresh_token" field.
	RefreshToken *string `json:"-"`
	// TokenExpiry holds the value of the "token_expiry" field.
	TokenExpiry *time.Time `json:"token_expiry,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// InitiatedSessions holds the value of the initiated_sessions edge.
	InitiatedSessions []*NegotiationSession `json:"initiated_sessions,omitempty"`
	// ChatLogs holds the value of the chat_logs edge.
	ChatLogs []*ChatLog `json:"chat_logs,omitempty"`
	// ChatSessions holds the value of the chat_sessions edge.
	ChatSessions []*ChatSession `json:"chat_sessions,omitempty"`
	// CalendarEvents holds the value of the calendar_events edge.
	CalendarEvents []*CalendarEvent `json:"calendar_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// InitiatedSessionsOrErr returns the InitiatedSessions value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) InitiatedSessionsOrErr() ([]*NegotiationSession, error) {
	if e.loadedTypes[0] {
		return e.InitiatedSessions, nil
	}
	return nil, &NotLoadedError{edge: "initiated_sessions"}
}

// ChatLogsOrErr returns the ChatLogs value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ChatLogsOrErr() ([]*ChatLog, error) {
	if e.loadedTypes[1] {
		return e.ChatLogs, nil
	}
	return nil, &NotLoadedError{edge: "chat_logs"}
}

// ChatSessionsOrErr returns the ChatSessions value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ChatSessionsOrErr() ([]*ChatSession, error) {
	if e.loadedTypes[2] {
		return e.ChatSessions, nil
	}
	return nil, &NotLoadedError{edge: "chat_sessions"}
}

// CalendarEventsOrErr returns the CalendarEvents value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) CalendarEventsOrErr() ([]*CalendarEvent, error) {
	if e.loadedTypes[3] {
		return e.CalendarEvents, nil
	}
	return nil, &NotLoadedError{edge: "calendar_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldID, user.FieldName, user.FieldEmail, user.FieldAccessToken, user.FieldRefreshToken, user.FieldTimezone:
			values[i] = new(sql.NullString)
		case user.FieldTokenExpiry, user.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case user.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldAccessToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field access_token", values[i])
			} else if value.Valid {
				_m.AccessToken = new(string)
				*_m.AccessToken = value.String
			}
		case user.FieldRefreshToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field refresh_token", values[i])
			} else if value.Valid {
				_m.RefreshToken = new(string)
				*_m.RefreshToken = value.String
			}
		case user.FieldTokenExpiry:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field token_expiry", values[i])
			} else if value.Valid {
				_m.TokenExpiry = new(time.Time)
				*_m.TokenExpiry = value.Time
			}
		case user.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInitiatedSessions queries the "initiated_sessions" edge of the User entity.
func (_m *User) QueryInitiatedSessions() *NegotiationSessionQuery {
	return NewUserClient(_m.config).QueryInitiatedSessions(_m)
}

// QueryChatLogs queries the "chat_logs" edge of the User entity.
func (_m *User) QueryChatLogs() *ChatLogQuery {
	return NewUserClient(_m.config).QueryChatLogs(_m)
}

// QueryChatSessions queries the "chat_sessions" edge of the User entity.
func (_m *User) QueryChatSessions() *ChatSessionQuery {
	return NewUserClient(_m.config).QueryChatSessions(_m)
}

// QueryCalendarEvents queries the "calendar_events" edge of the User entity.
func (_m *User) QueryCalendarEvents() *CalendarEventQuery {
	return NewUserClient(_m.config).QueryCalendarEvents(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("access_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("refresh_token=<sensitive>")
	builder.WriteString(", ")
	if v := _m.TokenExpiry; v != nil {
		builder.WriteString("token_expiry=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
