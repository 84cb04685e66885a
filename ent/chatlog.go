// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/chatsession"
	"github.com/moim-labs/moim/ent/user"
)

// ChatLog is the model entity for the ChatLog schema.
type ChatLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Whose chat view the row belongs to
	UserID string `json:"user_id,omitempty"`
	// Counterpart user for relationship rows
	FriendID *string `json:"friend_id,omitempty"`
	// Negotiation session reference; plain string so retention cleanup of sessions never erases chat history
	SessionID *string `json:"session_id,omitempty"`
	// ChatSessionID holds the value of the "chat_session_id" field.
	ChatSessionID *string `json:"chat_session_id,omitempty"`
	// RequestText holds the value of the "request_text" field.
	RequestText *string `json:"request_text,omitempty"`
	// ResponseText holds the value of the "response_text" field.
	ResponseText *string `json:"response_text,omitempty"`
	// MessageType holds the value of the "message_type" field.
	MessageType chatlog.MessageType `json:"message_type,omitempty"`
	// Type-specific data (typed records in pkg/models)
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChatLogQuery when eager-loading is set.
	Edges        ChatLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChatLogEdges holds the relations/edges for other nodes in the graph.
type ChatLogEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// ChatSession holds the value of the chat_session edge.
	ChatSession *ChatSession `json:"chat_session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatLogEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// ChatSessionOrErr returns the ChatSession value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatLogEdges) ChatSessionOrErr() (*ChatSession, error) {
	if e.ChatSession != nil {
		return e.ChatSession, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: chatsession.Label}
	}
	return nil, &NotLoadedError{edge: "chat_session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatlog.FieldMetadata:
			values[i] = new([]byte)
		case chatlog.FieldID, chatlog.FieldUserID, chatlog.FieldFriendID, chatlog.FieldSessionID, chatlog.FieldChatSessionID, chatlog.FieldRequestText, chatlog.FieldResponseText, chatlog.FieldMessageType:
			values[i] = new(sql.NullString)
		case chatlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatLog fields.
func (_m *ChatLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chatlog.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case chatlog.FieldFriendID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field friend_id", values[i])
			} else if value.Valid {
				_m.FriendID = new(string)
				*_m.FriendID = value.String
			}
		case chatlog.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case chatlog.FieldChatSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_session_id", values[i])
			} else if value.Valid {
				_m.ChatSessionID = new(string)
				*_m.ChatSessionID = value.String
			}
		case chatlog.FieldRequestText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_text", values[i])
			} else if value.Valid {
				_m.RequestText = new(string)
				*_m.RequestText = value.String
			}
		case chatlog.FieldResponseText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_text", values[i])
			} else if value.Valid {
				_m.ResponseText = new(string)
				*_m.ResponseText = value.String
			}
		case chatlog.FieldMessageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_type", values[i])
			} else if value.Valid {
				_m.MessageType = chatlog.MessageType(value.String)
			}
		case chatlog.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case chatlog.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ChatLog.
// This includes values selected through modifiers, order, etc.
func (_m *ChatLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the ChatLog entity.
func (_m *ChatLog) QueryUser() *UserQuery {
	return NewChatLogClient(_m.config).QueryUser(_m)
}

// QueryChatSession queries the "chat_session" edge of the ChatLog entity.
func (_m *ChatLog) QueryChatSession() *ChatSessionQuery {
	return NewChatLogClient(_m.config).QueryChatSession(_m)
}

// Update returns a builder for updating this ChatLog.
// Note that you need to call ChatLog.Unwrap() before calling this method if this ChatLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatLog) Update() *ChatLogUpdateOne {
	return NewChatLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatLog) Unwrap() *ChatLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatLog) String() string {
	var builder strings.Builder
	builder.WriteString("ChatLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.FriendID; v != nil {
		builder.WriteString("friend_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ChatSessionID; v != nil {
		builder.WriteString("chat_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RequestText; v != nil {
		builder.WriteString("request_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResponseText; v != nil {
		builder.WriteString("response_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("message_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageType))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChatLogs is a parsable slice of ChatLog.
type ChatLogs []*ChatLog
