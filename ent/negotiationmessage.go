// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
)

// NegotiationMessage is the model entity for the NegotiationMessage schema.
type NegotiationMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// SenderID holds the value of the "sender_id" field.
	SenderID string `json:"sender_id,omitempty"`
	// ReceiverID holds the value of the "receiver_id" field.
	ReceiverID *string `json:"receiver_id,omitempty"`
	// SenderName holds the value of the "sender_name" field.
	SenderName string `json:"sender_name,omitempty"`
	// Type holds the value of the "type" field.
	Type negotiationmessage.Type `json:"type,omitempty"`
	// Negotiation round the message belongs to, 0 for out-of-band notices
	Round int `json:"round,omitempty"`
	// Natural-language surface shown in transcripts (full-text searchable)
	Prose string `json:"prose,omitempty"`
	// Structured half: proposal, conflict_info, majority_recommendation
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NegotiationMessageQuery when eager-loading is set.
	Edges        NegotiationMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NegotiationMessageEdges holds the relations/edges for other nodes in the graph.
type NegotiationMessageEdges struct {
	// Session holds the value of the session edge.
	Session *NegotiationSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NegotiationMessageEdges) SessionOrErr() (*NegotiationSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: negotiationsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NegotiationMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case negotiationmessage.FieldPayload:
			values[i] = new([]byte)
		case negotiationmessage.FieldRound:
			values[i] = new(sql.NullInt64)
		case negotiationmessage.FieldID, negotiationmessage.FieldSessionID, negotiationmessage.FieldSenderID, negotiationmessage.FieldReceiverID, negotiationmessage.FieldSenderName, negotiationmessage.FieldType, negotiationmessage.FieldProse:
			values[i] = new(sql.NullString)
		case negotiationmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NegotiationMessage fields.
func (_m *NegotiationMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case negotiationmessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case negotiationmessage.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case negotiationmessage.FieldSenderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_id", values[i])
			} else if value.Valid {
				_m.SenderID = value.String
			}
		case negotiationmessage.FieldReceiverID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field receiver_id", values[i])
			} else if value.Valid {
				_m.ReceiverID = new(string)
				*_m.ReceiverID = value.String
			}
		case negotiationmessage.FieldSenderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_name", values[i])
			} else if value.Valid {
				_m.SenderName = value.String
			}
		case negotiationmessage.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = negotiationmessage.Type(value.String)
			}
		case negotiationmessage.FieldRound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round", values[i])
			} else if value.Valid {
				_m.Round = int(value.Int64)
			}
		case negotiationmessage.FieldProse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prose", values[i])
			} else if value.Valid {
				_m.Prose = value.String
			}
		case negotiationmessage.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case negotiationmessage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the NegotiationMessage.
// This includes values selected through modifiers, order, etc.
func (_m *NegotiationMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the NegotiationMessage entity.
func (_m *NegotiationMessage) QuerySession() *NegotiationSessionQuery {
	return NewNegotiationMessageClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this NegotiationMessage.
// Note that you need to call NegotiationMessage.Unwrap() before calling this method if this NegotiationMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NegotiationMessage) Update() *NegotiationMessageUpdateOne {
	return NewNegotiationMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NegotiationMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NegotiationMessage) Unwrap() *NegotiationMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NegotiationMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NegotiationMessage) String() string {
	var builder strings.Builder
	builder.WriteString("NegotiationMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("sender_id=")
	builder.WriteString(_m.SenderID)
	builder.WriteString(", ")
	if v := _m.ReceiverID; v != nil {
		builder.WriteString("receiver_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("sender_name=")
	builder.WriteString(_m.SenderName)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("round=")
	builder.WriteString(fmt.Sprintf("%v", _m.Round))
	builder.WriteString(", ")
	builder.WriteString("prose=")
	builder.WriteString(_m.Prose)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NegotiationMessages is a parsable slice of NegotiationMessage.
type NegotiationMessages []*NegotiationMessage
