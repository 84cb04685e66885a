// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/ent/user"
)

// NegotiationSession is the model entity for the NegotiationSession schema.
type NegotiationSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// InitiatorID holds the value of the "initiator_id" field.
	InitiatorID string `json:"initiator_id,omitempty"`
	// First non-initiator participant, kept for two-party lookups
	TargetID *string `json:"target_id,omitempty"`
	// All participants including the initiator
	ParticipantIds []string `json:"participant_ids,omitempty"`
	// Original user request (full-text searchable)
	Intent string `json:"intent,omitempty"`
	// Status holds the value of the "status" field.
	Status negotiationsession.Status `json:"status,omitempty"`
	// Negotiable range {start, end}
	TimeWindow map[string]interface{} `json:"time_window,omitempty"`
	// Meeting preferences and thread bookkeeping (typed records in pkg/models)
	PlacePref map[string]interface{} `json:"place_pref,omitempty"`
	// Initiator's calendar event once finalized
	FinalEventID *string `json:"final_event_id,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// When a worker claimed the session (pending to in_progress)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Set while a worker runs the session, cleared when parked; orphan detection keys on it
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NegotiationSessionQuery when eager-loading is set.
	Edges        NegotiationSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NegotiationSessionEdges holds the relations/edges for other nodes in the graph.
type NegotiationSessionEdges struct {
	// Initiator holds the value of the initiator edge.
	Initiator *User `json:"initiator,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*NegotiationMessage `json:"messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// InitiatorOrErr returns the Initiator value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NegotiationSessionEdges) InitiatorOrErr() (*User, error) {
	if e.Initiator != nil {
		return e.Initiator, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "initiator"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e NegotiationSessionEdges) MessagesOrErr() ([]*NegotiationMessage, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NegotiationSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case negotiationsession.FieldParticipantIds, negotiationsession.FieldTimeWindow, negotiationsession.FieldPlacePref:
			values[i] = new([]byte)
		case negotiationsession.FieldID, negotiationsession.FieldInitiatorID, negotiationsession.FieldTargetID, negotiationsession.FieldIntent, negotiationsession.FieldStatus, negotiationsession.FieldFinalEventID, negotiationsession.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case negotiationsession.FieldStartedAt, negotiationsession.FieldCompletedAt, negotiationsession.FieldLastHeartbeatAt, negotiationsession.FieldDeletedAt, negotiationsession.FieldCreatedAt, negotiationsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NegotiationSession fields.
func (_m *NegotiationSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case negotiationsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case negotiationsession.FieldInitiatorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initiator_id", values[i])
			} else if value.Valid {
				_m.InitiatorID = value.String
			}
		case negotiationsession.FieldTargetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_id", values[i])
			} else if value.Valid {
				_m.TargetID = new(string)
				*_m.TargetID = value.String
			}
		case negotiationsession.FieldParticipantIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field participant_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParticipantIds); err != nil {
					return fmt.Errorf("unmarshal field participant_ids: %w", err)
				}
			}
		case negotiationsession.FieldIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent", values[i])
			} else if value.Valid {
				_m.Intent = value.String
			}
		case negotiationsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = negotiationsession.Status(value.String)
			}
		case negotiationsession.FieldTimeWindow:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field time_window", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TimeWindow); err != nil {
					return fmt.Errorf("unmarshal field time_window: %w", err)
				}
			}
		case negotiationsession.FieldPlacePref:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field place_pref", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlacePref); err != nil {
					return fmt.Errorf("unmarshal field place_pref: %w", err)
				}
			}
		case negotiationsession.FieldFinalEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_event_id", values[i])
			} else if value.Valid {
				_m.FinalEventID = new(string)
				*_m.FinalEventID = value.String
			}
		case negotiationsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case negotiationsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case negotiationsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case negotiationsession.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case negotiationsession.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case negotiationsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case negotiationsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NegotiationSession.
// This includes values selected through modifiers, order, etc.
func (_m *NegotiationSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInitiator queries the "initiator" edge of the NegotiationSession entity.
func (_m *NegotiationSession) QueryInitiator() *UserQuery {
	return NewNegotiationSessionClient(_m.config).QueryInitiator(_m)
}

// QueryMessages queries the "messages" edge of the NegotiationSession entity.
func (_m *NegotiationSession) QueryMessages() *NegotiationMessageQuery {
	return NewNegotiationSessionClient(_m.config).QueryMessages(_m)
}

// Update returns a builder for updating this NegotiationSession.
// Note that you need to call NegotiationSession.Unwrap() before calling this method if this NegotiationSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NegotiationSession) Update() *NegotiationSessionUpdateOne {
	return NewNegotiationSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NegotiationSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NegotiationSession) Unwrap() *NegotiationSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NegotiationSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NegotiationSession) String() string {
	var builder strings.Builder
	builder.WriteString("NegotiationSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("initiator_id=")
	builder.WriteString(_m.InitiatorID)
	builder.WriteString(", ")
	if v := _m.TargetID; v != nil {
		builder.WriteString("target_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("participant_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipantIds))
	builder.WriteString(", ")
	builder.WriteString("intent=")
	builder.WriteString(_m.Intent)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("time_window=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeWindow))
	builder.WriteString(", ")
	builder.WriteString("place_pref=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlacePref))
	builder.WriteString(", ")
	if v := _m.FinalEventID; v != nil {
		builder.WriteString("final_event_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NegotiationSessions is a parsable slice of NegotiationSession.
type NegotiationSessions []*NegotiationSession
