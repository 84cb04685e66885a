// Code generated by ent, DO NOT EDIT.

package negotiationmessage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the negotiationmessage type in the database.
	Label = "negotiation_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSenderID holds the string denoting the sender_id field in the database.
	FieldSenderID = "sender_id"
	// FieldReceiverID holds the string denoting the receiver_id field in the database.
	FieldReceiverID = "receiver_id"
	// FieldSenderName holds the string denoting the sender_name field in the database.
	FieldSenderName = "sender_name"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldRound holds the string denoting the round field in the database.
	FieldRound = "round"
	// FieldProse holds the string denoting the prose field in the database.
	FieldProse = "prose"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// NegotiationSessionFieldID holds the string denoting the ID field of the NegotiationSession.
	NegotiationSessionFieldID = "session_id"
	// Table holds the table name of the negotiationmessage in the database.
	Table = "negotiation_messages"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "negotiation_messages"
	// SessionInverseTable is the table name for the NegotiationSession entity.
	// It exists in this package in order to avoid circular dependency with the "negotiationsession" package.
	SessionInverseTable = "a2a_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for negotiationmessage fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldSenderID,
	FieldReceiverID,
	FieldSenderName,
	FieldType,
	FieldRound,
	FieldProse,
	FieldPayload,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypePropose           Type = "PROPOSE"
	TypeAccept            Type = "ACCEPT"
	TypeReject            Type = "REJECT"
	TypeCounter           Type = "COUNTER"
	TypeQuery             Type = "QUERY"
	TypeNeedHuman         Type = "NEED_HUMAN"
	TypeInfo              Type = "INFO"
	TypeConflictChoice    Type = "CONFLICT_CHOICE"
	TypeAwaitingChoice    Type = "AWAITING_CHOICE"
	TypeMajorityRecommend Type = "MAJORITY_RECOMMEND"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypePropose, TypeAccept, TypeReject, TypeCounter, TypeQuery, TypeNeedHuman, TypeInfo, TypeConflictChoice, TypeAwaitingChoice, TypeMajorityRecommend:
		return nil
	default:
		return fmt.Errorf("negotiationmessage: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the NegotiationMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySenderID orders the results by the sender_id field.
func BySenderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderID, opts...).ToFunc()
}

// ByReceiverID orders the results by the receiver_id field.
func ByReceiverID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiverID, opts...).ToFunc()
}

// BySenderName orders the results by the sender_name field.
func BySenderName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderName, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByRound orders the results by the round field.
func ByRound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRound, opts...).ToFunc()
}

// ByProse orders the results by the prose field.
func ByProse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProse, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, NegotiationSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
