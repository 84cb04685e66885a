// Code generated by ent, DO NOT EDIT.

package chatlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chatlog type in the database.
	Label = "chat_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "chat_log_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFriendID holds the string denoting the friend_id field in the database.
	FieldFriendID = "friend_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldChatSessionID holds the string denoting the chat_session_id field in the database.
	FieldChatSessionID = "chat_session_id"
	// FieldRequestText holds the string denoting the request_text field in the database.
	FieldRequestText = "request_text"
	// FieldResponseText holds the string denoting the response_text field in the database.
	FieldResponseText = "response_text"
	// FieldMessageType holds the string denoting the message_type field in the database.
	FieldMessageType = "message_type"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeChatSession holds the string denoting the chat_session edge name in mutations.
	EdgeChatSession = "chat_session"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// ChatSessionFieldID holds the string denoting the ID field of the ChatSession.
	ChatSessionFieldID = "chat_session_id"
	// Table holds the table name of the chatlog in the database.
	Table = "chat_logs"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "chat_logs"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// ChatSessionTable is the table that holds the chat_session relation/edge.
	ChatSessionTable = "chat_logs"
	// ChatSessionInverseTable is the table name for the ChatSession entity.
	// It exists in this package in order to avoid circular dependency with the "chatsession" package.
	ChatSessionInverseTable = "chat_sessions"
	// ChatSessionColumn is the table column denoting the chat_session relation/edge.
	ChatSessionColumn = "chat_session_id"
)

// Columns holds all SQL columns for chatlog fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldFriendID,
	FieldSessionID,
	FieldChatSessionID,
	FieldRequestText,
	FieldResponseText,
	FieldMessageType,
	FieldMetadata,
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

// MessageType defines the type for the "message_type" enum field.
type MessageType string

// MessageType values.
const (
	MessageTypeUserMessage       MessageType = "user_message"
	MessageTypeAiResponse        MessageType = "ai_response"
	MessageTypeScheduleApproval  MessageType = "schedule_approval"
	MessageTypeApprovalResponse  MessageType = "approval_response"
	MessageTypeScheduleRejection MessageType = "schedule_rejection"
	MessageTypeScheduleConfirmed MessageType = "schedule_confirmed"
	MessageTypeFriendRequest     MessageType = "friend_request"
	MessageTypeFriendAccepted    MessageType = "friend_accepted"
	MessageTypeFriendRejected    MessageType = "friend_rejected"
	MessageTypeAgentQuery        MessageType = "agent_query"
	MessageTypeAgentReply        MessageType = "agent_reply"
	MessageTypeProposal          MessageType = "proposal"
	MessageTypeConfirm           MessageType = "confirm"
	MessageTypeFinal             MessageType = "final"
	MessageTypeSystem            MessageType = "system"
)

func (mt MessageType) String() string {
	return string(mt)
}

// MessageTypeValidator is a validator for the "message_type" field enum values. It is called by the builders before save.
func MessageTypeValidator(mt MessageType) error {
	switch mt {
	case MessageTypeUserMessage, MessageTypeAiResponse, MessageTypeScheduleApproval, MessageTypeApprovalResponse, MessageTypeScheduleRejection, MessageTypeScheduleConfirmed, MessageTypeFriendRequest, MessageTypeFriendAccepted, MessageTypeFriendRejected, MessageTypeAgentQuery, MessageTypeAgentReply, MessageTypeProposal, MessageTypeConfirm, MessageTypeFinal, MessageTypeSystem:
		return nil
	default:
		return fmt.Errorf("chatlog: invalid enum value for message_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the ChatLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByFriendID orders the results by the friend_id field.
func ByFriendID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFriendID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByChatSessionID orders the results by the chat_session_id field.
func ByChatSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatSessionID, opts...).ToFunc()
}

// ByRequestText orders the results by the request_text field.
func ByRequestText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestText, opts...).ToFunc()
}

// ByResponseText orders the results by the response_text field.
func ByResponseText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseText, opts...).ToFunc()
}

// ByMessageType orders the results by the message_type field.
func ByMessageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByChatSessionField orders the results by chat_session field.
func ByChatSessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newChatSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatSessionInverseTable, ChatSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChatSessionTable, ChatSessionColumn),
	)
}
