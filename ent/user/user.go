// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldAccessToken holds the string denoting the access_token field in the database.
	FieldAccessToken = "access_token"
	// FieldRefreshToken holds the string denoting the refresh_token field in the database.
	FieldRefreshToken = "refresh_token"
	// FieldTokenExpiry holds the string denoting the token_expiry field in the database.
	FieldTokenExpiry = "token_expiry"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInitiatedSessions holds the string denoting the initiated_sessions edge name in mutations.
	EdgeInitiatedSessions = "initiated_sessions"
	// EdgeChatLogs holds the string denoting the chat_logs edge name in mutations.
	EdgeChatLogs = "chat_logs"
	// EdgeChatSessions holds the string denoting the chat_sessions edge name in mutations.
	EdgeChatSessions = "chat_sessions"
	// EdgeCalendarEvents holds the string denoting the calendar_events edge name in mutations.
	EdgeCalendarEvents = "calendar_events"
	// NegotiationSessionFieldID holds the string denoting the ID field of the NegotiationSession.
	NegotiationSessionFieldID = "session_id"
	// ChatLogFieldID holds the string denoting the ID field of the ChatLog.
	ChatLogFieldID = "chat_log_id"
	// ChatSessionFieldID holds the string denoting the ID field of the ChatSession.
	ChatSessionFieldID = "chat_session_id"
	// CalendarEventFieldID holds the string denoting the ID field of the CalendarEvent.
	CalendarEventFieldID = "calendar_event_id"
	// Table holds the table name of the user in the database.
	Table = "users"
	// InitiatedSessionsTable is the table that holds the initiated_sessions relation/edge.
	InitiatedSessionsTable = "a2a_sessions"
	// InitiatedSessionsInverseTable is the table name for the NegotiationSession entity.
	// It exists in this package in order to avoid circular dependency with the "negotiationsession" package.
	InitiatedSessionsInverseTable = "a2a_sessions"
	// InitiatedSessionsColumn is the table column denoting the initiated_sessions relation/edge.
	InitiatedSessionsColumn = "initiator_id"
	// ChatLogsTable is the table that holds the chat_logs relation/edge.
	ChatLogsTable = "chat_logs"
	// ChatLogsInverseTable is the table name for the ChatLog entity.
	// It exists in this package in order to avoid circular dependency with the "chatlog" package.
	ChatLogsInverseTable = "chat_logs"
	// ChatLogsColumn is the table column denoting the chat_logs relation/edge.
	ChatLogsColumn = "user_id"
	// ChatSessionsTable is the table that holds the chat_sessions relation/edge.
	ChatSessionsTable = "chat_sessions"
	// ChatSessionsInverseTable is the table name for the ChatSession entity.
	// It exists in this package in order to avoid circular dependency with the "chatsession" package.
	ChatSessionsInverseTable = "chat_sessions"
	// ChatSessionsColumn is the table column denoting the chat_sessions relation/edge.
	ChatSessionsColumn = "user_id"
	// CalendarEventsTable is the table that holds the calendar_events relation/edge.
	CalendarEventsTable = "calendar_events"
	// CalendarEventsInverseTable is the table name for the CalendarEvent entity.
	// It exists in this package in order to avoid circular dependency with the "calendarevent" package.
	CalendarEventsInverseTable = "calendar_events"
	// CalendarEventsColumn is the table column denoting the calendar_events relation/edge.
	CalendarEventsColumn = "owner_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldAccessToken,
	FieldRefreshToken,
	FieldTokenExpiry,
	FieldTimezone,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByAccessToken orders the results by the access_token field.
func ByAccessToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessToken, opts...).ToFunc()
}

// ByRefreshToken orders the results by the refresh_token field.
func ByRefreshToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefreshToken, opts...).ToFunc()
}

// ByTokenExpiry orders the results by the token_expiry field.
func ByTokenExpiry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenExpiry, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInitiatedSessionsCount orders the results by initiated_sessions count.
func ByInitiatedSessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInitiatedSessionsStep(), opts...)
	}
}

// ByInitiatedSessions orders the results by initiated_sessions terms.
func ByInitiatedSessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInitiatedSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChatLogsCount orders the results by chat_logs count.
func ByChatLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatLogsStep(), opts...)
	}
}

// ByChatLogs orders the results by chat_logs terms.
func ByChatLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChatSessionsCount orders the results by chat_sessions count.
func ByChatSessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatSessionsStep(), opts...)
	}
}

// ByChatSessions orders the results by chat_sessions terms.
func ByChatSessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCalendarEventsCount orders the results by calendar_events count.
func ByCalendarEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCalendarEventsStep(), opts...)
	}
}

// ByCalendarEvents orders the results by calendar_events terms.
func ByCalendarEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCalendarEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInitiatedSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InitiatedSessionsInverseTable, NegotiationSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InitiatedSessionsTable, InitiatedSessionsColumn),
	)
}
func newChatLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatLogsInverseTable, ChatLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatLogsTable, ChatLogsColumn),
	)
}
func newChatSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatSessionsInverseTable, ChatSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatSessionsTable, ChatSessionsColumn),
	)
}
func newCalendarEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CalendarEventsInverseTable, CalendarEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CalendarEventsTable, CalendarEventsColumn),
	)
}
