// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CalendarEventsColumns holds the columns for the "calendar_events" table.
	CalendarEventsColumns = []*schema.Column{
		{Name: "calendar_event_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "google_event_id", Type: field.TypeString, Unique: true},
		{Name: "summary", Type: field.TypeString},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "start_at", Type: field.TypeTime},
		{Name: "end_at", Type: field.TypeTime},
		{Name: "html_link", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"confirmed", "cancelled"}, Default: "confirmed"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeString},
	}
	// CalendarEventsTable holds the schema information for the "calendar_events" table.
	CalendarEventsTable = &schema.Table{
		Name:       "calendar_events",
		Columns:    CalendarEventsColumns,
		PrimaryKey: []*schema.Column{CalendarEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "calendar_events_users_calendar_events",
				Columns:    []*schema.Column{CalendarEventsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "calendarevent_owner_id_start_at",
				Unique:  false,
				Columns: []*schema.Column{CalendarEventsColumns[10], CalendarEventsColumns[5]},
			},
			{
				Name:    "calendarevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{CalendarEventsColumns[1]},
			},
		},
	}
	// ChatLogsColumns holds the columns for the "chat_logs" table.
	ChatLogsColumns = []*schema.Column{
		{Name: "chat_log_id", Type: field.TypeString, Unique: true},
		{Name: "friend_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "request_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"user_message", "ai_response", "schedule_approval", "approval_response", "schedule_rejection", "schedule_confirmed", "friend_request", "friend_accepted", "friend_rejected", "agent_query", "agent_reply", "proposal", "confirm", "final", "system"}},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "chat_session_id", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// ChatLogsTable holds the schema information for the "chat_logs" table.
	ChatLogsTable = &schema.Table{
		Name:       "chat_logs",
		Columns:    ChatLogsColumns,
		PrimaryKey: []*schema.Column{ChatLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_logs_chat_sessions_logs",
				Columns:    []*schema.Column{ChatLogsColumns[8]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "chat_logs_users_chat_logs",
				Columns:    []*schema.Column{ChatLogsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatlog_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatLogsColumns[9], ChatLogsColumns[7]},
			},
			{
				Name:    "chatlog_session_id_message_type",
				Unique:  false,
				Columns: []*schema.Column{ChatLogsColumns[2], ChatLogsColumns[5]},
			},
			{
				Name:    "chatlog_chat_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatLogsColumns[8], ChatLogsColumns[7]},
			},
		},
	}
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "chat_session_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Default: "새 대화"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_sessions_users_chat_sessions",
				Columns:    []*schema.Column{ChatSessionsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[4], ChatSessionsColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// NegotiationMessagesColumns holds the columns for the "negotiation_messages" table.
	NegotiationMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sender_id", Type: field.TypeString},
		{Name: "receiver_id", Type: field.TypeString, Nullable: true},
		{Name: "sender_name", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"PROPOSE", "ACCEPT", "REJECT", "COUNTER", "QUERY", "NEED_HUMAN", "INFO", "CONFLICT_CHOICE", "AWAITING_CHOICE", "MAJORITY_RECOMMEND"}},
		{Name: "round", Type: field.TypeInt},
		{Name: "prose", Type: field.TypeString, Size: 2147483647},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// NegotiationMessagesTable holds the schema information for the "negotiation_messages" table.
	NegotiationMessagesTable = &schema.Table{
		Name:       "negotiation_messages",
		Columns:    NegotiationMessagesColumns,
		PrimaryKey: []*schema.Column{NegotiationMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "negotiation_messages_a2a_sessions_messages",
				Columns:    []*schema.Column{NegotiationMessagesColumns[9]},
				RefColumns: []*schema.Column{A2aSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "negotiationmessage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NegotiationMessagesColumns[9], NegotiationMessagesColumns[8]},
			},
			{
				Name:    "negotiationmessage_session_id_round",
				Unique:  false,
				Columns: []*schema.Column{NegotiationMessagesColumns[9], NegotiationMessagesColumns[5]},
			},
			{
				Name:    "negotiationmessage_sender_id",
				Unique:  false,
				Columns: []*schema.Column{NegotiationMessagesColumns[1]},
			},
		},
	}
	// A2aSessionsColumns holds the columns for the "a2a_sessions" table.
	A2aSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "target_id", Type: field.TypeString, Nullable: true},
		{Name: "participant_ids", Type: field.TypeJSON},
		{Name: "intent", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "pending_approval", "completed", "failed", "needs_reschedule"}, Default: "pending"},
		{Name: "time_window", Type: field.TypeJSON, Nullable: true},
		{Name: "place_pref", Type: field.TypeJSON, Nullable: true},
		{Name: "final_event_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "initiator_id", Type: field.TypeString},
	}
	// A2aSessionsTable holds the schema information for the "a2a_sessions" table.
	A2aSessionsTable = &schema.Table{
		Name:       "a2a_sessions",
		Columns:    A2aSessionsColumns,
		PrimaryKey: []*schema.Column{A2aSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "a2a_sessions_users_initiated_sessions",
				Columns:    []*schema.Column{A2aSessionsColumns[15]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "negotiationsession_status",
				Unique:  false,
				Columns: []*schema.Column{A2aSessionsColumns[4]},
			},
			{
				Name:    "negotiationsession_initiator_id",
				Unique:  false,
				Columns: []*schema.Column{A2aSessionsColumns[15]},
			},
			{
				Name:    "negotiationsession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{A2aSessionsColumns[4], A2aSessionsColumns[13]},
			},
			{
				Name:    "negotiationsession_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{A2aSessionsColumns[4], A2aSessionsColumns[11]},
			},
			{
				Name:    "negotiationsession_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{A2aSessionsColumns[12]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "access_token", Type: field.TypeString, Nullable: true},
		{Name: "refresh_token", Type: field.TypeString, Nullable: true},
		{Name: "token_expiry", Type: field.TypeTime, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Default: "Asia/Seoul"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_name",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CalendarEventsTable,
		ChatLogsTable,
		ChatSessionsTable,
		EventsTable,
		NegotiationMessagesTable,
		A2aSessionsTable,
		UsersTable,
	}
)

func init() {
	CalendarEventsTable.ForeignKeys[0].RefTable = UsersTable
	ChatLogsTable.ForeignKeys[0].RefTable = ChatSessionsTable
	ChatLogsTable.ForeignKeys[1].RefTable = UsersTable
	ChatSessionsTable.ForeignKeys[0].RefTable = UsersTable
	NegotiationMessagesTable.ForeignKeys[0].RefTable = A2aSessionsTable
	A2aSessionsTable.ForeignKeys[0].RefTable = UsersTable
	A2aSessionsTable.Annotation = &entsql.Annotation{
		Table: "a2a_sessions",
	}
}
