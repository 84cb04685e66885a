package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatLog holds the schema definition for the ChatLog entity. Every turn a
// user sees in their chat view is one row: their own messages, orchestrator
// replies, and approval/rejection cards fanned out during negotiations.
type ChatLog struct {
	ent.Schema
}

// Fields of the ChatLog.
func (ChatLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chat_log_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Whose chat view the row belongs to"),
		field.String("friend_id").
			Optional().
			Nillable().
			Comment("Counterpart user for relationship rows"),
		field.String("session_id").
			Optional().
			Nillable().
			Comment("Negotiation session reference; plain string so retention cleanup of sessions never erases chat history"),
		field.String("chat_session_id").
			Optional().
			Nillable(),
		field.Text("request_text").
			Optional().
			Nillable(),
		field.Text("response_text").
			Optional().
			Nillable(),
		field.Enum("message_type").
			Values(
				"user_message",
				"ai_response",
				"schedule_approval",
				"approval_response",
				"schedule_rejection",
				"schedule_confirmed",
				"friend_request",
				"friend_accepted",
				"friend_rejected",
				"agent_query",
				"agent_reply",
				"proposal",
				"confirm",
				"final",
				"system",
			),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Type-specific data (typed records in pkg/models)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatLog.
func (ChatLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("chat_logs").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.From("chat_session", ChatSession.Type).
			Ref("logs").
			Field("chat_session_id").
			Unique(),
	}
}

// Indexes of the ChatLog.
func (ChatLog) Indexes() []ent.Index {
	return []ent.Index{
		// Per-user chat history in order
		index.Fields("user_id", "created_at"),
		// Approval scans per negotiation (session_id is nullable; EQ predicates naturally exclude NULLs)
		index.Fields("session_id", "message_type"),
		index.Fields("chat_session_id", "created_at"),
	}
}
