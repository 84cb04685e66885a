package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NegotiationSession holds the schema definition for the NegotiationSession
// entity. One row per agent-to-agent negotiation; reschedules in the same
// thread create fresh rows linked through place_pref.thread_id.
type NegotiationSession struct {
	ent.Schema
}

// Fields of the NegotiationSession.
func (NegotiationSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("initiator_id").
			Immutable(),
		field.String("target_id").
			Optional().
			Nillable().
			Comment("First non-initiator participant, kept for two-party lookups"),
		field.JSON("participant_ids", []string{}).
			Comment("All participants including the initiator"),
		field.Text("intent").
			Comment("Original user request (full-text searchable)"),
		field.Enum("status").
			Values("pending", "in_progress", "pending_approval", "completed", "failed", "needs_reschedule").
			Default("pending"),
		field.JSON("time_window", map[string]interface{}{}).
			Optional().
			Comment("Negotiable range {start, end}"),
		field.JSON("place_pref", map[string]interface{}{}).
			Optional().
			Comment("Meeting preferences and thread bookkeeping (typed records in pkg/models)"),
		field.String("final_event_id").
			Optional().
			Nillable().
			Comment("Initiator's calendar event once finalized"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the session (pending to in_progress)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("Set while a worker runs the session, cleared when parked; orphan detection keys on it"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the NegotiationSession.
func (NegotiationSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("initiator", User.Type).
			Ref("initiated_sessions").
			Field("initiator_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", NegotiationMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the NegotiationSession.
func (NegotiationSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("initiator_id"),

		// Claim order and orphan sweep
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),

		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: the GIN index on intent and the thread_id expression index are
// created via migration hooks in pkg/database/migrations.go
func (NegotiationSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "a2a_sessions"},
	}
}
