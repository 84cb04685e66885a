package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NegotiationMessage holds the schema definition for the NegotiationMessage
// entity. One row per negotiation turn, append-only; the transcript doubles
// as the session's audit trail.
type NegotiationMessage struct {
	ent.Schema
}

// Fields of the NegotiationMessage.
func (NegotiationMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("sender_id").
			Immutable(),
		field.String("receiver_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("sender_name").
			Immutable(),
		field.Enum("type").
			NamedValues(
				"Propose", "PROPOSE",
				"Accept", "ACCEPT",
				"Reject", "REJECT",
				"Counter", "COUNTER",
				"Query", "QUERY",
				"NeedHuman", "NEED_HUMAN",
				"Info", "INFO",
				"ConflictChoice", "CONFLICT_CHOICE",
				"AwaitingChoice", "AWAITING_CHOICE",
				"MajorityRecommend", "MAJORITY_RECOMMEND",
			),
		field.Int("round").
			Comment("Negotiation round the message belongs to, 0 for out-of-band notices"),
		field.Text("prose").
			Comment("Natural-language surface shown in transcripts (full-text searchable)"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Structured half: proposal, conflict_info, majority_recommendation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the NegotiationMessage.
func (NegotiationMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", NegotiationSession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the NegotiationMessage.
func (NegotiationMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Transcript order
		index.Fields("session_id", "created_at"),
		// Deadlock detection scans per round
		index.Fields("session_id", "round"),
		index.Fields("sender_id"),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: the GIN index on prose is created via migration hooks in
// pkg/database/migrations.go
func (NegotiationMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
