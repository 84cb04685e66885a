package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CalendarEvent holds the schema definition for the CalendarEvent entity.
// A local mirror of every Google Calendar write the coordinator performs,
// used for idempotent finalization and cancellation.
type CalendarEvent struct {
	ent.Schema
}

// Fields of the CalendarEvent.
func (CalendarEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("calendar_event_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Negotiation that produced the event; nil for personal writes"),
		field.String("google_event_id").
			Unique(),
		field.String("summary"),
		field.String("location").
			Optional(),
		field.Time("start_at"),
		field.Time("end_at"),
		field.String("html_link").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("confirmed", "cancelled").
			Default("confirmed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CalendarEvent.
func (CalendarEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("calendar_events").
			Field("owner_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CalendarEvent.
func (CalendarEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "start_at"),
		index.Fields("session_id"),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: the partial unique index on (owner_id, session_id) that makes
// finalization idempotent is created via migration hooks in
// pkg/database/migrations.go
func (CalendarEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
