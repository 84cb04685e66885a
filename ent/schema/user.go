package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("email").
			Unique(),
		field.String("access_token").
			Optional().
			Nillable().
			Sensitive().
			Comment("Google Calendar OAuth access token"),
		field.String("refresh_token").
			Optional().
			Nillable().
			Sensitive(),
		field.Time("token_expiry").
			Optional().
			Nillable(),
		field.String("timezone").
			Default("Asia/Seoul"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("initiated_sessions", NegotiationSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_logs", ChatLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_sessions", ChatSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("calendar_events", CalendarEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
