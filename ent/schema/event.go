package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the durable side
// of the event stream. Rows are written before NOTIFY so reconnecting
// WebSocket clients can catch up by serial id; TTL cleanup prunes them.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Owning key for cleanup: negotiation session or channel owner; plain string, not an FK, because user channels outlive any one session"),
		field.String("channel").
			Comment("Logical stream: sessions, session:{id}, user:{id}"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Event document as published; catch-up re-sends it with db_event_id injected"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catch-up reads: WHERE channel = ? AND id > ?
		index.Fields("channel"),
		index.Fields("session_id"),
		// TTL cleanup
		index.Fields("created_at"),
	}
}
