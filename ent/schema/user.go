package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a player identified by the opaque numeric id the transport
// layer supplies. One user owns zero or more questionnaire sessions.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("external_id").
			Unique().
			Comment("Opaque account id supplied by the transport layer"),
		field.Bool("questionnaire_completed").
			Default(false).
			Comment("Whether any session has ever finished"),
		field.Bool("advice_received").
			Default(false).
			Comment("Whether training advice was ever shown"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", Session.Type),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("external_id"),
	}
}
