package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one run through the questionnaire. The answer list is the
// canonical record; the pointer, experience and ratings all derive from it.
type Session struct {
	ent.Schema
}

// AnswerRecord is the serialized form of a single answer for persistence.
type AnswerRecord struct {
	QuestionID string `json:"question_id"`
	OptionID   string `json:"option_id"`
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("session_number").
			Unique().
			Immutable().
			Comment("Large random number shown to the user as a shareable session code"),
		field.Int("user_id").
			Comment("Owning user"),
		field.JSON("answers", []AnswerRecord{}).
			Optional().
			Comment("Ordered answers, replaced wholesale on every accepted reply"),
		field.Float("interim_rating").
			Optional().
			Nillable().
			Comment("Cached in-progress score, rederivable from answers"),
		field.Float("experience_months").
			Optional().
			Nillable().
			Comment("Cached combined experience, rederivable from answers"),
		field.String("experience_level").
			Optional().
			Nillable(),
		field.Bool("finished").
			Default(false).
			Comment("One-way flag, never un-finishes"),
		field.String("final_level").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("sessions").
			Field("user_id").
			Unique().
			Required(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_number"),
		index.Fields("finished"),
		index.Fields("started_at"),
	}
}
