package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single item attempt within a lesson run.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Links to RunEvent"),
		field.String("user_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.String("item_id").
			NotEmpty(),
		field.String("item_kind").
			NotEmpty().
			Comment("snippet, multiple_choice, free_response, or prompting_task"),
		field.Int("attempt_number").
			Comment("1-based attempt counter for this item"),
		field.String("answer").
			Comment("Learner answer; empty for snippet acknowledgements"),
		field.Bool("verdict").
			Comment("Whether the attempt was judged correct"),
		field.Bool("oracle_error").
			Comment("True when the verdict came from an oracle failure"),
		field.Int("points_awarded"),
		field.String("feedback").
			Optional().
			Comment("Oracle feedback text shown to the learner"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("user_id"),
		index.Fields("item_id"),
		index.Fields("verdict"),
	}
}
