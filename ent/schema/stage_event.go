package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageEvent records a stage completion outcome.
type StageEvent struct {
	ent.Schema
}

func (StageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.String("stage_id").
			NotEmpty(),
		field.String("status").
			NotEmpty().
			Comment("completed-perfect, completed-good, or failed-stage"),
		field.Int("points_earned").
			Default(0),
		field.String("run_id").
			NotEmpty(),
	}
}

func (StageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("lesson_id"),
		index.Fields("stage_id"),
	}
}
