package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PointsEvent records a change to a user's point total. Deltas are always
// non-negative: points only accumulate.
type PointsEvent struct {
	ent.Schema
}

func (PointsEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PointsEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Int("delta").
			NonNegative(),
		field.String("reason").
			NotEmpty(),
		field.String("run_id").
			Optional(),
	}
}

func (PointsEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
