package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one scheduling decision for audit and statistics:
// which entry was reviewed, how it was rated, and how the schedule moved.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("entry_id").NotEmpty(),
		field.String("word").NotEmpty(),
		field.String("rating").NotEmpty(),
		field.Float("ease_before"),
		field.Float("ease_after"),
		field.Int("interval_before"),
		field.Int("interval_after"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entry_id"),
	}
}
