package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// VocabEntry is a vocabulary deck entry together with its spaced
// repetition review state. The review fields are written only through
// the scheduler's update; everything else is set once at creation.
type VocabEntry struct {
	ent.Schema
}

func (VocabEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("word").
			NotEmpty().
			Unique(),
		field.String("definition").
			NotEmpty(),
		field.String("example").
			Optional(),
		field.Float("ease_factor").
			Default(2.5).
			Comment("Difficulty multiplier, floored at 1.3 by the scheduler"),
		field.Int("interval").
			Default(1).
			Comment("Current review spacing in days"),
		field.Int("review_count").
			Default(0).
			NonNegative(),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Time("next_review_at").
			Optional().
			Nillable().
			Comment("Absent until the first review; absent means due immediately"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (VocabEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_review_at"),
		index.Fields("created_at"),
	}
}
