package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Writing is one graded writing submission. Grades arrive fully formed
// from the external grading service; rows are never updated.
type Writing struct {
	ent.Schema
}

func (Writing) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("prompt").
			Optional(),
		field.Text("body").
			NotEmpty(),
		field.String("overall_rank").
			NotEmpty(),
		field.String("grammar_rank").
			NotEmpty(),
		field.String("vocabulary_rank").
			NotEmpty(),
		field.String("structure_rank").
			NotEmpty(),
		field.String("content_rank").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Writing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
