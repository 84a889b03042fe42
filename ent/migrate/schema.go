// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "entry_id", Type: field.TypeString},
		{Name: "word", Type: field.TypeString},
		{Name: "rating", Type: field.TypeString},
		{Name: "ease_before", Type: field.TypeFloat64},
		{Name: "ease_after", Type: field.TypeFloat64},
		{Name: "interval_before", Type: field.TypeInt},
		{Name: "interval_after", Type: field.TypeInt},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_entry_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
		},
	}
	// VocabEntriesColumns holds the columns for the "vocab_entries" table.
	VocabEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "word", Type: field.TypeString, Unique: true},
		{Name: "definition", Type: field.TypeString},
		{Name: "example", Type: field.TypeString, Nullable: true},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval", Type: field.TypeInt, Default: 1},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_review_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VocabEntriesTable holds the schema information for the "vocab_entries" table.
	VocabEntriesTable = &schema.Table{
		Name:       "vocab_entries",
		Columns:    VocabEntriesColumns,
		PrimaryKey: []*schema.Column{VocabEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vocabentry_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{VocabEntriesColumns[8]},
			},
			{
				Name:    "vocabentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{VocabEntriesColumns[9]},
			},
		},
	}
	// WritingsColumns holds the columns for the "writings" table.
	WritingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "prompt", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "overall_rank", Type: field.TypeString},
		{Name: "grammar_rank", Type: field.TypeString},
		{Name: "vocabulary_rank", Type: field.TypeString},
		{Name: "structure_rank", Type: field.TypeString},
		{Name: "content_rank", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WritingsTable holds the schema information for the "writings" table.
	WritingsTable = &schema.Table{
		Name:       "writings",
		Columns:    WritingsColumns,
		PrimaryKey: []*schema.Column{WritingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "writing_created_at",
				Unique:  false,
				Columns: []*schema.Column{WritingsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ReviewEventsTable,
		VocabEntriesTable,
		WritingsTable,
	}
)

func init() {
}
