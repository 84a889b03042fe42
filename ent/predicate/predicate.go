// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// VocabEntry is the predicate function for vocabentry builders.
type VocabEntry func(*sql.Selector)

// Writing is the predicate function for writing builders.
type Writing func(*sql.Selector)
