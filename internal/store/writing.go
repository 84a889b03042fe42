package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/inkwell/ent"
	"github.com/abhisek/inkwell/ent/writing"
	"github.com/abhisek/inkwell/internal/rank"
	"github.com/abhisek/inkwell/internal/score"
)

// writingRepo implements WritingRepo using the ent client.
type writingRepo struct {
	client *ent.Client
}

func (r *writingRepo) Add(ctx context.Context, prompt, body string, fb score.Feedback, at time.Time) (*WritingRecord, error) {
	builder := r.client.Writing.Create().
		SetBody(body).
		SetOverallRank(string(fb.Overall)).
		SetGrammarRank(string(fb.Grammar)).
		SetVocabularyRank(string(fb.Vocabulary)).
		SetStructureRank(string(fb.Structure)).
		SetContentRank(string(fb.Content)).
		SetCreatedAt(at)

	if prompt != "" {
		builder = builder.SetPrompt(prompt)
	}

	w, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("add writing: %w", err)
	}
	return entWritingToRecord(w), nil
}

func (r *writingRepo) All(ctx context.Context) ([]*WritingRecord, error) {
	rows, err := r.client.Writing.Query().
		Order(ent.Desc(writing.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query writings: %w", err)
	}
	records := make([]*WritingRecord, len(rows))
	for i, w := range rows {
		records[i] = entWritingToRecord(w)
	}
	return records, nil
}

func (r *writingRepo) CountOnDay(ctx context.Context, day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	n, err := r.client.Writing.Query().
		Where(writing.CreatedAtGTE(start), writing.CreatedAtLT(end)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count writings: %w", err)
	}
	return n, nil
}

// entWritingToRecord converts an ent Writing to a store WritingRecord.
// Rank columns hold only ladder values (guarded at write time), so the
// conversion doesn't re-validate them.
func entWritingToRecord(w *ent.Writing) *WritingRecord {
	return &WritingRecord{
		ID:     w.ID.String(),
		Prompt: w.Prompt,
		Body:   w.Body,
		Feedback: score.Feedback{
			Overall:    rank.Rank(w.OverallRank),
			Grammar:    rank.Rank(w.GrammarRank),
			Vocabulary: rank.Rank(w.VocabularyRank),
			Structure:  rank.Rank(w.StructureRank),
			Content:    rank.Rank(w.ContentRank),
		},
		CreatedAt: w.CreatedAt,
	}
}
