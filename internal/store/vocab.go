package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/inkwell/ent"
	"github.com/abhisek/inkwell/ent/vocabentry"
	"github.com/abhisek/inkwell/internal/srs"
)

// vocabRepo implements VocabRepo using the ent client.
type vocabRepo struct {
	client *ent.Client
}

func (r *vocabRepo) Add(ctx context.Context, word, definition, example string) (*Entry, error) {
	builder := r.client.VocabEntry.Create().
		SetWord(word).
		SetDefinition(definition)

	if example != "" {
		builder = builder.SetExample(example)
	}

	e, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("word %q already in deck: %w", word, err)
		}
		return nil, fmt.Errorf("add entry: %w", err)
	}
	return entEntryToEntry(e), nil
}

func (r *vocabRepo) Get(ctx context.Context, id string) (*Entry, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse entry id: %w", err)
	}
	e, err := r.client.VocabEntry.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entEntryToEntry(e), nil
}

func (r *vocabRepo) ByWord(ctx context.Context, word string) (*Entry, error) {
	e, err := r.client.VocabEntry.Query().
		Where(vocabentry.Word(word)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query word: %w", err)
	}
	return entEntryToEntry(e), nil
}

func (r *vocabRepo) All(ctx context.Context) ([]*Entry, error) {
	rows, err := r.client.VocabEntry.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	entries := make([]*Entry, len(rows))
	for i, e := range rows {
		entries[i] = entEntryToEntry(e)
	}
	return entries, nil
}

func (r *vocabRepo) ApplyReview(ctx context.Context, id string, up srs.Update) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("parse entry id: %w", err)
	}
	_, err = r.client.VocabEntry.UpdateOneID(uid).
		SetEaseFactor(up.EaseFactor).
		SetInterval(up.Interval).
		SetReviewCount(up.ReviewCount).
		SetNextReviewAt(up.NextReviewAt).
		SetLastReviewedAt(up.LastReviewedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("apply review: %w", err)
	}
	return nil
}

func (r *vocabRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("parse entry id: %w", err)
	}
	if err := r.client.VocabEntry.DeleteOneID(uid).Exec(ctx); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// entEntryToEntry converts an ent VocabEntry to a store Entry.
func entEntryToEntry(e *ent.VocabEntry) *Entry {
	return &Entry{
		ID:         e.ID.String(),
		Word:       e.Word,
		Definition: e.Definition,
		Example:    e.Example,
		Review: srs.ReviewState{
			EaseFactor:     e.EaseFactor,
			Interval:       e.Interval,
			ReviewCount:    e.ReviewCount,
			LastReviewedAt: e.LastReviewedAt,
			NextReviewAt:   e.NextReviewAt,
			CreatedAt:      e.CreatedAt,
		},
	}
}
