package store

import (
	"context"
	"fmt"

	"github.com/abhisek/inkwell/ent"
	"github.com/abhisek/inkwell/ent/reviewevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetEntryID(data.EntryID).
		SetWord(data.Word).
		SetRating(data.Rating).
		SetEaseBefore(data.EaseBefore).
		SetEaseAfter(data.EaseAfter).
		SetIntervalBefore(data.IntervalBefore).
		SetIntervalAfter(data.IntervalAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentReviews(ctx context.Context, limit int) ([]ReviewEventRecord, error) {
	q := r.client.ReviewEvent.Query().
		Order(ent.Desc(reviewevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}

	records := make([]ReviewEventRecord, len(events))
	for i, e := range events {
		records[i] = ReviewEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ReviewEventData: ReviewEventData{
				EntryID:        e.EntryID,
				Word:           e.Word,
				Rating:         e.Rating,
				EaseBefore:     e.EaseBefore,
				EaseAfter:      e.EaseAfter,
				IntervalBefore: e.IntervalBefore,
				IntervalAfter:  e.IntervalAfter,
			},
		}
	}
	return records, nil
}
