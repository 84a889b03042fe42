package progress

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/inkwell/internal/rank"
	"github.com/abhisek/inkwell/internal/score"
	"github.com/abhisek/inkwell/internal/store"
)

// mockWritingRepo is an in-memory WritingRepo for tests.
type mockWritingRepo struct {
	records []*store.WritingRecord
}

func (m *mockWritingRepo) Add(_ context.Context, prompt, body string, fb score.Feedback, at time.Time) (*store.WritingRecord, error) {
	rec := &store.WritingRecord{
		ID:     fmt.Sprintf("w-%d", len(m.records)+1),
		Prompt: prompt, Body: body, Feedback: fb, CreatedAt: at,
	}
	m.records = append(m.records, rec)
	return rec, nil
}

func (m *mockWritingRepo) All(_ context.Context) ([]*store.WritingRecord, error) {
	// Newest first, as the real repo returns.
	out := make([]*store.WritingRecord, len(m.records))
	copy(out, m.records)
	for i := 0; i < len(out)/2; i++ {
		out[i], out[len(out)-1-i] = out[len(out)-1-i], out[i]
	}
	return out, nil
}

func (m *mockWritingRepo) CountOnDay(_ context.Context, day time.Time) (int, error) {
	key := day.Format("2006-01-02")
	n := 0
	for _, rec := range m.records {
		if rec.CreatedAt.Format("2006-01-02") == key {
			n++
		}
	}
	return n, nil
}

func uniformFeedback(r rank.Rank) score.Feedback {
	return score.Feedback{Overall: r, Grammar: r, Vocabulary: r, Structure: r, Content: r}
}

func TestSnapshot_EmptyHistory(t *testing.T) {
	svc := NewService(&mockWritingRepo{})
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	snap, err := svc.Snapshot(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, rank.D, snap.Overall)
	assert.Equal(t, 0, snap.TotalWritings)
	assert.Equal(t, 0, snap.CurrentStreak)
	assert.Equal(t, score.TrendStable, snap.Trend)
}

func TestSnapshot_ComputesStreakFromHistory(t *testing.T) {
	repo := &mockWritingRepo{}
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Add(ctx, "p", "b", uniformFeedback(rank.A), now.AddDate(0, 0, -i))
		require.NoError(t, err)
	}

	svc := NewService(repo)
	snap, err := svc.Snapshot(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 3, snap.CurrentStreak)
	assert.Equal(t, 3, snap.TotalWritings)
	assert.Equal(t, rank.A, snap.Overall)
}

func TestLogWriting_Validation(t *testing.T) {
	svc := NewService(&mockWritingRepo{})
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	_, err := svc.LogWriting(ctx, "p", "", uniformFeedback(rank.A), now)
	assert.Error(t, err, "empty body rejected")

	bad := uniformFeedback(rank.A)
	bad.Structure = rank.Rank("Z")
	_, err = svc.LogWriting(ctx, "p", "body", bad, now)
	assert.Error(t, err, "invalid rank rejected")

	rec, err := svc.LogWriting(ctx, "p", "body", uniformFeedback(rank.A), now)
	require.NoError(t, err)
	assert.Equal(t, rank.A, rec.Feedback.Overall)
}
