package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/inkwell/internal/rank"
	"github.com/abhisek/inkwell/internal/score"
	"github.com/abhisek/inkwell/internal/srs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestVocabAddAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.VocabRepo()
	ctx := context.Background()

	e, err := repo.Add(ctx, "serendipity", "finding good things by chance", "A happy serendipity.")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.ID == "" {
		t.Fatal("expected generated ID")
	}
	if e.Review.EaseFactor != srs.DefaultEaseFactor {
		t.Errorf("EaseFactor = %v, want default %v", e.Review.EaseFactor, srs.DefaultEaseFactor)
	}
	if e.Review.NextReviewAt != nil {
		t.Error("new entry should have no scheduled review")
	}

	got, err := repo.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Word != "serendipity" {
		t.Errorf("Word = %q, want %q", got.Word, "serendipity")
	}
}

func TestVocabDuplicateWordRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.VocabRepo()
	ctx := context.Background()

	if _, err := repo.Add(ctx, "ephemeral", "short-lived", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := repo.Add(ctx, "ephemeral", "short-lived", ""); err == nil {
		t.Fatal("expected duplicate word to be rejected")
	}
}

func TestVocabByWordMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.VocabRepo()

	e, err := repo.ByWord(context.Background(), "absent")
	if err != nil {
		t.Fatalf("by word: %v", err)
	}
	if e != nil {
		t.Fatal("expected nil for missing word")
	}
}

func TestVocabApplyReview(t *testing.T) {
	s := openTestStore(t)
	repo := s.VocabRepo()
	ctx := context.Background()

	e, err := repo.Add(ctx, "laconic", "using few words", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	up := srs.Schedule(e.Review, srs.RatingGood, now)
	if err := repo.ApplyReview(ctx, e.ID, up); err != nil {
		t.Fatalf("apply review: %v", err)
	}

	got, err := repo.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Review.Interval != 3 {
		t.Errorf("Interval = %d, want 3", got.Review.Interval)
	}
	if got.Review.ReviewCount != 1 {
		t.Errorf("ReviewCount = %d, want 1", got.Review.ReviewCount)
	}
	if got.Review.NextReviewAt == nil || !got.Review.NextReviewAt.Equal(up.NextReviewAt) {
		t.Error("NextReviewAt not persisted")
	}
}

func TestWritingAddAndAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.WritingRepo()
	ctx := context.Background()

	fb := score.Feedback{
		Overall: rank.B, Grammar: rank.BPlus, Vocabulary: rank.B,
		Structure: rank.BMinus, Content: rank.B,
	}
	older := time.Date(2025, 5, 30, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	if _, err := repo.Add(ctx, "My hometown", "I grew up in...", fb, older); err != nil {
		t.Fatalf("add older: %v", err)
	}
	if _, err := repo.Add(ctx, "A rainy day", "It rained all day...", fb, newer); err != nil {
		t.Fatalf("add newer: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d writings, want 2", len(all))
	}
	if !all[0].CreatedAt.Equal(newer) {
		t.Error("writings should come back newest first")
	}
	if all[0].Feedback.Grammar != rank.BPlus {
		t.Errorf("Grammar = %s, want B+", all[0].Feedback.Grammar)
	}

	n, err := repo.CountOnDay(ctx, time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("count on day: %v", err)
	}
	if n != 1 {
		t.Errorf("CountOnDay(2025-06-01) = %d, want 1", n)
	}
	n, err = repo.CountOnDay(ctx, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("count on empty day: %v", err)
	}
	if n != 0 {
		t.Errorf("CountOnDay(2025-06-02) = %d, want 0", n)
	}
}

func TestReviewEventSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendReview(ctx, ReviewEventData{
			EntryID: "e1", Word: "laconic", Rating: "good",
			EaseBefore: 2.5, EaseAfter: 2.5, IntervalBefore: 1, IntervalAfter: 3,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.RecentReviews(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest first, strictly decreasing sequence.
	for i := 1; i < len(events); i++ {
		if events[i].Sequence >= events[i-1].Sequence {
			t.Errorf("sequence not decreasing: %d then %d", events[i-1].Sequence, events[i].Sequence)
		}
	}
}
