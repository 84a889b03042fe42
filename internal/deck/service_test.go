package deck

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/inkwell/internal/srs"
	"github.com/abhisek/inkwell/internal/store"
)

// mockVocabRepo is an in-memory VocabRepo for tests.
type mockVocabRepo struct {
	entries map[string]*store.Entry
	applied map[string]srs.Update
}

func newMockVocabRepo() *mockVocabRepo {
	return &mockVocabRepo{
		entries: make(map[string]*store.Entry),
		applied: make(map[string]srs.Update),
	}
}

func (m *mockVocabRepo) Add(_ context.Context, word, definition, example string) (*store.Entry, error) {
	id := fmt.Sprintf("id-%d", len(m.entries)+1)
	e := &store.Entry{
		ID: id, Word: word, Definition: definition, Example: example,
		Review: srs.NewReviewState(time.Now()),
	}
	m.entries[id] = e
	return e, nil
}

func (m *mockVocabRepo) Get(_ context.Context, id string) (*store.Entry, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, fmt.Errorf("entry %s not found", id)
	}
	return e, nil
}

func (m *mockVocabRepo) ByWord(_ context.Context, word string) (*store.Entry, error) {
	for _, e := range m.entries {
		if e.Word == word {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockVocabRepo) All(_ context.Context) ([]*store.Entry, error) {
	out := make([]*store.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, nil
}

func (m *mockVocabRepo) ApplyReview(_ context.Context, id string, up srs.Update) error {
	e, ok := m.entries[id]
	if !ok {
		return fmt.Errorf("entry %s not found", id)
	}
	e.Review = e.Review.Apply(up)
	m.applied[id] = up
	return nil
}

func (m *mockVocabRepo) Delete(_ context.Context, id string) error {
	delete(m.entries, id)
	return nil
}

// mockEventRepo records appended review events.
type mockEventRepo struct {
	events []store.ReviewEventData
}

func (m *mockEventRepo) AppendReview(_ context.Context, data store.ReviewEventData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *mockEventRepo) RecentReviews(_ context.Context, _ int) ([]store.ReviewEventRecord, error) {
	return nil, nil
}

func seedEntry(repo *mockVocabRepo, id, word string, review srs.ReviewState) *store.Entry {
	e := &store.Entry{ID: id, Word: word, Definition: "def", Review: review}
	repo.entries[id] = e
	return e
}

func TestAddWord_Validation(t *testing.T) {
	svc := NewService(newMockVocabRepo(), nil)
	ctx := context.Background()

	_, err := svc.AddWord(ctx, "  ", "a definition", "")
	assert.Error(t, err)

	_, err = svc.AddWord(ctx, "word", "   ", "")
	assert.Error(t, err)

	e, err := svc.AddWord(ctx, " gregarious ", " sociable ", "")
	require.NoError(t, err)
	assert.Equal(t, "gregarious", e.Word)
	assert.Equal(t, "sociable", e.Definition)
}

func TestDueEntries_FiltersAndOrders(t *testing.T) {
	repo := newMockVocabRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	seedEntry(repo, "fresh", "fresh", srs.NewReviewState(now.AddDate(0, 0, -3)))
	seedEntry(repo, "overdue", "overdue", srs.ReviewState{
		EaseFactor: 2.5, Interval: 3, ReviewCount: 1,
		NextReviewAt: &yesterday, CreatedAt: now.AddDate(0, 0, -10),
	})
	seedEntry(repo, "later", "later", srs.ReviewState{
		EaseFactor: 2.5, Interval: 3, ReviewCount: 1,
		NextReviewAt: &tomorrow, CreatedAt: now.AddDate(0, 0, -10),
	})

	svc := NewService(repo, nil)
	due, err := svc.DueEntries(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "fresh", due[0].ID, "never-reviewed entry first")
	assert.Equal(t, "overdue", due[1].ID)
}

func TestQueue_AppliesLimit(t *testing.T) {
	repo := newMockVocabRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("e%d", i)
		seedEntry(repo, id, id, srs.NewReviewState(now.AddDate(0, 0, -i)))
	}

	svc := NewService(repo, nil)
	queue, err := svc.Queue(context.Background(), now, 3)
	require.NoError(t, err)
	assert.Len(t, queue, 3)

	queue, err = svc.Queue(context.Background(), now, 0)
	require.NoError(t, err)
	assert.Len(t, queue, 5, "zero limit means unlimited")
}

func TestRecordReview_PersistsAndLogs(t *testing.T) {
	repo := newMockVocabRepo()
	events := &mockEventRepo{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seedEntry(repo, "e1", "laconic", srs.NewReviewState(now.AddDate(0, 0, -1)))

	svc := NewService(repo, events)
	up, err := svc.RecordReview(context.Background(), "e1", srs.RatingGood, now)
	require.NoError(t, err)

	assert.Equal(t, 3, up.Interval)
	assert.Equal(t, up, repo.applied["e1"], "update persisted as returned")

	require.Len(t, events.events, 1)
	ev := events.events[0]
	assert.Equal(t, "laconic", ev.Word)
	assert.Equal(t, "good", ev.Rating)
	assert.Equal(t, srs.DefaultEaseFactor, ev.EaseBefore)
	assert.Equal(t, 1, ev.IntervalBefore)
	assert.Equal(t, 3, ev.IntervalAfter)
}

func TestRecordReview_MissingEntry(t *testing.T) {
	svc := NewService(newMockVocabRepo(), nil)
	_, err := svc.RecordReview(context.Background(), "nope", srs.RatingGood, time.Now())
	assert.Error(t, err)
}
