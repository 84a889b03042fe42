package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/inkwell/internal/deck"
	"github.com/abhisek/inkwell/internal/router"
	"github.com/abhisek/inkwell/internal/screen"
	"github.com/abhisek/inkwell/internal/srs"
	"github.com/abhisek/inkwell/internal/store"
	"github.com/abhisek/inkwell/internal/ui/layout"
	"github.com/abhisek/inkwell/internal/ui/theme"
)

type queueLoadedMsg struct {
	Queue []*store.Entry
	Err   error
}

type ratedMsg struct {
	Update srs.Update
	Rating srs.Rating
	Err    error
}

// ReviewScreen runs a flashcard review session over the due queue.
type ReviewScreen struct {
	deck     *deck.Service
	limit    int
	queue    []*store.Entry
	index    int
	revealed bool
	previews map[srs.Rating]string
	reviewed int
	lapses   int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a review session screen.
func New(deckSvc *deck.Service, limit int) *ReviewScreen {
	return &ReviewScreen{deck: deckSvc, limit: limit}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return func() tea.Msg {
		queue, err := s.deck.Queue(context.Background(), time.Now(), s.limit)
		return queueLoadedMsg{Queue: queue, Err: err}
	}
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	if !s.revealed {
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			{Key: "Esc", Description: "End session"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Rate recall"},
		{Key: "Esc", Description: "End session"},
	}
}

func (s *ReviewScreen) current() *store.Entry {
	if s.index < 0 || s.index >= len(s.queue) {
		return nil
	}
	return s.queue[s.index]
}

func (s *ReviewScreen) rate(rating srs.Rating) tea.Cmd {
	entry := s.current()
	if entry == nil {
		return nil
	}
	return func() tea.Msg {
		up, err := s.deck.RecordReview(context.Background(), entry.ID, rating, time.Now())
		return ratedMsg{Update: up, Rating: rating, Err: err}
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case queueLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.queue = msg.Queue
		}
		s.loaded = true
		return s, nil

	case ratedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.reviewed++
		if msg.Rating == srs.RatingAgain {
			s.lapses++
		}
		s.index++
		s.revealed = false
		s.previews = nil
		return s, nil

	case tea.KeyMsg:
		entry := s.current()
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case " ", "enter":
			if entry != nil && !s.revealed {
				s.revealed = true
				s.previews = s.deck.Previews(entry.Review, time.Now())
			}
			return s, nil
		case "1", "2", "3", "4":
			if entry != nil && s.revealed {
				idx := int(msg.String()[0] - '1')
				return s, s.rate(srs.AllRatings[idx])
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *ReviewScreen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Render("  Loading deck...")
	}
	if s.errMsg != "" {
		return theme.Bad.Render("  " + s.errMsg)
	}
	if len(s.queue) == 0 {
		return center(width, height,
			theme.Title.Render("Nothing due")+"\n\n"+
				theme.Hint.Render("Every word in your deck is scheduled for later."))
	}
	if s.current() == nil {
		return s.summaryView(width, height)
	}
	return s.cardView(width, height)
}

func (s *ReviewScreen) cardView(width, height int) string {
	entry := s.current()

	progress := theme.Subtitle.Render(
		fmt.Sprintf("Card %d of %d", s.index+1, len(s.queue)))

	var body strings.Builder
	body.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(entry.Word))

	if s.revealed {
		body.WriteString("\n\n")
		body.WriteString(theme.Body.Render(entry.Definition))
		if entry.Example != "" {
			body.WriteString("\n\n")
			body.WriteString(theme.Hint.Render("“" + entry.Example + "”"))
		}
		body.WriteString("\n\n")
		body.WriteString(s.ratingRow())
	} else {
		body.WriteString("\n\n")
		body.WriteString(theme.Hint.Render("Press space to reveal"))
	}

	card := theme.Card.Width(min(width-4, 64)).Render(body.String())
	return center(width, height, progress+"\n\n"+card)
}

// ratingRow renders the four rating choices with the next interval each
// one would schedule.
func (s *ReviewScreen) ratingRow() string {
	keys := []string{"1", "2", "3", "4"}
	parts := make([]string, 0, len(srs.AllRatings))
	for i, r := range srs.AllRatings {
		style := theme.Unselected
		if r == srs.RatingAgain {
			style = theme.Bad
		} else if r == srs.RatingEasy {
			style = theme.Good
		}
		label := style.Render(fmt.Sprintf("%s %s", keys[i], r.Label()))
		interval := theme.Hint.Render(fmt.Sprintf("(%s)", s.previews[r]))
		parts = append(parts, label+" "+interval)
	}
	return strings.Join(parts, "   ")
}

func (s *ReviewScreen) summaryView(width, height int) string {
	lines := theme.Title.Render("Session complete") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("Reviewed: %d", s.reviewed))
	if s.lapses > 0 {
		lines += "\n" + theme.Body.Render(fmt.Sprintf("Back to square one: %d", s.lapses))
	}
	lines += "\n\n" + theme.Hint.Render("Press Esc to go back")
	return center(width, height, lines)
}

func center(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
