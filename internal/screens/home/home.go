package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/inkwell/internal/deck"
	"github.com/abhisek/inkwell/internal/progress"
	"github.com/abhisek/inkwell/internal/rank"
	"github.com/abhisek/inkwell/internal/router"
	"github.com/abhisek/inkwell/internal/score"
	"github.com/abhisek/inkwell/internal/screen"
	addwordscreen "github.com/abhisek/inkwell/internal/screens/addword"
	progressscreen "github.com/abhisek/inkwell/internal/screens/progress"
	reviewscreen "github.com/abhisek/inkwell/internal/screens/review"
	"github.com/abhisek/inkwell/internal/ui/components"
	"github.com/abhisek/inkwell/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu    components.Menu
	due     int
	streak  int
	overall string
	total   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen, loading the header stats up front.
func New(deckSvc *deck.Service, progressSvc *progress.Service, sessionLimit int) *HomeScreen {
	ctx := context.Background()
	now := time.Now()

	var due int
	if entries, err := deckSvc.DueEntries(ctx, now); err == nil {
		due = len(entries)
	}

	snap := score.SkillScore{Overall: rank.D}
	if progressSvc != nil {
		if s, err := progressSvc.Snapshot(ctx, now); err == nil {
			snap = s
		}
	}

	items := []components.MenuItem{
		{Label: "REVIEW DECK", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: reviewscreen.New(deckSvc, sessionLimit)}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressscreen.New(progressSvc)}
			}
		}},
		{Label: "ADD WORD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: addwordscreen.New(deckSvc)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		due:     due,
		streak:  snap.CurrentStreak,
		overall: string(snap.Overall),
		total:   snap.TotalWritings,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Due returns the number of entries due for review, for the header bar.
func (h *HomeScreen) Due() int {
	return h.due
}

// Streak returns the current writing streak, for the header bar.
func (h *HomeScreen) Streak() int {
	return h.streak
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("I N K W E L L") + "\n" +
		theme.Subtitle.Render("daily English writing practice")

	stats := theme.Hint.Render(fmt.Sprintf(
		"%d due · rank %s · %d writings", h.due, h.overall, h.total))

	sections := []string{title, stats, h.menu.View()}
	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
