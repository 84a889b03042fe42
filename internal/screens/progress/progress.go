package progress

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/inkwell/internal/progress"
	"github.com/abhisek/inkwell/internal/rank"
	"github.com/abhisek/inkwell/internal/router"
	"github.com/abhisek/inkwell/internal/score"
	"github.com/abhisek/inkwell/internal/screen"
	"github.com/abhisek/inkwell/internal/ui/components"
	"github.com/abhisek/inkwell/internal/ui/layout"
	"github.com/abhisek/inkwell/internal/ui/theme"
)

type snapshotLoadedMsg struct {
	Snapshot score.SkillScore
	Err      error
}

// ProgressScreen displays the current writing skill snapshot.
type ProgressScreen struct {
	svc      *progress.Service
	snapshot score.SkillScore
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a progress screen.
func New(svc *progress.Service) *ProgressScreen {
	return &ProgressScreen{svc: svc}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return func() tea.Msg {
		snap, err := s.svc.Snapshot(context.Background(), time.Now())
		return snapshotLoadedMsg{Snapshot: snap, Err: err}
	}
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.snapshot = msg.Snapshot
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Render("  Computing...")
	}
	if s.errMsg != "" {
		return theme.Bad.Render("  " + s.errMsg)
	}

	snap := s.snapshot

	overall := lipgloss.NewStyle().
		Foreground(theme.RankColor(string(snap.Overall))).
		Bold(true).
		Render(string(snap.Overall))

	header := theme.Title.Render("Writing skill") + "\n\n" +
		theme.Body.Render("Overall  ") + overall + "  " + trendArrow(snap.Trend)

	axes := []struct {
		label string
		rank  rank.Rank
	}{
		{"Grammar   ", snap.Grammar},
		{"Vocabulary", snap.Vocabulary},
		{"Structure ", snap.Structure},
		{"Content   ", snap.Content},
	}

	var rows []string
	for _, a := range axes {
		bar := components.NewProgressBar(a.label, rankPercent(a.rank), 36,
			theme.RankColor(string(a.rank)))
		rankLabel := lipgloss.NewStyle().
			Foreground(theme.RankColor(string(a.rank))).
			Bold(true).
			Render(fmt.Sprintf(" %-2s", a.rank))
		rows = append(rows, bar.View()+rankLabel)
	}

	footer := theme.Hint.Render(fmt.Sprintf(
		"%d writings · %d day streak", snap.TotalWritings, snap.CurrentStreak))

	card := theme.Card.Width(min(width-4, 56)).Render(
		header + "\n\n" + strings.Join(rows, "\n") + "\n\n" + footer)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// rankPercent maps the 500-1000 score scale onto a 0..1 bar fill.
func rankPercent(r rank.Rank) float64 {
	return float64(r.Score()-500) / 500.0
}

func trendArrow(t score.Trend) string {
	switch t {
	case score.TrendUp:
		return theme.Good.Render("↑ improving")
	case score.TrendDown:
		return theme.Bad.Render("↓ slipping")
	default:
		return theme.Hint.Render("→ steady")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
