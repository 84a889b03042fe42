package addword

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/inkwell/internal/deck"
	"github.com/abhisek/inkwell/internal/router"
	"github.com/abhisek/inkwell/internal/screen"
	"github.com/abhisek/inkwell/internal/ui/components"
	"github.com/abhisek/inkwell/internal/ui/layout"
	"github.com/abhisek/inkwell/internal/ui/theme"
)

type wordAddedMsg struct {
	Word string
	Err  error
}

// AddWordScreen collects a new vocabulary entry.
type AddWordScreen struct {
	deck    *deck.Service
	inputs  []components.TextInput
	focus   int
	status  string
	failed  bool
}

var _ screen.Screen = (*AddWordScreen)(nil)
var _ screen.KeyHintProvider = (*AddWordScreen)(nil)

// New creates an add-word screen.
func New(deckSvc *deck.Service) *AddWordScreen {
	inputs := []components.TextInput{
		components.NewTextInput("Word", "e.g. serendipity", 64),
		components.NewTextInput("Definition", "what it means", 256),
		components.NewTextInput("Example (optional)", "a sentence using it", 256),
	}
	return &AddWordScreen{deck: deckSvc, inputs: inputs}
}

func (s *AddWordScreen) Init() tea.Cmd {
	return s.inputs[0].Focus()
}

func (s *AddWordScreen) Title() string {
	return "Add word"
}

func (s *AddWordScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AddWordScreen) submit() tea.Cmd {
	word := s.inputs[0].Value()
	definition := s.inputs[1].Value()
	example := s.inputs[2].Value()
	return func() tea.Msg {
		_, err := s.deck.AddWord(context.Background(), word, definition, example)
		return wordAddedMsg{Word: word, Err: err}
	}
}

func (s *AddWordScreen) setFocus(i int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = (i + len(s.inputs)) % len(s.inputs)
	return s.inputs[s.focus].Focus()
}

func (s *AddWordScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case wordAddedMsg:
		if msg.Err != nil {
			s.status = msg.Err.Error()
			s.failed = true
			return s, nil
		}
		s.status = fmt.Sprintf("Added %q to your deck", msg.Word)
		s.failed = false
		for i := range s.inputs {
			s.inputs[i].Reset()
		}
		return s, s.setFocus(0)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "down":
			return s, s.setFocus(s.focus + 1)
		case "shift+tab", "up":
			return s, s.setFocus(s.focus - 1)
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *AddWordScreen) View(width, height int) string {
	var body string
	for i := range s.inputs {
		body += s.inputs[i].View() + "\n\n"
	}

	if s.status != "" {
		style := theme.Good
		if s.failed {
			style = theme.Bad
		}
		body += style.Render(s.status) + "\n"
	}

	card := theme.Card.Width(min(width-4, 60)).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
