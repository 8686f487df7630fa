// Package tui implements a read-only Bubble Tea inspector over one
// solved deal: all four hands, the solver's NS-tricks result, and
// cursor keys to step between seats. A double-dummy result needs a
// screen for exactly one thing — a deal is either being looked at or
// it isn't, there is no gameplay loop to drive.
//
// Shaped after the App root model in internal/app/app.go: single
// tea.Model, Init returns nil, Update switches on tea.KeyMsg and
// tea.WindowSizeMsg, View renders from the model's own state.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bran/bridgesolve/internal/engine"
	"github.com/bran/bridgesolve/internal/ui/components"
	"github.com/bran/bridgesolve/internal/ui/theme"
)

// Result is the solved deal the inspector displays.
type Result struct {
	Hands  engine.Hands
	Trump  engine.Denomination
	Leader engine.Seat
	NSWon  int
}

// Model is the inspector's root Bubble Tea model.
type Model struct {
	result   Result
	cursor   engine.Seat
	width    int
	focused  bool
	quitting bool
}

// New builds an inspector model for r, cursor starting on the leader.
func New(r Result) Model {
	return Model{result: r, cursor: r.Leader}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "right", "l", "tab":
			m.cursor = engine.NextSeat(m.cursor)
		case "left", "h", "shift+tab":
			m.cursor = engine.NextSeat(engine.NextSeat(engine.NextSeat(m.cursor)))
		case "f":
			m.focused = !m.focused
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Current.Title.Render("Double-Dummy Deal Inspector"))
	b.WriteString("\n")
	b.WriteString(theme.Current.Subtitle.Render(
		fmt.Sprintf("Trump: %s   Leader: %s   NS tricks: %d", m.result.Trump, m.result.Leader, m.result.NSWon)))
	b.WriteString("\n\n")

	for _, seat := range []engine.Seat{engine.North, engine.East, engine.South, engine.West} {
		label := fmt.Sprintf("%s:", seat)
		if seat == m.cursor {
			label = theme.Current.Primary.Render(label)
		} else {
			label = theme.Current.Body.Render(label)
		}
		hand := m.result.Hands.Hand(seat).Cards()

		if m.focused && seat != m.cursor {
			b.WriteString(fmt.Sprintf("%-3s %s\n", label, components.RenderFaceDown(len(hand))))
			continue
		}
		b.WriteString(fmt.Sprintf("%-3s %s\n", label, components.RenderCompactHand(hand, -1)))
	}

	if m.focused {
		b.WriteString("\n")
		b.WriteString(theme.Current.Subtitle.Render(fmt.Sprintf("%s's hand in full:", m.cursor)))
		b.WriteString("\n")
		b.WriteString(components.RenderHand(m.result.Hands.Hand(m.cursor).Cards(), -1, -1))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Current.Help.Render("←/→ switch seat   f toggle focus view   q quit"))
	return b.String()
}

// Run launches the inspector as a blocking Bubble Tea program.
func Run(r Result) error {
	p := tea.NewProgram(New(r))
	_, err := p.Run()
	return err
}
