package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bran/bridgesolve/internal/engine"
)

func testResult(t *testing.T) Result {
	t.Helper()
	hands, leader, err := engine.ParsePBN("N:AKQT3.J6.KJ42.95 652.AK42.AQ87.T4 J74.QT95.T.AK863 98.873.9653.QJ72")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return Result{Hands: hands, Trump: engine.NoTrump, Leader: leader, NSWon: 6}
}

func TestRightArrowAdvancesCursorClockwise(t *testing.T) {
	m := New(testResult(t))
	start := m.cursor

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)

	if m.cursor != engine.NextSeat(start) {
		t.Errorf("cursor = %s, want %s", m.cursor, engine.NextSeat(start))
	}
}

func TestQPressSetsQuitting(t *testing.T) {
	m := New(testResult(t))
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(Model)

	if !m.quitting {
		t.Error("expected quitting to be true after 'q'")
	}
	if cmd == nil {
		t.Error("expected a tea.Quit command after 'q'")
	}
}

func TestViewMentionsTrumpAndTrickCount(t *testing.T) {
	m := New(testResult(t))
	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}
	if !strings.Contains(view, "Trump: NT") {
		t.Errorf("View() does not mention the trump: %q", view)
	}
	if !strings.Contains(view, "NS tricks: 6") {
		t.Errorf("View() does not mention the NS trick count: %q", view)
	}
}

func TestFPressTogglesFocusedView(t *testing.T) {
	m := New(testResult(t))
	if m.focused {
		t.Fatal("expected focused to start false")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m = updated.(Model)
	if !m.focused {
		t.Fatal("expected focused to be true after 'f'")
	}

	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty string in focused mode")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m = updated.(Model)
	if m.focused {
		t.Fatal("expected focused to toggle back to false on a second 'f'")
	}
}
