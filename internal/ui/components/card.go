package components

import (
	"strings"

	"github.com/bran/bridgesolve/internal/engine"
	"github.com/bran/bridgesolve/internal/ui/theme"
	"github.com/charmbracelet/lipgloss"
)

// CardStyle defines the rendering style for a card in the deal
// inspector. There is no "playable" state here — the inspector shows
// a solved position, it never asks the viewer to choose a play.
type CardStyle int

const (
	CardStyleNormal CardStyle = iota
	CardStyleSelected
	CardStyleWinner
	CardStyleFaceDown
)

// CardView is a visual card component.
type CardView struct {
	Card    engine.Card
	Style   CardStyle
	FaceUp  bool
	Compact bool
}

// NewCardView creates a new card view.
func NewCardView(card engine.Card) *CardView {
	return &CardView{
		Card:   card,
		Style:  CardStyleNormal,
		FaceUp: true,
	}
}

// Render returns the visual representation of the card.
func (c *CardView) Render() string {
	if !c.FaceUp {
		return c.renderFaceDown()
	}
	if c.Compact {
		return c.renderCompact()
	}
	return c.renderFull()
}

// renderFull renders a full-size card.
func (c *CardView) renderFull() string {
	rank := string(c.Card.RankByte())
	suit := c.Card.Suit().Symbol()

	contentStyle, borderStyle := c.getStyles()

	rankPad := rank + " "
	interior1 := contentStyle.Render(rankPad + "   ")
	interior2 := contentStyle.Render("  " + suit + "  ")
	interior3 := contentStyle.Render("   " + rankPad)

	border := borderStyle.Render
	lines := []string{
		border("┌─────┐"),
		border("│") + interior1 + border("│"),
		border("│") + interior2 + border("│"),
		border("│") + interior3 + border("│"),
		border("└─────┘"),
	}
	return strings.Join(lines, "\n")
}

// renderCompact renders a one-line card representation, e.g. "AS".
func (c *CardView) renderCompact() string {
	contentStyle, _ := c.getStyles()
	return contentStyle.Render(c.Card.String())
}

// renderFaceDown renders a single full-size face-down card back, used
// by Render when FaceUp is false.
func (c *CardView) renderFaceDown() string {
	lines := []string{
		"┌─────┐",
		"│░░░░░│",
		"│░░░░░│",
		"│░░░░░│",
		"└─────┘",
	}
	style := theme.Current.Muted
	styled := make([]string, len(lines))
	for i, line := range lines {
		styled[i] = style.Render(line)
	}
	return strings.Join(styled, "\n")
}

// getStyles returns the content and border styles for the card's
// current CardStyle.
func (c *CardView) getStyles() (content, border lipgloss.Style) {
	border = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D"))

	if c.Card.Suit() == engine.Hearts || c.Card.Suit() == engine.Diamonds {
		content = theme.Current.CardRed
	} else {
		content = theme.Current.CardBlack
	}

	switch c.Style {
	case CardStyleSelected:
		border = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498DB"))
	case CardStyleWinner:
		border = lipgloss.NewStyle().Foreground(lipgloss.Color("#27AE60"))
		content = theme.Current.WinnerHighlight
	}
	return content, border
}

// RenderHand renders a seat's cards horizontally, suit by suit.
// selectedIdx raises one card above the row (-1 disables it) and
// winnerIdx marks the trick-winning card, if any (-1 disables it).
func RenderHand(cards []engine.Card, selectedIdx, winnerIdx int) string {
	if len(cards) == 0 {
		return ""
	}

	views := make([]*CardView, len(cards))
	for i, card := range cards {
		cv := NewCardView(card)
		switch {
		case i == selectedIdx:
			cv.Style = CardStyleSelected
		case i == winnerIdx:
			cv.Style = CardStyleWinner
		}
		views[i] = cv
	}

	cardWidth := 7
	emptyLine := strings.Repeat(" ", cardWidth)
	rendered := make([]string, len(views))
	for i, cv := range views {
		card := cv.Render()
		if i == selectedIdx {
			rendered[i] = card + "\n" + emptyLine
		} else {
			rendered[i] = emptyLine + "\n" + card
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderCompactHand renders a seat's hand as one line of short card
// tokens, e.g. "AS KS 2H" — used in the inspector's sidebar where
// vertical space is scarce.
func RenderCompactHand(cards []engine.Card, selectedIdx int) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		cv := NewCardView(card)
		cv.Compact = true
		if i == selectedIdx {
			cv.Style = CardStyleSelected
		}
		parts[i] = cv.Render()
	}
	return strings.Join(parts, " ")
}

// RenderFaceDown renders count overlapping face-down cards, used by the
// inspector's focused view for every seat other than the one selected.
func RenderFaceDown(count int) string {
	if count == 0 {
		return ""
	}
	style := theme.Current.Muted
	var lines [5]string
	for i := 0; i < count; i++ {
		if i < count-1 {
			lines[0] += style.Render("┌─")
			lines[1] += style.Render("│░")
			lines[2] += style.Render("│░")
			lines[3] += style.Render("│░")
			lines[4] += style.Render("└─")
		} else {
			lines[0] += style.Render("┌─────┐")
			lines[1] += style.Render("│░░░░░│")
			lines[2] += style.Render("│░░░░░│")
			lines[3] += style.Render("│░░░░░│")
			lines[4] += style.Render("└─────┘")
		}
	}
	return strings.Join(lines[:], "\n")
}
