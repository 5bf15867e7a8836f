// Package display renders cards, hands, and result tables for the CLI
// using lipgloss styles.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/CalebMcNevin/pyker/poker"
)

// Styles holds the lipgloss styles shared by the CLI and TUI.
type Styles struct {
	Header    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	HandName  lipgloss.Style
	Winner    lipgloss.Style
	Tie       lipgloss.Style
	Percent   lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles builds the style set. When the terminal reports no color
// support, every style collapses to plain text.
func NewStyles() *Styles {
	if termenv.ColorProfile() == termenv.Ascii {
		plain := lipgloss.NewStyle()
		return &Styles{
			Header: plain, RedCard: plain, BlackCard: plain,
			HandName: plain, Winner: plain, Tie: plain,
			Percent: plain, Muted: plain,
		}
	}
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		RedCard: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")),
		BlackCard: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		HandName: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Tie: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")),
		Percent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
	}
}

// Card renders a single card, red suits in red.
func (s *Styles) Card(c poker.Card) string {
	if c.Suit.IsRed() {
		return s.RedCard.Render(c.String())
	}
	return s.BlackCard.Render(c.String())
}

// Cards renders a card list joined by double spaces.
func (s *Styles) Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = s.Card(c)
	}
	return strings.Join(parts, "  ")
}

// Hand renders a scored hand as "<Hand Type> - <cards>".
func (s *Styles) Hand(h *poker.ScoredHand) string {
	cards := make([]string, 0, 5)
	for _, c := range h.Cards() {
		cards = append(cards, s.Card(c))
	}
	return fmt.Sprintf("%s - %s", s.HandName.Render(h.Type().String()), strings.Join(cards, ", "))
}
