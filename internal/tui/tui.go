// Package tui is an interactive dealer: it deals hole cards to a table of
// players, walks the board street by street, and shows each player's best
// hand and the showdown winner.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CalebMcNevin/pyker/internal/display"
	"github.com/CalebMcNevin/pyker/internal/randutil"
	"github.com/CalebMcNevin/pyker/poker"
)

type stage int

const (
	stagePreflop stage = iota
	stageFlop
	stageTurn
	stageRiver
	stageShowdown
)

func (s stage) String() string {
	switch s {
	case stagePreflop:
		return "Pre-flop"
	case stageFlop:
		return "Flop"
	case stageTurn:
		return "Turn"
	case stageRiver:
		return "River"
	case stageShowdown:
		return "Showdown"
	default:
		return "Unknown"
	}
}

type seat struct {
	name string
	hole *poker.CardSet
}

// Model is the Bubble Tea model for the dealer.
type Model struct {
	deck    *poker.CardSet
	seats   []seat
	board   *poker.CardSet
	stage   stage
	handNum int
	seed    int64

	history   viewport.Model
	log       []string
	styles    *display.Styles
	paneStyle lipgloss.Style
	width     int
	height    int
	quitting  bool
}

// New creates a dealer model for the given player count and seed.
func New(players int, seed int64) Model {
	if players < 2 {
		players = 2
	}
	if players > 9 {
		players = 9
	}

	vp := viewport.New(80, 12)
	m := Model{
		seed:   seed,
		styles: display.NewStyles(),
		paneStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		history: vp,
	}
	for i := 0; i < players; i++ {
		m.seats = append(m.seats, seat{name: fmt.Sprintf("Player %d", i+1)})
	}
	m.startHand()
	return m
}

// startHand reshuffles and deals a fresh hand.
func (m *Model) startHand() {
	m.handNum++
	m.deck = poker.NewDeck()
	m.deck.Shuffle(randutil.New(m.seed + int64(m.handNum)))
	for i := range m.seats {
		m.seats[i].hole = m.deck.Deal(2)
	}
	m.board = poker.NewCardSet()
	m.stage = stagePreflop
	m.appendLog(fmt.Sprintf("=== Hand %d ===", m.handNum))
}

func (m *Model) advance() {
	switch m.stage {
	case stagePreflop:
		m.board.Add(m.deck.Deal(3).Cards()...)
		m.stage = stageFlop
	case stageFlop:
		m.board.Add(m.deck.Deal(1).Cards()...)
		m.stage = stageTurn
	case stageTurn:
		m.board.Add(m.deck.Deal(1).Cards()...)
		m.stage = stageRiver
	case stageRiver:
		m.stage = stageShowdown
		m.resolveShowdown()
	case stageShowdown:
		m.startHand()
	}
}

func (m *Model) resolveShowdown() {
	best := make([]*poker.ScoredHand, len(m.seats))
	var top *poker.ScoredHand
	for i, s := range m.seats {
		hand, err := s.hole.Concat(m.board).BestHand()
		if err != nil {
			m.appendLog(fmt.Sprintf("%s: %v", s.name, err))
			return
		}
		best[i] = hand
		if top == nil || hand.Beats(top) {
			top = hand
		}
	}

	var winners []string
	for i, s := range m.seats {
		marker := " "
		if best[i].Equal(top) {
			winners = append(winners, s.name)
			marker = "*"
		}
		m.appendLog(fmt.Sprintf("%s %s: %s", marker, s.name, best[i]))
	}
	switch len(winners) {
	case 1:
		m.appendLog(fmt.Sprintf("%s wins", winners[0]))
	default:
		m.appendLog(fmt.Sprintf("Split pot: %s", strings.Join(winners, ", ")))
	}
}

func (m *Model) appendLog(line string) {
	m.log = append(m.log, line)
	m.history.SetContent(strings.Join(m.log, "\n"))
	m.history.GotoBottom()
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
		m.height = msg.Height
		m.history.Width = msg.Width - 4
		if h := msg.Height - len(m.seats) - 10; h > 3 {
			m.history.Height = h
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ", "enter", "d":
			m.advance()
			return m, nil
		case "n":
			m.startHand()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(fmt.Sprintf(" Hand %d · %s ", m.handNum, m.stage)))
	b.WriteString("\n\n")

	for _, s := range m.seats {
		b.WriteString(fmt.Sprintf("  %-10s %s\n", s.name, m.styles.Cards(s.hole.Cards())))
	}
	board := m.styles.Muted.Render("(no cards)")
	if m.board.Len() > 0 {
		board = m.styles.Cards(m.board.Cards())
	}
	b.WriteString(fmt.Sprintf("\n  %-10s %s\n\n", "Board", board))

	b.WriteString(m.paneStyle.Render(m.history.View()))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("space: deal next · n: new hand · q: quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the dealer in the alternate screen.
func Run(players int, seed int64) error {
	_, err := tea.NewProgram(New(players, seed), tea.WithAltScreen()).Run()
	return err
}
