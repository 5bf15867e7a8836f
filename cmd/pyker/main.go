package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/CalebMcNevin/pyker/internal/config"
	"github.com/CalebMcNevin/pyker/internal/display"
	"github.com/CalebMcNevin/pyker/internal/randutil"
	"github.com/CalebMcNevin/pyker/internal/server"
	"github.com/CalebMcNevin/pyker/internal/simulator"
	"github.com/CalebMcNevin/pyker/internal/tui"
	"github.com/CalebMcNevin/pyker/poker"
)

type CLI struct {
	Debug bool `help:"Enable debug logging"`

	Deal  DealCmd  `cmd:"" help:"Shuffle a deck and deal a full hand to the table"`
	Best  BestCmd  `cmd:"" help:"Score the best five-card hand in a set of cards"`
	Odds  OddsCmd  `cmd:"" help:"Estimate showdown equity by Monte Carlo simulation"`
	Play  PlayCmd  `cmd:"" help:"Interactive dealer TUI"`
	Serve ServeCmd `cmd:"" help:"Serve hand evaluation over WebSocket"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pyker"),
		kong.Description("A 52-card deck and poker hand evaluation toolkit."))

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	ctx.FatalIfErrorf(ctx.Run(logger))
}

func pickSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// DealCmd deals hole cards and a board, then resolves the showdown.
type DealCmd struct {
	Players int   `short:"p" default:"4" help:"Number of players to deal in"`
	Seed    int64 `help:"RNG seed (0 for random)"`
}

func (c *DealCmd) Run(logger *log.Logger) error {
	if c.Players < 2 || c.Players > 9 {
		return fmt.Errorf("players must be between 2 and 9, got %d", c.Players)
	}
	seed := pickSeed(c.Seed)
	logger.Debug("dealing", "players", c.Players, "seed", seed)

	deck := poker.NewDeck()
	deck.Shuffle(randutil.New(seed))

	styles := display.NewStyles()
	holes := make([]*poker.CardSet, c.Players)
	for i := range holes {
		holes[i] = deck.Deal(2)
	}
	board := deck.Deal(5)

	var best []*poker.ScoredHand
	var top *poker.ScoredHand
	for _, hole := range holes {
		hand, err := hole.Concat(board).BestHand()
		if err != nil {
			return err
		}
		best = append(best, hand)
		if top == nil || hand.Beats(top) {
			top = hand
		}
	}

	fmt.Printf("%s  %s\n\n", styles.Header.Render("Board"), styles.Cards(board.Cards()))
	for i, hole := range holes {
		marker := "  "
		if best[i].Equal(top) {
			marker = styles.Winner.Render("* ")
		}
		fmt.Printf("%sPlayer %d  %s   %s\n", marker, i+1, styles.Cards(hole.Cards()), styles.Hand(best[i]))
	}
	return nil
}

// BestCmd scores a set of cards given as two-character tokens.
type BestCmd struct {
	Cards []string `arg:"" help:"Card tokens, e.g. AS KH QD JC TS 9D 2C"`
}

func (c *BestCmd) Run(logger *log.Logger) error {
	cs, err := poker.ParseCardSet(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	best, err := cs.BestHand()
	if err != nil {
		return err
	}
	styles := display.NewStyles()
	fmt.Printf("%s  %s\n", styles.Header.Render("Cards"), styles.Cards(cs.Cards()))
	fmt.Printf("%s   %s\n", styles.Header.Render("Best"), styles.Hand(best))
	return nil
}

// OddsCmd runs a Monte Carlo equity simulation, from flags or an HCL
// config file.
type OddsCmd struct {
	Hands      []string `arg:"" optional:"" help:"Player hands as quoted token pairs, e.g. 'AS AH' 'KD KC'"`
	Board      string   `short:"b" help:"Community board card tokens"`
	Iterations int      `short:"i" default:"10000" help:"Number of Monte Carlo iterations"`
	Seed       int64    `help:"RNG seed (0 for random)"`
	Workers    int      `help:"Worker goroutines (0 for one per CPU)"`
	Config     string   `short:"c" type:"path" help:"HCL config file with sim and player blocks"`
}

func (c *OddsCmd) Run(logger *log.Logger) error {
	players, board, cfg, err := c.resolve()
	if err != nil {
		return err
	}

	sim := simulator.New(simulator.Config{
		Iterations: cfg.Iterations,
		Seed:       pickSeed(cfg.Seed),
		Workers:    cfg.Workers,
		Logger:     logger,
	})

	start := time.Now()
	result, err := sim.Run(context.Background(), players, board)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	styles := display.NewStyles()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t\n",
		styles.Header.Render("Player"),
		styles.Header.Render("Win"),
		styles.Header.Render("Tie"))
	for _, pr := range result.Players {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n",
			pr.Name,
			styles.Winner.Render(fmt.Sprintf("%.1f%%", pr.WinPercent(result.Iterations))),
			styles.Tie.Render(fmt.Sprintf("%.1f%%", pr.TiePercent(result.Iterations))))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println(styles.Muted.Render(fmt.Sprintf("%d boards in %s", result.Iterations, elapsed.Round(time.Millisecond))))
	return nil
}

func (c *OddsCmd) resolve() ([]simulator.Player, []poker.Card, config.SimSettings, error) {
	settings := config.SimSettings{
		Iterations: c.Iterations,
		Seed:       c.Seed,
		Workers:    c.Workers,
	}

	var players []simulator.Player
	boardTokens := c.Board

	if c.Config != "" {
		cfg, err := config.LoadSimConfig(c.Config)
		if err != nil {
			return nil, nil, settings, err
		}
		settings = cfg.Sim
		boardTokens = cfg.Board
		for _, p := range cfg.Players {
			cards, err := parseHole(p.Cards)
			if err != nil {
				return nil, nil, settings, fmt.Errorf("player %s: %w", p.Name, err)
			}
			players = append(players, simulator.Player{Name: p.Name, Cards: cards})
		}
	} else {
		for i, tokens := range c.Hands {
			cards, err := parseHole(tokens)
			if err != nil {
				return nil, nil, settings, fmt.Errorf("hand %d: %w", i+1, err)
			}
			players = append(players, simulator.Player{
				Name:  fmt.Sprintf("Player %d", i+1),
				Cards: cards,
			})
		}
	}

	var board []poker.Card
	if boardTokens != "" {
		cs, err := poker.ParseCardSet(boardTokens)
		if err != nil {
			return nil, nil, settings, fmt.Errorf("board: %w", err)
		}
		board = cs.Cards()
	}
	return players, board, settings, nil
}

func parseHole(tokens string) ([]poker.Card, error) {
	cs, err := poker.ParseCardSet(tokens)
	if err != nil {
		return nil, err
	}
	if cs.Len() != 2 {
		return nil, fmt.Errorf("need exactly 2 cards, got %d", cs.Len())
	}
	return cs.Cards(), nil
}

// PlayCmd starts the interactive dealer.
type PlayCmd struct {
	Players int   `short:"p" default:"4" help:"Number of players at the table"`
	Seed    int64 `help:"RNG seed (0 for random)"`
}

func (c *PlayCmd) Run(logger *log.Logger) error {
	return tui.Run(c.Players, pickSeed(c.Seed))
}

// ServeCmd runs the WebSocket evaluation service.
type ServeCmd struct {
	Addr        string        `default:":8080" help:"Listen address"`
	IdleTimeout time.Duration `default:"5m" help:"Close connections idle for this long"`
}

func (c *ServeCmd) Run(logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(logger, quartz.NewReal(), c.IdleTimeout)
	return srv.ListenAndServe(ctx, c.Addr)
}
