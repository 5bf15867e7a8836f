// Package simulator estimates showdown equity by Monte Carlo: it deals
// random board completions and resolves each one with the best-hand
// search from the poker package.
package simulator

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/CalebMcNevin/pyker/internal/randutil"
	"github.com/CalebMcNevin/pyker/poker"
)

// Config holds configuration for an equity run.
type Config struct {
	Iterations int
	Seed       int64
	Workers    int
	Logger     *log.Logger
}

// Player is one showdown participant: a name and their hole cards.
type Player struct {
	Name  string
	Cards []poker.Card
}

// PlayerResult accumulates one player's outcomes across all sampled
// boards. A board where several players split counts as a tie for each.
type PlayerResult struct {
	Name string
	Wins int
	Ties int
}

// WinPercent returns the share of sampled boards this player won outright.
func (r PlayerResult) WinPercent(iterations int) float64 {
	if iterations == 0 {
		return 0
	}
	return 100 * float64(r.Wins) / float64(iterations)
}

// TiePercent returns the share of sampled boards this player split.
func (r PlayerResult) TiePercent(iterations int) float64 {
	if iterations == 0 {
		return 0
	}
	return 100 * float64(r.Ties) / float64(iterations)
}

// Result is the outcome of a simulation run.
type Result struct {
	Iterations int
	Players    []PlayerResult
}

// Simulator runs Monte Carlo showdown simulations.
type Simulator struct {
	cfg Config
}

// New creates a simulator. Zero Workers means one worker per CPU.
func New(cfg Config) *Simulator {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Simulator{cfg: cfg}
}

// Run estimates each player's equity given their hole cards and a partial
// board of up to five cards. Boards are completed with cards drawn from
// the rest of the deck; every completed board is resolved by comparing the
// players' best five-card hands.
func (s *Simulator) Run(ctx context.Context, players []Player, board []poker.Card) (*Result, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("simulation needs at least 2 players, got %d", len(players))
	}
	if len(board) > 5 {
		return nil, fmt.Errorf("board cannot have more than 5 cards, got %d", len(board))
	}

	// Everything not already in a hand or on the board is available to
	// complete the board with.
	taken := make(map[poker.Card]string)
	for _, c := range board {
		taken[c] = "board"
	}
	for _, p := range players {
		if len(p.Cards) != 2 {
			return nil, fmt.Errorf("player %s: need exactly 2 hole cards, got %d", p.Name, len(p.Cards))
		}
		for _, c := range p.Cards {
			if owner, dup := taken[c]; dup {
				return nil, fmt.Errorf("card %v held by both %s and %s", c, owner, p.Name)
			}
			taken[c] = p.Name
		}
	}
	var avail []poker.Card
	for _, c := range poker.NewDeck().Cards() {
		if _, used := taken[c]; !used {
			avail = append(avail, c)
		}
	}
	need := 5 - len(board)

	s.cfg.Logger.Debug("starting equity simulation",
		"players", len(players),
		"iterations", s.cfg.Iterations,
		"workers", s.cfg.Workers,
		"board", len(board))

	results := make([][]PlayerResult, s.cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < s.cfg.Workers; w++ {
		iters := s.cfg.Iterations / s.cfg.Workers
		if w < s.cfg.Iterations%s.cfg.Workers {
			iters++
		}
		rng := randutil.New(s.cfg.Seed + int64(w))
		g.Go(func() error {
			res, err := s.worker(ctx, players, board, avail, need, iters, rng)
			if err != nil {
				return err
			}
			results[w] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Result{Iterations: s.cfg.Iterations}
	for i, p := range players {
		pr := PlayerResult{Name: p.Name}
		for _, res := range results {
			pr.Wins += res[i].Wins
			pr.Ties += res[i].Ties
		}
		out.Players = append(out.Players, pr)
	}
	return out, nil
}

func (s *Simulator) worker(ctx context.Context, players []Player, board, avail []poker.Card, need, iters int, rng *rand.Rand) ([]PlayerResult, error) {
	res := make([]PlayerResult, len(players))
	pool := append([]poker.Card(nil), avail...)
	best := make([]*poker.ScoredHand, len(players))

	for i := 0; i < iters; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rng.Shuffle(len(pool), func(a, b int) {
			pool[a], pool[b] = pool[b], pool[a]
		})
		fullBoard := append(append([]poker.Card(nil), board...), pool[:need]...)

		for p, player := range players {
			cards := append(append([]poker.Card(nil), player.Cards...), fullBoard...)
			hand, err := poker.NewCardSet(cards...).BestHand()
			if err != nil {
				return nil, fmt.Errorf("player %s: %w", player.Name, err)
			}
			best[p] = hand
		}

		top := best[0]
		for _, h := range best[1:] {
			if h.Beats(top) {
				top = h
			}
		}
		winners := 0
		for _, h := range best {
			if h.Equal(top) {
				winners++
			}
		}
		for p, h := range best {
			if !h.Equal(top) {
				continue
			}
			if winners == 1 {
				res[p].Wins++
			} else {
				res[p].Ties++
			}
		}
	}
	return res, nil
}
