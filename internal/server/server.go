// Package server exposes hand evaluation over a WebSocket endpoint. It is
// a thin transport around the poker package: clients send evaluate or
// showdown requests and receive scored hands back.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/CalebMcNevin/pyker/poker"
)

// Server serves evaluation requests over WebSocket connections.
type Server struct {
	logger      *log.Logger
	clock       quartz.Clock
	idleTimeout time.Duration
	upgrader    websocket.Upgrader
}

// New creates a server. Connections idle for longer than idleTimeout are
// closed; the clock is injected so tests can drive timeouts directly.
func New(logger *log.Logger, clock quartz.Clock, idleTimeout time.Duration) *Server {
	return &Server{
		logger:      logger.WithPrefix("server"),
		clock:       clock,
		idleTimeout: idleTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Handler returns the HTTP handler, with the WebSocket endpoint at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// ListenAndServe serves until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	s.logger.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	s.logger.Info("client connected", "remote", conn.RemoteAddr())

	// Close the connection when no request arrives within the idle
	// window; every request rearms the timer.
	idle := s.clock.AfterFunc(s.idleTimeout, func() {
		s.logger.Warn("closing idle connection", "remote", conn.RemoteAddr())
		conn.Close()
	})
	defer idle.Stop()

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Error("read failed", "error", err)
			}
			return
		}
		idle.Reset(s.idleTimeout)

		resp := s.handleRequest(req)
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Error("write failed", "error", err)
			return
		}
	}
}

func (s *Server) handleRequest(req Request) Response {
	switch req.Type {
	case MessageTypeEvaluate:
		return s.evaluate(req)
	case MessageTypeShowdown:
		return s.showdown(req)
	default:
		return errorResponse(fmt.Errorf("unknown request type %q", req.Type))
	}
}

func (s *Server) evaluate(req Request) Response {
	cs, err := poker.ParseCardSet(req.Cards)
	if err != nil {
		return errorResponse(err)
	}
	best, err := cs.BestHand()
	if err != nil {
		return errorResponse(err)
	}
	result := handResult("", best)
	return Response{Type: MessageTypeResult, Best: &result}
}

func (s *Server) showdown(req Request) Response {
	if len(req.Hands) < 2 {
		return errorResponse(fmt.Errorf("showdown needs at least 2 hands, got %d", len(req.Hands)))
	}
	board, err := poker.ParseCardSet(req.Board)
	if err != nil {
		return errorResponse(fmt.Errorf("board: %w", err))
	}

	var (
		results []HandResult
		best    *poker.ScoredHand
	)
	hands := make(map[string]*poker.ScoredHand, len(req.Hands))
	for name, tokens := range req.Hands {
		hole, err := poker.ParseCardSet(tokens)
		if err != nil {
			return errorResponse(fmt.Errorf("hand %s: %w", name, err))
		}
		hand, err := hole.Concat(board).BestHand()
		if err != nil {
			return errorResponse(fmt.Errorf("hand %s: %w", name, err))
		}
		hands[name] = hand
		results = append(results, handResult(name, hand))
		if best == nil || hand.Beats(best) {
			best = hand
		}
	}

	var winners []string
	for name, hand := range hands {
		if hand.Equal(best) {
			winners = append(winners, name)
		}
	}
	return Response{Type: MessageTypeResult, Hands: results, Winners: winners}
}

func handResult(player string, hand *poker.ScoredHand) HandResult {
	res := HandResult{
		Player:   player,
		HandType: hand.Type().String(),
	}
	for _, k := range hand.Kickers() {
		res.Kickers = append(res.Kickers, k.String())
	}
	for _, c := range hand.Cards() {
		res.Cards = append(res.Cards, c.Token())
	}
	return res
}

func errorResponse(err error) Response {
	return Response{Type: MessageTypeError, Error: err.Error()}
}
