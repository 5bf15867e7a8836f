package server

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return New(log.New(io.Discard), quartz.NewReal(), time.Minute)
}

func TestHandleEvaluate(t *testing.T) {
	srv := newTestServer()

	resp := srv.handleRequest(Request{
		Type:  MessageTypeEvaluate,
		Cards: "AS KS QS JS TS 2D 7C",
	})
	require.Equal(t, MessageTypeResult, resp.Type)
	require.NotNil(t, resp.Best)
	assert.Equal(t, "Royal Flush", resp.Best.HandType)
	assert.Empty(t, resp.Best.Kickers)
	assert.Len(t, resp.Best.Cards, 5)
	for _, token := range resp.Best.Cards {
		assert.True(t, strings.HasSuffix(token, "S"), "royal flush card %s should be a spade", token)
	}
}

func TestHandleEvaluateErrors(t *testing.T) {
	srv := newTestServer()

	resp := srv.handleRequest(Request{Type: MessageTypeEvaluate, Cards: "AS XX"})
	assert.Equal(t, MessageTypeError, resp.Type)
	assert.NotEmpty(t, resp.Error)

	resp = srv.handleRequest(Request{Type: MessageTypeEvaluate, Cards: "AS KH 2D"})
	assert.Equal(t, MessageTypeError, resp.Type)

	resp = srv.handleRequest(Request{Type: "bogus"})
	assert.Equal(t, MessageTypeError, resp.Type)
}

func TestHandleShowdown(t *testing.T) {
	srv := newTestServer()

	resp := srv.handleRequest(Request{
		Type: MessageTypeShowdown,
		Hands: map[string]string{
			"hero":    "AS AH",
			"villain": "KD KC",
		},
		Board: "AD 7S 7H 2C 3D",
	})
	require.Equal(t, MessageTypeResult, resp.Type)
	assert.Len(t, resp.Hands, 2)
	assert.Equal(t, []string{"hero"}, resp.Winners)
}

func TestHandleShowdownSplit(t *testing.T) {
	srv := newTestServer()

	resp := srv.handleRequest(Request{
		Type: MessageTypeShowdown,
		Hands: map[string]string{
			"a": "2D 3C",
			"b": "2H 3H",
		},
		Board: "AS KS QS JS TS",
	})
	require.Equal(t, MessageTypeResult, resp.Type)
	assert.ElementsMatch(t, []string{"a", "b"}, resp.Winners)
}

func dialTestServer(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// evalRoundTrip sends an evaluate request and reads the response. Once it
// returns, the server has armed (or rearmed) the connection's idle timer.
func evalRoundTrip(t *testing.T, conn *websocket.Conn) Response {
	t.Helper()
	require.NoError(t, conn.WriteJSON(Request{
		Type:  MessageTypeEvaluate,
		Cards: "9H 8H 7H 6H 5H",
	}))
	var resp Response
	require.NoError(t, conn.ReadJSON(&resp))
	return resp
}

func TestWebSocketRoundTrip(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dialTestServer(t, ts)
	resp := evalRoundTrip(t, conn)
	require.Equal(t, MessageTypeResult, resp.Type)
	require.NotNil(t, resp.Best)
	assert.Equal(t, "Straight Flush", resp.Best.HandType)
	assert.Equal(t, []string{"Nine"}, resp.Best.Kickers)
}

func TestIdleConnectionCloses(t *testing.T) {
	mockClock := quartz.NewMock(t)
	srv := New(log.New(io.Discard), mockClock, 30*time.Second)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dialTestServer(t, ts)
	evalRoundTrip(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	mockClock.Advance(30 * time.Second).MustWait(ctx)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "connection should be closed after the idle timeout")
}

func TestRequestRearmsIdleTimer(t *testing.T) {
	mockClock := quartz.NewMock(t)
	srv := New(log.New(io.Discard), mockClock, 30*time.Second)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dialTestServer(t, ts)
	evalRoundTrip(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Advance to 20s, rearm with a request, then advance past the
	// original 30s deadline. The connection must still answer.
	mockClock.Advance(20 * time.Second).MustWait(ctx)
	evalRoundTrip(t, conn)
	mockClock.Advance(25 * time.Second).MustWait(ctx)
	resp := evalRoundTrip(t, conn)
	assert.Equal(t, MessageTypeResult, resp.Type)

	// With no further requests the rearmed timer eventually fires.
	mockClock.Advance(30 * time.Second).MustWait(ctx)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "connection should close once the rearmed timeout lapses")
}
