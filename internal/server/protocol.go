package server

// MessageType identifies a WebSocket message.
type MessageType string

// Client to server message types
const (
	MessageTypeEvaluate MessageType = "evaluate"
	MessageTypeShowdown MessageType = "showdown"
)

// Server to client message types
const (
	MessageTypeResult MessageType = "result"
	MessageTypeError  MessageType = "error"
)

// Request is a client message. Evaluate scores the best five-card hand in
// Cards; Showdown resolves Hands against a shared Board.
type Request struct {
	Type MessageType `json:"type"`

	// Cards is a space-separated token list, e.g. "AS KH 2D 9C 9D".
	Cards string `json:"cards,omitempty"`

	// Hands maps player name to two hole card tokens, e.g. "AS AH".
	Hands map[string]string `json:"hands,omitempty"`

	// Board holds the shared community card tokens.
	Board string `json:"board,omitempty"`
}

// HandResult describes one scored hand.
type HandResult struct {
	Player   string   `json:"player,omitempty"`
	HandType string   `json:"hand_type"`
	Kickers  []string `json:"kickers"`
	Cards    []string `json:"cards"`
}

// Response is a server message.
type Response struct {
	Type    MessageType  `json:"type"`
	Best    *HandResult  `json:"best,omitempty"`
	Hands   []HandResult `json:"hands,omitempty"`
	Winners []string     `json:"winners,omitempty"`
	Error   string       `json:"error,omitempty"`
}
