package poker

import "fmt"

// ParseError reports a malformed card token. Tokens are exactly two
// characters, one rank alias and one suit alias in either order.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse card %q: %s", e.Token, e.Reason)
}

// ConstructionError reports unusable input to a card set constructor.
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construct card set: %s", e.Reason)
}

// ScoringError reports an attempt to score a hand without enough cards.
// Scoring is defined for exactly five cards; best-hand search needs at
// least five.
type ScoringError struct {
	Cards int
	Need  int
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("score hand: need %d cards, got %d", e.Need, e.Cards)
}
