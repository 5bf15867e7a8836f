package poker

import "strings"

// Card represents a playing card. Cards are immutable values; two cards
// are equal when both rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// ParseCard parses a two-character token like "AS" or "H4" into a Card.
// One character must be a rank alias and the other a suit alias; they may
// appear in either order.
func ParseCard(token string) (Card, error) {
	t := strings.TrimSpace(token)
	if len(t) != 2 {
		return Card{}, &ParseError{Token: token, Reason: "token must be two characters"}
	}

	var rank Rank
	var suit Suit
	var hasRank, hasSuit bool
	for i := 0; i < 2; i++ {
		ch := t[i]
		if r, ok := rankAliases[ch]; ok {
			if hasRank {
				return Card{}, &ParseError{Token: token, Reason: "two rank characters"}
			}
			rank = r
			hasRank = true
			continue
		}
		if s, ok := suitAliases[ch]; ok {
			if hasSuit {
				return Card{}, &ParseError{Token: token, Reason: "two suit characters"}
			}
			suit = s
			hasSuit = true
			continue
		}
		return Card{}, &ParseError{Token: token, Reason: "unknown alias " + string(ch)}
	}
	if !hasRank || !hasSuit {
		return Card{}, &ParseError{Token: token, Reason: "token needs one rank and one suit"}
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// String renders the card as rank alias plus suit symbol, e.g. "A♠".
func (c Card) String() string {
	return string(c.Rank.Alias()) + c.Suit.Symbol()
}

// Token renders the card in its two-character parse form, e.g. "AS".
func (c Card) Token() string {
	return string(c.Rank.Alias()) + string(c.Suit.Alias())
}

// Less reports whether c ranks strictly below other under the given Ace
// context. Suits never affect ordering.
func (c Card) Less(other Card, aceHigh bool) bool {
	return c.Rank.Weight(aceHigh) < other.Rank.Weight(aceHigh)
}

// More reports whether c ranks strictly above other under the given Ace
// context.
func (c Card) More(other Card, aceHigh bool) bool {
	return c.Rank.Weight(aceHigh) > other.Rank.Weight(aceHigh)
}

// Adjacent reports whether the two cards' ranks are neighbors. The Ace is
// adjacent to both ends of the sequence: Ace-Two and Ace-King both count.
func (c Card) Adjacent(other Card) bool {
	if c.Rank == other.Rank {
		return false
	}
	d := int(c.Rank) - int(other.Rank)
	if d == 1 || d == -1 {
		return true
	}
	if c.Rank == Ace || other.Rank == Ace {
		lo, hi := c.Rank, other.Rank
		if lo > hi {
			lo, hi = hi, lo
		}
		return hi == Two || hi == King
	}
	return false
}

// OneAbove reports whether c sits directly above other in rank under the
// given Ace context. The King→Ace and Ace→Two wraps are never successor
// steps, which keeps a K-A-2 sequence from reading as an unbroken run.
func (c Card) OneAbove(other Card, aceHigh bool) bool {
	if c.Rank == Ace && other.Rank == Two {
		return false
	}
	if c.Rank == King && other.Rank == Ace {
		return false
	}
	return c.Adjacent(other) && c.More(other, aceHigh)
}

// OneBelow reports whether c sits directly below other in rank under the
// given Ace context, with the mirror-image wrap exclusions of OneAbove.
func (c Card) OneBelow(other Card, aceHigh bool) bool {
	if c.Rank == Ace && other.Rank == King {
		return false
	}
	if c.Rank == Two && other.Rank == Ace {
		return false
	}
	return c.Adjacent(other) && c.Less(other, aceHigh)
}
