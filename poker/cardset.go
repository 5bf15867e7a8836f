package poker

import (
	rand "math/rand/v2"
	"sort"
	"strings"
)

// CardSet is an ordered, mutable collection of cards: a deck, a player's
// hole cards, a board, or any combination of them. It remembers the card
// list it was constructed with so dealt cards can be retrieved, and caches
// the best five-card hand until the collection is mutated.
//
// A CardSet is not safe for concurrent use; confine each instance to a
// single owner.
type CardSet struct {
	cards    []Card
	original []Card
	best     *ScoredHand
}

// NewDeck creates a full 52-card deck in canonical sort order.
func NewDeck() *CardSet {
	return NewProductSet(Ranks, Suits)
}

// NewCardSet creates a card set from an explicit card list.
func NewCardSet(cards ...Card) *CardSet {
	return newCardSet(append([]Card(nil), cards...))
}

// NewProductSet creates a card set from the cartesian product of the given
// ranks and suits.
func NewProductSet(ranks []Rank, suits []Suit) *CardSet {
	cards := make([]Card, 0, len(ranks)*len(suits))
	for _, r := range ranks {
		for _, s := range suits {
			cards = append(cards, NewCard(r, s))
		}
	}
	return newCardSet(cards)
}

// ParseCardSet creates a card set from a space-separated list of
// two-character card tokens, e.g. "AS KH 2D".
func ParseCardSet(tokens string) (*CardSet, error) {
	fields := strings.Fields(tokens)
	if len(fields) == 0 {
		return nil, &ConstructionError{Reason: "empty card specification"}
	}
	cards := make([]Card, 0, len(fields))
	for _, tok := range fields {
		card, err := ParseCard(tok)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return newCardSet(cards), nil
}

func newCardSet(cards []Card) *CardSet {
	cs := &CardSet{cards: cards}
	cs.Sort()
	// Snapshot after the canonical sort so Retrieve restores the card
	// list exactly as construction left it.
	cs.original = append([]Card(nil), cs.cards...)
	return cs
}

// Clone creates an independent copy of the card set. The copy's retrieve
// point is its current card list, not the source's.
func (cs *CardSet) Clone() *CardSet {
	return NewCardSet(cs.cards...)
}

// Len returns the number of cards currently held.
func (cs *CardSet) Len() int {
	return len(cs.cards)
}

// Cards returns a copy of the current card list.
func (cs *CardSet) Cards() []Card {
	return append([]Card(nil), cs.cards...)
}

// Card returns the card at the given position.
func (cs *CardSet) Card(i int) Card {
	return cs.cards[i]
}

// Equal reports whether the two sets hold the same cards in the same order.
func (cs *CardSet) Equal(other *CardSet) bool {
	if len(cs.cards) != len(other.cards) {
		return false
	}
	for i, c := range cs.cards {
		if c != other.cards[i] {
			return false
		}
	}
	return true
}

// Concat returns a new card set holding this set's cards followed by the
// other's. Neither source is modified.
func (cs *CardSet) Concat(other *CardSet) *CardSet {
	cards := make([]Card, 0, len(cs.cards)+len(other.cards))
	cards = append(cards, cs.cards...)
	cards = append(cards, other.cards...)
	return NewCardSet(cards...)
}

// String renders the cards joined by double spaces.
func (cs *CardSet) String() string {
	parts := make([]string, len(cs.cards))
	for i, c := range cs.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, "  ")
}

// Shuffle permutes the cards uniformly in place using the provided source.
func (cs *CardSet) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(cs.cards), func(i, j int) {
		cs.cards[i], cs.cards[j] = cs.cards[j], cs.cards[i]
	})
	cs.best = nil
}

// Deal removes the first n cards from the set and returns them as a new
// card set. Dealing more cards than remain deals the remainder.
func (cs *CardSet) Deal(n int) *CardSet {
	if n < 0 {
		n = 0
	}
	if n > len(cs.cards) {
		n = len(cs.cards)
	}
	dealt := cs.cards[:n]
	cs.cards = cs.cards[n:]
	cs.best = nil
	return NewCardSet(dealt...)
}

// Add appends cards to the set.
func (cs *CardSet) Add(cards ...Card) {
	cs.cards = append(cs.cards, cards...)
	cs.best = nil
}

// Retrieve restores the card list the set was constructed with, undoing
// any deals and additions.
func (cs *CardSet) Retrieve() {
	cs.cards = append(cs.cards[:0:0], cs.original...)
	cs.best = nil
}

// Sort applies the canonical order: suit display index ascending, then
// rank descending with aces high. Both passes are stable, so the later
// suit pass becomes the primary key.
func (cs *CardSet) Sort() {
	cs.SortByRank(true)
	cs.SortBySuit()
}

// SortByRank sorts descending by rank weight under the given Ace context.
// The sort is stable, so a prior suit sort is preserved within equal ranks.
func (cs *CardSet) SortByRank(aceHigh bool) {
	sort.SliceStable(cs.cards, func(i, j int) bool {
		return cs.cards[i].More(cs.cards[j], aceHigh)
	})
}

// SortBySuit sorts ascending by suit display index.
func (cs *CardSet) SortBySuit() {
	sort.SliceStable(cs.cards, func(i, j int) bool {
		return cs.cards[i].Suit.Index() < cs.cards[j].Suit.Index()
	})
}

// Ranks returns the distinct ranks present, in raw weight order.
func (cs *CardSet) Ranks() []Rank {
	var ranks []Rank
	for _, r := range Ranks {
		if len(cs.FilterRank(r).cards) > 0 {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// Suits returns the distinct suits present, in display order.
func (cs *CardSet) Suits() []Suit {
	var suits []Suit
	for _, s := range Suits {
		if len(cs.FilterSuit(s).cards) > 0 {
			suits = append(suits, s)
		}
	}
	return suits
}

// FilterRank returns a new card set holding only cards of the given rank.
func (cs *CardSet) FilterRank(r Rank) *CardSet {
	var cards []Card
	for _, c := range cs.cards {
		if c.Rank == r {
			cards = append(cards, c)
		}
	}
	return NewCardSet(cards...)
}

// FilterSuit returns a new card set holding only cards of the given suit.
func (cs *CardSet) FilterSuit(s Suit) *CardSet {
	var cards []Card
	for _, c := range cs.cards {
		if c.Suit == s {
			cards = append(cards, c)
		}
	}
	return NewCardSet(cards...)
}

// BestHand classifies every five-card combination of the set and returns
// the strongest. The result is cached until the set is mutated. Ties among
// maximal combinations resolve to whichever the enumeration reached first.
func (cs *CardSet) BestHand() (*ScoredHand, error) {
	if cs.best != nil {
		return cs.best, nil
	}
	n := len(cs.cards)
	if n < 5 {
		return nil, &ScoringError{Cards: n, Need: 5}
	}

	var best *ScoredHand
	combo := make([]Card, 5)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						combo[0] = cs.cards[a]
						combo[1] = cs.cards[b]
						combo[2] = cs.cards[c]
						combo[3] = cs.cards[d]
						combo[4] = cs.cards[e]
						hand, err := NewScoredHand(combo)
						if err != nil {
							return nil, err
						}
						if best == nil || hand.Beats(best) {
							best = hand
						}
					}
				}
			}
		}
	}
	cs.best = best
	return best, nil
}
