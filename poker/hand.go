package poker

import (
	"fmt"
	"sort"
	"strings"
)

// ScoredHand is a classified five-card poker hand. It records the hand's
// category and the ordered kicker ranks used to break ties within that
// category, and is immutable once built.
type ScoredHand struct {
	cards    []Card
	handType HandType
	kickers  []Rank
	flush    bool
	straight bool
}

// NewScoredHand classifies exactly five cards. It returns a ScoringError
// for any other hand size.
func NewScoredHand(cards []Card) (*ScoredHand, error) {
	if len(cards) != 5 {
		return nil, &ScoringError{Cards: len(cards), Need: 5}
	}
	h := &ScoredHand{cards: append([]Card(nil), cards...)}
	h.flush = h.checkFlush()
	h.straight = h.checkStraight()
	h.classify()
	return h, nil
}

// Cards returns the hand's five cards in the order the classifier left
// them: ace-high descending, or ace-low descending for a wheel straight.
func (h *ScoredHand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Type returns the hand's category.
func (h *ScoredHand) Type() HandType {
	return h.handType
}

// Kickers returns the ordered tie-break ranks for the hand.
func (h *ScoredHand) Kickers() []Rank {
	return append([]Rank(nil), h.kickers...)
}

// IsFlush reports whether all five cards share a suit.
func (h *ScoredHand) IsFlush() bool {
	return h.flush
}

// IsStraight reports whether the five cards form an unbroken run,
// including the wheel A-2-3-4-5.
func (h *ScoredHand) IsStraight() bool {
	return h.straight
}

// String renders the hand as "<Hand Type> - <card list>".
func (h *ScoredHand) String() string {
	cards := make([]string, len(h.cards))
	for i, c := range h.cards {
		cards[i] = c.String()
	}
	return fmt.Sprintf("%s - %s", h.handType, strings.Join(cards, ", "))
}

// Compare orders hands by category first, then lexicographically by
// kickers under ace-high weights. It returns a negative value if h ranks
// below other, positive if above, and zero for a true tie (split pot).
func (h *ScoredHand) Compare(other *ScoredHand) int {
	if h.handType != other.handType {
		return int(h.handType) - int(other.handType)
	}
	for i := range h.kickers {
		if i >= len(other.kickers) {
			break
		}
		if d := h.kickers[i].Weight(true) - other.kickers[i].Weight(true); d != 0 {
			return d
		}
	}
	return 0
}

// Beats reports whether h strictly outranks other.
func (h *ScoredHand) Beats(other *ScoredHand) bool {
	return h.Compare(other) > 0
}

// Equal reports whether the two hands tie: same category, same kickers.
func (h *ScoredHand) Equal(other *ScoredHand) bool {
	return h.Compare(other) == 0
}

func (h *ScoredHand) checkFlush() bool {
	suit := h.cards[0].Suit
	for _, c := range h.cards[1:] {
		if c.Suit != suit {
			return false
		}
	}
	return true
}

// checkStraight scans for a run in ace-high order, then rescans ace-low to
// catch the wheel. The cards are left in whichever order produced the
// straight, so the leading card is the straight's high card.
func (h *ScoredHand) checkStraight() bool {
	for _, aceHigh := range []bool{true, false} {
		h.sortByRank(aceHigh)
		run := true
		for i := 0; i < 4; i++ {
			if !h.cards[i].OneAbove(h.cards[i+1], aceHigh) {
				run = false
				break
			}
		}
		if run {
			return true
		}
	}
	h.sortByRank(true)
	return false
}

func (h *ScoredHand) sortByRank(aceHigh bool) {
	sort.SliceStable(h.cards, func(i, j int) bool {
		return h.cards[i].More(h.cards[j], aceHigh)
	})
}

func (h *ScoredHand) hasRank(r Rank) bool {
	for _, c := range h.cards {
		if c.Rank == r {
			return true
		}
	}
	return false
}

func (h *ScoredHand) classify() {
	if h.flush && h.straight {
		if h.hasRank(Ace) && h.hasRank(King) {
			h.handType = RoyalFlush
			return
		}
		h.handType = StraightFlush
		h.kickers = []Rank{h.cards[0].Rank}
		return
	}
	if h.flush {
		h.handType = Flush
		for _, c := range h.cards {
			h.kickers = append(h.kickers, c.Rank)
		}
		return
	}
	if h.straight {
		h.handType = Straight
		h.kickers = []Rank{h.cards[0].Rank}
		return
	}

	// Group by rank, then order groups by count descending. Equal counts
	// order by ace-high rank descending, so the higher pair of a two-pair
	// hand always leads the kickers.
	counts := make(map[Rank]int, 5)
	for _, c := range h.cards {
		counts[c.Rank]++
	}
	groups := make([]Rank, 0, len(counts))
	for r := range counts {
		groups = append(groups, r)
	}
	sort.Slice(groups, func(i, j int) bool {
		if counts[groups[i]] != counts[groups[j]] {
			return counts[groups[i]] > counts[groups[j]]
		}
		return groups[i].Weight(true) > groups[j].Weight(true)
	})
	h.kickers = groups

	first := counts[groups[0]]
	second := 0
	if len(groups) > 1 {
		second = counts[groups[1]]
	}
	switch {
	case first == 4:
		h.handType = FourOfAKind
	case first == 3 && second == 2:
		h.handType = FullHouse
	case first == 3:
		h.handType = ThreeOfAKind
	case first == 2 && second == 2:
		h.handType = TwoPair
	case first == 2:
		h.handType = Pair
	case first == 1:
		h.handType = HighCard
	default:
		// The six patterns above are the only count distributions five
		// cards can produce.
		panic(fmt.Sprintf("impossible rank distribution for %v", h.cards))
	}
}
