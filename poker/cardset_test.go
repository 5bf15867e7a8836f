package poker

import (
	"errors"
	"testing"

	"github.com/CalebMcNevin/pyker/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()
	deck := NewDeck()
	if deck.Len() != 52 {
		t.Fatalf("deck size = %d, want 52", deck.Len())
	}
	seen := make(map[Card]bool)
	for _, c := range deck.Cards() {
		if seen[c] {
			t.Errorf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestCanonicalSort(t *testing.T) {
	t.Parallel()
	cs, err := ParseCardSet("2H AS QD KS AH")
	if err != nil {
		t.Fatal(err)
	}
	want := []Card{
		NewCard(Ace, Spades),
		NewCard(King, Spades),
		NewCard(Ace, Hearts),
		NewCard(Two, Hearts),
		NewCard(Queen, Diamonds),
	}
	for i, c := range cs.Cards() {
		if c != want[i] {
			t.Errorf("card %d = %v, want %v", i, c, want[i])
		}
	}
}

func TestParseCardSetErrors(t *testing.T) {
	t.Parallel()
	if _, err := ParseCardSet(""); err == nil {
		t.Error("expected error for empty specification")
	} else {
		var ce *ConstructionError
		if !errors.As(err, &ce) {
			t.Errorf("expected ConstructionError, got %T", err)
		}
	}
	if _, err := ParseCardSet("AS XX"); err == nil {
		t.Error("expected error for bad token")
	} else {
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("expected ParseError, got %T", err)
		}
	}
}

func TestProductSet(t *testing.T) {
	t.Parallel()
	cs := NewProductSet([]Rank{Ace, King}, []Suit{Spades, Hearts})
	if cs.Len() != 4 {
		t.Fatalf("product size = %d, want 4", cs.Len())
	}
	ranks := cs.Ranks()
	if len(ranks) != 2 || ranks[0] != Ace || ranks[1] != King {
		t.Errorf("Ranks() = %v, want [Ace King]", ranks)
	}
	suits := cs.Suits()
	if len(suits) != 2 || suits[0] != Spades || suits[1] != Hearts {
		t.Errorf("Suits() = %v, want [Spades Hearts]", suits)
	}
}

func TestDealAndRetrieve(t *testing.T) {
	t.Parallel()
	deck := NewDeck()
	original := deck.Cards()

	hand := deck.Deal(5)
	if hand.Len() != 5 {
		t.Errorf("dealt %d cards, want 5", hand.Len())
	}
	if deck.Len() != 47 {
		t.Errorf("remainder = %d cards, want 47", deck.Len())
	}
	for i, c := range hand.Cards() {
		if c != original[i] {
			t.Errorf("dealt card %d = %v, want front card %v", i, c, original[i])
		}
	}

	deck.Add(NewCard(Ace, Spades))
	deck.Deal(10)
	deck.Retrieve()
	restored := deck.Cards()
	if len(restored) != len(original) {
		t.Fatalf("retrieved %d cards, want %d", len(restored), len(original))
	}
	for i := range original {
		if restored[i] != original[i] {
			t.Errorf("retrieved card %d = %v, want %v", i, restored[i], original[i])
		}
	}
}

func TestRetrieveRestoresCanonicalDeckOrder(t *testing.T) {
	t.Parallel()
	deck := NewDeck()
	want := deck.Cards()

	// The construction input is rank-major (all aces first), but the
	// retrieve point is the canonically sorted deck.
	if want[0] != NewCard(Ace, Spades) || want[1] != NewCard(King, Spades) {
		t.Fatalf("canonical deck starts %v %v, want A♠ K♠", want[0], want[1])
	}

	deck.Deal(5)
	deck.Retrieve()
	got := deck.Cards()
	if len(got) != len(want) {
		t.Fatalf("retrieved %d cards, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("retrieved card %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	t.Parallel()
	a := NewDeck()
	b := NewDeck()
	a.Shuffle(randutil.New(42))
	b.Shuffle(randutil.New(42))
	if !a.Equal(b) {
		t.Error("same seed should produce the same permutation")
	}

	c := NewDeck()
	c.Shuffle(randutil.New(43))
	if a.Equal(c) {
		t.Error("different seeds should produce different permutations")
	}
}

func TestConcat(t *testing.T) {
	t.Parallel()
	hole, err := ParseCardSet("AS AH")
	if err != nil {
		t.Fatal(err)
	}
	board, err := ParseCardSet("KS QS JS")
	if err != nil {
		t.Fatal(err)
	}
	combined := hole.Concat(board)
	if combined.Len() != 5 {
		t.Errorf("combined size = %d, want 5", combined.Len())
	}
	if hole.Len() != 2 || board.Len() != 3 {
		t.Error("concat should not modify its sources")
	}
}

func TestBestHandTooFewCards(t *testing.T) {
	t.Parallel()
	cs, err := ParseCardSet("AS AH KD 2C")
	if err != nil {
		t.Fatal(err)
	}
	_, err = cs.BestHand()
	var se *ScoringError
	if !errors.As(err, &se) {
		t.Fatalf("expected ScoringError, got %v", err)
	}
}

func TestBestHandSevenCardRoyal(t *testing.T) {
	t.Parallel()
	cs, err := ParseCardSet("AS AH KS QS JS TS 2D")
	if err != nil {
		t.Fatal(err)
	}
	best, err := cs.BestHand()
	if err != nil {
		t.Fatal(err)
	}
	if best.Type() != RoyalFlush {
		t.Fatalf("best hand = %v, want royal flush", best)
	}
	for _, c := range best.Cards() {
		if c.Suit != Spades {
			t.Errorf("royal flush contains off-suit card %v", c)
		}
	}
}

func TestBestHandPermutationInvariant(t *testing.T) {
	t.Parallel()
	cs, err := ParseCardSet("7S 7H 7C KD QD JD 2C")
	if err != nil {
		t.Fatal(err)
	}
	want, err := cs.BestHand()
	if err != nil {
		t.Fatal(err)
	}

	shuffled := cs.Clone()
	for seed := int64(0); seed < 10; seed++ {
		shuffled.Shuffle(randutil.New(seed))
		got, err := shuffled.BestHand()
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(want) {
			t.Errorf("seed %d: best hand = %v, want %v", seed, got, want)
		}
	}
}

func TestBestHandCacheInvalidation(t *testing.T) {
	t.Parallel()
	cs, err := ParseCardSet("9S 9H AD 7C 3S")
	if err != nil {
		t.Fatal(err)
	}
	first, err := cs.BestHand()
	if err != nil {
		t.Fatal(err)
	}
	if first.Type() != Pair {
		t.Fatalf("best hand = %v, want pair", first)
	}

	cs.Add(NewCard(Nine, Clubs), NewCard(Nine, Diamonds))
	second, err := cs.BestHand()
	if err != nil {
		t.Fatal(err)
	}
	if second.Type() != FourOfAKind {
		t.Errorf("after add, best hand = %v, want four of a kind", second)
	}
}

func TestFilters(t *testing.T) {
	t.Parallel()
	deck := NewDeck()
	spades := deck.FilterSuit(Spades)
	if spades.Len() != 13 {
		t.Errorf("spades = %d cards, want 13", spades.Len())
	}
	aces := deck.FilterRank(Ace)
	if aces.Len() != 4 {
		t.Errorf("aces = %d cards, want 4", aces.Len())
	}
}
