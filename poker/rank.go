package poker

// Suit represents a card suit.
type Suit uint8

const (
	Spades Suit = iota + 1
	Hearts
	Clubs
	Diamonds
)

// Index returns the suit's display index, used as the primary key for the
// canonical card set sort.
func (s Suit) Index() int {
	return int(s)
}

// Alias returns the single-character parse alias for the suit.
func (s Suit) Alias() byte {
	switch s {
	case Spades:
		return 'S'
	case Hearts:
		return 'H'
	case Clubs:
		return 'C'
	case Diamonds:
		return 'D'
	default:
		return '?'
	}
}

// Symbol returns the display symbol for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// String returns the long name of the suit.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	default:
		return "Unknown"
	}
}

// IsRed returns true for Hearts and Diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Suits lists all four suits in display order.
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// Rank represents a card rank. The underlying value is the raw weight,
// 1 (Ace) through 13 (King). The Ace plays both low and high: ordering is
// always resolved through Weight with an explicit ace-high or ace-low
// context rather than the raw value.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Weight returns the rank's comparison weight under the given context.
// Ace weighs 14 in ace-high context and 1 in ace-low context; every other
// rank weighs its raw value in both.
func (r Rank) Weight(aceHigh bool) int {
	if aceHigh && r == Ace {
		return 14
	}
	return int(r)
}

// Alias returns the single-character parse alias for the rank.
func (r Rank) Alias() byte {
	const aliases = "A23456789TJQK"
	if r < Ace || r > King {
		return '?'
	}
	return aliases[r-1]
}

// String returns the long name of the rank.
func (r Rank) String() string {
	names := [...]string{
		"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Jack", "Queen", "King",
	}
	if r < Ace || r > King {
		return "Unknown"
	}
	return names[r-1]
}

// Ranks lists all thirteen ranks in raw weight order, Ace first.
var Ranks = []Rank{
	Ace, Two, Three, Four, Five, Six, Seven,
	Eight, Nine, Ten, Jack, Queen, King,
}

// Alias lookup tables, built once at startup.
var (
	rankAliases = func() map[byte]Rank {
		m := make(map[byte]Rank, 13)
		for _, r := range Ranks {
			m[r.Alias()] = r
		}
		return m
	}()

	suitAliases = func() map[byte]Suit {
		m := make(map[byte]Suit, 4)
		for _, s := range Suits {
			m[s.Alias()] = s
		}
		return m
	}()
)

// HandType enumerates the categories of five-card poker hands, ordered
// from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable hand description.
func (ht HandType) String() string {
	switch ht {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}
