// Package poker models a standard 52-card deck and scores five-card poker
// hands. A CardSet holds any number of cards and can deal, shuffle, and
// search all of its five-card combinations for the best hand; a ScoredHand
// carries the hand's category and kicker ranks and is totally ordered, so
// showdowns reduce to a comparison.
//
// The Ace plays both low and high. Every sort and comparison takes an
// explicit ace-high or ace-low context instead of guessing from the cards,
// which is how the wheel straight A-2-3-4-5 and the ace-high straight
// T-J-Q-K-A can coexist.
package poker
