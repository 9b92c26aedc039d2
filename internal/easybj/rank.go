// Package easybj computes optimal strategy and player edge for Easy
// Blackjack under an infinite-deck approximation.
package easybj

import "fmt"

// Rank is a distinct card value. Jacks, queens and kings collapse into Ten.
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
)

// Ranks lists every distinct rank in ascending order.
var Ranks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten}

const (
	numRanks = 13 // ranks in a French deck
	numFaces = 4  // ranks worth ten points
)

// Probability returns the chance of drawing r from an infinite deck.
func Probability(r Rank) float64 {
	if r == Ten {
		return numFaces / float64(numRanks)
	}
	return 1 / float64(numRanks)
}

// Points returns the hard value of the rank, counting an ace as one.
func (r Rank) Points() int {
	return int(r)
}

func (r Rank) String() string {
	switch {
	case r == Ace:
		return "A"
	case r == Ten:
		return "T"
	case r >= Two && r <= Nine:
		return string(rune('0' + r))
	default:
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
}

// ParseRank converts a single-character rank symbol. J, Q and K parse as Ten.
func ParseRank(s string) (Rank, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("invalid rank %q", s)
	}
	switch c := s[0]; {
	case c == 'A' || c == 'a':
		return Ace, nil
	case c >= '2' && c <= '9':
		return Rank(c - '0'), nil
	case c == 'T' || c == 't' || c == 'J' || c == 'j' || c == 'Q' || c == 'q' || c == 'K' || c == 'k':
		return Ten, nil
	default:
		return 0, fmt.Errorf("invalid rank %q", s)
	}
}
