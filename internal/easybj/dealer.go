package easybj

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Outcome is a final dealer result.
type Outcome uint8

const (
	Outcome17 Outcome = iota
	Outcome18
	Outcome19
	Outcome20
	Outcome21
	OutcomeBust

	NumOutcomes = int(OutcomeBust) + 1
)

// Total returns the dealer's standing total, or 0 for a bust.
func (o Outcome) Total() int {
	if o == OutcomeBust {
		return 0
	}
	return 17 + int(o)
}

func (o Outcome) String() string {
	if o == OutcomeBust {
		return "bust"
	}
	return strconv.Itoa(o.Total())
}

func outcomeFor(total int) Outcome {
	return Outcome(total - 17)
}

// Distribution is the probability of each final outcome from one dealer state.
type Distribution [NumOutcomes]float64

// Sum adds all six buckets.
func (d Distribution) Sum() float64 {
	s := 0.0
	for _, p := range d {
		s += p
	}
	return s
}

// MarshalJSON encodes the distribution keyed by outcome name.
func (d Distribution) MarshalJSON() ([]byte, error) {
	out := make(map[string]float64, NumOutcomes)
	for o, p := range d {
		out[Outcome(o).String()] = p
	}
	return json.Marshal(out)
}

// DealerTable maps every dealer code to its outcome distribution.
type DealerTable map[Code]Distribution

// Get returns the distribution for a dealer code label.
func (t DealerTable) Get(label string) (Distribution, bool) {
	c, err := ParseCode(label)
	if err != nil {
		return Distribution{}, false
	}
	d, ok := t[c]
	return d, ok
}

func (t DealerTable) mustGet(c Code) Distribution {
	d, ok := t[c]
	if !ok {
		panic(fmt.Sprintf("easybj: dealer distribution for %s read before it was computed", c))
	}
	return d
}

// Verify checks that every distribution sums to one.
func (t DealerTable) Verify(tol float64) error {
	for _, c := range DealerCodes {
		d, ok := t[c]
		if !ok {
			return fmt.Errorf("dealer %s: missing distribution", c)
		}
		if s := d.Sum(); !isClose(s, 1, tol) {
			return fmt.Errorf("%w: dealer %s sums to %.12f", ErrNotClosed, c, s)
		}
	}
	return nil
}

// MarshalJSON encodes the table keyed by code label in canonical order.
func (t DealerTable) MarshalJSON() ([]byte, error) {
	out := make(map[string]Distribution, len(t))
	for c, d := range t {
		out[c.Label()] = d
	}
	return json.Marshal(out)
}

// DealerOrder lists dealer codes so that each appears after every code it
// can draw into: the standing totals, hard 16 down to 7, soft 17 down to
// A-A, then hard 6 down to 4.
var DealerOrder = concat(
	reverse(hardRange(17, 20)),
	reverse(hardRange(7, 16)),
	reverse(SoftCodes[:6]),
	reverse(hardRange(4, 6)),
)

func reverse(codes []Code) []Code {
	out := make([]Code, len(codes))
	for i, c := range codes {
		out[len(codes)-1-i] = c
	}
	return out
}

// BuildDealer computes the outcome distribution of every dealer code.
func BuildDealer() DealerTable {
	t := make(DealerTable, len(DealerOrder))
	for _, c := range DealerOrder {
		t[c] = dealerDistribution(c, t)
	}
	return t
}

// dealerDistribution draws one card onto a dealer state and folds in the
// child distribution of every non-terminal result. Bust is closed as the
// complement of the five standing buckets.
func dealerDistribution(c Code, done DealerTable) Distribution {
	var d Distribution
	if c.Kind == KindHard && c.Total >= 17 {
		d[outcomeFor(c.Total)] = 1
		return d
	}

	h := representative(Dealer, c)
	for _, r := range Ranks {
		p := Probability(r)
		h.Add(r)
		total, ok := h.Value().Total()
		switch {
		case !ok:
			d[OutcomeBust] += p
		case total == blackjackTotal:
			d[Outcome21] += p
		default:
			child := done.mustGet(h.Code())
			for o, cp := range child {
				d[o] += p * cp
			}
		}
		h.RemoveLast()
	}

	d[OutcomeBust] = 0
	d[OutcomeBust] = 1 - d.Sum()
	return d
}

// representative builds a split-ineligible two-card hand with the given
// hard or soft code.
func representative(role Role, c Code) *Hand {
	var h *Hand
	switch c.Kind {
	case KindHard:
		lo := c.Total / 2
		h = NewHand(role, Rank(lo), Rank(c.Total-lo))
	case KindSoft:
		h = NewHand(role, Ace, c.Rank)
	default:
		panic(fmt.Sprintf("easybj: no representative hand for %s code %s", c.Kind, c))
	}
	h.DisableSplit()
	return h
}
