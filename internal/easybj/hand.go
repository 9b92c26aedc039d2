package easybj

import "strings"

// Role says who holds a hand. Dealer hands never classify as pairs and
// suppress soft codes at 18 and above.
type Role uint8

const (
	Player Role = iota
	Dealer
)

func (r Role) String() string {
	if r == Dealer {
		return "dealer"
	}
	return "player"
}

const blackjackTotal = 21

// Value is the evaluated total of a hand. A bust hand has no total.
type Value struct {
	total int
	soft  bool
	bust  bool
}

// Total returns the hand total and false when the hand is bust.
func (v Value) Total() (int, bool) {
	if v.bust {
		return 0, false
	}
	return v.total, true
}

// Soft reports whether an ace is currently counted as eleven.
func (v Value) Soft() bool { return v.soft }

// Bust reports whether the hand exceeded 21.
func (v Value) Bust() bool { return v.bust }

// evaluate sums non-ace ranks, counts every ace beyond the first as one and
// counts the remaining ace as eleven only when that keeps the hand at 21 or
// below.
func evaluate(cards []Rank) Value {
	total, aces := 0, 0
	for _, c := range cards {
		if c == Ace {
			aces++
			continue
		}
		total += c.Points()
	}
	for ; aces > 1; aces-- {
		total++
	}

	var v Value
	if aces == 1 {
		if total+11 <= blackjackTotal {
			total += 11
			v.soft = true
		} else {
			total++
		}
	}
	if total > blackjackTotal {
		return Value{bust: true}
	}
	v.total = total
	return v
}

// Hand is a mutable sequence of cards. Its value is recomputed on every
// mutation, so Value and Code never observe a stale state.
type Hand struct {
	cards      []Rank
	role       Role
	splittable bool
	value      Value
}

// NewHand creates a hand that is still eligible to split.
func NewHand(role Role, cards ...Rank) *Hand {
	h := &Hand{
		cards:      append(make([]Rank, 0, len(cards)+4), cards...),
		role:       role,
		splittable: true,
	}
	h.value = evaluate(h.cards)
	return h
}

// Add appends a card.
func (h *Hand) Add(r Rank) {
	h.cards = append(h.cards, r)
	h.value = evaluate(h.cards)
}

// RemoveLast drops the most recently added card.
func (h *Hand) RemoveLast() {
	if len(h.cards) == 0 {
		return
	}
	h.cards = h.cards[:len(h.cards)-1]
	h.value = evaluate(h.cards)
}

// DisableSplit removes split eligibility, which also rules out a natural.
func (h *Hand) DisableSplit() { h.splittable = false }

// Splittable reports whether the hand may still split or count as a natural.
func (h *Hand) Splittable() bool { return h.splittable }

func (h *Hand) Role() Role { return h.role }

func (h *Hand) Value() Value { return h.value }

// Cards returns a copy of the cards in draw order.
func (h *Hand) Cards() []Rank { return append([]Rank(nil), h.cards...) }

// Probability is the chance of being dealt exactly these cards in order.
func (h *Hand) Probability() float64 {
	p := 1.0
	for _, c := range h.cards {
		p *= Probability(c)
	}
	return p
}

// Code classifies the hand.
func (h *Hand) Code() Code { return Classify(h) }

func (h *Hand) String() string {
	var sb strings.Builder
	for _, c := range h.cards {
		sb.WriteString(c.String())
	}
	return sb.String()
}
