package easybj

import (
	"fmt"
	"strconv"
)

// Kind discriminates the hand classifications used as table keys.
type Kind uint8

const (
	KindHard Kind = iota
	KindSoft
	KindPair
	KindBlackjack
	KindBust
)

func (k Kind) String() string {
	switch k {
	case KindHard:
		return "hard"
	case KindSoft:
		return "soft"
	case KindPair:
		return "pair"
	case KindBlackjack:
		return "blackjack"
	case KindBust:
		return "bust"
	default:
		return "unknown"
	}
}

// Code is the canonical classification of a hand. Only the field that
// belongs to Kind is meaningful: Total for hard hands, Rank for the soft
// kicker or the paired rank.
type Code struct {
	Kind  Kind
	Total int
	Rank  Rank
}

// Hard returns the code for a hard total between 4 and 21.
func Hard(total int) Code { return Code{Kind: KindHard, Total: total} }

// Soft returns the code for an ace plus kicker counted as soft.
func Soft(kicker Rank) Code { return Code{Kind: KindSoft, Rank: kicker} }

// Pair returns the code for a splittable pair of r.
func Pair(r Rank) Code { return Code{Kind: KindPair, Rank: r} }

var (
	Blackjack = Code{Kind: KindBlackjack}
	Bust      = Code{Kind: KindBust}
)

// Label returns the string key used in every table.
func (c Code) Label() string {
	switch c.Kind {
	case KindHard:
		return strconv.Itoa(c.Total)
	case KindSoft:
		return "A" + c.Rank.String()
	case KindPair:
		return c.Rank.String() + c.Rank.String()
	case KindBlackjack:
		return "BJ"
	case KindBust:
		return "0"
	default:
		panic(fmt.Sprintf("easybj: unknown code kind %d", c.Kind))
	}
}

func (c Code) String() string { return c.Label() }

// StandTotal returns the total a player stands on with this code. Pairs,
// naturals and bust hands have no stand total.
func (c Code) StandTotal() (int, bool) {
	switch c.Kind {
	case KindHard:
		return c.Total, true
	case KindSoft:
		return 11 + c.Rank.Points(), true
	default:
		return 0, false
	}
}

// Classify derives the code of a hand. The order of the cases is
// significant: a natural wins over a pair or soft code, and soft wins over
// pair so that a split-eligible A-A keys as "AA" in either reading.
func Classify(h *Hand) Code {
	v := h.value
	switch {
	case !v.bust && v.total == blackjackTotal && h.splittable:
		return Blackjack
	case v.soft && v.total != blackjackTotal && (h.role == Player || v.total < 18):
		return Soft(Rank(v.total - 11))
	case v.soft && v.total != blackjackTotal:
		// Dealer soft 18..20 stands exactly like the hard total.
		return Hard(v.total)
	case h.role == Player && h.splittable && len(h.cards) == 2 && h.cards[0] == h.cards[1]:
		return Pair(h.cards[0])
	case v.bust:
		return Bust
	default:
		return Hard(v.total)
	}
}

// ParseCode converts a table label back into its code. "AA" is shared by
// the soft A-A and the ace pair and parses as soft.
func ParseCode(label string) (Code, error) {
	switch {
	case label == "BJ":
		return Blackjack, nil
	case label == "0":
		return Bust, nil
	case len(label) == 2 && label[0] == 'A':
		r, err := ParseRank(label[1:])
		if err != nil {
			return Code{}, fmt.Errorf("invalid code %q: %w", label, err)
		}
		if r == Ten {
			return Code{}, fmt.Errorf("invalid code %q: soft hands stop at A9", label)
		}
		return Soft(r), nil
	case len(label) == 2 && label[0] == label[1]:
		if r, err := ParseRank(label[:1]); err == nil {
			return Pair(r), nil
		}
	}
	n, err := strconv.Atoi(label)
	if err != nil || n < 4 || n > blackjackTotal {
		return Code{}, fmt.Errorf("invalid code %q", label)
	}
	return Hard(n), nil
}

// The canonical label orderings. Table rows and columns follow these.
var (
	// HardCodes are the hard totals 4 through 20.
	HardCodes = hardRange(4, 20)
	// SoftCodes are A-A through A-9.
	SoftCodes = softRange(Ace, Nine)
	// SplitCodes are every pair, with aces last.
	SplitCodes = []Code{Pair(Two), Pair(Three), Pair(Four), Pair(Five), Pair(Six),
		Pair(Seven), Pair(Eight), Pair(Nine), Pair(Ten), Pair(Ace)}
	// ResplitCodes are the pairs that may split again below the root.
	ResplitCodes = SplitCodes[: len(SplitCodes)-1 : len(SplitCodes)-1]
	// NonSplitCodes key the hit and double tables.
	NonSplitCodes = concat(HardCodes, SoftCodes)
	// StandCodes key the stand table and the depth-0 split table.
	StandCodes = concat(HardCodes, []Code{Hard(blackjackTotal)}, SoftCodes)
	// PlayerCodes key the optimal and strategy tables.
	PlayerCodes = concat(HardCodes, SplitCodes, SoftCodes[1:])
	// DealerCodes are the dealer starting hands that still draw or stand.
	DealerCodes = concat(HardCodes, SoftCodes[:6])
	// InitialCodes are the player two-card starting hands. Hard 4 is always
	// 2-2 and hard 20 is always T-T, so both live among the pairs.
	InitialCodes = concat(HardCodes[1:len(HardCodes)-1], SplitCodes, SoftCodes[1:], []Code{Blackjack})
	// InitialDealerCodes are the dealer two-card starting hands.
	InitialDealerCodes = concat(DealerCodes, []Code{Blackjack})
)

func hardRange(lo, hi int) []Code {
	codes := make([]Code, 0, hi-lo+1)
	for t := lo; t <= hi; t++ {
		codes = append(codes, Hard(t))
	}
	return codes
}

func softRange(lo, hi Rank) []Code {
	codes := make([]Code, 0, int(hi-lo)+1)
	for r := lo; r <= hi; r++ {
		codes = append(codes, Soft(r))
	}
	return codes
}

func concat(groups ...[]Code) []Code {
	var out []Code
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Labels maps codes to their table labels, preserving order.
func Labels(codes []Code) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.Label()
	}
	return out
}
