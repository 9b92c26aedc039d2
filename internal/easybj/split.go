package easybj

import (
	"math"

	"github.com/lox/easybj/internal/table"
)

// Split tables are indexed by the number of further splits a hand may still
// make. Depth 0 is the best non-split play of a settled hand; the root
// depth is the split offered on an initial pair.
const (
	SplitDepth0 = iota
	SplitDepth1
	SplitDepth2
	SplitRoot
)

// BuildSplitDepth0 tabulates the best of hit, stand and double for every
// standing code. A 21 can only stand.
func BuildSplitDepth0(stand, hit, double *table.Matrix[float64]) *table.Matrix[float64] {
	m := table.MustNew[float64]("", Labels(StandCodes), Labels(DealerCodes))
	for _, dc := range DealerCodes {
		col := dc.Label()
		for _, pc := range StandCodes {
			row := pc.Label()
			if pc == Hard(blackjackTotal) {
				m.Put(row, col, cell(stand, row, col))
				continue
			}
			best := math.Max(cell(hit, row, col), cell(stand, row, col))
			m.Put(row, col, math.Max(best, cell(double, row, col)))
		}
	}
	return m
}

// BuildSplitDepth1 tabulates splitting a non-ace pair when neither
// resulting hand may split again.
func BuildSplitDepth1(depth0 *table.Matrix[float64]) *table.Matrix[float64] {
	return buildSplit(ResplitCodes, func(col string, h1, h2 *Hand) float64 {
		return settled(depth0, h1, col) + settled(depth0, h2, col)
	})
}

// BuildSplitDepth2 tabulates splitting a non-ace pair when one resulting
// hand may split once more. Only the first hand that pairs again resplits.
func BuildSplitDepth2(depth0, depth1 *table.Matrix[float64]) *table.Matrix[float64] {
	return buildSplit(ResplitCodes, func(col string, h1, h2 *Hand) float64 {
		switch {
		case isPair(h1):
			return cell(depth1, h1.Code().Label(), col) + settled(depth0, h2, col)
		case isPair(h2):
			return settled(depth0, h1, col) + cell(depth1, h2.Code().Label(), col)
		default:
			return settled(depth0, h1, col) + settled(depth0, h2, col)
		}
	})
}

// BuildSplitRoot tabulates splitting an initial pair. Split aces take
// exactly one card each and stand. Other pairs may resplit: if both hands
// pair again each splits once more, otherwise the pairing hand continues
// at depth 2.
func BuildSplitRoot(stand, depth0, depth1, depth2 *table.Matrix[float64]) *table.Matrix[float64] {
	return buildSplit(SplitCodes, func(col string, h1, h2 *Hand) float64 {
		if h1.Cards()[0] == Ace {
			return settled(stand, h1, col) + settled(stand, h2, col)
		}
		p1, p2 := isPair(h1), isPair(h2)
		switch {
		case p1 && p2:
			return cell(depth1, h1.Code().Label(), col) + cell(depth1, h2.Code().Label(), col)
		case p1:
			return cell(depth2, h1.Code().Label(), col) + settled(depth0, h2, col)
		case p2:
			return settled(depth0, h1, col) + cell(depth2, h2.Code().Label(), col)
		default:
			return settled(depth0, h1, col) + settled(depth0, h2, col)
		}
	})
}

// buildSplit enumerates the second card of both split hands for every pair
// and dealer code, weighting play by the joint draw probability.
func buildSplit(pairs []Code, play func(col string, h1, h2 *Hand) float64) *table.Matrix[float64] {
	m := table.MustNew[float64]("", Labels(pairs), Labels(DealerCodes))
	for _, dc := range DealerCodes {
		col := dc.Label()
		for _, pc := range pairs {
			ev := 0.0
			for _, r1 := range Ranks {
				for _, r2 := range Ranks {
					h1 := NewHand(Player, pc.Rank, r1)
					h2 := NewHand(Player, pc.Rank, r2)
					ev += Probability(r1) * Probability(r2) * play(col, h1, h2)
				}
			}
			m.Put(pc.Label(), col, ev)
		}
	}
	return m
}

func isPair(h *Hand) bool {
	return h.Code().Kind == KindPair
}

// settled looks up a split hand that may not split again. A two-card split
// hand cannot bust, but a bust would forfeit the hand's stake.
func settled(m *table.Matrix[float64], h *Hand, col string) float64 {
	h.DisableSplit()
	if h.Value().Bust() {
		return -1
	}
	return cell(m, h.Code().Label(), col)
}
