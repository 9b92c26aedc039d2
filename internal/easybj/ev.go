package easybj

import (
	"fmt"
	"math"

	"github.com/lox/easybj/internal/table"
)

// cell reads a computed EV. Reading an unset cell means a table was built
// out of dependency order, which is a defect rather than a runtime condition.
func cell(m *table.Matrix[float64], row, col string) float64 {
	v, ok := m.At(row, col)
	if !ok {
		panic(fmt.Sprintf("easybj: cell %s/%s read before it was computed", row, col))
	}
	return v
}

// standEV is the return of standing on total against a dealer distribution.
func standEV(total int, d Distribution) float64 {
	ev := 0.0
	for i, p := range d {
		o := Outcome(i)
		switch {
		case o == OutcomeBust:
			ev += p
		case total > o.Total():
			ev += p
		case total < o.Total():
			ev -= p
		}
	}
	return ev
}

// BuildStand tabulates the stand EV of every standing code against every
// dealer code.
func BuildStand(dealer DealerTable) *table.Matrix[float64] {
	m := table.MustNew[float64]("", Labels(StandCodes), Labels(DealerCodes))
	for _, dc := range DealerCodes {
		dist := dealer.mustGet(dc)
		for _, pc := range StandCodes {
			total, _ := pc.StandTotal()
			m.Put(pc.Label(), dc.Label(), standEV(total, dist))
		}
	}
	return m
}

// HitOrder lists the hit-table rows so that every code a hit can reach is
// computed before the code that reaches it: hard 20 down to 11, soft A-9
// down to A-A, then hard 10 down to 4.
var HitOrder = concat(
	reverse(hardRange(11, 20)),
	reverse(SoftCodes),
	reverse(hardRange(4, 10)),
)

// BuildHit tabulates the EV of taking one card and then playing on
// optimally between standing and hitting again.
func BuildHit(stand *table.Matrix[float64]) *table.Matrix[float64] {
	m := table.MustNew[float64]("", Labels(NonSplitCodes), Labels(DealerCodes))
	for _, dc := range DealerCodes {
		col := dc.Label()
		for _, pc := range HitOrder {
			m.Put(pc.Label(), col, hitEV(pc, col, stand, m))
		}
	}
	return m
}

func hitEV(c Code, col string, stand, hit *table.Matrix[float64]) float64 {
	h := representative(Player, c)
	ev := 0.0
	for _, r := range Ranks {
		p := Probability(r)
		h.Add(r)
		total, ok := h.Value().Total()
		switch {
		case !ok:
			ev -= p
		case total == blackjackTotal:
			ev += p * cell(stand, Hard(blackjackTotal).Label(), col)
		default:
			row := h.Code().Label()
			ev += p * math.Max(cell(stand, row, col), cell(hit, row, col))
		}
		h.RemoveLast()
	}
	return ev
}

// BuildDouble tabulates the EV of doubling: one forced card at twice the
// stake, then standing.
func BuildDouble(stand *table.Matrix[float64]) *table.Matrix[float64] {
	m := table.MustNew[float64]("", Labels(NonSplitCodes), Labels(DealerCodes))
	for _, dc := range DealerCodes {
		col := dc.Label()
		for _, pc := range NonSplitCodes {
			m.Put(pc.Label(), col, doubleEV(pc, col, stand))
		}
	}
	return m
}

func doubleEV(c Code, col string, stand *table.Matrix[float64]) float64 {
	h := representative(Player, c)
	ev := 0.0
	for _, r := range Ranks {
		p := Probability(r)
		h.Add(r)
		if h.Value().Bust() {
			ev -= 2 * p
		} else {
			ev += 2 * p * cell(stand, h.Code().Label(), col)
		}
		h.RemoveLast()
	}
	return ev
}
