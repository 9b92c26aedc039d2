package easybj

import (
	"fmt"
	"math"

	"github.com/lox/easybj/internal/table"
)

// Action is a strategy-table entry. Double and surrender carry the play to
// fall back on when the preferred action is not allowed.
type Action uint8

const (
	ActionStand Action = iota
	ActionHit
	ActionDoubleHit
	ActionDoubleStand
	ActionSplit
	ActionSurrenderHit
	ActionSurrenderStand
)

var actionNames = [...]string{
	ActionStand:          "S",
	ActionHit:            "H",
	ActionDoubleHit:      "Dh",
	ActionDoubleStand:    "Ds",
	ActionSplit:          "P",
	ActionSurrenderHit:   "Rh",
	ActionSurrenderStand: "Rs",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// MarshalText encodes the action as its short code.
func (a Action) MarshalText() ([]byte, error) {
	if int(a) >= len(actionNames) {
		return nil, fmt.Errorf("unknown action %d", uint8(a))
	}
	return []byte(actionNames[a]), nil
}

// Candidates are the EVs compared for one strategy cell. Unavailable
// actions are negative infinity.
type Candidates struct {
	Stand     float64
	Hit       float64
	Double    float64
	Split     float64
	Surrender float64
}

// Best selects the highest EV, preferring earlier actions in the order
// stand, hit, double, split, surrender on ties.
func (c Candidates) Best() (Action, float64) {
	evs := [...]float64{c.Stand, c.Hit, c.Double, c.Split, c.Surrender}
	best := 0
	for i := 1; i < len(evs); i++ {
		if evs[i] > evs[best] {
			best = i
		}
	}

	hitFallback := c.Stand < c.Hit
	switch best {
	case 0:
		return ActionStand, evs[best]
	case 1:
		return ActionHit, evs[best]
	case 2:
		if hitFallback {
			return ActionDoubleHit, evs[best]
		}
		return ActionDoubleStand, evs[best]
	case 3:
		return ActionSplit, evs[best]
	default:
		if hitFallback {
			return ActionSurrenderHit, evs[best]
		}
		return ActionSurrenderStand, evs[best]
	}
}

// evTables groups the tables consulted when choosing an action.
type evTables struct {
	stand, hit, double, split *table.Matrix[float64]
}

func (t evTables) candidates(rules Rules, pc Code, col string) Candidates {
	inf := math.Inf(-1)
	c := Candidates{Stand: inf, Hit: inf, Double: inf, Split: inf, Surrender: inf}
	if rules.Surrender {
		c.Surrender = rules.SurrenderEV
	}

	played := pc
	if pc.Kind == KindPair {
		if t.split.HasRow(pc.Label()) && t.split.HasCol(col) {
			c.Split = cell(t.split, pc.Label(), col)
		}
		h := NewHand(Player, pc.Rank, pc.Rank)
		h.DisableSplit()
		played = h.Code()
	}

	row := played.Label()
	if t.stand.HasRow(row) && t.stand.HasCol(col) {
		c.Stand = cell(t.stand, row, col)
	}
	if t.hit.HasRow(row) && t.hit.HasCol(col) {
		c.Hit = cell(t.hit, row, col)
	}
	if t.double.HasRow(row) && t.double.HasCol(col) {
		c.Double = cell(t.double, row, col)
	}
	return c
}

// BuildStrategy picks the best action for every player and dealer code,
// returning the optimal EV table and the action table.
func BuildStrategy(rules Rules, stand, hit, double, split *table.Matrix[float64]) (*table.Matrix[float64], *table.Matrix[Action]) {
	tables := evTables{stand: stand, hit: hit, double: double, split: split}
	optimal := table.MustNew[float64]("", Labels(PlayerCodes), Labels(DealerCodes))
	strategy := table.MustNew[Action]("", Labels(PlayerCodes), Labels(DealerCodes))
	for _, dc := range DealerCodes {
		col := dc.Label()
		for _, pc := range PlayerCodes {
			action, ev := tables.candidates(rules, pc, col).Best()
			optimal.Put(pc.Label(), col, ev)
			strategy.Put(pc.Label(), col, action)
		}
	}
	return optimal, strategy
}

// Advantage weights the optimal EV of every starting cell by its deal
// probability. Naturals settle immediately: both push, a dealer natural
// loses the stake and a player natural is paid at the blackjack payout.
func Advantage(rules Rules, initial, optimal *table.Matrix[float64]) float64 {
	bj := Blackjack.Label()
	adv := 0.0
	initial.Each(func(row, col string, p float64) {
		switch {
		case row == bj && col == bj:
		case col == bj:
			adv -= p
		case row == bj:
			adv += rules.BlackjackPayout * p
		default:
			adv += p * cell(optimal, row, col)
		}
	})
	return adv
}
