package easybj

import (
	"fmt"
	"time"

	"github.com/lox/easybj/internal/table"
)

// Result bundles every computed table. It is not modified after Calculate
// returns.
type Result struct {
	Rules     Rules                     `json:"-"`
	Initial   *table.Matrix[float64]    `json:"initial"`
	Dealer    DealerTable               `json:"dealer"`
	Stand     *table.Matrix[float64]    `json:"stand"`
	Hit       *table.Matrix[float64]    `json:"hit"`
	Double    *table.Matrix[float64]    `json:"double"`
	Split     *table.Matrix[float64]    `json:"split"`
	Optimal   *table.Matrix[float64]    `json:"optimal"`
	Strategy  *table.Matrix[Action]     `json:"strategy"`
	Advantage float64                   `json:"advantage"`
	Resplit   [3]*table.Matrix[float64] `json:"resplit"`
	Elapsed   time.Duration             `json:"-"`
}

// Advice explains the strategy for one player and dealer code.
type Advice struct {
	Player     string
	Dealer     string
	Action     Action
	EV         float64
	Candidates Candidates
}

// Advise returns the chosen action and every candidate EV for a cell of the
// strategy table.
func (r *Result) Advise(player, dealer string) (Advice, error) {
	if !r.Strategy.HasRow(player) {
		return Advice{}, &table.KeyError{Axis: table.Row, Label: player}
	}
	if !r.Strategy.HasCol(dealer) {
		return Advice{}, &table.KeyError{Axis: table.Column, Label: dealer}
	}

	pc, err := playerCode(player)
	if err != nil {
		return Advice{}, err
	}
	tables := evTables{stand: r.Stand, hit: r.Hit, double: r.Double, split: r.Split}
	cands := tables.candidates(r.Rules, pc, dealer)
	action, ev := cands.Best()
	return Advice{
		Player:     player,
		Dealer:     dealer,
		Action:     action,
		EV:         ev,
		Candidates: cands,
	}, nil
}

// playerCode resolves a strategy row label, where "AA" is the ace pair.
func playerCode(label string) (Code, error) {
	for _, c := range PlayerCodes {
		if c.Label() == label {
			return c, nil
		}
	}
	return Code{}, fmt.Errorf("invalid player code %q", label)
}
