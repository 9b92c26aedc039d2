package easybj

import (
	"errors"
	"fmt"

	"github.com/lox/easybj/internal/table"
)

// ErrNotClosed is returned when a probability distribution fails to sum to one.
var ErrNotClosed = errors.New("distribution does not sum to one")

// BuildInitial tabulates the joint probability of every player starting code
// against every dealer starting code. Rows are player codes, columns dealer
// codes. The result is rejected unless its cells sum to one within tol.
func BuildInitial(tol float64) (*table.Matrix[float64], error) {
	m := table.MustNew[float64]("%", Labels(InitialCodes), Labels(InitialDealerCodes))
	for _, d1 := range Ranks {
		for _, d2 := range Ranks {
			dealer := NewHand(Dealer, d1, d2)
			col := dealer.Code().Label()
			for _, p1 := range Ranks {
				for _, p2 := range Ranks {
					player := NewHand(Player, p1, p2)
					row := player.Code().Label()
					prev, _ := m.At(row, col)
					m.Put(row, col, prev+dealer.Probability()*player.Probability())
				}
			}
		}
	}
	if err := VerifyClosure(m, tol); err != nil {
		return nil, err
	}
	return m, nil
}

// VerifyClosure checks that the set cells of m sum to one.
func VerifyClosure(m *table.Matrix[float64], tol float64) error {
	total := 0.0
	m.Each(func(_, _ string, p float64) { total += p })
	if !isClose(total, 1, tol) {
		return fmt.Errorf("%w: initial deal sums to %.12f", ErrNotClosed, total)
	}
	return nil
}
