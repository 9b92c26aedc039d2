package easybj

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/easybj/internal/table"
)

func TestCandidatesBest(t *testing.T) {
	inf := math.Inf(-1)
	tests := []struct {
		name string
		c    Candidates
		want Action
		ev   float64
	}{
		{"stand", Candidates{Stand: 0.5, Hit: 0.1, Double: 0, Split: inf, Surrender: -0.5}, ActionStand, 0.5},
		{"hit", Candidates{Stand: -0.2, Hit: 0.1, Double: 0, Split: inf, Surrender: -0.5}, ActionHit, 0.1},
		{"double over hit", Candidates{Stand: -0.2, Hit: 0.1, Double: 0.3, Split: inf, Surrender: -0.5}, ActionDoubleHit, 0.3},
		{"double over stand", Candidates{Stand: 0.2, Hit: 0.1, Double: 0.3, Split: inf, Surrender: -0.5}, ActionDoubleStand, 0.3},
		{"split", Candidates{Stand: -0.2, Hit: 0.1, Double: 0, Split: 0.4, Surrender: -0.5}, ActionSplit, 0.4},
		{"surrender then hit", Candidates{Stand: -0.7, Hit: -0.6, Double: -1.2, Split: inf, Surrender: -0.5}, ActionSurrenderHit, -0.5},
		{"surrender then stand", Candidates{Stand: -0.6, Hit: -0.7, Double: -1.2, Split: inf, Surrender: -0.5}, ActionSurrenderStand, -0.5},
		{"tie prefers stand", Candidates{Stand: 0.1, Hit: 0.1, Double: 0.1, Split: 0.1, Surrender: -0.5}, ActionStand, 0.1},
		{"tied fallback is stand", Candidates{Stand: 0.1, Hit: 0.1, Double: 0.2, Split: inf, Surrender: -0.5}, ActionDoubleStand, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ev := tt.c.Best()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ev, ev)
		})
	}
}

func TestActionCodes(t *testing.T) {
	want := []string{"S", "H", "Dh", "Ds", "P", "Rh", "Rs"}
	for i, code := range want {
		a := Action(i)
		assert.Equal(t, code, a.String())
		text, err := a.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, code, string(text))
	}
	_, err := Action(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Action(42)", Action(42).String())
}

func TestStrategyCells(t *testing.T) {
	res := calculate(t, DefaultRules())

	tests := []struct {
		player, dealer string
		want           Action
		ev             float64
	}{
		{"20", "6", ActionStand, 0.6782452612815104},
		{"16", "10", ActionSurrenderHit, -0.5},
		{"11", "6", ActionDoubleHit, 0.6646634091889249},
		{"88", "10", ActionSurrenderHit, -0.5},
		{"AA", "6", ActionSplit, 0.6646634091889249},
		{"TT", "6", ActionStand, 0.6782452612815104},
		{"A7", "A6", ActionStand, 0.22002963034170192},
		{"12", "4", ActionStand, -0.20584968608305498},
		{"8", "6", ActionHit, 0.10385811332306276},
		{"A2", "5", ActionHit, 0.13362751686623542},
		{"16", "11", ActionSurrenderStand, -0.5},
		{"A7", "5", ActionDoubleStand, 0.2931907227178414},
	}
	for _, tt := range tests {
		action, ok := res.Strategy.At(tt.player, tt.dealer)
		require.True(t, ok)
		assert.Equal(t, tt.want, action, "%s v %s", tt.player, tt.dealer)
		ev, _ := res.Optimal.At(tt.player, tt.dealer)
		assert.InDelta(t, tt.ev, ev, 1e-12, "%s v %s", tt.player, tt.dealer)
	}
}

func TestStrategyActionCounts(t *testing.T) {
	res := calculate(t, DefaultRules())
	counts := make(map[Action]int)
	res.Strategy.Each(func(_, _ string, a Action) { counts[a]++ })

	assert.Equal(t, map[Action]int{
		ActionHit:            312,
		ActionStand:          212,
		ActionDoubleHit:      113,
		ActionSplit:          109,
		ActionSurrenderHit:   38,
		ActionDoubleStand:    19,
		ActionSurrenderStand: 2,
	}, counts)
}

func TestChosenHitBeatsStand(t *testing.T) {
	res := calculate(t, DefaultRules())
	res.Strategy.Each(func(row, col string, a Action) {
		if a != ActionHit {
			return
		}
		adv, err := res.Advise(row, col)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, adv.Candidates.Hit, adv.Candidates.Stand, "%s v %s", row, col)
	})
}

func TestSurrenderDisabled(t *testing.T) {
	rules := DefaultRules()
	rules.Surrender = false
	res := calculate(t, rules)

	res.Strategy.Each(func(row, col string, a Action) {
		assert.NotEqual(t, ActionSurrenderHit, a, "%s v %s", row, col)
		assert.NotEqual(t, ActionSurrenderStand, a, "%s v %s", row, col)
	})
	action, _ := res.Strategy.At("16", "10")
	assert.Equal(t, ActionHit, action)
	assert.InDelta(t, 0.10260154962415124, res.Advantage, 1e-9)
}

func TestAdvantageSettlesNaturals(t *testing.T) {
	rows := []string{"BJ", "16"}
	cols := []string{"BJ", "10"}
	initial := table.MustNew[float64]("%", rows, cols)
	initial.Put("BJ", "BJ", 0.1)
	initial.Put("BJ", "10", 0.2)
	initial.Put("16", "BJ", 0.3)
	initial.Put("16", "10", 0.4)
	optimal := table.MustNew[float64]("", []string{"16"}, []string{"10"})
	optimal.Put("16", "10", -0.5)

	got := Advantage(DefaultRules(), initial, optimal)
	assert.InDelta(t, 1.5*0.2-0.3-0.5*0.4, got, 1e-15)
}

func TestStrategyJSONUsesShortCodes(t *testing.T) {
	res := calculate(t, DefaultRules())
	data, err := json.Marshal(res.Strategy)
	require.NoError(t, err)

	var decoded map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Rh", decoded["16"]["10"])
	assert.Equal(t, "P", decoded["AA"]["6"])
}
