package easybj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		cards []Rank
		total int
		soft  bool
		bust  bool
	}{
		{"hard pair", []Rank{Eight, Eight}, 16, false, false},
		{"soft ace", []Rank{Ace, Six}, 17, true, false},
		{"two aces", []Rank{Ace, Ace}, 12, true, false},
		{"natural", []Rank{Ace, Ten}, 21, true, false},
		{"ace hardens", []Rank{Ace, Six, Nine}, 16, false, false},
		{"two aces and a nine", []Rank{Ace, Ace, Nine}, 21, true, false},
		{"two aces and a ten", []Rank{Ace, Ace, Ten}, 12, false, false},
		{"three aces", []Rank{Ace, Ace, Ace}, 13, true, false},
		{"bust", []Rank{Ten, Six, Eight}, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewHand(Player, tt.cards...).Value()
			total, ok := v.Total()
			assert.Equal(t, tt.bust, !ok)
			assert.Equal(t, tt.bust, v.Bust())
			assert.Equal(t, tt.total, total)
			assert.Equal(t, tt.soft, v.Soft())
		})
	}
}

func TestBustCarriesNoSoftness(t *testing.T) {
	h := NewHand(Player, Ace, Five)
	h.Add(Ten)
	h.Add(Ten)
	v := h.Value()
	require.True(t, v.Bust())
	assert.False(t, v.Soft())
	_, ok := v.Total()
	assert.False(t, ok)
}

func TestHandMutationRecomputesValue(t *testing.T) {
	h := NewHand(Player, Ace, Five)
	assert.Equal(t, Soft(Five), h.Code())

	h.Add(Ten)
	total, ok := h.Value().Total()
	require.True(t, ok)
	assert.Equal(t, 16, total)
	assert.False(t, h.Value().Soft())

	h.RemoveLast()
	assert.True(t, h.Value().Soft())
	assert.Equal(t, "A5", h.String())
	assert.Equal(t, []Rank{Ace, Five}, h.Cards())
}

func TestHandProbability(t *testing.T) {
	assert.InDelta(t, 4.0/169, NewHand(Player, Ace, Ten).Probability(), 1e-15)
	assert.InDelta(t, 1.0/169, NewHand(Player, Two, Three).Probability(), 1e-15)
	assert.InDelta(t, 16.0/169, NewHand(Dealer, Ten, Ten).Probability(), 1e-15)
}

func TestRankProbabilitiesSumToOne(t *testing.T) {
	total := 0.0
	for _, r := range Ranks {
		total += Probability(r)
	}
	assert.InDelta(t, 1, total, 1e-15)
}

func TestParseRank(t *testing.T) {
	for s, want := range map[string]Rank{"A": Ace, "2": Two, "9": Nine, "T": Ten, "K": Ten, "q": Ten} {
		got, err := ParseRank(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	for _, s := range []string{"", "1", "10", "X"} {
		_, err := ParseRank(s)
		assert.Error(t, err, s)
	}
	assert.Equal(t, "T", Ten.String())
	assert.Equal(t, "7", Seven.String())
}
