package easybj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/easybj/internal/table"
)

type splitStack struct {
	stand, hit, double     *table.Matrix[float64]
	depth0, depth1, depth2 *table.Matrix[float64]
	root                   *table.Matrix[float64]
}

func buildSplitStack(t *testing.T) splitStack {
	t.Helper()
	var s splitStack
	s.stand = BuildStand(BuildDealer())
	s.hit = BuildHit(s.stand)
	s.double = BuildDouble(s.stand)
	s.depth0 = BuildSplitDepth0(s.stand, s.hit, s.double)
	s.depth1 = BuildSplitDepth1(s.depth0)
	s.depth2 = BuildSplitDepth2(s.depth0, s.depth1)
	s.root = BuildSplitRoot(s.stand, s.depth0, s.depth1, s.depth2)
	return s
}

func TestSplitDepth0IsBestNonSplitPlay(t *testing.T) {
	s := buildSplitStack(t)
	require.Equal(t, len(StandCodes)*len(DealerCodes), s.depth0.Len())

	for _, dc := range Labels(DealerCodes) {
		natural, _ := s.depth0.At("21", dc)
		stand, _ := s.stand.At("21", dc)
		assert.Equal(t, stand, natural, dc)

		for _, pc := range Labels(NonSplitCodes) {
			best, _ := s.depth0.At(pc, dc)
			st, _ := s.stand.At(pc, dc)
			h, _ := s.hit.At(pc, dc)
			d, _ := s.double.At(pc, dc)
			assert.GreaterOrEqual(t, best, st)
			assert.GreaterOrEqual(t, best, h)
			assert.GreaterOrEqual(t, best, d)
			assert.True(t, best == st || best == h || best == d, "%s v %s", pc, dc)
		}
	}

	ev, _ := s.depth0.At("11", "6")
	d, _ := s.double.At("11", "6")
	assert.Equal(t, d, ev)
}

func TestSplitTableShapes(t *testing.T) {
	s := buildSplitStack(t)
	assert.Equal(t, Labels(ResplitCodes), s.depth1.Rows())
	assert.Equal(t, Labels(ResplitCodes), s.depth2.Rows())
	assert.Equal(t, Labels(SplitCodes), s.root.Rows())
	assert.Equal(t, len(SplitCodes)*len(DealerCodes), s.root.Len())
	assert.False(t, s.depth1.HasRow("AA"))
}

func TestSplitValues(t *testing.T) {
	s := buildSplitStack(t)

	tests := []struct {
		table *table.Matrix[float64]
		pair  string
		up    string
		want  float64
	}{
		{s.root, "AA", "6", 0.6646634091889249},
		{s.root, "88", "10", -0.609543098190957},
		{s.root, "TT", "6", 0.4701177956548629},
		{s.root, "22", "4", 0.06293299092198239},
		{s.depth1, "88", "10", -0.6035547722806279},
		{s.depth2, "88", "10", -0.6086209871326786},
		{s.depth1, "22", "4", 0.04657734717489657},
		{s.depth2, "22", "4", 0.06041447068940148},
	}
	for _, tt := range tests {
		got, ok := tt.table.At(tt.pair, tt.up)
		require.True(t, ok)
		assert.InDelta(t, tt.want, got, 1e-12, "%s v %s", tt.pair, tt.up)
	}
}

func TestSplitAcesStandOnOneCard(t *testing.T) {
	s := buildSplitStack(t)
	for _, dc := range Labels(DealerCodes) {
		want := 0.0
		for _, r := range Ranks {
			h := NewHand(Player, Ace, r)
			h.DisableSplit()
			ev, _ := s.stand.At(h.Code().Label(), dc)
			want += 2 * Probability(r) * ev
		}
		got, _ := s.root.At("AA", dc)
		assert.InDelta(t, want, got, 1e-12, dc)
	}
}

func TestSettledHandsLoseSplitEligibility(t *testing.T) {
	s := buildSplitStack(t)
	h := NewHand(Player, Eight, Eight)
	ev := settled(s.depth0, h, "10")
	assert.False(t, h.Splittable())
	want, _ := s.depth0.At("16", "10")
	assert.Equal(t, want, ev)
}
