package easybj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/easybj/internal/randutil"
)

// TestDealerMatchesSampling plays dealer hands out card by card and checks
// the empirical outcome frequencies against the exact distributions.
func TestDealerMatchesSampling(t *testing.T) {
	if testing.Short() {
		t.Skip("sampling is slow in short mode")
	}

	weights := make([]float64, len(Ranks))
	for i, r := range Ranks {
		weights[i] = Probability(r)
	}
	rng := randutil.New(1)
	dealer := BuildDealer()

	const samples = 50000
	for _, label := range []string{"4", "10", "16", "A6", "AA"} {
		c, err := ParseCode(label)
		require.NoError(t, err)

		var counts [NumOutcomes]int
		for i := 0; i < samples; i++ {
			h := representative(Dealer, c)
			for {
				total, ok := h.Value().Total()
				if !ok {
					counts[OutcomeBust]++
					break
				}
				if total >= 18 || (total == 17 && !h.Value().Soft()) {
					counts[outcomeFor(total)]++
					break
				}
				h.Add(Ranks[randutil.Weighted(rng, weights)])
			}
		}

		want, ok := dealer.Get(label)
		require.True(t, ok)
		for o, n := range counts {
			assert.InDelta(t, want[o], float64(n)/samples, 0.01, "dealer %s %s", label, Outcome(o))
		}
	}
}
