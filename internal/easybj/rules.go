package easybj

import (
	"errors"
	"math"
)

// Rules holds the tunable payout parameters. The resplit limit and the
// dealer drawing to soft 17 are structural and not configurable.
type Rules struct {
	// Surrender offers late surrender as a candidate action.
	Surrender bool
	// SurrenderEV is the fixed return of surrendering.
	SurrenderEV float64
	// BlackjackPayout is paid on a player natural against a dealer without one.
	BlackjackPayout float64
	// Tolerance is the relative tolerance used for closure checks.
	Tolerance float64
}

// DefaultRules returns the Easy Blackjack ruleset.
func DefaultRules() Rules {
	return Rules{
		Surrender:       true,
		SurrenderEV:     -0.5,
		BlackjackPayout: 1.5,
		Tolerance:       1e-9,
	}
}

// Validate ensures the rules produce meaningful expected values.
func (r Rules) Validate() error {
	if math.IsNaN(r.SurrenderEV) || r.SurrenderEV < -1 || r.SurrenderEV > 0 {
		return errors.New("surrender ev must be within [-1, 0]")
	}
	if math.IsNaN(r.BlackjackPayout) || r.BlackjackPayout <= 0 {
		return errors.New("blackjack payout must be > 0")
	}
	if math.IsNaN(r.Tolerance) || r.Tolerance <= 0 || r.Tolerance >= 1 {
		return errors.New("tolerance must be within (0, 1)")
	}
	return nil
}

// isClose reports whether a and b agree within a relative tolerance.
func isClose(a, b, relTol float64) bool {
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}
