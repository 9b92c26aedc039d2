package easybj

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/easybj/internal/table"
)

// Calculator builds every table in dependency order. Tables within a stage
// are independent and built concurrently; each table has a single writer.
type Calculator struct {
	rules  Rules
	logger *log.Logger
	clock  quartz.Clock
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithRules overrides the default ruleset.
func WithRules(r Rules) Option {
	return func(c *Calculator) { c.rules = r }
}

// WithLogger sets the logger used for stage progress.
func WithLogger(l *log.Logger) Option {
	return func(c *Calculator) { c.logger = l }
}

// WithClock sets the clock used to time stages.
func WithClock(clock quartz.Clock) Option {
	return func(c *Calculator) { c.clock = clock }
}

// NewCalculator creates a calculator with validated rules.
func NewCalculator(opts ...Option) (*Calculator, error) {
	c := &Calculator{
		rules:  DefaultRules(),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	c.logger = c.logger.WithPrefix("calculator")
	return c, nil
}

// Calculate runs the full computation. The only error conditions are a
// cancelled context and a distribution that fails its closure check.
func (c *Calculator) Calculate(ctx context.Context) (*Result, error) {
	start := c.clock.Now()
	res := &Result{Rules: c.rules}

	stages := []struct {
		name  string
		build func(g *errgroup.Group)
	}{
		{"deal", func(g *errgroup.Group) {
			g.Go(func() error {
				m, err := BuildInitial(c.rules.Tolerance)
				res.Initial = m
				return err
			})
			g.Go(func() error {
				res.Dealer = BuildDealer()
				return res.Dealer.Verify(c.rules.Tolerance)
			})
		}},
		{"stand", func(g *errgroup.Group) {
			g.Go(func() error {
				res.Stand = BuildStand(res.Dealer)
				return nil
			})
		}},
		{"draw", func(g *errgroup.Group) {
			g.Go(func() error {
				res.Hit = BuildHit(res.Stand)
				return nil
			})
			g.Go(func() error {
				res.Double = BuildDouble(res.Stand)
				return nil
			})
		}},
		{"split", func(g *errgroup.Group) {
			g.Go(func() error {
				depth0 := BuildSplitDepth0(res.Stand, res.Hit, res.Double)
				depth1 := BuildSplitDepth1(depth0)
				depth2 := BuildSplitDepth2(depth0, depth1)
				res.Split = BuildSplitRoot(res.Stand, depth0, depth1, depth2)
				res.Resplit = [3]*table.Matrix[float64]{depth0, depth1, depth2}
				return nil
			})
		}},
		{"strategy", func(g *errgroup.Group) {
			g.Go(func() error {
				res.Optimal, res.Strategy = BuildStrategy(c.rules, res.Stand, res.Hit, res.Double, res.Split)
				return nil
			})
		}},
		{"advantage", func(g *errgroup.Group) {
			g.Go(func() error {
				res.Advantage = Advantage(c.rules, res.Initial, res.Optimal)
				return nil
			})
		}},
	}

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t0 := c.clock.Now()
		var g errgroup.Group
		s.build(&g)
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		c.logger.Debug("Stage complete", "stage", s.name, "elapsed", c.clock.Since(t0))
	}

	res.Elapsed = c.clock.Since(start)
	c.logger.Info("Calculation complete", "advantage", res.Advantage, "elapsed", res.Elapsed)
	return res, nil
}
