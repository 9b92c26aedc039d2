package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/lox/easybj/internal/easybj"
)

// AdviseCmd explains a single strategy cell
type AdviseCmd struct {
	Player string `arg:"" help:"Player hand code, e.g. 16, A7, 88, AA"`
	Dealer string `arg:"" help:"Dealer hand code, e.g. 10, A6"`
}

func (c *AdviseCmd) Run(ctx context.Context, g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	res, err := calculate(ctx, cfg, logger)
	if err != nil {
		return err
	}
	adv, err := res.Advise(c.Player, c.Dealer)
	if err != nil {
		return err
	}
	return writeAdvice(g.Stdout, adv)
}

func writeAdvice(w io.Writer, adv easybj.Advice) error {
	if _, err := fmt.Fprintf(w, "%s v %s: %s (EV %+.4f)\n", adv.Player, adv.Dealer, adv.Action, adv.EV); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	candidates := []struct {
		name string
		ev   float64
	}{
		{"stand", adv.Candidates.Stand},
		{"hit", adv.Candidates.Hit},
		{"double", adv.Candidates.Double},
		{"split", adv.Candidates.Split},
		{"surrender", adv.Candidates.Surrender},
	}
	for _, cand := range candidates {
		ev := "-"
		if !math.IsInf(cand.ev, -1) {
			ev = fmt.Sprintf("%+.4f", cand.ev)
		}
		fmt.Fprintf(tw, "  %s\t%s\t\n", cand.name, ev)
	}
	return tw.Flush()
}
