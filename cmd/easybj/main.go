package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string           `short:"c" default:"easybj.hcl" type:"path" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" enum:",debug,info,warn,error" default:"" help:"Log level (overrides config)"`
	NoColor  bool             `help:"Disable colour output"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Tables TablesCmd `cmd:"" default:"withargs" help:"Compute and print result tables"`
	Export ExportCmd `cmd:"" help:"Write every result to a JSON file"`
	Advise AdviseCmd `cmd:"" help:"Explain the strategy for one player and dealer hand"`
	View   ViewCmd   `cmd:"" help:"Browse result tables in a terminal pager"`
}

func newParser(cli *CLI, ctx context.Context, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("easybj"),
		kong.Description("Optimal strategy and player advantage for Easy Blackjack"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	}, opts...)
	return kong.New(cli, opts...)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := CLI{Globals: Globals{Stdout: os.Stdout, Stderr: os.Stderr}}
	parser, err := newParser(&cli, ctx)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = kctx.Run(&cli.Globals)
	kctx.FatalIfErrorf(err)
}
