package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/easybj/internal/easybj"
)

// run parses args and executes the selected command, returning stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cli := CLI{Globals: Globals{Stdout: &stdout, Stderr: &stderr}}
	parser, err := newParser(&cli, context.Background())
	require.NoError(t, err)

	// Point at a missing file so defaults apply regardless of the working directory.
	args = append([]string{"--config", filepath.Join(t.TempDir(), "absent.hcl"), "--log-level", "error"}, args...)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	err = kctx.Run(&cli.Globals)
	return stdout.String(), err
}

func TestTablesCommand(t *testing.T) {
	t.Run("default command prints selected tables", func(t *testing.T) {
		out, err := run(t, "advantage")
		require.NoError(t, err)
		assert.Equal(t, "Player Advantage: 11.6685%\n", out)
	})

	t.Run("unknown names are reported after known output", func(t *testing.T) {
		out, err := run(t, "tables", "advantage", "bogus")
		assert.Equal(t, "Player Advantage: 11.6685%\n", out)
		require.Error(t, err)
		assert.Equal(t, "result(s) not found: bogus", err.Error())
	})

	t.Run("json format", func(t *testing.T) {
		out, err := run(t, "tables", "--format", "json", "advantage")
		require.NoError(t, err)
		var decoded map[string]float64
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.InDelta(t, 0.11668470418450866, decoded["advantage"], 1e-9)
	})

	t.Run("precision override", func(t *testing.T) {
		out, err := run(t, "tables", "--precision", "5", "stand")
		require.NoError(t, err)
		assert.Contains(t, out, "-0.20585")
	})
}

func TestConfigOverridesRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "easybj.hcl")
	require.NoError(t, os.WriteFile(path, []byte("rules {\n  surrender = false\n}\n"), 0o644))

	var stdout, stderr bytes.Buffer
	cli := CLI{Globals: Globals{Stdout: &stdout, Stderr: &stderr}}
	parser, err := newParser(&cli, context.Background())
	require.NoError(t, err)
	kctx, err := parser.Parse([]string{"--config", path, "advantage"})
	require.NoError(t, err)
	require.NoError(t, kctx.Run(&cli.Globals))

	assert.Equal(t, "Player Advantage: 10.2602%\n", stdout.String())
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	_, err := run(t, "export", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "strategy")
	assert.Contains(t, decoded, "resplit")
}

func TestAdviseCommand(t *testing.T) {
	out, err := run(t, "advise", "16", "10")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "16 v 10: Rh (EV -0.5000)", lines[0])
	assert.Contains(t, lines[1], "stand")
	assert.Contains(t, lines[1], "-0.5758")
	assert.Contains(t, lines[4], "split")
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[4], " "), "-"))

	_, err = run(t, "advise", "BJ", "10")
	assert.Error(t, err)
}

func TestWriteAdvice(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeAdvice(&buf, easybj.Advice{
		Player: "AA",
		Dealer: "6",
		Action: easybj.ActionSplit,
		EV:     0.66,
		Candidates: easybj.Candidates{
			Stand:     -0.1,
			Hit:       0.2,
			Double:    0.1,
			Split:     0.66,
			Surrender: math.Inf(-1),
		},
	}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "AA v 6: P (EV +0.6600)\n"))
	assert.Contains(t, out, "+0.6600")
}
