// Package config loads the HCL configuration for the easybj command.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/easybj/internal/easybj"
)

// Output formats understood by the report package.
const (
	FormatText   = "text"
	FormatStyled = "styled"
	FormatJSON   = "json"
)

const (
	defaultLogLevel  = "info"
	defaultFormat    = FormatText
	defaultPrecision = 3
	maxPrecision     = 12
)

// Config represents the complete command configuration
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	Rules    *RulesConfig  `hcl:"rules,block"`
	Output   *OutputConfig `hcl:"output,block"`
}

// RulesConfig holds the tunable ruleset. Pointers distinguish an omitted
// field from an explicit zero.
type RulesConfig struct {
	Surrender       *bool    `hcl:"surrender,optional"`
	SurrenderEV     *float64 `hcl:"surrender_ev,optional"`
	BlackjackPayout *float64 `hcl:"blackjack_payout,optional"`
	Tolerance       *float64 `hcl:"tolerance,optional"`
}

// OutputConfig controls how tables are printed
type OutputConfig struct {
	Format    string `hcl:"format,optional"`
	Precision int    `hcl:"precision,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	def := easybj.DefaultRules()
	if c.Rules == nil {
		c.Rules = &RulesConfig{}
	}
	if c.Rules.Surrender == nil {
		c.Rules.Surrender = &def.Surrender
	}
	if c.Rules.SurrenderEV == nil {
		c.Rules.SurrenderEV = &def.SurrenderEV
	}
	if c.Rules.BlackjackPayout == nil {
		c.Rules.BlackjackPayout = &def.BlackjackPayout
	}
	if c.Rules.Tolerance == nil {
		c.Rules.Tolerance = &def.Tolerance
	}

	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
	if c.Output.Format == "" {
		c.Output.Format = defaultFormat
	}
	if c.Output.Precision == 0 {
		c.Output.Precision = defaultPrecision
	}
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q", c.LogLevel)
	}

	if err := c.EngineRules().Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}

	switch c.Output.Format {
	case FormatText, FormatStyled, FormatJSON:
	default:
		return fmt.Errorf("output: invalid format %q", c.Output.Format)
	}
	if c.Output.Precision < 1 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("output: precision must be between 1 and %d", maxPrecision)
	}
	return nil
}

// EngineRules converts the rules block into the calculator's ruleset
func (c *Config) EngineRules() easybj.Rules {
	return easybj.Rules{
		Surrender:       *c.Rules.Surrender,
		SurrenderEV:     *c.Rules.SurrenderEV,
		BlackjackPayout: *c.Rules.BlackjackPayout,
		Tolerance:       *c.Rules.Tolerance,
	}
}
