package config

import (
	"fmt"
	"strings"

	"github.com/dshills/strand/internal/engine/strand"
)

// Report formats understood by the benchmark harness.
const (
	FormatAuto = ""
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds every setting of the strand tool.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Strand StrandConfig `yaml:"strand"`
	Bench  BenchConfig  `yaml:"bench"`
	Script ScriptConfig `yaml:"script"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// StrandConfig selects the strand implementation.
type StrandConfig struct {
	// Variant is the default variant name (link, builder, string).
	Variant string `yaml:"variant"`
}

// BenchConfig configures the benchmark harness.
type BenchConfig struct {
	// Source is the DNA file to benchmark against.
	Source string `yaml:"source"`
	// Enzyme is the restriction site cut by the splice benchmark.
	Enzyme string `yaml:"enzyme"`
	// SpliceeStart is the first splicee length; it doubles up to SpliceeMax.
	SpliceeStart int `yaml:"spliceeStart"`
	SpliceeMax   int `yaml:"spliceeMax"`
	// Trials is the number of timed runs per measurement; the best is kept.
	Trials int `yaml:"trials"`
	// ScanPiece is the append size used to build the strand for the scan benchmark.
	ScanPiece int `yaml:"scanPiece"`
	// ScanRepeats is the number of full sequential CharAt passes. Zero disables the scan.
	ScanRepeats int `yaml:"scanRepeats"`
	// Variants restricts the run to the named variants. Empty means all.
	Variants []string `yaml:"variants"`
	// Format is the report format: text, json, yaml, or empty for automatic.
	Format string `yaml:"format"`
}

// ScriptConfig configures the Lua script runner.
type ScriptConfig struct {
	// OpLimit bounds the strand operations a script may perform per run.
	// Zero means unlimited.
	OpLimit int64 `yaml:"opLimit"`
	// Watch reruns the script when it changes.
	Watch bool `yaml:"watch"`
	// DebounceMillis coalesces bursts of file events.
	DebounceMillis int `yaml:"debounceMillis"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Strand: StrandConfig{
			Variant: strand.VariantLink.String(),
		},
		Bench: BenchConfig{
			Enzyme:       "gaattc",
			SpliceeStart: 256,
			SpliceeMax:   1 << 16,
			Trials:       3,
			ScanPiece:    1024,
			ScanRepeats:  1,
		},
		Script: ScriptConfig{
			OpLimit:        10_000_000,
			DebounceMillis: 100,
		},
	}
}

// Variant returns the configured default variant.
func (c *Config) Variant() (strand.Variant, error) {
	return strand.ParseVariant(c.Strand.Variant)
}

// BenchVariants returns the variants selected for benchmarking.
func (c *Config) BenchVariants() ([]strand.Variant, error) {
	if len(c.Bench.Variants) == 0 {
		return strand.Variants(), nil
	}
	out := make([]strand.Variant, 0, len(c.Bench.Variants))
	for _, name := range c.Bench.Variants {
		v, err := strand.ParseVariant(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}

	if _, err := c.Variant(); err != nil {
		return &ValidationError{Path: "strand.variant", Message: err.Error()}
	}
	if _, err := c.BenchVariants(); err != nil {
		return &ValidationError{Path: "bench.variants", Message: err.Error()}
	}

	b := c.Bench
	if b.Enzyme == "" {
		return &ValidationError{Path: "bench.enzyme", Message: "must not be empty"}
	}
	if b.SpliceeStart <= 0 {
		return &ValidationError{Path: "bench.spliceeStart", Message: "must be positive"}
	}
	if b.SpliceeMax < b.SpliceeStart {
		return &ValidationError{Path: "bench.spliceeMax", Message: "must be at least bench.spliceeStart"}
	}
	if b.Trials <= 0 {
		return &ValidationError{Path: "bench.trials", Message: "must be positive"}
	}
	if b.ScanPiece <= 0 {
		return &ValidationError{Path: "bench.scanPiece", Message: "must be positive"}
	}
	if b.ScanRepeats < 0 {
		return &ValidationError{Path: "bench.scanRepeats", Message: "must not be negative"}
	}
	switch b.Format {
	case FormatAuto, FormatText, FormatJSON, FormatYAML:
	default:
		return &ValidationError{Path: "bench.format", Message: fmt.Sprintf("unknown format %q", b.Format)}
	}

	if c.Script.OpLimit < 0 {
		return &ValidationError{Path: "script.opLimit", Message: "must not be negative"}
	}
	if c.Script.DebounceMillis < 0 {
		return &ValidationError{Path: "script.debounceMillis", Message: "must not be negative"}
	}
	return nil
}
