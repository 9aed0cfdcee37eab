package config

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/dshills/strand/internal/engine/strand"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m memFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m[path]; ok {
		return fileInfo(path), nil
	}
	return nil, fs.ErrNotExist
}

type fileInfo string

func (f fileInfo) Name() string       { return string(f) }
func (f fileInfo) Size() int64        { return 0 }
func (f fileInfo) Mode() fs.FileMode  { return 0644 }
func (f fileInfo) ModTime() time.Time { return time.Time{} }
func (f fileInfo) IsDir() bool        { return false }
func (f fileInfo) Sys() any           { return nil }

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	v, err := cfg.Variant()
	if err != nil || v != strand.VariantLink {
		t.Errorf("Variant() = %v, %v; want link", v, err)
	}
	vs, err := cfg.BenchVariants()
	if err != nil || len(vs) != 3 {
		t.Errorf("BenchVariants() = %v, %v; want all three", vs, err)
	}
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load(Options{FS: memFS{}, SkipEnv: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	def := Default()
	if cfg.Bench.Trials != def.Bench.Trials || cfg.Bench.Enzyme != def.Bench.Enzyme {
		t.Errorf("Load() = %+v, want defaults %+v", cfg.Bench, def.Bench)
	}
	if cfg.Script.OpLimit != def.Script.OpLimit {
		t.Errorf("OpLimit = %d, want %d", cfg.Script.OpLimit, def.Script.OpLimit)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	fsys := memFS{"strand.toml": `
[strand]
variant = "builder"

[bench]
trials = 5
variants = ["link", "string"]
`}

	cfg, err := Load(Options{FS: fsys, SkipEnv: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Strand.Variant != "builder" {
		t.Errorf("Variant = %q, want builder", cfg.Strand.Variant)
	}
	if cfg.Bench.Trials != 5 {
		t.Errorf("Trials = %d, want 5", cfg.Bench.Trials)
	}
	// Untouched settings keep their defaults.
	if cfg.Bench.Enzyme != "gaattc" {
		t.Errorf("Enzyme = %q, want default", cfg.Bench.Enzyme)
	}
	vs, err := cfg.BenchVariants()
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 2 || vs[0] != strand.VariantLink || vs[1] != strand.VariantString {
		t.Errorf("BenchVariants() = %v", vs)
	}
}

func TestLoadYAMLExplicitPath(t *testing.T) {
	fsys := memFS{"/etc/strand.yml": "bench:\n  format: yaml\n  spliceeMax: 512\n"}

	cfg, err := Load(Options{FS: fsys, Path: "/etc/strand.yml", SkipEnv: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Bench.Format != FormatYAML || cfg.Bench.SpliceeMax != 512 {
		t.Errorf("Bench = %+v", cfg.Bench)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(Options{FS: memFS{}, Path: "nope.toml", SkipEnv: true})
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Load() error = %v, want ErrFileNotFound", err)
	}
}

func TestLoadPrecedence(t *testing.T) {
	fsys := memFS{"strand.toml": "[bench]\ntrials = 5\nenzyme = \"ggcc\"\n[log]\nlevel = \"warn\"\n"}
	t.Setenv("STRAND_BENCH_TRIALS", "9")
	t.Setenv("STRAND_VARIANT", "string")

	cfg, err := Load(Options{
		FS:        fsys,
		EnvFiles:  []string{"does-not-exist.env"},
		Overrides: map[string]any{"bench.trials": 11},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Bench.Trials != 11 {
		t.Errorf("Trials = %d, want override 11", cfg.Bench.Trials)
	}
	if cfg.Strand.Variant != "string" {
		t.Errorf("Variant = %q, want env value string", cfg.Strand.Variant)
	}
	if cfg.Bench.Enzyme != "ggcc" {
		t.Errorf("Enzyme = %q, want file value ggcc", cfg.Bench.Enzyme)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Level = %q, want file value warn", cfg.Log.Level)
	}
}

func TestLoadEnvVariantList(t *testing.T) {
	t.Setenv("STRAND_BENCH_VARIANTS", "link, builder")

	cfg, err := Load(Options{FS: memFS{}, EnvFiles: []string{"none.env"}})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	vs, err := cfg.BenchVariants()
	if err != nil {
		t.Fatalf("BenchVariants() error = %v", err)
	}
	if len(vs) != 2 || vs[0] != strand.VariantLink || vs[1] != strand.VariantBuilder {
		t.Errorf("BenchVariants() = %v, want [link builder]", vs)
	}
}

func TestLoadDotEnvFromFS(t *testing.T) {
	t.Setenv("STRAND_BENCH_VARIANTS", "")
	os.Unsetenv("STRAND_BENCH_VARIANTS")
	t.Setenv("STRAND_BENCH_ENZYME", "")
	os.Unsetenv("STRAND_BENCH_ENZYME")

	fsys := memFS{"test.env": "STRAND_BENCH_VARIANTS=string,link\nSTRAND_BENCH_ENZYME=ggatcc\n"}
	cfg, err := Load(Options{FS: fsys, EnvFiles: []string{"test.env"}})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.Bench.Variants; len(got) != 2 || got[0] != "string" || got[1] != "link" {
		t.Errorf("Bench.Variants = %v, want [string link]", got)
	}
	if cfg.Bench.Enzyme != "ggatcc" {
		t.Errorf("Enzyme = %q, want ggatcc from .env", cfg.Bench.Enzyme)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load(Options{
		FS:        memFS{},
		SkipEnv:   true,
		Overrides: map[string]any{"strand.variant": "rope"},
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("Load() error = %v, want ErrValidationFailed", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Path != "strand.variant" {
		t.Errorf("error = %v, want ValidationError on strand.variant", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"variant", func(c *Config) { c.Strand.Variant = "" }, "strand.variant"},
		{"bench variants", func(c *Config) { c.Bench.Variants = []string{"link", "gap"} }, "bench.variants"},
		{"enzyme", func(c *Config) { c.Bench.Enzyme = "" }, "bench.enzyme"},
		{"splicee start", func(c *Config) { c.Bench.SpliceeStart = 0 }, "bench.spliceeStart"},
		{"splicee max", func(c *Config) { c.Bench.SpliceeMax = 1 }, "bench.spliceeMax"},
		{"trials", func(c *Config) { c.Bench.Trials = 0 }, "bench.trials"},
		{"scan piece", func(c *Config) { c.Bench.ScanPiece = -1 }, "bench.scanPiece"},
		{"scan repeats", func(c *Config) { c.Bench.ScanRepeats = -1 }, "bench.scanRepeats"},
		{"format", func(c *Config) { c.Bench.Format = "xml" }, "bench.format"},
		{"op limit", func(c *Config) { c.Script.OpLimit = -5 }, "script.opLimit"},
		{"debounce", func(c *Config) { c.Script.DebounceMillis = -1 }, "script.debounceMillis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if ve.Path != tt.path {
				t.Errorf("Path = %q, want %q", ve.Path, tt.path)
			}
		})
	}
}

func TestSetAndGetByPath(t *testing.T) {
	m := make(map[string]any)
	SetByPath(m, "bench.trials", 4)
	SetByPath(m, "bench.enzyme", "gaattc")
	SetByPath(m, "", 1)

	v, ok := GetByPath(m, "bench.trials")
	if !ok || v != 4 {
		t.Errorf("GetByPath(bench.trials) = %v, %v", v, ok)
	}
	if _, ok := GetByPath(m, "bench.missing"); ok {
		t.Error("GetByPath(bench.missing) should fail")
	}
	if _, ok := GetByPath(m, "bench.trials.deeper"); ok {
		t.Error("GetByPath through a scalar should fail")
	}
}
