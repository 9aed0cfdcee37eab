package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/strand/internal/config/loader"
)

// DefaultPaths are searched in order when no config file is given.
var DefaultPaths = []string{"strand.toml", "strand.yaml", "strand.yml"}

// Options controls how configuration is loaded.
type Options struct {
	// Path is an explicit config file. When empty, DefaultPaths are searched
	// and a missing file is not an error.
	Path string

	// FS is the file system used for config files. Defaults to the OS.
	FS loader.FileSystem

	// EnvFiles are .env files, read through FS, loaded into the environment
	// before reading STRAND_* variables. When nil, ".env" is tried.
	EnvFiles []string

	// SkipEnv disables the environment layer.
	SkipEnv bool

	// Overrides is the highest-priority layer, typically from CLI flags,
	// keyed by dotted path (e.g. "bench.trials").
	Overrides map[string]any
}

// Load builds a Config from defaults, a config file, the environment and
// overrides, then validates it.
func Load(opts Options) (*Config, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}

	merged, err := toMap(Default())
	if err != nil {
		return nil, err
	}

	fileLayer, err := loadFile(fsys, opts.Path)
	if err != nil {
		return nil, err
	}
	merged = loader.DeepMerge(merged, fileLayer)

	if !opts.SkipEnv {
		if err := loader.LoadDotEnv(fsys, opts.EnvFiles...); err != nil {
			return nil, err
		}
		envLayer, err := loader.NewEnvLoader(loader.DefaultEnvPrefix).Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, envLayer)
	}

	overrides := make(map[string]any)
	for path, v := range opts.Overrides {
		SetByPath(overrides, path, v)
	}
	merged = loader.DeepMerge(merged, overrides)

	cfg, err := fromMap(merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile reads the explicit config file, or the first default path found.
func loadFile(fsys loader.FileSystem, path string) (map[string]any, error) {
	if path != "" {
		if _, err := fsys.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
			}
			return nil, err
		}
		l, err := loader.ForPath(fsys, path)
		if err != nil {
			return nil, err
		}
		return l.Load()
	}

	for _, p := range DefaultPaths {
		if _, err := fsys.Stat(p); err != nil {
			continue
		}
		l, err := loader.ForPath(fsys, p)
		if err != nil {
			return nil, err
		}
		return l.Load()
	}
	return nil, nil
}

// toMap converts a Config into the nested map form used for merging.
func toMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return m, nil
}

// fromMap decodes a merged map into a Config.
func fromMap(m map[string]any) (*Config, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
