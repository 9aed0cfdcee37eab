// Package config provides the configuration system for the strand tool.
//
// # Architecture
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← STRAND_*, optionally from .env
//	├─────────────────────────────┤
//	│  2. Config File             │  ← strand.toml / strand.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Each layer is a nested map produced by the loader sub-package. Layers are
// deep-merged and the result is decoded into a Config.
//
// # Basic Usage
//
//	cfg, err := config.Load(config.Options{Path: "strand.toml"})
//	if err != nil {
//	    return err
//	}
//	variant, _ := cfg.Variant()
package config
