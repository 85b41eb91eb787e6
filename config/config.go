// Package config unmarshals the YAML document describing runtime
// knobs that are awkward to hardcode: worker-pool size, default PTY
// geometry, renderer backend preference, and session channel
// capacity.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BackendPreference mirrors render.Backend without importing the
// render package, so config stays a leaf dependency.
type BackendPreference string

const (
	BackendCPU  BackendPreference = "cpu"
	BackendAuto BackendPreference = "auto"
	BackendGPU  BackendPreference = "gpu"
)

// Config is the root configuration document.
type Config struct {
	WorkerPoolSize     int               `yaml:"worker_pool_size"`
	DefaultCols        uint16            `yaml:"default_cols"`
	DefaultRows        uint16            `yaml:"default_rows"`
	RendererBackend    BackendPreference `yaml:"renderer_backend"`
	MergeDirtyRegions  bool              `yaml:"merge_dirty_regions"`
	SessionChannelSize int               `yaml:"session_channel_size"`
	LogLevel           string            `yaml:"log_level"`
}

// Default returns the conventional defaults applied when a field is
// left unset in the YAML document.
func Default() Config {
	return Config{
		WorkerPoolSize:     0, // 0 means runtime.NumCPU()
		DefaultCols:        80,
		DefaultRows:        24,
		RendererBackend:    BackendCPU,
		MergeDirtyRegions:  true,
		SessionChannelSize: 1024,
		LogLevel:           "warn",
	}
}

// Load reads and unmarshals the YAML document at path over Default(),
// so any field the document omits keeps its conventional value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals a YAML document over Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks Config's invariants after unmarshaling.
func (c Config) Validate() error {
	if c.WorkerPoolSize < 0 {
		return fmt.Errorf("config: worker_pool_size must be >= 0, got %d", c.WorkerPoolSize)
	}
	if c.SessionChannelSize <= 0 {
		return fmt.Errorf("config: session_channel_size must be > 0, got %d", c.SessionChannelSize)
	}
	switch c.RendererBackend {
	case BackendCPU, BackendAuto, BackendGPU:
	default:
		return fmt.Errorf("config: unknown renderer_backend %q", c.RendererBackend)
	}
	return nil
}
