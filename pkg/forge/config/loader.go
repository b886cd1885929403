package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const envPrefix = "FORGE_"

// Loader loads a Config from an optional YAML file, then applies any
// FORGE_*-prefixed environment overrides — the same env-override shape
// graft's internal/config.Loader uses, trimmed to forge's three fields
// instead of a reflection-driven walk over graft's much larger struct.
type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

// Load reads path over the built-in defaults. A missing file is not an
// error — forge runs fine with no config file at all.
func (l *Loader) Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if uerr := yaml.Unmarshal(data, &cfg); uerr != nil {
				return cfg, uerr
			}
		case os.IsNotExist(err):
			// no config file: defaults stand
		default:
			return cfg, err
		}
	}
	return l.applyEnv(cfg), nil
}

func (l *Loader) applyEnv(cfg Config) Config {
	if v := os.Getenv(envPrefix + "DEFAULT_STRATEGY"); v != "" {
		cfg.DefaultStrategy = strings.ToLower(v)
	}
	if v := os.Getenv(envPrefix + "COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}
