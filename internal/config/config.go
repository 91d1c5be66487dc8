// Package config loads northstar settings: defaults first, then the YAML
// config file if present, then NORTHSTAR_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/northstar/internal/gateway"
	"gopkg.in/yaml.v3"
)

type GatewaySettings struct {
	Endpoint  string `yaml:"endpoint"`
	TimeoutMs int    `yaml:"timeoutMs"`
}

type Config struct {
	Primary GatewaySettings `yaml:"primary"`
	Signals GatewaySettings `yaml:"signals"`

	// ActorID and Token come from the identity provider in a full
	// deployment; configuring them directly covers scripted use.
	ActorID string `yaml:"actorId"`
	Token   string `yaml:"token"`

	// JournalPath locates the failed-call journal. Empty disables it.
	JournalPath string `yaml:"journalPath"`

	// SkipConfirm answers every delete confirmation with yes.
	SkipConfirm bool `yaml:"skipConfirm"`

	// LogMutations writes mutation lifecycle events to stderr.
	LogMutations bool `yaml:"logMutations"`
}

// Default returns the development defaults.
func Default() Config {
	primary := gateway.DefaultPrimaryConfig()
	signals := gateway.DefaultSignalConfig()
	return Config{
		Primary: GatewaySettings{Endpoint: primary.Endpoint, TimeoutMs: primary.TimeoutMs},
		Signals: GatewaySettings{Endpoint: signals.Endpoint, TimeoutMs: signals.TimeoutMs},
	}
}

// DefaultPath returns ~/.northstar/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".northstar", "config.yaml"), nil
}

// DefaultJournalPath returns ~/.northstar/journal.db.
func DefaultJournalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".northstar", "journal.db"), nil
}

// Load reads the config file at path (missing file is fine) and applies env
// overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults + env only
		case err != nil:
			return cfg, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NORTHSTAR_PRIMARY_ENDPOINT"); v != "" {
		cfg.Primary.Endpoint = v
	}
	if v := os.Getenv("NORTHSTAR_SIGNALS_ENDPOINT"); v != "" {
		cfg.Signals.Endpoint = v
	}
	if v := os.Getenv("NORTHSTAR_ACTOR"); v != "" {
		cfg.ActorID = v
	}
	if v := os.Getenv("NORTHSTAR_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("NORTHSTAR_JOURNAL"); v != "" {
		cfg.JournalPath = v
	}
	if v := os.Getenv("NORTHSTAR_SKIP_CONFIRM"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SkipConfirm = b
		}
	}
	if v := os.Getenv("NORTHSTAR_LOG_MUTATIONS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogMutations = b
		}
	}
}

// PrimaryGateway converts the settings into a gateway config.
func (c Config) PrimaryGateway() gateway.Config {
	return gateway.Config{Endpoint: c.Primary.Endpoint, TimeoutMs: c.Primary.TimeoutMs}
}

// SignalGateway converts the settings into a gateway config.
func (c Config) SignalGateway() gateway.Config {
	return gateway.Config{Endpoint: c.Signals.Endpoint, TimeoutMs: c.Signals.TimeoutMs}
}
