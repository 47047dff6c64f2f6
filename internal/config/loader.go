package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Wintoo12/Automation/internal/logging"
	"github.com/Wintoo12/Automation/internal/orchestrator"
	"github.com/Wintoo12/Automation/internal/runner"
)

// Config is the top-level configuration: the units to run and the
// run-wide settings.
type Config struct {
	Settings Settings       `yaml:"settings" json:"settings"`
	Scripts  []ScriptConfig `yaml:"scripts" json:"scripts"`
}

// Settings holds run-wide knobs.
type Settings struct {
	// Workers bounds how many units run simultaneously.
	Workers int `yaml:"workers" json:"workers,omitempty"`

	// MinDelay and MaxDelay bound the random pre-attempt delay, in seconds.
	MinDelay float64 `yaml:"minDelay" json:"minDelay,omitempty"`
	MaxDelay float64 `yaml:"maxDelay" json:"maxDelay,omitempty"`

	// Timeout bounds each attempt's child process, e.g. "90s".
	// Empty or "0" disables the timeout.
	Timeout string `yaml:"timeout" json:"timeout,omitempty"`

	// Interpreter is the default program used to execute scripts.
	// Empty means scripts are executed directly.
	Interpreter string `yaml:"interpreter" json:"interpreter,omitempty"`

	Log LogSettings `yaml:"log" json:"log,omitempty"`
}

// LogSettings configures the rotating log sink.
type LogSettings struct {
	File       string `yaml:"file" json:"file,omitempty"`
	Level      string `yaml:"level" json:"level,omitempty"`
	MaxSizeMB  int    `yaml:"maxSizeMB" json:"maxSizeMB,omitempty"`
	MaxBackups int    `yaml:"maxBackups" json:"maxBackups,omitempty"`
}

// ScriptConfig describes one unit.
type ScriptConfig struct {
	Path string `yaml:"path" json:"path"`

	// Repetitions is the explicit repeat count. Zero derives the count
	// from the filename suffix instead.
	Repetitions int `yaml:"repetitions" json:"repetitions,omitempty"`

	// Interpreter overrides Settings.Interpreter for this unit.
	Interpreter string `yaml:"interpreter" json:"interpreter,omitempty"`
}

// Default returns a Config with every setting at its default and no
// scripts. Used when units are given on the command line instead of in a
// config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads, parses and structurally validates a configuration file.
// The format is chosen by extension: .json is JSON, everything else is
// parsed as YAML. Defaults are applied after parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data, path)
}

// Parse parses configuration data. The format is determined by the file
// extension in path; an empty or unknown extension defaults to YAML.
func Parse(data []byte, path string) (*Config, error) {
	var doc interface{}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		var yamlDoc interface{}
		if err := yaml.Unmarshal(data, &yamlDoc); err != nil {
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}
		// Round-trip through JSON so the schema validator sees the same
		// value types a JSON decoder would produce.
		raw, err := json.Marshal(yamlDoc)
		if err != nil {
			return nil, fmt.Errorf("normalizing YAML config: %w", err)
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("normalizing YAML config: %w", err)
		}
	}

	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("config does not match schema: %w", err)
	}

	var cfg Config
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills zero-valued settings with the historical runner
// defaults.
func applyDefaults(cfg *Config) {
	s := &cfg.Settings

	if s.Workers == 0 {
		s.Workers = orchestrator.DefaultWorkers
	}
	if s.MinDelay == 0 && s.MaxDelay == 0 {
		s.MinDelay = runner.DefaultMinDelay
		s.MaxDelay = runner.DefaultMaxDelay
	}
	if s.Log.File == "" {
		s.Log.File = logging.DefaultFilePath
	}
	if s.Log.Level == "" {
		s.Log.Level = logging.LevelInfo
	}
	if s.Log.MaxSizeMB == 0 {
		s.Log.MaxSizeMB = logging.DefaultMaxSizeMB
	}
	if s.Log.MaxBackups == 0 {
		s.Log.MaxBackups = logging.DefaultMaxBackups
	}
}

// TimeoutDuration parses the per-attempt timeout setting.
func (s Settings) TimeoutDuration() (time.Duration, error) {
	return ParseDurationString(s.Timeout)
}

// ParseDurationString parses a duration given either as a Go duration
// string ("90s", "2m") or as a bare integer number of seconds ("90").
// An empty string parses as zero.
func ParseDurationString(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "0" {
		return 0, nil
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}

	var seconds int
	if _, err := fmt.Sscanf(value, "%d", &seconds); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	return 0, fmt.Errorf("invalid duration %q", value)
}
