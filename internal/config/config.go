package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/mydehq/numrange/internal/types"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText  = "text"
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatTable = "table"
)

const (
	// EnvPrefix is stripped from environment variables (NUMRANGE_OUTPUT -> output)
	EnvPrefix = "NUMRANGE_"

	// FileName is the config file name inside the numrange config directory
	FileName = "config.yml"

	DefaultPrompt = "Enter your numbers: "
)

// Formats lists the supported output formats in display order
var Formats = []string{FormatText, FormatPlain, FormatJSON, FormatTable}

// Config represents the numrange configuration file
type Config struct {
	Output      string `koanf:"output" yaml:"output"`
	ShowParsed  bool   `koanf:"show_parsed" yaml:"show_parsed"`
	Prompt      string `koanf:"prompt" yaml:"prompt"`
	HistoryFile string `koanf:"history_file" yaml:"history_file,omitempty"`

	// Path is the file the config was loaded from, if any
	Path string `koanf:"-" yaml:"-"`
}

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Output:     FormatText,
		ShowParsed: true,
		Prompt:     DefaultPrompt,
	}
}

// IsValidFormat reports whether f is a supported output format
func IsValidFormat(f string) bool {
	return slices.Contains(Formats, f)
}

// Validate checks the configuration for unsupported values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return types.ErrConfigInvalid{Reason: "config is nil"}
	}
	if !IsValidFormat(cfg.Output) {
		return types.ErrConfigInvalid{
			Path:   cfg.Path,
			Reason: fmt.Sprintf("output must be one of %s, got %q", strings.Join(Formats, ", "), cfg.Output),
		}
	}
	return nil
}

// Load builds the configuration from defaults, the config file, NUMRANGE_*
// environment variables and explicitly set flags, in increasing precedence.
func Load(customPath string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	def := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":       def.Output,
		"show_parsed":  def.ShowParsed,
		"prompt":       def.Prompt,
		"history_file": "",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := customPath
	if path == "" {
		path = Find()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config at %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			switch key {
			case "output", "show_parsed", "prompt", "history_file":
				return key, posflag.FlagVal(flags, f)
			}
			return "", nil
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Path = path
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))

	if cfg.HistoryFile == "" {
		cfg.HistoryFile = DefaultHistoryFile()
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config at %s: %w", path, err)
	}
	return nil
}

// Marshal renders cfg as YAML with a short header.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	header := "# numrange configuration\n# output: " + strings.Join(Formats, " | ") + "\n"
	return append([]byte(header), data...), nil
}

// DefaultPath returns the user config path, used when writing a new file.
func DefaultPath() string {
	dir := configHome()
	if dir == "" {
		return FileName
	}
	return filepath.Join(dir, "numrange", FileName)
}

// Find searches for the config file in standard locations.
func Find() string {
	if dir := configHome(); dir != "" {
		path := filepath.Join(dir, "numrange", FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	// /etc fallback
	etcPath := filepath.Join("/etc", "numrange", FileName)
	if _, err := os.Stat(etcPath); err == nil {
		return etcPath
	}

	return ""
}

// DefaultHistoryFile returns the REPL history location under XDG_STATE_HOME.
func DefaultHistoryFile() string {
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		home, _ := os.UserHomeDir()
		if home == "" {
			return ""
		}
		state = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(state, "numrange", "history")
}

func configHome() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			xdgConfig = filepath.Join(home, ".config")
		}
	}
	return xdgConfig
}
