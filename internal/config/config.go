// Package config loads alias-finder settings using Viper. Values are layered
// as defaults, then the config file, then ALIAS_FINDER_* environment variables,
// then explicitly set command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName names the config directory.
	AppName = "alias-finder"
	// ConfigFileName is the name of the config file, with extension.
	ConfigFileName = "config.yaml"
	// EnvPrefix prefixes every environment variable, e.g. ALIAS_FINDER_EXACT.
	EnvPrefix = "ALIAS_FINDER"
)

// Engines and Sources list the accepted values of the engine and source keys.
var (
	Engines = []string{"predicate", "regexp2", "regexp"}
	Sources = []string{"auto", "stdin", "capture", "files"}
)

// FlagKeys are the keys that command-line flags of the same name may override.
var FlagKeys = []string{"exact", "longer", "cheaper"}

// Config holds every setting.
type Config struct {
	Exact     bool `mapstructure:"exact"`
	Longer    bool `mapstructure:"longer"`
	Cheaper   bool `mapstructure:"cheaper"`
	Automatic bool `mapstructure:"automatic"`

	Engine       string   `mapstructure:"engine"`
	Source       string   `mapstructure:"source"`
	AliasCommand string   `mapstructure:"alias_command"`
	AliasFiles   []string `mapstructure:"alias_files"`
	LogLevel     string   `mapstructure:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Automatic:    true,
		Engine:       "predicate",
		Source:       "auto",
		AliasCommand: "$SHELL -ic alias",
		AliasFiles:   []string{},
		LogLevel:     "warn",
	}
}

// LoadOptions controls where Load looks.
type LoadOptions struct {
	// ConfigFilePath, when set, must exist and replaces the default location.
	ConfigFilePath string
	// Flags are bound for FlagKeys; only flags the user changed take effect.
	Flags *pflag.FlagSet
}

// ConfigDir returns $XDG_CONFIG_HOME/alias-finder, or the platform's user config dir.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		var err error
		if base, err = os.UserConfigDir(); err != nil {
			return "", fmt.Errorf("failed to get user config dir: %w", err)
		}
	}
	return filepath.Join(base, AppName), nil
}

// Load resolves the configuration. It returns the config file actually read,
// or "" when none was found.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("exact", defaults.Exact)
	v.SetDefault("longer", defaults.Longer)
	v.SetDefault("cheaper", defaults.Cheaper)
	v.SetDefault("automatic", defaults.Automatic)
	v.SetDefault("engine", defaults.Engine)
	v.SetDefault("source", defaults.Source)
	v.SetDefault("alias_command", defaults.AliasCommand)
	v.SetDefault("alias_files", defaults.AliasFiles)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	resolvedPath := ""
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", fmt.Errorf("config file not found: %s", opts.ConfigFilePath)
		}
		resolvedPath = opts.ConfigFilePath
	} else if cfgDir, err := ConfigDir(); err == nil {
		if p := filepath.Join(cfgDir, ConfigFileName); fileExists(p) {
			resolvedPath = p
		}
	}
	if resolvedPath != "" {
		v.SetConfigFile(resolvedPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config file %s: %w", resolvedPath, err)
		}
	}

	if opts.Flags != nil {
		for _, key := range FlagKeys {
			if f := opts.Flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, "", fmt.Errorf("failed to bind flag %s: %w", key, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, resolvedPath, nil
}

// Validate rejects unknown engine, source and log level names.
func (c *Config) Validate() error {
	if !slices.Contains(Engines, c.Engine) {
		return fmt.Errorf("invalid engine %q (expected one of %s)", c.Engine, strings.Join(Engines, ", "))
	}
	if !slices.Contains(Sources, c.Source) {
		return fmt.Errorf("invalid source %q (expected one of %s)", c.Source, strings.Join(Sources, ", "))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level, warn if it cannot be parsed.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
