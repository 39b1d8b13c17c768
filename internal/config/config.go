// Package config loads runtime settings from flags, environment variables,
// an optional .env file and an optional vennquiz.yaml, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/vennquiz/internal/display"
)

// EnvPrefix prefixes every environment variable, e.g. VENNQUIZ_DISPLAY.
const EnvPrefix = "VENNQUIZ"

// Configuration keys.
const (
	KeyDisplay = "display"
	KeyRetry   = "retry_until_correct"
	KeyFacts   = "facts"
	KeyVerbose = "verbose"
)

// Flag names bound to the keys above.
const (
	FlagConfig  = "config"
	FlagDisplay = "display"
	FlagRetry   = "retry"
	FlagFacts   = "facts"
	FlagVerbose = "verbose"
)

// Config holds runtime settings.
type Config struct {
	// Display is inline, window or auto.
	Display string `mapstructure:"display"`

	// RetryUntilCorrect repeats a question until it is answered correctly.
	// When false each question gets a single attempt.
	RetryUntilCorrect bool `mapstructure:"retry_until_correct"`

	// Facts is an optional path to a JSON fact table replacing the
	// built-in one.
	Facts string `mapstructure:"facts"`

	// Verbose enables debug diagnostics on stderr.
	Verbose bool `mapstructure:"verbose"`
}

// RegisterFlags declares the configuration flags on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagConfig, "", "Path to a YAML config file (default ./vennquiz.yaml)")
	flags.String(FlagDisplay, string(display.ModeAuto), "Where diagrams are shown: inline, window or auto")
	flags.Bool(FlagRetry, true, "Repeat each question until it is answered correctly")
	flags.String(FlagFacts, "", "Path to a JSON fact table (default: built-in Brazilian states)")
	flags.BoolP(FlagVerbose, "v", false, "Log debug diagnostics to stderr")
}

// Load resolves the configuration. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("vennquiz")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "vennquiz"))
	}

	v.SetDefault(KeyDisplay, string(display.ModeAuto))
	v.SetDefault(KeyRetry, true)
	v.SetDefault(KeyFacts, "")
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindings := map[string]string{
			KeyDisplay: FlagDisplay,
			KeyRetry:   FlagRetry,
			KeyFacts:   FlagFacts,
			KeyVerbose: FlagVerbose,
		}
		for key, name := range bindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
		if f := flags.Lookup(FlagConfig); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := cfg.Mode(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Mode parses the configured display mode.
func (c Config) Mode() (display.Mode, error) {
	return display.ParseMode(c.Display)
}
