// Package config turns command-line flags and FORMATTING_ROTOR_* environment
// variables into the runtime configuration. Flags win over the environment.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/formatting-rotor/internal/app"
	"github.com/atomicstack/formatting-rotor/internal/settings"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const envPrefix = "FORMATTING_ROTOR_"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := newEnvironment(environ)

	fs := flag.NewFlagSet("formatting-rotor", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	var cfg Config
	a := &cfg.App
	fs.StringVar(&a.StorePath, "store", env.stringOr("STORE", ""), "path to the settings store (defaults under the user config directory)")
	fs.StringVar(&a.StoreKind, "store-kind", env.stringOr("STORE_KIND", ""), "settings backend: sqlite, json or memory (empty picks by file extension)")
	fs.StringVar(&a.CatalogPath, "catalog", env.stringOr("CATALOG", ""), "path to a YAML catalog definition")
	fs.IntVar(&a.Width, "width", env.intOr("WIDTH", 0), "viewport width in cells (0 follows the terminal)")
	fs.IntVar(&a.Height, "height", env.intOr("HEIGHT", 0), "viewport height in rows (0 follows the terminal)")
	fs.BoolVar(&a.ShowFooter, "footer", env.boolOr("FOOTER", false), "show the key hint row")
	fs.BoolVar(&a.HighContrast, "high-contrast", env.boolOr("HIGH_CONTRAST", false), "use the high contrast colour scheme")
	fs.BoolVar(&a.Verbose, "verbose", env.boolOr("VERBOSE", false), "report saved settings on exit")
	fs.BoolVar(&cfg.Logging.Trace, "trace", env.boolOr("TRACE", false), "write JSON trace entries to the log file")
	fs.StringVar(&cfg.Logging.FilePath, "log-file", env.stringOr("LOG_FILE", ""), "path to the log file (defaults under the user cache directory)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if a.Width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}

	a.StoreKind = strings.ToLower(strings.TrimSpace(a.StoreKind))
	a.Command = append([]string(nil), fs.Args()...)
	cfg.Args = append([]string(nil), args...)
	cfg.Flags = make(map[string]string)
	fs.VisitAll(func(f *flag.Flag) {
		cfg.Flags[f.Name] = f.Value.String()
	})
	return cfg, nil
}

// environment holds the FORMATTING_ROTOR_* variables with the prefix removed.
// Malformed values fall back to the flag default.
type environment map[string]string

func newEnvironment(environ []string) environment {
	env := make(environment)
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) {
			continue
		}
		env[strings.TrimPrefix(key, envPrefix)] = value
	}
	return env
}

func (e environment) stringOr(key, fallback string) string {
	if v, ok := e[key]; ok {
		return v
	}
	return fallback
}

func (e environment) intOr(key string, fallback int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(e[key])); err == nil {
		return n
	}
	return fallback
}

func (e environment) boolOr(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(strings.TrimSpace(e[key])); err == nil {
		return b
	}
	return fallback
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects store kinds the settings package cannot open.
func Validate(cfg Config) error {
	switch cfg.App.StoreKind {
	case "", settings.BackendSQLite, settings.BackendJSON, settings.BackendMemory:
		return nil
	default:
		return fmt.Errorf("unknown store kind %q (want sqlite, json or memory)", cfg.App.StoreKind)
	}
}
