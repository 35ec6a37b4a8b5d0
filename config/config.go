// Package config resolves runtime settings: built-in defaults, then FOLIO_*
// environment variables, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"slices"

	"github.com/caarlos0/env/v11"

	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/physics"
	"github.com/jagjit/cosmos-folio/route"
)

// EnvPrefix namespaces every environment variable
const EnvPrefix = "FOLIO_"

// Config is the resolved application configuration
type Config struct {
	FPS          int     `env:"FPS" envDefault:"60"`
	Sensitivity  float64 `env:"SENSITIVITY" envDefault:"0.1"`
	Friction     float64 `env:"FRICTION" envDefault:"0.92"`
	SnapEpsilon  float64 `env:"SNAP_EPSILON" envDefault:"0.5"`
	InitialBoost float64 `env:"INITIAL_BOOST" envDefault:"0"`
	Route        string  `env:"ROUTE" envDefault:"/"`
	Audio        bool    `env:"AUDIO" envDefault:"true"`
	HUD          bool    `env:"HUD" envDefault:"false"`
	Seed         uint64  `env:"SEED" envDefault:"0"` // 0 seeds from the clock
	Debug        bool    `env:"DEBUG" envDefault:"false"`
	LogLevel     string  `env:"LOG_LEVEL" envDefault:"info"`
	LogDir       string  `env:"LOG_DIR" envDefault:"logs"`
	ContentDir   string  `env:"CONTENT_DIR"` // optional per-route page overrides
}

// Default returns the built-in configuration without consulting the environment
func Default() Config {
	return Config{
		FPS:          parameter.FrameRate,
		Sensitivity:  parameter.Sensitivity,
		Friction:     parameter.Friction,
		SnapEpsilon:  parameter.SnapEpsilon,
		InitialBoost: parameter.InitialBoost,
		Route:        route.Home,
		Audio:        true,
		LogLevel:     "info",
		LogDir:       "logs",
	}
}

// ParseEnv fills target from FOLIO_* variables, unset variables take envDefault
func ParseEnv(target *Config) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load resolves env then flags from args (without the program name) and validates
func Load(name string, args []string) (Config, error) {
	cfg := Default()
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// bindFlags registers flags whose defaults are the env-resolved values
func (c *Config) bindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.FPS, "fps", c.FPS, "target frame rate")
	fs.Float64Var(&c.Sensitivity, "sensitivity", c.Sensitivity, "energy per unit of scroll delta")
	fs.Float64Var(&c.Friction, "friction", c.Friction, "per-frame energy decay factor")
	fs.Float64Var(&c.SnapEpsilon, "snap", c.SnapEpsilon, "energy snaps to zero below this")
	fs.Float64Var(&c.InitialBoost, "boost", c.InitialBoost, "energy present at start")
	fs.StringVar(&c.Route, "route", c.Route, "initial route")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "enable energy hum and glitch ticks")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the metrics overlay")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 uses the clock")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write logs to the log directory")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogDir, "log-dir", c.LogDir, "log directory")
	fs.StringVar(&c.ContentDir, "content", c.ContentDir, "directory of page text files")
}

// Validate checks every field, all problems are reported together
func (c Config) Validate() error {
	var errs []error
	if c.FPS < 1 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps must be in [1,240], got %d", c.FPS))
	}
	if err := c.Physics().Validate(); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains(route.Order, c.Route) {
		errs = append(errs, fmt.Errorf("unknown route %q", c.Route))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.LogDir == "" {
		errs = append(errs, errors.New("log dir must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Physics projects the physics tuning
func (c Config) Physics() physics.Params {
	return physics.Params{
		Sensitivity:  c.Sensitivity,
		Friction:     c.Friction,
		Epsilon:      c.SnapEpsilon,
		InitialBoost: c.InitialBoost,
	}
}

// Level parses LogLevel
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
