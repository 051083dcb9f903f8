package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"scopa-game/internal/shared"
)

// Config holds the runtime settings of the scopa driver.
type Config struct {
	WinThreshold int
	SwitchDelay  time.Duration
	LogLevel     slog.Level
	FirstColor   shared.Color
	PurpleName   string
	GreenName    string
	JSON         bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WinThreshold: 20,
		SwitchDelay:  1500 * time.Millisecond,
		LogLevel:     slog.LevelInfo,
		FirstColor:   shared.Purple,
		PurpleName:   "Purple",
		GreenName:    "Green",
	}
}

// Load reads the optional .env file at path, then the environment.
// A missing .env file is not an error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from an environment lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	get := func(key string) string { return strings.TrimSpace(getenv(key)) }

	if v := get("SCOPA_WIN_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid SCOPA_WIN_THRESHOLD %q", v)
		}
		cfg.WinThreshold = n
	}
	if v := get("SCOPA_SWITCH_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid SCOPA_SWITCH_DELAY %q", v)
		}
		cfg.SwitchDelay = d
	}
	if v := get("SCOPA_LOG_LEVEL"); v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = lvl
	}
	if v := get("SCOPA_FIRST_COLOR"); v != "" {
		c, err := ParseColor(v)
		if err != nil {
			return Config{}, err
		}
		cfg.FirstColor = c
	}
	if v := get("SCOPA_PURPLE_NAME"); v != "" {
		cfg.PurpleName = v
	}
	if v := get("SCOPA_GREEN_NAME"); v != "" {
		cfg.GreenName = v
	}
	return cfg, nil
}

// RegisterFlags binds command-line overrides to cfg; parse the set afterwards.
func (cfg *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&cfg.WinThreshold, "win-threshold", cfg.WinThreshold, "running score a side must exceed to win")
	flags.DurationVar(&cfg.SwitchDelay, "switch-delay", cfg.SwitchDelay, "pause before handing over to the other player")
	flags.StringVar(&cfg.PurpleName, "purple", cfg.PurpleName, "display name for Purple")
	flags.StringVar(&cfg.GreenName, "green", cfg.GreenName, "display name for Green")
	flags.BoolVar(&cfg.JSON, "json", cfg.JSON, "write a JSON-lines transcript instead of the terminal UI")
	flags.Var(&levelFlag{&cfg.LogLevel}, "log-level", "log level (debug, info, warn, error)")
	flags.Var(&colorFlag{&cfg.FirstColor}, "first", "color that plays first in the opening match (purple, green)")
}

// ParseLevel accepts debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}

// ParseColor accepts purple or green in any case.
func ParseColor(s string) (shared.Color, error) {
	switch strings.ToLower(s) {
	case "purple":
		return shared.Purple, nil
	case "green":
		return shared.Green, nil
	default:
		return 0, fmt.Errorf("invalid color %q", s)
	}
}

type levelFlag struct{ l *slog.Level }

func (f *levelFlag) String() string {
	if f.l == nil {
		return ""
	}
	return strings.ToLower(f.l.String())
}

func (f *levelFlag) Set(s string) error {
	lvl, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*f.l = lvl
	return nil
}

func (f *levelFlag) Type() string { return "level" }

type colorFlag struct{ c *shared.Color }

func (f *colorFlag) String() string {
	if f.c == nil {
		return ""
	}
	return strings.ToLower(f.c.String())
}

func (f *colorFlag) Set(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	*f.c = c
	return nil
}

func (f *colorFlag) Type() string { return "color" }
