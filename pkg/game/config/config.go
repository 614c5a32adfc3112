// Package config holds the startup settings: defaults, the command-line
// flags (each backed by a PATHRECALL_* environment variable) and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"pathrecall/pkg/engine/input"
	"pathrecall/pkg/game/gameplay"
)

// Renderer names
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full set of startup options
type Config struct {
	Renderer string
	Seed     int64 // 0 seeds from the clock

	Reveal      time.Duration
	Celebration time.Duration
	Budget      time.Duration
	AutoRestart time.Duration // 0 waits for a restart key

	AssetDir      string
	ScreenshotDir string
	Locale        string
	LogLevel      string
	LogFile       string

	// Bindings are extra keys, each "action=key"
	Bindings []string
}

// Binding is one parsed extra key
type Binding struct {
	Action input.Action
	Code   string
}

// Default returns the stock configuration
func Default() Config {
	t := gameplay.DefaultTiming()
	return Config{
		Renderer:      RendererEbiten,
		Reveal:        t.Reveal,
		Celebration:   t.Celebration,
		Budget:        t.InitialBudget,
		AssetDir:      "imgs",
		ScreenshotDir: ".",
		Locale:        "en",
		LogLevel:      "info",
	}
}

func env(name string) cli.ValueSourceChain {
	return cli.EnvVars("PATHRECALL_" + name)
}

// Flags returns the command-line flags with their defaults
func Flags() []cli.Flag {
	d := Default()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "renderer",
			Value:   d.Renderer,
			Usage:   "display backend: ebiten or tui",
			Sources: env("RENDERER"),
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed for level selection (0 uses the clock)",
			Sources: env("SEED"),
		},
		&cli.DurationFlag{
			Name:    "reveal",
			Value:   d.Reveal,
			Usage:   "how long the path is shown",
			Sources: env("REVEAL"),
		},
		&cli.DurationFlag{
			Name:    "celebration",
			Value:   d.Celebration,
			Usage:   "how long the win screen stays up",
			Sources: env("CELEBRATION"),
		},
		&cli.DurationFlag{
			Name:    "budget",
			Value:   d.Budget,
			Usage:   "initial time to enter the path",
			Sources: env("BUDGET"),
		},
		&cli.DurationFlag{
			Name:    "auto-restart",
			Usage:   "start a new round this long after a loss (0 waits for a key)",
			Sources: env("AUTO_RESTART"),
		},
		&cli.StringFlag{
			Name:    "assets",
			Value:   d.AssetDir,
			Usage:   "directory with arrowUp.png, arrowDown.png, arrowLeft.png and arrowRight.png",
			Sources: env("ASSETS"),
		},
		&cli.StringFlag{
			Name:    "screenshot-dir",
			Value:   d.ScreenshotDir,
			Usage:   "directory screenshots are written to",
			Sources: env("SCREENSHOT_DIR"),
		},
		&cli.StringFlag{
			Name:    "locale",
			Value:   d.Locale,
			Usage:   "interface language",
			Sources: env("LOCALE"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   d.LogLevel,
			Usage:   "trace, debug, info, warn or error",
			Sources: env("LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "write logs to this file (the tui renderer discards logs otherwise)",
			Sources: env("LOG_FILE"),
		},
		&cli.StringSliceFlag{
			Name:    "bind",
			Usage:   "extra key for an action, e.g. up=i (repeatable)",
			Sources: env("BIND"),
		},
	}
}

// FromCommand reads the flag values of a parsed command
func FromCommand(cmd *cli.Command) Config {
	return Config{
		Renderer:      strings.ToLower(cmd.String("renderer")),
		Seed:          cmd.Int64("seed"),
		Reveal:        cmd.Duration("reveal"),
		Celebration:   cmd.Duration("celebration"),
		Budget:        cmd.Duration("budget"),
		AutoRestart:   cmd.Duration("auto-restart"),
		AssetDir:      cmd.String("assets"),
		ScreenshotDir: cmd.String("screenshot-dir"),
		Locale:        cmd.String("locale"),
		LogLevel:      cmd.String("log-level"),
		LogFile:       cmd.String("log-file"),
		Bindings:      cmd.StringSlice("bind"),
	}
}

// Validate checks every field and reports the first problem found
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererEbiten, RendererTUI:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	}

	for _, d := range []struct {
		name string
		v    time.Duration
	}{
		{"reveal", c.Reveal},
		{"celebration", c.Celebration},
		{"budget", c.Budget},
	} {
		if d.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, d.name, d.v)
		}
	}
	if c.AutoRestart < 0 {
		return fmt.Errorf("%w: auto-restart must not be negative, got %v", ErrInvalidConfig, c.AutoRestart)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.ScreenshotDir == "" {
		return fmt.Errorf("%w: empty screenshot directory", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("%w: empty locale", ErrInvalidConfig)
	}
	if _, err := c.ParseBindings(); err != nil {
		return err
	}
	return nil
}

// ParseBindings splits each "action=key" entry
func (c Config) ParseBindings() ([]Binding, error) {
	var out []Binding
	for _, b := range c.Bindings {
		name, code, ok := strings.Cut(b, "=")
		if !ok || strings.TrimSpace(code) == "" {
			return nil, fmt.Errorf("%w: binding %q is not action=key", ErrInvalidConfig, b)
		}
		act, err := input.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		out = append(out, Binding{Action: act, Code: strings.ToLower(strings.TrimSpace(code))})
	}
	return out, nil
}

// Timing converts the durations for the game engine
func (c Config) Timing() gameplay.Timing {
	return gameplay.Timing{
		Reveal:        c.Reveal,
		Celebration:   c.Celebration,
		InitialBudget: c.Budget,
		AutoRestart:   c.AutoRestart,
	}
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Set installs c as the active configuration
func Set(c Config) {
	mu.Lock()
	defer mu.Unlock()
	current = c
}

// Current returns the active configuration
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
