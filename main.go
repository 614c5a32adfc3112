// Command pathrecall is a memory game: a path of moves is shown on a 5x5
// grid for a moment, then the player has to walk it from memory before the
// time budget runs out.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"pathrecall/pkg/engine/input"
	"pathrecall/pkg/engine/logging"
	"pathrecall/pkg/game/assets"
	"pathrecall/pkg/game/config"
	"pathrecall/pkg/game/devtools"
	"pathrecall/pkg/game/gameplay"
	"pathrecall/pkg/game/level"
	"pathrecall/pkg/game/locale"
	ebitenrenderer "pathrecall/pkg/game/renderer/ebiten"
	"pathrecall/pkg/game/renderer/tui"
)

func main() {
	// A missing .env is fine; flags and the real environment still apply.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:   "pathrecall",
		Usage:  "memorize the path, then walk it before time runs out",
		Flags:  config.Flags(),
		Action: run,
		Commands: []*cli.Command{
			{
				Name:   "controls",
				Usage:  "list the key bindings, including --bind extras",
				Action: printControls,
			},
			{
				Name:   "levels",
				Usage:  "print the built-in levels",
				Action: printLevels,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("pathrecall: %v", err))
		os.Exit(1)
	}
}

// applyBindings registers the extra keys from the configuration
func applyBindings(cfg config.Config) error {
	bindings, err := cfg.ParseBindings()
	if err != nil {
		return err
	}
	for _, b := range bindings {
		if err := input.Bind(b.Action, b.Code); err != nil {
			return fmt.Errorf("bind %s: %w", input.ActionName(b.Action), err)
		}
	}
	return nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.FromCommand(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}
	config.Set(cfg)

	// The terminal renderer owns the screen, so it only logs to a file.
	closer, err := logging.SetupFile(cfg.LogFile, cfg.LogLevel, cfg.Renderer != config.RendererTUI)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := locale.Init(cfg.Locale); err != nil {
		return err
	}
	if err := applyBindings(cfg); err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().
		Str("renderer", cfg.Renderer).
		Int64("seed", seed).
		Dur("budget", cfg.Budget).
		Msg("starting")

	engine := gameplay.NewEngine(level.Default(),
		gameplay.WithRand(rand.New(rand.NewSource(seed))),
		gameplay.WithTiming(cfg.Timing()),
	)

	icons := assets.NewLoader(cfg.AssetDir, assets.DefaultSize)
	icons.Start()

	switch cfg.Renderer {
	case config.RendererTUI:
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := tui.New(engine, icons).Run(ctx); err != nil {
			return err
		}
	default:
		r, err := ebitenrenderer.New(engine, icons)
		if err != nil {
			return err
		}
		if err := r.Run(); err != nil {
			return err
		}
	}

	s := engine.Session()
	log.Info().Int("rounds", s.Rounds).Int("best_streak", s.BestStreak).Msg("goodbye")
	fmt.Println(fmt.Sprintf(gotext.Get("GOODBYE"), s.BestStreak))
	return nil
}

// controlOrder is the listing order for printControls
var controlOrder = []input.Action{
	input.ActionMoveUp,
	input.ActionMoveDown,
	input.ActionMoveLeft,
	input.ActionMoveRight,
	input.ActionRestart,
	input.ActionScreenshot,
	input.ActionQuit,
}

func printControls(ctx context.Context, cmd *cli.Command) error {
	cfg := config.FromCommand(cmd)
	if err := locale.Init(cfg.Locale); err != nil {
		return err
	}
	if err := applyBindings(cfg); err != nil {
		return err
	}
	return writeControls(os.Stdout)
}

func writeControls(w io.Writer) error {
	byAction := input.GetBindingsByAction()

	var sb strings.Builder
	sb.WriteString(color.Bold.Sprint(gotext.Get("CONTROLS")))
	sb.WriteString("\n")
	for _, act := range controlOrder {
		codes := strings.Join(byAction[act], ", ")
		if codes == "" {
			codes = "(unbound)"
		}
		fmt.Fprintf(&sb, "  %-12s %s\n", input.ActionName(act), color.Cyan.Sprint(codes))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func printLevels(ctx context.Context, cmd *cli.Command) error {
	return devtools.WriteCatalog(os.Stdout, level.Default())
}
