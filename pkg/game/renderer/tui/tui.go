// Package tui provides a terminal backend that draws the grid with
// truecolor character cells.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	gcolor "github.com/gookit/color"
	"github.com/rs/zerolog/log"

	"pathrecall/pkg/engine/input"
	"pathrecall/pkg/engine/terminal"
	"pathrecall/pkg/game/devtools"
	"pathrecall/pkg/game/gameplay"
	"pathrecall/pkg/game/renderer"
)

// FrameInterval is the redraw period (about 30 fps)
const FrameInterval = 33 * time.Millisecond

const (
	escHome       = "\x1b[H"
	escClear      = "\x1b[2J"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
)

// TUIRenderer is the terminal-based backend. Key presses and frame ticks
// are handled in one select loop, so the session is only touched from
// the goroutine running Run.
type TUIRenderer struct {
	driver *renderer.Driver
	canvas *Canvas
	timer  *renderer.TimerBar
	icons  renderer.IconSource

	in    io.Reader
	out   io.Writer
	raw   bool
	clock func() time.Time

	screenshot func() (string, error)
}

// Option configures a TUIRenderer
type Option func(*TUIRenderer)

// WithIO replaces stdin/stdout. The terminal is left in its current mode.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(t *TUIRenderer) {
		t.in = in
		t.out = out
		t.raw = false
	}
}

// WithClock replaces time.Now
func WithClock(clock func() time.Time) Option {
	return func(t *TUIRenderer) { t.clock = clock }
}

// New creates a terminal backend for engine. icons may be nil.
func New(engine *gameplay.Engine, icons renderer.IconSource, opts ...Option) *TUIRenderer {
	t := &TUIRenderer{
		canvas: NewCanvas(),
		timer:  renderer.NewTimerBar(),
		icons:  icons,
		in:     os.Stdin,
		out:    os.Stdout,
		raw:    true,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.driver = renderer.NewDriver(engine, t.canvas, icons, t.timer)
	t.screenshot = func() (string, error) {
		return devtools.SaveScreenshotSVG(engine.Session(), icons)
	}
	return t
}

// Run draws frames and handles keys until the player quits, the input
// ends or ctx is cancelled.
func (t *TUIRenderer) Run(ctx context.Context) error {
	if t.raw {
		restore, err := terminal.EnterRaw()
		if err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		defer restore()

		if w, h := terminal.GetSize(); w < surfaceCols+1 || h < surfaceRows+3 {
			log.Warn().Int("width", w).Int("height", h).Msg("terminal is smaller than the board")
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan string)
	readErr := make(chan error, 1)
	go readKeys(ctx, input.NewKeyReader(t.in), keys, readErr)
	defer t.closeInput()

	fmt.Fprint(t.out, escHideCursor+escClear)
	defer fmt.Fprint(t.out, escShowCursor+"\r\n")

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	t.Frame()
	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read key: %w", err)

		case code := <-keys:
			if t.HandleKey(code) {
				return nil
			}

		case <-ticker.C:
			t.Frame()
		}
	}
}

// closeInput unblocks readKeys when the input can be closed. A read on
// os.Stdin cannot be interrupted; that goroutine ends with the process.
func (t *TUIRenderer) closeInput() {
	if t.in == io.Reader(os.Stdin) {
		return
	}
	if c, ok := t.in.(io.Closer); ok {
		c.Close()
	}
}

// readKeys publishes decoded key codes until the reader fails or ctx ends
func readKeys(ctx context.Context, kr *input.KeyReader, keys chan<- string, errs chan<- error) {
	for {
		code, err := kr.ReadKey()
		if err != nil {
			errs <- err
			return
		}
		if code == "" {
			continue
		}
		select {
		case keys <- code:
		case <-ctx.Done():
			return
		}
	}
}

// HandleKey applies one raw key code. It reports true when the player quits.
func (t *TUIRenderer) HandleKey(code string) bool {
	now := t.clock()
	raw := input.RawInput{Device: input.DeviceTerminal, Code: code, Timestamp: now}
	intent := input.MapToIntent(input.NewDebouncedInput(raw))

	switch intent.Action {
	case input.ActionNone:
	case input.ActionQuit:
		return true
	case input.ActionScreenshot:
		path, err := t.screenshot()
		if err != nil {
			log.Error().Err(err).Msg("screenshot failed")
			break
		}
		log.Info().Str("path", path).Msg("screenshot saved")
	default:
		t.driver.Engine().ProcessIntent(intent, now)
	}
	return false
}

// Frame runs one driver frame and writes it to the output
func (t *TUIRenderer) Frame() {
	t.driver.Frame(t.clock())

	var sb strings.Builder
	sb.WriteString(escHome)
	if _, err := t.canvas.WriteTo(&sb); err != nil {
		log.Error().Err(err).Msg("frame")
		return
	}
	sb.WriteString(t.timerLine())
	sb.WriteString("\r\n")
	sb.WriteString(renderer.StatusLine(t.driver.Engine().Session()))
	sb.WriteString("\x1b[K\r\n")

	if _, err := io.WriteString(t.out, sb.String()); err != nil {
		log.Error().Err(err).Msg("write frame")
	}
}

// timerLine draws the remaining budget as a bar as wide as the board
func (t *TUIRenderer) timerLine() string {
	width := surfaceCols + 1
	filled := int(t.timer.Fraction()*float64(width) + 0.5)

	fill := gcolor.RGB(renderer.ColorPlayer.R, renderer.ColorPlayer.G, renderer.ColorPlayer.B)
	if t.timer.Fraction() < 0.25 {
		fill = gcolor.RGB(renderer.ColorLost.R, renderer.ColorLost.G, renderer.ColorLost.B)
	}
	return fill.Sprint(strings.Repeat("█", filled)) + strings.Repeat(" ", width-filled)
}
