package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	engineinput "pathrecall/pkg/engine/input"
	"pathrecall/pkg/game/devtools"
)

// specialKeys maps non-printable keys to the raw codes used by the bindings
var specialKeys = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "arrow_up",
	ebiten.KeyArrowDown:   "arrow_down",
	ebiten.KeyArrowRight:  "arrow_right",
	ebiten.KeyArrowLeft:   "arrow_left",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeySpace:       "space",
	ebiten.KeyEscape:      "escape",
	ebiten.KeyF12:         "f12",
}

// keyCode returns the raw code for k, or "" for keys nothing can bind to
func keyCode(k ebiten.Key, ctrl bool) string {
	if code, ok := specialKeys[k]; ok {
		return code
	}
	name := k.String()
	name = strings.TrimPrefix(name, "Digit")
	if len(name) != 1 {
		return ""
	}
	name = strings.ToLower(name)
	if ctrl {
		if name == "c" {
			return "ctrl_c"
		}
		return ""
	}
	return name
}

// Update handles input (Ebiten interface). Time-based transitions are
// driven from Draw so they line up with what is painted.
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Info().Int("width", w).Int("height", h).Msg("main window opened")
	}

	now := e.clock()
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		code := keyCode(k, ctrl)
		if code == "" {
			continue
		}
		raw := engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now}
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))

		switch intent.Action {
		case engineinput.ActionNone:
		case engineinput.ActionQuit:
			return ebiten.Termination
		case engineinput.ActionScreenshot:
			e.saveScreenshot()
		default:
			e.driver.Engine().ProcessIntent(intent, now)
		}
	}
	return nil
}

func (e *EbitenRenderer) saveScreenshot() {
	path, err := devtools.SaveScreenshotSVG(e.driver.Engine().Session(), e.icons)
	if err != nil {
		log.Error().Err(err).Msg("screenshot failed")
		return
	}
	log.Info().Str("path", path).Msg("screenshot saved")
}
