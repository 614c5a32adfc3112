package input

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zyedidia/generic/mapset"

	"pathrecall/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveRight
	ActionMoveLeft

	// Meta / UI
	ActionRestart
	ActionQuit
	ActionScreenshot
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// Direction returns the grid direction of a movement intent, or world.None.
func (i Intent) Direction() world.Direction {
	switch i.Action {
	case ActionMoveUp:
		return world.Up
	case ActionMoveDown:
		return world.Down
	case ActionMoveRight:
		return world.Right
	case ActionMoveLeft:
		return world.Left
	default:
		return world.None
	}
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "q").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Both backends only report key-down edges, so each RawInput is already
// debounced; the type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"k":           ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"j":           ActionMoveDown,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,
	"l":           ActionMoveRight,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"h":           ActionMoveLeft,

	// Restart after a lost round
	"r":     ActionRestart,
	"enter": ActionRestart,
	"space": ActionRestart,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	// Screenshot
	"p":   ActionScreenshot,
	"f12": ActionScreenshot,
}

// reserved codes can never be rebound: the arrows and the ways out.
var reserved = func() mapset.Set[string] {
	s := mapset.New[string]()
	for _, c := range []string{"arrow_up", "arrow_down", "arrow_left", "arrow_right", "escape", "ctrl_c"} {
		s.Put(c)
	}
	return s
}()

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveRight:
		return "Move Right"
	case ActionMoveLeft:
		return "Move Left"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "None"
	}
}

// actionKeys are the names accepted by ParseAction, e.g. in "up=i".
var actionKeys = map[string]Action{
	"up":         ActionMoveUp,
	"down":       ActionMoveDown,
	"right":      ActionMoveRight,
	"left":       ActionMoveLeft,
	"restart":    ActionRestart,
	"quit":       ActionQuit,
	"screenshot": ActionScreenshot,
}

// ParseAction looks up an action by its short name.
func ParseAction(name string) (Action, error) {
	act, ok := actionKeys[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return act, nil
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so listings don't shuffle between runs.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// Bind adds an extra code for the given action. Reserved codes are refused.
func Bind(action Action, code string) error {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return fmt.Errorf("empty key code for %s", ActionName(action))
	}
	if reserved.Has(code) {
		return fmt.Errorf("key %q is reserved", code)
	}
	bindings[code] = action
	return nil
}
