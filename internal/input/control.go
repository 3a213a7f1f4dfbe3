package input

import (
	"github.com/castlewood/arcadia/internal/backend"
	"github.com/castlewood/arcadia/internal/event/events"
)

// Control is a logical game control tracked by the translator.
type Control int

const (
	ControlUp Control = iota
	ControlDown
	ControlLeft
	ControlRight
	ControlFire

	controlCount
)

// String returns the config-file name of the control.
func (c Control) String() string {
	switch c {
	case ControlUp:
		return "up"
	case ControlDown:
		return "down"
	case ControlLeft:
		return "left"
	case ControlRight:
		return "right"
	case ControlFire:
		return "fire"
	default:
		return "unknown"
	}
}

// action maps the control to its semantic input action.
func (c Control) action() events.Action {
	switch c {
	case ControlUp:
		return events.ActionMoveUp
	case ControlDown:
		return events.ActionMoveDown
	case ControlLeft:
		return events.ActionMoveLeft
	case ControlRight:
		return events.ActionMoveRight
	default:
		return events.ActionFire
	}
}

// pulse reports whether the control emits only a start edge. Releasing a
// pulse control clears the held flag without producing a stop event.
func (c Control) pulse() bool {
	return c == ControlFire
}

// parseControl maps a config-file control name to a Control.
func parseControl(name string) (Control, bool) {
	switch name {
	case "up":
		return ControlUp, true
	case "down":
		return ControlDown, true
	case "left":
		return ControlLeft, true
	case "right":
		return ControlRight, true
	case "fire":
		return ControlFire, true
	default:
		return 0, false
	}
}

// Bindings maps raw keys to logical controls.
type Bindings map[backend.Key]Control

// DefaultBindings returns the arrows-plus-space layout.
func DefaultBindings() Bindings {
	return Bindings{
		backend.KeyUp:    ControlUp,
		backend.KeyDown:  ControlDown,
		backend.KeyLeft:  ControlLeft,
		backend.KeyRight: ControlRight,
		backend.KeySpace: ControlFire,
	}
}

// ParseBindings builds Bindings from config entries of the form
// control name -> key name. Unknown controls or keys are skipped; controls
// absent from cfg keep their default key.
func ParseBindings(cfg map[string]string) Bindings {
	b := DefaultBindings()
	for controlName, keyName := range cfg {
		control, ok := parseControl(controlName)
		if !ok {
			continue
		}
		key := backend.ParseKey(keyName)
		if key == backend.KeyNone {
			continue
		}
		for k, c := range b {
			if c == control {
				delete(b, k)
			}
		}
		b[key] = control
	}
	return b
}
