// Package events defines the well-known event types and payloads exchanged
// between Arcadia subsystems.
package events

import "github.com/castlewood/arcadia/internal/event"

// Well-known event types.
const (
	// TypeInputAction carries an InputPayload describing a logical control
	// transition.
	TypeInputAction event.Type = "input.action"

	// TypeConfigChanged is queued when the configuration file changes on
	// disk. Payload is the config file path as a string.
	TypeConfigChanged event.Type = "config.changed"
)

// Action is a logical game control.
type Action int

const (
	ActionMoveUp Action = iota
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFire
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "move-up"
	case ActionMoveDown:
		return "move-down"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionFire:
		return "fire"
	default:
		return "unknown"
	}
}

// ActionState is the transition edge of a control.
type ActionState int

const (
	// ActionStart marks the press edge of a control.
	ActionStart ActionState = iota
	// ActionStop marks the release edge. Pulse controls (fire) never emit it.
	ActionStop
)

// String returns a human-readable state name.
func (s ActionState) String() string {
	switch s {
	case ActionStart:
		return "start"
	case ActionStop:
		return "stop"
	default:
		return "unknown"
	}
}

// InputPayload is the payload of a TypeInputAction event.
type InputPayload struct {
	Action Action
	State  ActionState
}

// NewInputAction builds an input action event.
func NewInputAction(action Action, state ActionState) *event.Event {
	return event.New(
		TypeInputAction,
		action.String()+"-"+state.String(),
		InputPayload{Action: action, State: state},
		"input",
	)
}
