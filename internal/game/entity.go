// Package game holds the gameplay collaborators of the engine core: the
// entity model, the logic system that reacts to input events, a null physics
// system, and the terminal render system.
package game

import "github.com/castlewood/arcadia/internal/backend"

// EntityID identifies an entity within a scene.
type EntityID uint32

// Layer orders drawing; lower layers render first.
type Layer int

const (
	LayerBackground Layer = iota
	LayerPlayer
	LayerProjectile
)

// ParseLayer maps a scene-file layer name to a Layer.
func ParseLayer(name string) Layer {
	switch name {
	case "player":
		return LayerPlayer
	case "projectile":
		return LayerProjectile
	default:
		return LayerBackground
	}
}

// Transform is an entity's position, size, and velocity in cell units.
// Velocities are cells per second.
type Transform struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// RectRender draws the entity as a filled rectangle.
type RectRender struct {
	Layer Layer
	Color backend.Color
	Ch    rune
}

// Physics marks the entity for movement integration.
type Physics struct {
	Enabled bool
	Gravity bool
}

// Entity is a game object composed of optional components.
type Entity struct {
	ID        EntityID
	Transform Transform
	Render    *RectRender
	Physics   *Physics

	// Player marks the entity driven by input events.
	Player bool
}
