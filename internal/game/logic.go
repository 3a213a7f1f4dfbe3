package game

import (
	"github.com/castlewood/arcadia/internal/backend"
	"github.com/castlewood/arcadia/internal/event"
	"github.com/castlewood/arcadia/internal/event/events"
	"github.com/castlewood/arcadia/internal/log"
)

// playerSpeed is the player's movement speed in cells per second.
const playerSpeed = 25.0

// projectileSpeed is the upward speed of a fired projectile.
const projectileSpeed = 40.0

// LogicSystem owns the entities and converts semantic input events into
// motion. It registers its listeners during Initialize and removes them in
// Destroy.
type LogicSystem struct {
	log      *log.Logger
	events   *event.System
	entities []*Entity
	nextID   EntityID

	inputSub event.SubscriptionID

	// bounds clamps player movement to the playfield.
	boundsW, boundsH float64
}

// NewLogicSystem creates the logic system. Entities from the scene are added
// with AddEntity before the loop starts.
func NewLogicSystem(logger *log.Logger, events *event.System, boundsW, boundsH int) *LogicSystem {
	if logger == nil {
		logger = log.Discard()
	}
	return &LogicSystem{
		log:     logger,
		events:  events,
		boundsW: float64(boundsW),
		boundsH: float64(boundsH),
	}
}

// AddEntity adds an entity to the simulation.
func (s *LogicSystem) AddEntity(e *Entity) {
	if e.ID == 0 {
		s.nextID++
		e.ID = s.nextID
	} else if e.ID > s.nextID {
		s.nextID = e.ID
	}
	s.entities = append(s.entities, e)
}

// Entities returns the live entities.
func (s *LogicSystem) Entities() []*Entity {
	return s.entities
}

// Initialize registers the input listener.
func (s *LogicSystem) Initialize() error {
	s.inputSub = s.events.Register(events.TypeInputAction, s.onInput)
	s.log.Debug("logic initialized with %d entities", len(s.entities))
	return nil
}

// Update integrates motion and retires off-screen projectiles.
func (s *LogicSystem) Update(dtMillis float64) {
	dt := dtMillis / 1000.0

	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Physics != nil && e.Physics.Enabled {
			e.Transform.X += e.Transform.VX * dt
			e.Transform.Y += e.Transform.VY * dt
		}

		if e.Player {
			s.clampToBounds(e)
		}

		if e.Render != nil && e.Render.Layer == LayerProjectile && e.Transform.Y+e.Transform.H < 0 {
			s.log.Debug("projectile %d left the screen", e.ID)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = kept
}

// Destroy unregisters the input listener.
func (s *LogicSystem) Destroy() {
	s.events.Unregister(events.TypeInputAction, s.inputSub)
}

// onInput translates input transition events into player velocity changes.
func (s *LogicSystem) onInput(evt *event.Event) {
	in, ok := evt.Payload.(events.InputPayload)
	if !ok {
		s.log.Warn("input event with unexpected payload %T", evt.Payload)
		return
	}

	player := s.player()
	if player == nil {
		return
	}

	starting := in.State == events.ActionStart
	switch in.Action {
	case events.ActionMoveUp:
		player.Transform.VY = axisVelocity(starting, -playerSpeed, player.Transform.VY)
	case events.ActionMoveDown:
		player.Transform.VY = axisVelocity(starting, playerSpeed, player.Transform.VY)
	case events.ActionMoveLeft:
		player.Transform.VX = axisVelocity(starting, -playerSpeed, player.Transform.VX)
	case events.ActionMoveRight:
		player.Transform.VX = axisVelocity(starting, playerSpeed, player.Transform.VX)
	case events.ActionFire:
		if starting {
			s.fire(player)
		}
	}
}

// axisVelocity applies a start/stop edge to one axis. A stop only clears the
// velocity if this control set it, so opposing-key sequences behave sanely.
func axisVelocity(starting bool, speed, current float64) float64 {
	if starting {
		return speed
	}
	if (speed < 0) == (current < 0) && current != 0 {
		return 0
	}
	return current
}

// fire spawns a projectile above the player.
func (s *LogicSystem) fire(player *Entity) {
	proj := &Entity{
		Transform: Transform{
			X: player.Transform.X + player.Transform.W/2,
			Y: player.Transform.Y - 1,
			W: 1, H: 1,
			VY: -projectileSpeed,
		},
		Render:  &RectRender{Layer: LayerProjectile, Color: player.renderColor(), Ch: '|'},
		Physics: &Physics{Enabled: true},
	}
	s.AddEntity(proj)
	s.log.Debug("fired projectile %d", proj.ID)
}

func (s *LogicSystem) player() *Entity {
	for _, e := range s.entities {
		if e.Player {
			return e
		}
	}
	return nil
}

func (s *LogicSystem) clampToBounds(e *Entity) {
	if s.boundsW <= 0 || s.boundsH <= 0 {
		return
	}
	if e.Transform.X < 0 {
		e.Transform.X = 0
	}
	if e.Transform.Y < 0 {
		e.Transform.Y = 0
	}
	if e.Transform.X+e.Transform.W > s.boundsW {
		e.Transform.X = s.boundsW - e.Transform.W
	}
	if e.Transform.Y+e.Transform.H > s.boundsH {
		e.Transform.Y = s.boundsH - e.Transform.H
	}
}

func (e *Entity) renderColor() backend.Color {
	if e.Render != nil {
		return e.Render.Color
	}
	return backend.ColorDefault
}
