package game

import (
	"testing"

	"github.com/castlewood/arcadia/internal/event"
	"github.com/castlewood/arcadia/internal/event/events"
	"github.com/castlewood/arcadia/internal/log"
)

func newTestLogic(t *testing.T) (*LogicSystem, *event.System) {
	t.Helper()
	sys := event.NewSystem(log.Discard())
	logic := NewLogicSystem(log.Discard(), sys, 80, 24)
	logic.AddEntity(&Entity{
		Transform: Transform{X: 40, Y: 12, W: 2, H: 1},
		Physics:   &Physics{Enabled: true},
		Render:    &RectRender{Layer: LayerPlayer},
		Player:    true,
	})
	if err := logic.Initialize(); err != nil {
		t.Fatal(err)
	}
	return logic, sys
}

func queueInput(sys *event.System, action events.Action, state events.ActionState) {
	sys.Queue(events.NewInputAction(action, state))
}

func TestLogic_MoveStartSetsVelocity(t *testing.T) {
	logic, sys := newTestLogic(t)

	queueInput(sys, events.ActionMoveRight, events.ActionStart)
	sys.Update(1000)

	player := logic.player()
	if player.Transform.VX <= 0 {
		t.Errorf("VX = %v after move-right start, want > 0", player.Transform.VX)
	}

	queueInput(sys, events.ActionMoveRight, events.ActionStop)
	sys.Update(1000)

	if player.Transform.VX != 0 {
		t.Errorf("VX = %v after move-right stop, want 0", player.Transform.VX)
	}
}

func TestLogic_StopOnlyClearsOwnAxisDirection(t *testing.T) {
	logic, sys := newTestLogic(t)
	player := logic.player()

	// Hold left, then press right: right wins. Releasing left must not kill
	// the rightward motion.
	queueInput(sys, events.ActionMoveLeft, events.ActionStart)
	sys.Update(1000)
	queueInput(sys, events.ActionMoveRight, events.ActionStart)
	sys.Update(1000)
	queueInput(sys, events.ActionMoveLeft, events.ActionStop)
	sys.Update(1000)

	if player.Transform.VX <= 0 {
		t.Errorf("VX = %v, want rightward motion to survive left release", player.Transform.VX)
	}
}

func TestLogic_UpdateIntegratesMotion(t *testing.T) {
	logic, sys := newTestLogic(t)
	player := logic.player()
	startX := player.Transform.X

	queueInput(sys, events.ActionMoveRight, events.ActionStart)
	sys.Update(1000)

	logic.Update(100) // 100ms at playerSpeed cells/s
	if player.Transform.X <= startX {
		t.Errorf("X = %v after moving right for 100ms, want > %v", player.Transform.X, startX)
	}
}

func TestLogic_PlayerClampedToBounds(t *testing.T) {
	logic, sys := newTestLogic(t)
	player := logic.player()

	queueInput(sys, events.ActionMoveLeft, events.ActionStart)
	sys.Update(1000)

	// Integrate far longer than needed to hit the left edge.
	for i := 0; i < 100; i++ {
		logic.Update(1000)
	}

	if player.Transform.X != 0 {
		t.Errorf("X = %v after running into left edge, want 0", player.Transform.X)
	}
}

func TestLogic_FireSpawnsProjectile(t *testing.T) {
	logic, sys := newTestLogic(t)

	queueInput(sys, events.ActionFire, events.ActionStart)
	sys.Update(1000)

	if len(logic.Entities()) != 2 {
		t.Fatalf("entity count = %d after fire, want 2", len(logic.Entities()))
	}

	proj := logic.Entities()[1]
	if proj.Render.Layer != LayerProjectile {
		t.Errorf("spawned layer = %v, want projectile", proj.Render.Layer)
	}
	if proj.Transform.VY >= 0 {
		t.Errorf("projectile VY = %v, want upward (negative)", proj.Transform.VY)
	}
}

func TestLogic_ProjectileRetiredOffScreen(t *testing.T) {
	logic, sys := newTestLogic(t)

	queueInput(sys, events.ActionFire, events.ActionStart)
	sys.Update(1000)

	// Run the projectile well past the top edge.
	for i := 0; i < 50; i++ {
		logic.Update(1000)
	}

	for _, e := range logic.Entities() {
		if e.Render != nil && e.Render.Layer == LayerProjectile {
			t.Error("off-screen projectile not retired")
		}
	}
}

func TestLogic_DestroyUnregistersListener(t *testing.T) {
	logic, sys := newTestLogic(t)
	player := logic.player()

	logic.Destroy()

	queueInput(sys, events.ActionMoveRight, events.ActionStart)
	sys.Update(1000)

	if player.Transform.VX != 0 {
		t.Errorf("VX = %v after Destroy, want input ignored", player.Transform.VX)
	}
}

func TestLogic_AddEntityAssignsIDs(t *testing.T) {
	logic := NewLogicSystem(log.Discard(), event.NewSystem(log.Discard()), 80, 24)

	a := &Entity{}
	b := &Entity{}
	logic.AddEntity(a)
	logic.AddEntity(b)

	if a.ID == 0 || b.ID == 0 || a.ID == b.ID {
		t.Errorf("IDs = %d, %d, want distinct non-zero", a.ID, b.ID)
	}
}
