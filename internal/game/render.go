package game

import (
	"sort"

	"github.com/castlewood/arcadia/internal/backend"
	"github.com/castlewood/arcadia/internal/log"
)

// RenderSystem draws the entities to the platform backend, layer by layer.
type RenderSystem struct {
	log     *log.Logger
	backend backend.Backend
	logic   *LogicSystem
}

// NewRenderSystem creates the render system. It reads the live entity list
// from logic each frame.
func NewRenderSystem(logger *log.Logger, b backend.Backend, logic *LogicSystem) *RenderSystem {
	if logger == nil {
		logger = log.Discard()
	}
	return &RenderSystem{log: logger, backend: b, logic: logic}
}

// Initialize acquires the drawing surface.
func (s *RenderSystem) Initialize() error {
	return s.backend.Init()
}

// Update draws one frame.
func (s *RenderSystem) Update(float64) {
	s.backend.Clear()

	entities := make([]*Entity, 0, len(s.logic.Entities()))
	for _, e := range s.logic.Entities() {
		if e.Render != nil {
			entities = append(entities, e)
		}
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Render.Layer < entities[j].Render.Layer
	})

	for _, e := range entities {
		s.drawRect(e)
	}
	s.backend.Show()
}

// Destroy releases the drawing surface.
func (s *RenderSystem) Destroy() {
	s.backend.Shutdown()
}

func (s *RenderSystem) drawRect(e *Entity) {
	ch := e.Render.Ch
	if ch == 0 {
		ch = ' '
	}
	style := backend.Style{FG: backend.ColorWhite, BG: e.Render.Color}

	r := backend.Rect{
		Left:   int(e.Transform.X),
		Top:    int(e.Transform.Y),
		Right:  int(e.Transform.X + e.Transform.W),
		Bottom: int(e.Transform.Y + e.Transform.H),
	}
	if r.Right <= r.Left {
		r.Right = r.Left + 1
	}
	if r.Bottom <= r.Top {
		r.Bottom = r.Top + 1
	}
	s.backend.Fill(r, ch, style)
}
