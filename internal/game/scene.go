package game

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/castlewood/arcadia/internal/backend"
)

// LoadScene parses a JSON scene file into entities. The expected shape is
//
//	{"entities": [
//	  {"x": 40, "y": 12, "w": 5, "h": 3,
//	   "layer": "player", "color": "blue", "ch": "#",
//	   "player": true, "physics": true, "gravity": false}
//	]}
//
// Missing fields fall back to zero values; unknown layer and color names map
// to background/default.
func LoadScene(path string) ([]*Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("scene file %s is not valid JSON", path)
	}

	var entities []*Entity
	gjson.GetBytes(data, "entities").ForEach(func(_, def gjson.Result) bool {
		e := &Entity{
			ID: EntityID(def.Get("id").Uint()),
			Transform: Transform{
				X: def.Get("x").Float(),
				Y: def.Get("y").Float(),
				W: def.Get("w").Float(),
				H: def.Get("h").Float(),
			},
			Player: def.Get("player").Bool(),
		}

		e.Render = &RectRender{
			Layer: ParseLayer(def.Get("layer").String()),
			Color: backend.ParseColor(def.Get("color").String()),
		}
		if ch := def.Get("ch").String(); ch != "" {
			e.Render.Ch = []rune(ch)[0]
		}

		if def.Get("physics").Bool() {
			e.Physics = &Physics{
				Enabled: true,
				Gravity: def.Get("gravity").Bool(),
			}
		}

		entities = append(entities, e)
		return true
	})

	if len(entities) == 0 {
		return nil, fmt.Errorf("scene file %s defines no entities", path)
	}
	return entities, nil
}

// DefaultScene returns the built-in scene: a controllable player block and a
// background bar, sized for an 80x24 surface.
func DefaultScene() []*Entity {
	return []*Entity{
		{
			ID:        1,
			Transform: Transform{X: 38, Y: 18, W: 5, H: 2},
			Render:    &RectRender{Layer: LayerPlayer, Color: backend.ColorBlue},
			Physics:   &Physics{Enabled: true},
			Player:    true,
		},
		{
			ID:        2,
			Transform: Transform{X: 0, Y: 0, W: 80, H: 1},
			Render:    &RectRender{Layer: LayerBackground, Color: backend.ColorGreen},
		},
	}
}
