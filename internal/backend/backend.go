// Package backend abstracts the platform layer: a pollable source of raw
// input and window signals plus a cell-addressed drawing surface. The
// Terminal implementation runs on tcell; Memory is a scriptable in-memory
// implementation for tests.
package backend

// EventType identifies the kind of a raw platform event.
type EventType int

const (
	EventNone EventType = iota
	// EventKey is a key transition. Terminals only report presses; Pressed
	// is false only for synthetic or test-scripted releases.
	EventKey
	// EventResize reports a new surface size.
	EventResize
	// EventClose is a request to shut down the window and loop.
	EventClose
)

// Key identifies a keyboard key.
type Key int

const (
	KeyNone Key = iota
	// KeyRune is a regular character; see the Rune field.
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
)

// String returns a human-readable key name.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySpace:
		return "space"
	case KeyEscape:
		return "escape"
	default:
		return "none"
	}
}

// ParseKey maps a config-file key name to a Key. Unknown names map to KeyNone.
func ParseKey(name string) Key {
	switch name {
	case "up":
		return KeyUp
	case "down":
		return KeyDown
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	case "space":
		return KeySpace
	case "escape":
		return KeyEscape
	default:
		return KeyNone
	}
}

// Event is a raw platform event.
type Event struct {
	Type EventType

	// Key event fields.
	Key     Key
	Rune    rune
	Pressed bool

	// Resize event fields.
	Width, Height int
}

// Color is a drawing color independent of the concrete backend.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
)

// ParseColor maps a scene-file color name to a Color.
func ParseColor(name string) Color {
	switch name {
	case "black":
		return ColorBlack
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "white":
		return ColorWhite
	default:
		return ColorDefault
	}
}

// Style is the appearance of a drawn cell.
type Style struct {
	FG Color
	BG Color
}

// Rect is a half-open cell rectangle: [Left, Right) x [Top, Bottom).
type Rect struct {
	Left, Top, Right, Bottom int
}

// Backend is the platform contract consumed by the input translator and the
// render system.
type Backend interface {
	// Init acquires the platform surface.
	Init() error

	// Shutdown releases the platform surface.
	Shutdown()

	// Size returns the surface size in cells.
	Size() (width, height int)

	// HasEvent reports whether PollEvent would return without blocking.
	HasEvent() bool

	// PollEvent returns the next raw event. Call only when HasEvent is true.
	PollEvent() Event

	// SetCell draws one cell.
	SetCell(x, y int, ch rune, style Style)

	// Fill draws ch over every cell of r, clipped to the surface.
	Fill(r Rect, ch rune, style Style)

	// Clear erases the surface.
	Clear()

	// Show makes all drawing since the last Show visible.
	Show()
}
