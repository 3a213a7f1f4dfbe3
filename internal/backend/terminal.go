package backend

import "github.com/gdamore/tcell/v2"

// Terminal implements Backend on a tcell screen.
//
// Terminals never report key releases, so every key event polled from a
// Terminal has Pressed set. Release edges are synthesized upstream by the
// input translator's hold timeout.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) HasEvent() bool {
	return t.screen.HasPendingEvent()
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	switch tev := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(tev)
	case *tcell.EventResize:
		w, h := tev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{Type: EventNone}
	}
}

// convertKeyEvent maps a tcell key event to a raw backend event. Escape and
// Ctrl-C are the terminal's close request.
func convertKeyEvent(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Event{Type: EventClose}
	case tcell.KeyUp:
		return Event{Type: EventKey, Key: KeyUp, Pressed: true}
	case tcell.KeyDown:
		return Event{Type: EventKey, Key: KeyDown, Pressed: true}
	case tcell.KeyLeft:
		return Event{Type: EventKey, Key: KeyLeft, Pressed: true}
	case tcell.KeyRight:
		return Event{Type: EventKey, Key: KeyRight, Pressed: true}
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return Event{Type: EventKey, Key: KeySpace, Pressed: true}
		}
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune(), Pressed: true}
	default:
		return Event{Type: EventNone}
	}
}

func (t *Terminal) SetCell(x, y int, ch rune, style Style) {
	t.screen.SetContent(x, y, ch, nil, convertStyle(style))
}

func (t *Terminal) Fill(r Rect, ch rune, style Style) {
	tstyle := convertStyle(style)
	width, height := t.screen.Size()

	for y := r.Top; y < r.Bottom && y < height; y++ {
		for x := r.Left; x < r.Right && x < width; x++ {
			if x >= 0 && y >= 0 {
				t.screen.SetContent(x, y, ch, nil, tstyle)
			}
		}
	}
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func convertStyle(s Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(convertColor(s.FG)).
		Background(convertColor(s.BG))
}

func convertColor(c Color) tcell.Color {
	switch c {
	case ColorBlack:
		return tcell.ColorBlack
	case ColorRed:
		return tcell.ColorRed
	case ColorGreen:
		return tcell.ColorGreen
	case ColorYellow:
		return tcell.ColorYellow
	case ColorBlue:
		return tcell.ColorBlue
	case ColorWhite:
		return tcell.ColorWhite
	default:
		return tcell.ColorDefault
	}
}
