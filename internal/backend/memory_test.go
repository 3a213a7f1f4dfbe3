package backend

import "testing"

func TestMemory_EventScripting(t *testing.T) {
	m := NewMemory(80, 24)

	if m.HasEvent() {
		t.Error("fresh backend should have no events")
	}

	m.FeedKey(KeyUp, true)
	m.Feed(Event{Type: EventClose})

	if !m.HasEvent() {
		t.Fatal("expected pending events after Feed")
	}

	ev := m.PollEvent()
	if ev.Type != EventKey || ev.Key != KeyUp || !ev.Pressed {
		t.Errorf("first event = %+v, want key-up press", ev)
	}

	ev = m.PollEvent()
	if ev.Type != EventClose {
		t.Errorf("second event = %+v, want close", ev)
	}

	if m.HasEvent() {
		t.Error("events should be exhausted")
	}
	if ev := m.PollEvent(); ev.Type != EventNone {
		t.Errorf("poll on empty = %+v, want EventNone", ev)
	}
}

func TestMemory_Drawing(t *testing.T) {
	m := NewMemory(10, 5)

	style := Style{FG: ColorWhite, BG: ColorBlue}
	m.Fill(Rect{Left: 1, Top: 1, Right: 3, Bottom: 2}, '#', style)

	if m.CellCount() != 2 {
		t.Errorf("CellCount = %d, want 2", m.CellCount())
	}

	cell, ok := m.Cell(1, 1)
	if !ok {
		t.Fatal("cell (1,1) not drawn")
	}
	if cell.Ch != '#' || cell.Style != style {
		t.Errorf("cell = %+v", cell)
	}

	// Out-of-bounds drawing is clipped.
	m.SetCell(99, 99, 'x', style)
	if _, ok := m.Cell(99, 99); ok {
		t.Error("out-of-bounds cell should be clipped")
	}

	m.Clear()
	if m.CellCount() != 0 {
		t.Errorf("CellCount = %d after Clear, want 0", m.CellCount())
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"up", KeyUp},
		{"down", KeyDown},
		{"left", KeyLeft},
		{"right", KeyRight},
		{"space", KeySpace},
		{"escape", KeyEscape},
		{"bogus", KeyNone},
	}

	for _, tt := range tests {
		if got := ParseKey(tt.name); got != tt.want {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	if ParseColor("blue") != ColorBlue {
		t.Error("ParseColor(blue) != ColorBlue")
	}
	if ParseColor("bogus") != ColorDefault {
		t.Error("unknown color should map to default")
	}
}
