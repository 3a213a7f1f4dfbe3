package backend

// Memory is an in-memory Backend for tests. Raw events are scripted with
// Feed and drawing is recorded cell by cell.
type Memory struct {
	width, height int
	events        []Event
	cells         map[[2]int]MemoryCell
	showCount     int
	initialized   bool
}

// MemoryCell records one drawn cell.
type MemoryCell struct {
	Ch    rune
	Style Style
}

// NewMemory creates a memory backend with the given surface size.
func NewMemory(width, height int) *Memory {
	return &Memory{
		width:  width,
		height: height,
		cells:  make(map[[2]int]MemoryCell),
	}
}

// Feed appends raw events for subsequent polls.
func (m *Memory) Feed(events ...Event) {
	m.events = append(m.events, events...)
}

// FeedKey scripts a single key transition.
func (m *Memory) FeedKey(key Key, pressed bool) {
	m.Feed(Event{Type: EventKey, Key: key, Pressed: pressed})
}

func (m *Memory) Init() error {
	m.initialized = true
	return nil
}

func (m *Memory) Shutdown() {
	m.initialized = false
}

func (m *Memory) Size() (int, int) {
	return m.width, m.height
}

func (m *Memory) HasEvent() bool {
	return len(m.events) > 0
}

func (m *Memory) PollEvent() Event {
	if len(m.events) == 0 {
		return Event{Type: EventNone}
	}
	ev := m.events[0]
	m.events = m.events[1:]
	return ev
}

func (m *Memory) SetCell(x, y int, ch rune, style Style) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.cells[[2]int{x, y}] = MemoryCell{Ch: ch, Style: style}
}

func (m *Memory) Fill(r Rect, ch rune, style Style) {
	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x < r.Right; x++ {
			m.SetCell(x, y, ch, style)
		}
	}
}

func (m *Memory) Clear() {
	m.cells = make(map[[2]int]MemoryCell)
}

func (m *Memory) Show() {
	m.showCount++
}

// Cell returns the recorded cell at (x, y).
func (m *Memory) Cell(x, y int) (MemoryCell, bool) {
	c, ok := m.cells[[2]int{x, y}]
	return c, ok
}

// CellCount returns the number of drawn cells.
func (m *Memory) CellCount() int {
	return len(m.cells)
}

// ShowCount returns how many times Show has been called.
func (m *Memory) ShowCount() int {
	return m.showCount
}
