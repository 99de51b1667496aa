package engine

// Key is a logical key. The run loop maps window-system scancodes onto these;
// game code never sees raw key state, only per-tick edges.
type Key int

// KeyReturn is part of the polled key set but currently unused by any screen;
// it is reserved for confirm actions.
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyReturn
	KeySpace
	KeyEquals

	keyCount
)

// latch tracks one key across two consecutive ticks for edge detection.
type latch struct {
	prev bool
	curr bool
}

func (l *latch) set(down bool) {
	l.curr = down
}

func (l *latch) frontEdge() bool {
	return l.curr && !l.prev
}

func (l *latch) backEdge() bool {
	return l.prev && !l.curr
}

func (l *latch) tick() {
	l.prev = l.curr
}

// Input holds edge latches for the logical key set. Once per simulation tick
// the driver calls Set for each key, hands Input to the app, then calls Tick.
type Input struct {
	keys [keyCount]latch
}

func NewInput() *Input {
	return &Input{}
}

// Set records the current down state of a key.
func (in *Input) Set(key Key, down bool) {
	if key >= 0 && key < keyCount {
		in.keys[key].set(down)
	}
}

// Tick advances all latches, consuming this tick's edges.
func (in *Input) Tick() {
	for i := range in.keys {
		in.keys[i].tick()
	}
}

// FrontEdge reports whether the key became pressed this tick.
func (in *Input) FrontEdge(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return in.keys[key].frontEdge()
}

// BackEdge reports whether the key became released this tick.
func (in *Input) BackEdge(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return in.keys[key].backEdge()
}
