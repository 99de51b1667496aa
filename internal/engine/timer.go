package engine

// Timer counts ticks after Start and triggers exactly once, on tick number
// period. A fresh timer is already expired; Stop forces it back to expired.
type Timer struct {
	period  int
	current int
}

func NewTimer(period int) *Timer {
	return &Timer{
		period:  period,
		current: period + 1,
	}
}

// Tick advances the counter. The counter saturates at period+1, so ticking an
// expired timer is a no-op.
func (t *Timer) Tick() {
	if t.current <= t.period {
		t.current++
	}
}

// Triggered reports whether the timer is on its trigger tick. True for exactly
// one tick per Start.
func (t *Timer) Triggered() bool {
	return t.current == t.period
}

func (t *Timer) notTriggeredYet() bool {
	return t.current < t.period
}

// Started reports whether the timer is running or on its trigger tick.
func (t *Timer) Started() bool {
	return t.notTriggeredYet() || t.Triggered()
}

func (t *Timer) Start() {
	t.current = 0
}

func (t *Timer) Stop() {
	t.current = t.period + 1
}

// BlinkAnimation flashes for a fixed number of half-cycles, then holds
// visible. Used to flash filled rows before they are removed; the final
// trigger is the cue to perform the clear.
type BlinkAnimation struct {
	timer         *Timer
	changesRemain int
	show          bool
}

const (
	blinkHalfCycle = 15
	blinkChanges   = 6
)

func NewBlinkAnimation() *BlinkAnimation {
	return &BlinkAnimation{
		timer: NewTimer(blinkHalfCycle),
		show:  true,
	}
}

func (b *BlinkAnimation) Start() {
	b.changesRemain = blinkChanges
	b.show = false
	b.timer.Start()
}

func (b *BlinkAnimation) Stop() {
	b.timer.Stop()
	b.changesRemain = 0
	b.show = true
}

func (b *BlinkAnimation) Tick() {
	b.timer.Tick()

	if b.timer.Triggered() {
		b.show = !b.show
		b.changesRemain--

		if b.changesRemain > 0 {
			b.timer.Start()
		} else {
			// End state is always visible.
			b.show = true
		}
	}
}

// Show reports whether blink-hidden content should be drawn this tick.
func (b *BlinkAnimation) Show() bool {
	return b.show
}

// Triggered is true exactly once, when the last half-cycle completes.
func (b *BlinkAnimation) Triggered() bool {
	return b.changesRemain == 0 && b.timer.Triggered()
}

func (b *BlinkAnimation) notTriggeredYet() bool {
	return b.changesRemain != 0 || b.timer.notTriggeredYet()
}

func (b *BlinkAnimation) Started() bool {
	return b.notTriggeredYet() || b.Triggered()
}

// DelayedRepeat models key autorepeat: one trigger after the initial delay,
// then periodic triggers every repeat period while running.
type DelayedRepeat struct {
	delay  *Timer
	repeat *Timer

	// Trigger state is latched per tick: restarting the repeat timer inside
	// Tick would otherwise clear it before the caller reads it.
	triggered bool
}

func NewDelayedRepeat(delay, repeat int) *DelayedRepeat {
	return &DelayedRepeat{
		delay:  NewTimer(delay),
		repeat: NewTimer(repeat),
	}
}

func (d *DelayedRepeat) Tick() {
	d.delay.Tick()
	d.repeat.Tick()

	d.triggered = d.delay.Triggered() || d.repeat.Triggered()
	if d.triggered {
		d.repeat.Start()
	}
}

func (d *DelayedRepeat) Start() {
	d.delay.Start()
	d.repeat.Stop()
	d.triggered = false
}

func (d *DelayedRepeat) Stop() {
	d.delay.Stop()
	d.repeat.Stop()
	d.triggered = false
}

func (d *DelayedRepeat) Triggered() bool {
	return d.triggered
}

func (d *DelayedRepeat) Started() bool {
	return d.delay.Started() || d.repeat.Started()
}
