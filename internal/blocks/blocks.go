package blocks

import (
	"strconv"

	"github.com/r0t0r-r0t0r/r0t0blocks/internal/engine"
)

// fallPeriods maps level (0..9) to the fall timer period in ticks.
var fallPeriods = [10]int{120, 60, 50, 40, 34, 28, 24, 16, 10, 8}

// State is the root game state: one round of play plus the active screen.
// It implements engine.App.
type State struct {
	// shared read-only shape catalog
	tetrominos [7]Tetromino

	// logic
	currFrame   int
	currTet     int
	nextTet     int
	field       *Field
	tetPos      engine.Point
	fallTimer   *engine.Timer
	filledAnim  *engine.BlinkAnimation
	rng         *Rand
	screen      screen
	popupScreen screen
	leftRepeat  *engine.DelayedRepeat
	rightRepeat *engine.DelayedRepeat
	downRepeat  *engine.DelayedRepeat
	score       int

	// visualisation
	fieldPos engine.Point

	// audio
	sounds chan<- engine.Sound
}

func spawnPos() engine.Point {
	return engine.Pt((FieldWidth-FrameSide)/2, -2)
}

func NewState(frames *[7][]Frame, seed uint64) *State {
	s := &State{
		field:       NewField(),
		fieldPos:    engine.Pt(3, 3),
		fallTimer:   engine.NewTimer(fallPeriod(level(0))),
		filledAnim:  engine.NewBlinkAnimation(),
		rng:         NewRand(seed),
		screen:      gameScreen{},
		leftRepeat:  engine.NewDelayedRepeat(repeatDelay, horizontalRepeat),
		rightRepeat: engine.NewDelayedRepeat(repeatDelay, horizontalRepeat),
		downRepeat:  engine.NewDelayedRepeat(repeatDelay, downRepeat),
	}
	for i := range s.tetrominos {
		s.tetrominos[i] = NewTetromino(frames[i])
	}

	s.screen.enter(s)
	return s
}

func (s *State) currentFrame() *Frame {
	return s.tetrominos[s.currTet].Frames[s.currFrame]
}

func (s *State) copyFrame() {
	s.field.CopyFrame(s.currentFrame(), s.tetPos)
}

// moveCollidingTetromino commits newPos if it is legal, or if the current
// position is already illegal: the escape rule keeps a badly placed piece
// from getting stuck. No movement while the line-clear flash runs.
func (s *State) moveCollidingTetromino(newPos engine.Point) {
	if s.filledAnim.Started() {
		return
	}
	if s.field.IsCollide(s.currentFrame(), s.tetPos) ||
		!s.field.IsCollide(s.currentFrame(), newPos) {
		s.tetPos = newPos
	}
}

func (s *State) nextFrame() int {
	return (s.currFrame + 1) % 4
}

// rotateCollidingTetromino advances the rotation slot under the same escape
// rule as movement.
func (s *State) rotateCollidingTetromino() {
	if s.filledAnim.Started() {
		return
	}
	newIndex := s.nextFrame()
	newFrame := s.tetrominos[s.currTet].Frames[newIndex]
	if s.field.IsCollide(s.currentFrame(), s.tetPos) ||
		!s.field.IsCollide(newFrame, s.tetPos) {
		s.currFrame = newIndex
	}
}

// finishTurn promotes the next piece and spawns it. A spawn that already
// collides is game over.
func (s *State) finishTurn() {
	s.leftRepeat.Stop()
	s.rightRepeat.Stop()
	s.downRepeat.Stop()
	s.currTet = s.nextTet
	s.nextTet = s.rng.Intn(7)
	s.currFrame = 0
	s.tetPos = spawnPos()

	if s.field.IsCollide(s.currentFrame(), s.tetPos) {
		s.changeScreen(retryScreen{})
	}
}

func (s *State) moveDown() {
	if s.field.IsCollide(s.currentFrame(), s.tetPos) {
		return
	}

	newPos := s.tetPos.AddY(1)

	if !s.field.IsCollide(s.currentFrame(), newPos) {
		s.tetPos = newPos
	} else {
		s.copyFrame()

		if s.field.IsAnyLineFilled() {
			s.filledAnim.Start()
			s.fallTimer.Stop()
		} else {
			s.finishTurn()
		}
	}
}

// changeScreen replaces the active screen and enters it. Switching to the
// screen that is already active is a no-op, so a round is never recreated
// mid-play.
func (s *State) changeScreen(newScreen screen) {
	if s.screen == newScreen {
		return
	}

	s.screen = newScreen

	newScreen.enter(s)
}

func (s *State) openPopupScreen(popup screen) {
	if s.popupScreen == nil {
		s.popupScreen = popup
		popup.enter(s)
	}
}

// closePopupScreen clears the popup; the main screen resumes without
// re-entering.
func (s *State) closePopupScreen() {
	s.popupScreen = nil
}

func (s *State) updateScore(lines int) {
	var delta int
	switch {
	case lines <= 0:
		delta = 0
	case lines == 1:
		delta = 100
	case lines == 2:
		delta = 250
	case lines == 3:
		delta = 500
	default:
		delta = 1000
	}

	s.score = s.score + delta
	if s.score > MaxScore {
		s.score = MaxScore
	}
}

func fallPeriod(level int) int {
	return fallPeriods[clamp(level, 0, MaxLevel)]
}

func level(score int) int {
	return clamp(score/ScorePerLevel, 0, MaxLevel)
}

// actualizeLevel rebuilds the fall timer for the level the score has reached.
func (s *State) actualizeLevel() {
	s.fallTimer = engine.NewTimer(fallPeriod(level(s.score)))
}

func (s *State) makeBeep() {
	if s.sounds == nil {
		return
	}
	// Fire-and-forget: drop the beep if the sink is full.
	select {
	case s.sounds <- engine.SoundBeep:
	default:
	}
}

func (s *State) currentScreen() screen {
	if s.popupScreen != nil {
		return s.popupScreen
	}
	return s.screen
}

// engine.App implementation.

func (s *State) InitAudio(sounds chan<- engine.Sound) {
	s.sounds = sounds
}

func (s *State) HandleInput(in *engine.Input) {
	s.currentScreen().handleInput(s, in)
}

func (s *State) Tick() {
	s.currentScreen().tick(s)
}

func (s *State) Draw(buf *engine.ScreenBuffer) {
	s.currentScreen().draw(s, buf)
}

// screen is one mode of the closed set {game, retry, pause}. Exactly one main
// screen is active; a single optional popup may sit on top and receives all
// dispatch while present.
type screen interface {
	enter(s *State)
	handleInput(s *State, in *engine.Input)
	tick(s *State)
	draw(s *State, buf *engine.ScreenBuffer)
}

type gameScreen struct{}

func (gameScreen) enter(s *State) {
	s.score = 0
	s.fallTimer = engine.NewTimer(fallPeriod(level(s.score)))
	s.fallTimer.Start()
	s.currTet = s.rng.Intn(7)
	s.nextTet = s.rng.Intn(7)
	s.currFrame = 0
	s.field.Clear()
	s.tetPos = spawnPos()
}

func (gameScreen) handleInput(s *State, in *engine.Input) {
	if in.BackEdge(engine.KeyLeft) {
		s.leftRepeat.Stop()
	}
	if in.BackEdge(engine.KeyRight) {
		s.rightRepeat.Stop()
	}
	if in.BackEdge(engine.KeyDown) {
		s.downRepeat.Stop()
	}

	switch {
	case in.FrontEdge(engine.KeyUp):
		s.rotateCollidingTetromino()
		s.makeBeep()
	case in.FrontEdge(engine.KeyDown):
		s.moveCollidingTetromino(s.tetPos.AddY(1))
		s.downRepeat.Start()
		s.makeBeep()
	case in.FrontEdge(engine.KeyLeft):
		s.moveCollidingTetromino(s.tetPos.SubX(1))
		s.leftRepeat.Start()
		s.rightRepeat.Stop()
		s.makeBeep()
	case in.FrontEdge(engine.KeyRight):
		s.moveCollidingTetromino(s.tetPos.AddX(1))
		s.rightRepeat.Start()
		s.leftRepeat.Stop()
		s.makeBeep()
	case in.FrontEdge(engine.KeyEscape):
		s.openPopupScreen(pauseScreen{})
	case in.FrontEdge(engine.KeyEquals):
		// Debug: jump a level ahead.
		s.score += DebugScoreStep
		s.fallTimer = engine.NewTimer(fallPeriod(level(s.score)))
		s.fallTimer.Start()
	}
}

func (gameScreen) tick(s *State) {
	s.leftRepeat.Tick()
	s.rightRepeat.Tick()
	s.downRepeat.Tick()
	s.fallTimer.Tick()
	s.filledAnim.Tick()

	if s.leftRepeat.Triggered() {
		s.moveCollidingTetromino(s.tetPos.SubX(1))
	}
	if s.rightRepeat.Triggered() {
		s.moveCollidingTetromino(s.tetPos.AddX(1))
	}
	if s.downRepeat.Triggered() {
		s.moveCollidingTetromino(s.tetPos.AddY(1))
	}
	if s.filledAnim.Triggered() {
		lines := s.field.CleanFilledLines()
		s.updateScore(lines)
		s.actualizeLevel()
		s.fallTimer.Start()
		s.finishTurn()
	}
	if s.fallTimer.Triggered() {
		s.fallTimer.Start()
		s.moveDown()
	}
}

func (gameScreen) draw(s *State, buf *engine.ScreenBuffer) {
	engine.DrawRect(buf, s.fieldPos, FieldWidth+2, FieldHeight+2, borderGlyph)

	// Landed cells; fully filled rows flash with the blink animation.
	for y := 0; y < FieldHeight; y++ {
		if s.field.IsLineFilled(y) && !s.filledAnim.Show() {
			continue
		}
		for x := 0; x < FieldWidth; x++ {
			if s.field.IsFilled(engine.Pt(x, y)) {
				buf.Set(s.fieldPos.Add(engine.Pt(x+1, y+1)), blockGlyph)
			}
		}
	}

	// Falling piece, hidden while the flash runs.
	if !s.filledAnim.Started() {
		for y := 0; y < FrameSide; y++ {
			for x := 0; x < FrameSide; x++ {
				if s.currentFrame().IsFilled(engine.Pt(x, y)) {
					pos := s.tetPos.Add(s.fieldPos).Add(engine.Pt(1, 1)).Add(engine.Pt(x, y))
					buf.Set(pos, blockGlyph)
				}
			}
		}
	}

	// Next piece preview, right of the field.
	next := s.tetrominos[s.nextTet].Frames[0]
	previewPos := s.fieldPos.AddX(FieldWidth + 4).AddY(FieldHeight / 2)
	for y := 0; y < FrameSide; y++ {
		for x := 0; x < FrameSide; x++ {
			if next.IsFilled(engine.Pt(x, y)) {
				buf.Set(previewPos.Add(engine.Pt(x, y)), blockGlyph)
			}
		}
	}

	engine.DrawStr(buf, s.fieldPos.AddX(3+FieldWidth).AddY(1), strconv.Itoa(s.score))
	engine.DrawStr(buf, s.fieldPos.AddX(3+FieldWidth).AddY(2), strconv.Itoa(level(s.score)+1))
}

type retryScreen struct{}

func (retryScreen) enter(s *State) {}

func (retryScreen) handleInput(s *State, in *engine.Input) {
	if in.FrontEdge(engine.KeySpace) {
		s.changeScreen(gameScreen{})
	}
}

func (retryScreen) tick(s *State) {}

func (retryScreen) draw(s *State, buf *engine.ScreenBuffer) {
	engine.DrawStr(buf, engine.Pt(0, 0), "Game over.")
	engine.DrawStr(buf, engine.Pt(0, 1), "Score: "+strconv.Itoa(s.score)+".")
	engine.DrawStr(buf, engine.Pt(0, 2), "Press space to try again.")
}

// pauseScreen is a popup: it freezes gameplay while layered over the game
// screen.
type pauseScreen struct{}

func (pauseScreen) enter(s *State) {
	// Drop buffered repeat motion so nothing fires on resume.
	s.leftRepeat.Stop()
	s.rightRepeat.Stop()
	s.downRepeat.Stop()
}

func (pauseScreen) handleInput(s *State, in *engine.Input) {
	if in.FrontEdge(engine.KeyEscape) {
		s.closePopupScreen()
	}
}

func (pauseScreen) tick(s *State) {}

func (pauseScreen) draw(s *State, buf *engine.ScreenBuffer) {
	engine.DrawStr(buf, engine.Pt(0, 0), "Pause.")
}
