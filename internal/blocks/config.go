package blocks

// Playfield dimensions (in cells).
const (
	FieldWidth  = 10
	FieldHeight = 18
)

// Every rotation frame is a 4x4 occupancy grid.
const FrameSide = 4

// Scoring/leveling.
const (
	MaxScore       = 9999999
	ScorePerLevel  = 5000
	MaxLevel       = 9
	DebugScoreStep = 5000
)

// Key autorepeat periods, in ticks.
const (
	repeatDelay      = 30
	horizontalRepeat = 5
	downRepeat       = 3
)

// Glyphs used by the renderer.
const (
	blockGlyph  = 0xB1 // shaded square tile
	borderGlyph = '+'
)
