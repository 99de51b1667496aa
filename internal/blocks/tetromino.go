package blocks

import "github.com/r0t0r-r0t0r/r0t0blocks/internal/engine"

// Frame is one rotation state of a piece: an immutable 4x4 occupancy grid.
type Frame struct {
	squares [FrameSide * FrameSide]bool
}

func NewFrame(rows [FrameSide][FrameSide]byte) Frame {
	var f Frame
	i := 0
	for _, row := range rows {
		for _, square := range row {
			f.squares[i] = square != 0
			i++
		}
	}
	return f
}

// IsFilled is a bounds-checked read; out-of-range coordinates are empty.
func (f *Frame) IsFilled(p engine.Point) bool {
	if p.X >= 0 && p.X < FrameSide && p.Y >= 0 && p.Y < FrameSide {
		return f.squares[p.Y*FrameSide+p.X]
	}
	return false
}

// Tetromino holds the four rotation slots of a shape. Shapes with fewer
// distinct frames fill the remaining slots modulo the distinct count, so the
// rotation index always advances 0..3 while the visual sequence cycles short.
type Tetromino struct {
	Frames [4]*Frame
}

func NewTetromino(frames []Frame) Tetromino {
	return Tetromino{
		Frames: [4]*Frame{
			&frames[0],
			&frames[1%len(frames)],
			&frames[2%len(frames)],
			&frames[3%len(frames)],
		},
	}
}

// NewFrames builds the static shape catalog: the seven canonical shapes with
// their distinct rotation frames. Built once at startup and shared read-only.
func NewFrames() *[7][]Frame {
	return &[7][]Frame{
		// I
		{
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{1, 1, 1, 1},
				{0, 0, 0, 0},
			}),
			NewFrame([FrameSide][FrameSide]byte{
				{0, 1, 0, 0},
				{0, 1, 0, 0},
				{0, 1, 0, 0},
				{0, 1, 0, 0},
			}),
		},
		// O
		{
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 1, 1, 0},
				{0, 1, 1, 0},
			}),
		},
		// T
		{
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{1, 1, 1, 0},
				{0, 1, 0, 0},
			}),
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 1, 0, 0},
				{1, 1, 0, 0},
				{0, 1, 0, 0},
			}),
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 1, 0, 0},
				{1, 1, 1, 0},
				{0, 0, 0, 0},
			}),
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 1, 0, 0},
				{0, 1, 1, 0},
				{0, 1, 0, 0},
			}),
		},
		// J
		{
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 1, 0, 0},
				{0, 1, 0, 0},
				{1, 1, 0, 0},
			}),
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{1, 0, 0, 0},
				{1, 1, 1, 0},
				{0, 0, 0, 0},
			}),
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{1, 1, 0, 0},
				{1, 0, 0, 0},
				{1, 0, 0, 0},
			}),
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{1, 1, 1, 0},
				{0, 0, 1, 0},
				{0, 0, 0, 0},
			}),
		},
		// L
		{
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 1, 0, 0},
				{0, 1, 0, 0},
				{0, 1, 1, 0},
			}),
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{1, 1, 1, 0},
				{1, 0, 0, 0},
			}),
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{1, 1, 0, 0},
				{0, 1, 0, 0},
				{0, 1, 0, 0},
			}),
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 0, 1, 0},
				{1, 1, 1, 0},
				{0, 0, 0, 0},
			}),
		},
		// S
		{
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 1, 1, 0},
				{1, 1, 0, 0},
			}),
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{1, 0, 0, 0},
				{1, 1, 0, 0},
				{0, 1, 0, 0},
			}),
		},
		// Z
		{
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{1, 1, 0, 0},
				{0, 1, 1, 0},
			}),
			NewFrame([FrameSide][FrameSide]byte{
				{0, 0, 0, 0},
				{0, 1, 0, 0},
				{1, 1, 0, 0},
				{1, 0, 0, 0},
			}),
		},
	}
}
