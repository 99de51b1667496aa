package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r0t0r-r0t0r/r0t0blocks/internal/engine"
)

func TestNewFrameAndIsFilled(t *testing.T) {
	f := NewFrame([FrameSide][FrameSide]byte{
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
	})

	for y := 0; y < FrameSide; y++ {
		for x := 0; x < FrameSide; x++ {
			assert.Equal(t, x == 1, f.IsFilled(engine.Pt(x, y)), "x=%d y=%d", x, y)
		}
	}

	// Out-of-range reads are empty.
	assert.False(t, f.IsFilled(engine.Pt(-1, 1)))
	assert.False(t, f.IsFilled(engine.Pt(1, -1)))
	assert.False(t, f.IsFilled(engine.Pt(FrameSide, 1)))
	assert.False(t, f.IsFilled(engine.Pt(1, FrameSide)))
}

func TestCatalogShape(t *testing.T) {
	frames := NewFrames()

	// Seven shapes with the expected distinct rotation counts.
	wantDistinct := []int{2, 1, 4, 4, 4, 2, 2}
	require.Len(t, *frames, 7)
	for i, want := range wantDistinct {
		assert.Len(t, frames[i], want, "shape %d", i)
	}

	// Every rotation frame of every shape covers exactly four cells.
	for i := range frames {
		for j := range frames[i] {
			filled := 0
			for y := 0; y < FrameSide; y++ {
				for x := 0; x < FrameSide; x++ {
					if frames[i][j].IsFilled(engine.Pt(x, y)) {
						filled++
					}
				}
			}
			assert.Equal(t, 4, filled, "shape %d frame %d", i, j)
		}
	}
}

func TestTetrominoModuloRotation(t *testing.T) {
	frames := NewFrames()

	// One distinct frame: all four slots alias it.
	o := NewTetromino(frames[1])
	assert.Same(t, o.Frames[0], o.Frames[1])
	assert.Same(t, o.Frames[0], o.Frames[2])
	assert.Same(t, o.Frames[0], o.Frames[3])

	// Two distinct frames: slots alternate.
	i := NewTetromino(frames[0])
	assert.Same(t, i.Frames[0], i.Frames[2])
	assert.Same(t, i.Frames[1], i.Frames[3])
	assert.NotSame(t, i.Frames[0], i.Frames[1])

	// Four distinct frames: all slots differ.
	tt := NewTetromino(frames[2])
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			assert.NotSame(t, tt.Frames[a], tt.Frames[b], "slots %d,%d", a, b)
		}
	}
}
