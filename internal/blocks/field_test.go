package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r0t0r-r0t0r/r0t0blocks/internal/engine"
)

func fillRow(f *Field, y int) {
	for x := 0; x < FieldWidth; x++ {
		f.squares[y*FieldWidth+x] = true
	}
}

func setCell(f *Field, x, y int) {
	f.squares[y*FieldWidth+x] = true
}

func countFilled(f *Field) int {
	n := 0
	for _, sq := range f.squares {
		if sq {
			n++
		}
	}
	return n
}

func TestFieldIsFilledBounds(t *testing.T) {
	f := NewField()
	setCell(f, 0, 0)

	assert.True(t, f.IsFilled(engine.Pt(0, 0)))
	assert.False(t, f.IsFilled(engine.Pt(-1, 0)))
	assert.False(t, f.IsFilled(engine.Pt(0, -1)))
	assert.False(t, f.IsFilled(engine.Pt(FieldWidth, 0)))
	assert.False(t, f.IsFilled(engine.Pt(0, FieldHeight)))
}

func TestIsLineFilled(t *testing.T) {
	f := NewField()
	assert.False(t, f.IsLineFilled(0))
	assert.False(t, f.IsLineFilled(-1))
	assert.False(t, f.IsLineFilled(FieldHeight))

	fillRow(f, 5)
	assert.True(t, f.IsLineFilled(5))
	assert.True(t, f.IsAnyLineFilled())

	f.squares[5*FieldWidth+7] = false
	assert.False(t, f.IsLineFilled(5))
	assert.False(t, f.IsAnyLineFilled())
}

func TestCleanFilledLinesEmptyField(t *testing.T) {
	f := NewField()
	assert.Equal(t, 0, f.CleanFilledLines())
	assert.Equal(t, 0, countFilled(f))
}

func TestCleanFilledLinesFullField(t *testing.T) {
	f := NewField()
	for y := 0; y < FieldHeight; y++ {
		fillRow(f, y)
	}
	assert.Equal(t, FieldHeight, f.CleanFilledLines())
	assert.Equal(t, 0, countFilled(f))
}

func TestCleanFilledLinesBottomRows(t *testing.T) {
	for k := 1; k <= 4; k++ {
		f := NewField()
		for y := FieldHeight - k; y < FieldHeight; y++ {
			fillRow(f, y)
		}
		assert.Equal(t, k, f.CleanFilledLines(), "k=%d", k)
		assert.Equal(t, 0, countFilled(f), "k=%d", k)
	}
}

func TestCleanFilledLinesShiftsRowsAbove(t *testing.T) {
	f := NewField()
	// Partial rows below the filled one stay put; rows above shift down.
	setCell(f, 0, 16)
	setCell(f, 9, 17)
	fillRow(f, 15)
	setCell(f, 3, 14)
	setCell(f, 4, 12)

	require.Equal(t, 1, f.CleanFilledLines())

	// Untouched rows below.
	assert.True(t, f.IsFilled(engine.Pt(0, 16)))
	assert.True(t, f.IsFilled(engine.Pt(9, 17)))

	// Rows above shifted down by one.
	assert.True(t, f.IsFilled(engine.Pt(3, 15)))
	assert.True(t, f.IsFilled(engine.Pt(4, 13)))
	assert.False(t, f.IsFilled(engine.Pt(3, 14)))
	assert.False(t, f.IsFilled(engine.Pt(4, 12)))

	// Top row vacated.
	for x := 0; x < FieldWidth; x++ {
		assert.False(t, f.IsFilled(engine.Pt(x, 0)))
	}
	assert.Equal(t, 4, countFilled(f))
}

func TestCleanFilledLinesInterleaved(t *testing.T) {
	f := NewField()
	fillRow(f, 17)
	setCell(f, 2, 16)
	fillRow(f, 15)
	setCell(f, 5, 14)

	require.Equal(t, 2, f.CleanFilledLines())

	// Surviving rows re-stack at the bottom in original order.
	assert.True(t, f.IsFilled(engine.Pt(5, 16)))
	assert.True(t, f.IsFilled(engine.Pt(2, 17)))
	assert.Equal(t, 2, countFilled(f))
}

func oFrame() *Frame {
	frames := NewFrames()
	return &frames[1][0]
}

func TestIsCollideBoundingBox(t *testing.T) {
	f := NewField()
	fr := oFrame()

	// Entirely left of the field.
	assert.True(t, f.IsCollide(fr, engine.Pt(-4, 5)))
	// At the right edge.
	assert.True(t, f.IsCollide(fr, engine.Pt(FieldWidth, 5)))
	// At the bottom edge.
	assert.True(t, f.IsCollide(fr, engine.Pt(3, FieldHeight)))
	// Legally nested.
	assert.False(t, f.IsCollide(fr, engine.Pt(3, 5)))
}

func TestIsCollideAboveFieldIsLegal(t *testing.T) {
	f := NewField()
	fr := oFrame()

	// Spawn rows above the visible field never collide while x is in range.
	for x := -1; x <= FieldWidth-3; x++ {
		assert.False(t, f.IsCollide(fr, engine.Pt(x, -2)), "x=%d", x)
	}
}

func TestIsCollideFilledCellEdges(t *testing.T) {
	f := NewField()
	fr := oFrame() // filled cells at columns 1-2, rows 2-3

	// Bounding box partly outside but filled cells inside: legal.
	assert.False(t, f.IsCollide(fr, engine.Pt(-1, 0)))
	assert.False(t, f.IsCollide(fr, engine.Pt(FieldWidth-3, 0)))

	// One filled cell crosses an edge: collision.
	assert.True(t, f.IsCollide(fr, engine.Pt(-2, 0)))
	assert.True(t, f.IsCollide(fr, engine.Pt(FieldWidth-2, 0)))
	assert.True(t, f.IsCollide(fr, engine.Pt(0, FieldHeight-3)))
}

func TestIsCollideLandedCells(t *testing.T) {
	f := NewField()
	fr := oFrame()
	setCell(f, 2, 10)

	assert.True(t, f.IsCollide(fr, engine.Pt(0, 7)), "overlaps the landed cell")
	assert.False(t, f.IsCollide(fr, engine.Pt(3, 7)), "beside the landed cell")
	assert.False(t, f.IsCollide(fr, engine.Pt(0, 5)), "above the landed cell")
}

func TestCopyFrameMerges(t *testing.T) {
	f := NewField()
	fr := oFrame()
	f.CopyFrame(fr, engine.Pt(0, 0))

	assert.True(t, f.IsFilled(engine.Pt(1, 2)))
	assert.True(t, f.IsFilled(engine.Pt(2, 2)))
	assert.True(t, f.IsFilled(engine.Pt(1, 3)))
	assert.True(t, f.IsFilled(engine.Pt(2, 3)))
	assert.Equal(t, 4, countFilled(f))

	// Idempotent.
	f.CopyFrame(fr, engine.Pt(0, 0))
	assert.Equal(t, 4, countFilled(f))
}

func TestCopyFrameDropsOutOfBounds(t *testing.T) {
	f := NewField()
	fr := oFrame()
	// Filled cells land at x 9,10: column 10 is silently dropped.
	f.CopyFrame(fr, engine.Pt(8, 14))

	assert.True(t, f.IsFilled(engine.Pt(9, 16)))
	assert.True(t, f.IsFilled(engine.Pt(9, 17)))
	assert.Equal(t, 2, countFilled(f))
}

func TestClear(t *testing.T) {
	f := NewField()
	fillRow(f, 3)
	setCell(f, 5, 9)
	f.Clear()
	assert.Equal(t, 0, countFilled(f))
}
