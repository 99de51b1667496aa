package blocks

import "github.com/r0t0r-r0t0r/r0t0blocks/internal/engine"

// Field is the playfield: a fixed-size boolean grid, row-major. It holds only
// landed piece fragments; the falling piece is never merged until it lands.
type Field struct {
	squares [FieldWidth * FieldHeight]bool
}

func NewField() *Field {
	return &Field{}
}

// IsFilled is a bounds-checked read; out-of-range coordinates are empty.
func (f *Field) IsFilled(p engine.Point) bool {
	if p.X >= 0 && p.X < FieldWidth && p.Y >= 0 && p.Y < FieldHeight {
		return f.squares[p.Y*FieldWidth+p.X]
	}
	return false
}

// IsLineFilled reports whether every cell of a row is filled. Out-of-range
// rows are not filled.
func (f *Field) IsLineFilled(y int) bool {
	if y < 0 || y >= FieldHeight {
		return false
	}
	for x := y * FieldWidth; x < (y+1)*FieldWidth; x++ {
		if !f.squares[x] {
			return false
		}
	}
	return true
}

func (f *Field) IsAnyLineFilled() bool {
	for y := 0; y < FieldHeight; y++ {
		if f.IsLineFilled(y) {
			return true
		}
	}
	return false
}

// CleanFilledLines removes every fully filled row, shifting the rows above
// down and zero-filling the vacated rows at the top. Relative order of the
// surviving rows is preserved. Returns the number of rows removed.
func (f *Field) CleanFilledLines() int {
	cleaned := 0
	write := FieldHeight - 1
	for read := FieldHeight - 1; read >= 0; read-- {
		if f.IsLineFilled(read) {
			cleaned++
			continue
		}
		if write != read {
			copy(f.squares[write*FieldWidth:(write+1)*FieldWidth],
				f.squares[read*FieldWidth:(read+1)*FieldWidth])
		}
		write--
	}
	for y := write; y >= 0; y-- {
		for x := 0; x < FieldWidth; x++ {
			f.squares[y*FieldWidth+x] = false
		}
	}
	return cleaned
}

// CopyFrame merges the filled cells of a frame into the field at anchor p.
// Cells outside the field are silently dropped; movement gating by IsCollide
// keeps that from ever happening in play.
func (f *Field) CopyFrame(frame *Frame, p engine.Point) {
	for j := 0; j < FrameSide; j++ {
		for i := 0; i < FrameSide; i++ {
			if !frame.IsFilled(engine.Pt(i, j)) {
				continue
			}
			x := p.X + i
			y := p.Y + j
			if x >= 0 && x < FieldWidth && y >= 0 && y < FieldHeight {
				f.squares[y*FieldWidth+x] = true
			}
		}
	}
}

// IsCollide reports whether placing the frame at anchor p is illegal. The
// bounds policy is asymmetric: the left, right, and bottom edges collide, but
// cells above the top do not, since spawn rows sit above the visible field.
func (f *Field) IsCollide(frame *Frame, p engine.Point) bool {
	if p.X+FrameSide <= 0 {
		return true
	}
	if p.X >= FieldWidth {
		return true
	}
	if p.Y >= FieldHeight {
		return true
	}

	for j := 0; j < FrameSide; j++ {
		for i := 0; i < FrameSide; i++ {
			if !frame.IsFilled(engine.Pt(i, j)) {
				continue
			}
			if p.X+i < 0 {
				return true
			}
			if p.X+i >= FieldWidth {
				return true
			}
			if p.Y+j >= FieldHeight {
				return true
			}
			if f.IsFilled(engine.Pt(p.X+i, p.Y+j)) {
				return true
			}
		}
	}

	return false
}

func (f *Field) Clear() {
	for i := range f.squares {
		f.squares[i] = false
	}
}
