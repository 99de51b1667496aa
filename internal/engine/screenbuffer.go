package engine

// ScreenBuffer is a rectangular grid of single-byte cell codes. Each byte
// selects a glyph from the tileset atlas. All writes are clipped to the
// buffer bounds; out-of-range writes are silently dropped.
type ScreenBuffer struct {
	chars  []byte
	width  int
	height int
}

func NewScreenBuffer(width, height int) *ScreenBuffer {
	return &ScreenBuffer{
		chars:  make([]byte, width*height),
		width:  width,
		height: height,
	}
}

func (b *ScreenBuffer) Width() int  { return b.width }
func (b *ScreenBuffer) Height() int { return b.height }

func (b *ScreenBuffer) index(x, y int) int {
	return y*b.width + x
}

// ByteAt returns the cell code at (x, y). Callers pass in-range coordinates.
func (b *ScreenBuffer) ByteAt(x, y int) byte {
	return b.chars[b.index(x, y)]
}

func (b *ScreenBuffer) Clear() {
	for i := range b.chars {
		b.chars[i] = 0
	}
}

// Set writes one cell, clipped.
func (b *ScreenBuffer) Set(p Point, c byte) {
	if p.Y >= 0 && p.Y < b.height {
		if p.X >= 0 && p.X < b.width {
			b.chars[b.index(p.X, p.Y)] = c
		}
	}
}

// SetBytes writes a horizontal run of cells starting at p, clipped on both
// ends.
func (b *ScreenBuffer) SetBytes(p Point, s []byte) {
	if p.Y < 0 || p.Y >= b.height {
		return
	}
	if p.X >= b.width || p.X+len(s) <= 0 {
		return
	}
	start := p.X
	if start < 0 {
		start = 0
	}
	end := p.X + len(s)
	if end > b.width {
		end = b.width
	}
	copy(b.chars[b.index(start, p.Y):b.index(end-1, p.Y)+1], s[start-p.X:end-p.X])
}

// DrawStr writes an ASCII string at p, clipped.
func DrawStr(b *ScreenBuffer, p Point, s string) {
	b.SetBytes(p, []byte(s))
}

// DrawRect draws an unfilled rectangle outline with the given glyph. Nothing
// is drawn for degenerate sizes.
func DrawRect(b *ScreenBuffer, p Point, width, height int, c byte) {
	if width < 2 || height < 2 {
		return
	}
	line := make([]byte, width)
	for i := range line {
		line[i] = c
	}
	b.SetBytes(p, line)
	b.SetBytes(p.AddY(height-1), line)
	for j := p.Y + 1; j < p.Y+height-1; j++ {
		b.Set(p.WithY(j), c)
		b.Set(p.WithY(j).AddX(width-1), c)
	}
}
