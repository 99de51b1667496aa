package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenBufferSetAndClear(t *testing.T) {
	b := NewScreenBuffer(8, 4)
	b.Set(Pt(3, 2), 0xB1)
	assert.Equal(t, byte(0xB1), b.ByteAt(3, 2))

	b.Clear()
	assert.Equal(t, byte(0), b.ByteAt(3, 2))
}

func TestScreenBufferSetClips(t *testing.T) {
	b := NewScreenBuffer(8, 4)
	// Out-of-range writes are dropped, never panic.
	b.Set(Pt(-1, 0), 1)
	b.Set(Pt(8, 0), 1)
	b.Set(Pt(0, -1), 1)
	b.Set(Pt(0, 4), 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, byte(0), b.ByteAt(x, y))
		}
	}
}

func TestScreenBufferSetBytesClipping(t *testing.T) {
	b := NewScreenBuffer(8, 2)

	// Clipped on the left: only the in-range tail is written.
	b.SetBytes(Pt(-2, 0), []byte("abcd"))
	assert.Equal(t, byte('c'), b.ByteAt(0, 0))
	assert.Equal(t, byte('d'), b.ByteAt(1, 0))
	assert.Equal(t, byte(0), b.ByteAt(2, 0))

	// Clipped on the right.
	b.SetBytes(Pt(6, 1), []byte("abcd"))
	assert.Equal(t, byte('a'), b.ByteAt(6, 1))
	assert.Equal(t, byte('b'), b.ByteAt(7, 1))

	// Entirely outside: no-op.
	b.SetBytes(Pt(-10, 0), []byte("ab"))
	b.SetBytes(Pt(8, 0), []byte("ab"))
	b.SetBytes(Pt(0, 2), []byte("ab"))
	b.SetBytes(Pt(0, -1), []byte("ab"))
}

func TestDrawStr(t *testing.T) {
	b := NewScreenBuffer(10, 3)
	DrawStr(b, Pt(2, 1), "42")
	assert.Equal(t, byte('4'), b.ByteAt(2, 1))
	assert.Equal(t, byte('2'), b.ByteAt(3, 1))
}

func TestDrawRect(t *testing.T) {
	b := NewScreenBuffer(10, 10)
	DrawRect(b, Pt(1, 1), 5, 4, '+')

	// Corners.
	assert.Equal(t, byte('+'), b.ByteAt(1, 1))
	assert.Equal(t, byte('+'), b.ByteAt(5, 1))
	assert.Equal(t, byte('+'), b.ByteAt(1, 4))
	assert.Equal(t, byte('+'), b.ByteAt(5, 4))

	// Edges, not the interior.
	assert.Equal(t, byte('+'), b.ByteAt(3, 1))
	assert.Equal(t, byte('+'), b.ByteAt(1, 2))
	assert.Equal(t, byte('+'), b.ByteAt(5, 3))
	assert.Equal(t, byte(0), b.ByteAt(3, 2))
}

func TestDrawRectDegenerate(t *testing.T) {
	b := NewScreenBuffer(4, 4)
	DrawRect(b, Pt(0, 0), 1, 5, '#')
	DrawRect(b, Pt(0, 0), 5, 1, '#')
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, byte(0), b.ByteAt(x, y))
		}
	}
}
