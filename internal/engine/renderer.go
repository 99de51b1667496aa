package engine

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws a ScreenBuffer as textured quads from the tileset atlas.
type Renderer struct {
	tileTex  uint32
	tileProg uint32
	tileVAO  uint32
	tileVBO  uint32

	uRes     int32
	uTileTex int32

	// Reusable vertex buffer to avoid per-frame heap allocations.
	tileBuf []float32
}

func NewRenderer(tilesetPath string) (*Renderer, error) {
	r := &Renderer{}
	if err := r.initTileset(tilesetPath); err != nil {
		return nil, err
	}

	prog, err := linkProgram(tileVertSrc, tileFragSrc)
	if err != nil {
		gl.DeleteTextures(1, &r.tileTex)
		return nil, fmt.Errorf("tile program: %w", err)
	}
	r.tileProg = prog
	gl.UseProgram(prog)
	r.uRes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uTileTex = gl.GetUniformLocation(prog, gl.Str("uTileTex\x00"))
	gl.Uniform1i(r.uTileTex, 0)

	// Tile VAO/VBO: per-vertex pos(2) + uv(2) = 4 floats, streamed each frame.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(4 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, TileCols*TileRows*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))

	r.tileVAO = vao
	r.tileVBO = vbo
	gl.BindVertexArray(0)
	return r, nil
}

// initTileset loads the tileset atlas and uploads it as a GL texture.
func (r *Renderer) initTileset(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tileset: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() != AtlasW || b.Dy() != AtlasH {
		return fmt.Errorf("tileset %s: got %dx%d, want %dx%d", path, b.Dx(), b.Dy(), AtlasW, AtlasH)
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != b.Dx()*4 {
		nrgba = image.NewNRGBA(b)
		draw.Draw(nrgba, b, img, b.Min, draw.Src)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(nrgba.Pix))
	r.tileTex = tex
	return nil
}

func (r *Renderer) Destroy() {
	if r.tileVBO != 0 {
		gl.DeleteBuffers(1, &r.tileVBO)
	}
	if r.tileVAO != 0 {
		gl.DeleteVertexArrays(1, &r.tileVAO)
	}
	if r.tileProg != 0 {
		gl.DeleteProgram(r.tileProg)
	}
	if r.tileTex != 0 {
		gl.DeleteTextures(1, &r.tileTex)
	}
}

// queueTile appends one glyph cell as two textured triangles.
func (r *Renderer) queueTile(cellX, cellY int, c byte) {
	column := int(c) % AtlasCols
	row := int(c) / AtlasCols

	u0 := float32(column) / AtlasCols
	v0 := float32(row) / AtlasRows
	u1 := float32(column+1) / AtlasCols
	v1 := float32(row+1) / AtlasRows

	x0 := float32(cellX * TileSize)
	y0 := float32(cellY * TileSize)
	x1 := x0 + TileSize
	y1 := y0 + TileSize

	r.tileBuf = append(r.tileBuf,
		x0, y0, u0, v0,
		x1, y0, u1, v0,
		x0, y1, u0, v1,
		x1, y0, u1, v0,
		x1, y1, u1, v1,
		x0, y1, u0, v1,
	)
}

// DrawFrame renders the full screen buffer. Cell code 0 is the empty tile and
// is skipped; the clear color shows through.
func (r *Renderer) DrawFrame(buf *ScreenBuffer, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.tileBuf = r.tileBuf[:0]
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if c := buf.ByteAt(x, y); c != 0 {
				r.queueTile(x, y, c)
			}
		}
	}
	if len(r.tileBuf) == 0 {
		return
	}

	gl.UseProgram(r.tileProg)
	gl.BindVertexArray(r.tileVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.tileVBO)
	// Quads are laid out in logical window pixels; the viewport maps them to
	// the (possibly HiDPI-scaled) framebuffer.
	gl.Uniform2f(r.uRes, float32(WindowWidth), float32(WindowHeight))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tileTex)

	count := len(r.tileBuf) / 4
	gl.BufferData(gl.ARRAY_BUFFER, len(r.tileBuf)*4, gl.Ptr(r.tileBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.BindVertexArray(0)
}
