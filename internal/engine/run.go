package engine

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// keyBindings maps logical keys to GLFW keys, polled once per tick.
var keyBindings = [keyCount]glfw.Key{
	KeyUp:     glfw.KeyUp,
	KeyDown:   glfw.KeyDown,
	KeyLeft:   glfw.KeyLeft,
	KeyRight:  glfw.KeyRight,
	KeyEscape: glfw.KeyEscape,
	KeyReturn: glfw.KeyEnter,
	KeySpace:  glfw.KeySpace,
	KeyEquals: glfw.KeyEqual,
}

func pollKeys(window *glfw.Window, in *Input) {
	for key, glfwKey := range keyBindings {
		in.Set(Key(key), window.GetKey(glfwKey) == glfw.Press)
	}
}

// Run opens the window, initializes audio and the renderer, and drives the
// app at a fixed 8 ms simulation timestep until the window is closed.
// Drawing happens once per displayed frame (vsync), independently of ticks.
func Run(app App, tilesetPath string) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if sounds, err := StartAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	} else {
		app.InitAudio(sounds)
	}

	rend, err := NewRenderer(tilesetPath)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0, 0, 0, 1)

	buf := NewScreenBuffer(TileCols, TileRows)
	input := NewInput()

	fps := 0
	fpsCounter := 0
	fpsPrev := glfw.GetTime()

	last := glfw.GetTime()
	acc := 0.0
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		acc += now - last
		last = now
		// Clamp the backlog so a long stall doesn't turn into a tick burst.
		if acc > 0.25 {
			acc = 0.25
		}

		for acc >= TickSeconds {
			pollKeys(window, input)
			app.HandleInput(input)
			input.Tick()
			app.Tick()
			acc -= TickSeconds
		}

		fpsCounter++
		if delta := now - fpsPrev; delta >= 1.0 {
			fps = int(float64(fpsCounter) / delta)
			fpsCounter = 0
			fpsPrev = now
		}

		buf.Clear()
		app.Draw(buf)
		DrawStr(buf, Pt(0, 0), strconv.Itoa(fps))

		fbW, fbH := window.GetFramebufferSize()
		if fbW > 0 && fbH > 0 {
			rend.DrawFrame(buf, fbW, fbH)
			window.SwapBuffers()
		}
	}

	return nil
}
