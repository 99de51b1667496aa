package engine

// App is the simulation driven by Run. Once per tick the driver calls
// HandleInput then Tick; Draw is called once per displayed frame and must not
// mutate simulation state.
type App interface {
	InitAudio(sounds chan<- Sound)
	HandleInput(in *Input)
	Tick()
	Draw(buf *ScreenBuffer)
}
