package engine

// Window/tile geometry. The screen is a fixed grid of glyph cells rendered
// from a 16x16 tileset atlas; one byte in the screen buffer selects one tile.
const (
	TileCols = 30
	TileRows = 30
	TileSize = 24

	WindowWidth  = TileCols * TileSize // 720
	WindowHeight = TileRows * TileSize // 720
)

// Tileset atlas layout (tileset.png: 16 cols x 16 rows, byte value = index).
const (
	AtlasCols = 16
	AtlasRows = 16
	AtlasW    = AtlasCols * TileSize // 384
	AtlasH    = AtlasRows * TileSize // 384
)

// Simulation timestep. One logical tick every 8 ms (125 Hz); drawing happens
// once per displayed frame, independently of the tick rate.
const TickSeconds = 0.008

// Audio.
const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)
