package entity

import "github.com/younwookim/ringball/internal/domain/geom"

// Tile is the semantic type of one grid cell.
// The integer code is the on-disk level format.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileBrick
	TileSlope
	TileRing
	TileSpike
	TileStartpoint
	TileEndpoint
	TileCheckpointActive
	TileCheckpointNotActive
)

// TileWall is the tile compiled into solid colliders
const TileWall = TileBrick

// tileCount is the number of valid tile codes
const tileCount = int(TileCheckpointNotActive) + 1

// tileNames doubles as the sprite name of each tile
var tileNames = [tileCount]string{
	"-",
	"Brick",
	"Slope",
	"Ring",
	"Spike",
	"Startpoint",
	"Endpoint",
	"Checkpoint_Active",
	"Checkpoint_NotActive",
}

// String returns the tile's name, which is also its sprite name
func (t Tile) String() string {
	if int(t) >= tileCount {
		return "Unknown"
	}
	return tileNames[t]
}

// TileFromCode converts an on-disk integer code to a Tile
func TileFromCode(code int) (Tile, bool) {
	if code < 0 || code >= tileCount {
		return TileEmpty, false
	}
	return Tile(code), true
}

// TileFromName converts a tile name back to its Tile
func TileFromName(name string) (Tile, bool) {
	switch name {
	case "-":
		return TileEmpty, true
	case "Brick":
		return TileBrick, true
	case "Slope":
		return TileSlope, true
	case "Ring":
		return TileRing, true
	case "Spike":
		return TileSpike, true
	case "Startpoint":
		return TileStartpoint, true
	case "Endpoint":
		return TileEndpoint, true
	case "Checkpoint_Active":
		return TileCheckpointActive, true
	case "Checkpoint_NotActive":
		return TileCheckpointNotActive, true
	}
	return TileEmpty, false
}

// Cell is a grid coordinate (column X, row Y)
type Cell struct {
	X, Y int
}

// Pixel returns the top-left pixel position of the cell
func (c Cell) Pixel(cellSize float64) geom.Vector2 {
	return geom.Vec(float64(c.X)*cellSize, float64(c.Y)*cellSize)
}

// LevelGrid is the parsed tile grid of a level.
// Tiles are stored row-major: index = y*Width + x.
type LevelGrid struct {
	Tiles  []Tile
	Width  int
	Height int

	Start    Cell
	End      Cell
	HasStart bool
	HasEnd   bool
}

// NewLevelGrid creates an empty grid of the given size
func NewLevelGrid(width, height int) *LevelGrid {
	return &LevelGrid{
		Tiles:  make([]Tile, width*height),
		Width:  width,
		Height: height,
	}
}

// InBounds reports whether (x, y) is a cell of the grid
func (g *LevelGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index returns the row-major index of (x, y)
func (g *LevelGrid) Index(x, y int) int {
	return y*g.Width + x
}

// At returns the tile at (x, y), or TileEmpty outside the grid
func (g *LevelGrid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileEmpty
	}
	return g.Tiles[g.Index(x, y)]
}

// Set overwrites the tile at (x, y). Out of bounds writes are ignored.
// Start and End follow the same last-write-wins rule as parsing.
func (g *LevelGrid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.Tiles[g.Index(x, y)] = t
	switch t {
	case TileStartpoint:
		g.Start, g.HasStart = Cell{X: x, Y: y}, true
	case TileEndpoint:
		g.End, g.HasEnd = Cell{X: x, Y: y}, true
	}
}

// StartScreenPos returns the player spawn in pixels: one full cell above
// the Startpoint tile.
func (g *LevelGrid) StartScreenPos(cellSize float64) geom.Vector2 {
	return SpawnAbove(g.Start, cellSize)
}

// SpawnAbove returns the pixel position one cell above c
func SpawnAbove(c Cell, cellSize float64) geom.Vector2 {
	return c.Pixel(cellSize).Sub(geom.Vec(0, cellSize))
}

// PixelSize returns the grid's extent in pixels
func (g *LevelGrid) PixelSize(cellSize float64) geom.Vector2 {
	return geom.Vec(float64(g.Width)*cellSize, float64(g.Height)*cellSize)
}

// Clone returns a deep copy of the grid
func (g *LevelGrid) Clone() *LevelGrid {
	c := *g
	c.Tiles = make([]Tile, len(g.Tiles))
	copy(c.Tiles, g.Tiles)
	return &c
}
