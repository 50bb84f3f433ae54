package entity

import "github.com/younwookim/ringball/internal/domain/geom"

// Box is an axis-aligned rectangle in pixel space tagged with the tile it
// was compiled from. Wall boxes are solid colliders; every other kind is a
// non-blocking trigger.
type Box struct {
	Kind     Tile
	Position geom.Vector2
	Size     geom.Vector2
}

// Min returns the top-left corner
func (b Box) Min() geom.Vector2 {
	return b.Position
}

// Max returns the bottom-right corner
func (b Box) Max() geom.Vector2 {
	return b.Position.Add(b.Size)
}

// Cell returns the grid cell containing the box's top-left corner
func (b Box) Cell(cellSize float64) Cell {
	return Cell{X: int(b.Position.X / cellSize), Y: int(b.Position.Y / cellSize)}
}
