package entity

import "github.com/younwookim/ringball/internal/domain/geom"

// Camera is the view window into the level, in pixels
type Camera struct {
	Position geom.Vector2
	Size     geom.Vector2
	Buffer   float64

	// Boundary the position is clamped into
	Min, Max geom.Vector2
}

// NewCamera creates a camera with the given view size and culling buffer
func NewCamera(size geom.Vector2, buffer float64) *Camera {
	return &Camera{Size: size, Buffer: buffer}
}

// SetBoundary fits the clamp range to a level of the given pixel size
func (c *Camera) SetBoundary(levelSize geom.Vector2) {
	c.Min = geom.Vector2{}
	c.Max = levelSize.Sub(c.Size)
}

// IsWithinView reports whether pos is inside the view expanded by Buffer
// on every side
func (c *Camera) IsWithinView(pos geom.Vector2) bool {
	buffer := geom.Vec(c.Buffer, c.Buffer)
	return geom.PointAABB(pos, c.Position.Sub(buffer), c.Position.Add(c.Size).Add(buffer))
}

// Follow centers the camera on target minus offset and clamps it
func (c *Camera) Follow(target, offset geom.Vector2) {
	c.Position = target.Sub(offset)
	c.ClampToBoundary()
}

// ClampToBoundary keeps the position within [Min, Max] per axis.
// On y the max bound is applied last, so a level shorter than the view
// lines up with the bottom of the view.
func (c *Camera) ClampToBoundary() {
	if c.Position.X < c.Min.X {
		c.Position.X = c.Min.X
	} else if c.Position.X > c.Max.X {
		c.Position.X = c.Max.X
	}
	if c.Position.Y < c.Min.Y {
		c.Position.Y = c.Min.Y
	}
	if c.Position.Y > c.Max.Y {
		c.Position.Y = c.Max.Y
	}
}

// ToScreen converts a world position to a position relative to the view
func (c *Camera) ToScreen(world geom.Vector2) geom.Vector2 {
	return world.Sub(c.Position)
}
