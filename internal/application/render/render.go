// Package render defines the draw-call boundary between the simulation
// and whatever presents it.
//
// Scenes submit a frame as a sequence of calls on a Sink. Positions are
// screen-space pixels: the scene has already subtracted the camera.
package render

import (
	"image/color"

	"github.com/younwookim/ringball/internal/domain/geom"
)

// Sink receives one frame of draw calls
type Sink interface {
	// Sprite draws the named sprite with its top-left corner at pos
	Sprite(name string, pos geom.Vector2)

	// DebugRect outlines a box
	DebugRect(pos, size geom.Vector2, c color.RGBA)

	// DebugCircle outlines a circle
	DebugCircle(center geom.Vector2, radius float64, c color.RGBA)

	// DebugPoint marks a single point
	DebugPoint(pos geom.Vector2, c color.RGBA)

	// UIText appends a line of HUD text
	UIText(text string)
}

// CallKind identifies a recorded draw call
type CallKind int

const (
	CallSprite CallKind = iota
	CallDebugRect
	CallDebugCircle
	CallDebugPoint
	CallUIText
)

func (k CallKind) String() string {
	switch k {
	case CallSprite:
		return "Sprite"
	case CallDebugRect:
		return "DebugRect"
	case CallDebugCircle:
		return "DebugCircle"
	case CallDebugPoint:
		return "DebugPoint"
	case CallUIText:
		return "UIText"
	default:
		return "Unknown"
	}
}

// Call is one recorded draw call. Only the fields of its kind are set.
type Call struct {
	Kind     CallKind
	Name     string
	Text     string
	Position geom.Vector2
	Size     geom.Vector2
	Radius   float64
	Color    color.RGBA
}

// Recorder is a Sink that stores calls in submission order
type Recorder struct {
	Calls []Call
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Sprite(name string, pos geom.Vector2) {
	r.Calls = append(r.Calls, Call{Kind: CallSprite, Name: name, Position: pos})
}

func (r *Recorder) DebugRect(pos, size geom.Vector2, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Kind: CallDebugRect, Position: pos, Size: size, Color: c})
}

func (r *Recorder) DebugCircle(center geom.Vector2, radius float64, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Kind: CallDebugCircle, Position: center, Radius: radius, Color: c})
}

func (r *Recorder) DebugPoint(pos geom.Vector2, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Kind: CallDebugPoint, Position: pos, Color: c})
}

func (r *Recorder) UIText(text string) {
	r.Calls = append(r.Calls, Call{Kind: CallUIText, Text: text})
}

// Reset drops all recorded calls, keeping capacity
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Filter returns the recorded calls of one kind
func (r *Recorder) Filter(kind CallKind) []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Kind == kind {
			calls = append(calls, c)
		}
	}
	return calls
}

// Count returns how many calls of one kind were recorded
func (r *Recorder) Count(kind CallKind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Replay submits the recorded calls to another sink
func (r *Recorder) Replay(sink Sink) {
	for _, c := range r.Calls {
		switch c.Kind {
		case CallSprite:
			sink.Sprite(c.Name, c.Position)
		case CallDebugRect:
			sink.DebugRect(c.Position, c.Size, c.Color)
		case CallDebugCircle:
			sink.DebugCircle(c.Position, c.Radius, c.Color)
		case CallDebugPoint:
			sink.DebugPoint(c.Position, c.Color)
		case CallUIText:
			sink.UIText(c.Text)
		}
	}
}
