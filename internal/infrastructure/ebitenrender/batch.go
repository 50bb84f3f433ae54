// Package ebitenrender presents recorded frames on an ebiten screen.
package ebitenrender

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/younwookim/ringball/internal/application/render"
	"github.com/younwookim/ringball/internal/domain/entity"
	"github.com/younwookim/ringball/internal/domain/geom"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{137, 207, 240, 255}
	colorBrick     = color.RGBA{150, 75, 45, 255}
	colorBrickEdge = color.RGBA{90, 45, 25, 255}
	colorSlope     = color.RGBA{120, 120, 130, 255}
	colorRing      = color.RGBA{255, 215, 0, 255}
	colorSpike     = color.RGBA{200, 200, 210, 255}
	colorStart     = color.RGBA{60, 180, 75, 255}
	colorEnd       = color.RGBA{220, 40, 40, 255}
	colorPole      = color.RGBA{80, 60, 40, 255}
	colorFlagOn    = color.RGBA{60, 220, 90, 255}
	colorFlagOff   = color.RGBA{140, 140, 140, 255}
	colorBall      = color.RGBA{220, 30, 30, 255}
	colorMissing   = color.RGBA{255, 0, 255, 255}
	colorText      = color.RGBA{255, 255, 255, 255}
)

const (
	textLineHeight = 22
	textMarginLeft = 10
	textMarginTop  = 24

	debugPointSize  float32 = 4
	debugStrokeSize float32 = 1
)

// Batch is a render.Sink that collects one frame of draw calls and
// replays the last complete frame onto an ebiten screen.
// A frame with no calls (a dropped frame) keeps the previous one on screen.
type Batch struct {
	pending *render.Recorder
	frame   *render.Recorder

	face       font.Face
	cellSize   float32
	ballSprite string
	ballRadius float32
}

// NewBatch creates a batch drawing cells of cellSize pixels. The sprite
// named ballSprite is drawn as a ball of ballRadius.
func NewBatch(cellSize float64, ballSprite string, ballRadius float64) (*Batch, error) {
	face, err := NewFace(16)
	if err != nil {
		return nil, err
	}

	return &Batch{
		pending:    render.NewRecorder(),
		frame:      render.NewRecorder(),
		face:       face,
		cellSize:   float32(cellSize),
		ballSprite: ballSprite,
		ballRadius: float32(ballRadius),
	}, nil
}

// Begin starts collecting a new frame
func (b *Batch) Begin() {
	b.pending.Reset()
}

// End completes the frame. An empty frame is discarded.
func (b *Batch) End() {
	if len(b.pending.Calls) == 0 {
		return
	}
	b.frame, b.pending = b.pending, b.frame
}

// Frame returns the calls of the last complete frame
func (b *Batch) Frame() []render.Call {
	return b.frame.Calls
}

func (b *Batch) Sprite(name string, pos geom.Vector2) {
	b.pending.Sprite(name, pos)
}

func (b *Batch) DebugRect(pos, size geom.Vector2, c color.RGBA) {
	b.pending.DebugRect(pos, size, c)
}

func (b *Batch) DebugCircle(center geom.Vector2, radius float64, c color.RGBA) {
	b.pending.DebugCircle(center, radius, c)
}

func (b *Batch) DebugPoint(pos geom.Vector2, c color.RGBA) {
	b.pending.DebugPoint(pos, c)
}

func (b *Batch) UIText(text string) {
	b.pending.UIText(text)
}

// Draw renders the last complete frame
func (b *Batch) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	line := 0
	for _, c := range b.frame.Calls {
		x, y := float32(c.Position.X), float32(c.Position.Y)

		switch c.Kind {
		case render.CallSprite:
			b.drawSprite(screen, c.Name, x, y)
		case render.CallDebugRect:
			vector.StrokeRect(screen, x, y, float32(c.Size.X), float32(c.Size.Y), debugStrokeSize, c.Color, false)
		case render.CallDebugCircle:
			vector.StrokeCircle(screen, x, y, float32(c.Radius), debugStrokeSize, c.Color, true)
		case render.CallDebugPoint:
			half := debugPointSize / 2
			vector.FillRect(screen, x-half, y-half, debugPointSize, debugPointSize, c.Color, false)
		case render.CallUIText:
			text.Draw(screen, c.Text, b.face, textMarginLeft, textMarginTop+line*textLineHeight, colorText)
			line++
		}
	}
}

// drawSprite draws a placeholder shape for a named sprite at (x, y)
func (b *Batch) drawSprite(screen *ebiten.Image, name string, x, y float32) {
	s := b.cellSize

	if name == b.ballSprite {
		vector.FillCircle(screen, x+s/2, y+s/2, b.ballRadius, colorBall, true)
		return
	}

	tile, ok := entity.TileFromName(name)
	if !ok {
		vector.FillRect(screen, x, y, s, s, colorMissing, false)
		return
	}

	switch tile {
	case entity.TileBrick:
		vector.FillRect(screen, x, y, s, s, colorBrick, false)
		vector.StrokeRect(screen, x, y, s, s, 2, colorBrickEdge, false)
	case entity.TileSlope:
		vector.FillRect(screen, x, y+s/2, s, s/2, colorSlope, false)
	case entity.TileRing:
		vector.StrokeCircle(screen, x+s/2, y+s/2, s/4, 4, colorRing, true)
	case entity.TileSpike:
		vector.FillRect(screen, x, y+s/2, s, s/2, colorSpike, false)
	case entity.TileStartpoint:
		vector.StrokeRect(screen, x+4, y+4, s-8, s-8, 2, colorStart, false)
	case entity.TileEndpoint:
		vector.StrokeRect(screen, x+4, y+4, s-8, s-8, 2, colorEnd, false)
	case entity.TileCheckpointActive:
		b.drawFlag(screen, x, y, colorFlagOn)
	case entity.TileCheckpointNotActive:
		b.drawFlag(screen, x, y, colorFlagOff)
	}
}

func (b *Batch) drawFlag(screen *ebiten.Image, x, y float32, flag color.RGBA) {
	s := b.cellSize
	vector.FillRect(screen, x+s/2-2, y, 4, s, colorPole, false)
	vector.FillRect(screen, x+s/2+2, y+4, s/3, s/4, flag, false)
}
