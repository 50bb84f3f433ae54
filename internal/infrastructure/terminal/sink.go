// Package terminal runs the game in a text terminal through tcell.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/ringball/internal/domain/entity"
	"github.com/younwookim/ringball/internal/domain/geom"
)

// Pixel size of one terminal cell. Terminal cells are about twice as tall
// as they are wide, so a square sprite spans two columns and one row.
const (
	CellWidth  = 32.0
	CellHeight = 64.0
)

type glyph struct {
	r     rune
	style tcell.Style
}

func rgb(r, g, b int32) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(r, g, b))
}

var (
	tileGlyphs = map[entity.Tile]glyph{
		entity.TileBrick:               {'█', rgb(150, 75, 45)},
		entity.TileSlope:               {'▄', rgb(120, 120, 130)},
		entity.TileRing:                {'o', rgb(255, 215, 0)},
		entity.TileSpike:               {'^', rgb(200, 200, 210)},
		entity.TileStartpoint:          {'S', rgb(60, 180, 75)},
		entity.TileEndpoint:            {'E', rgb(220, 40, 40)},
		entity.TileCheckpointActive:    {'F', rgb(60, 220, 90)},
		entity.TileCheckpointNotActive: {'f', rgb(140, 140, 140)},
	}
	ballGlyph    = glyph{'●', rgb(220, 30, 30)}
	missingGlyph = glyph{'?', rgb(255, 0, 255)}
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// Sink draws frames onto a tcell screen as glyphs
type Sink struct {
	screen     tcell.Screen
	spriteSize float64
	ballSprite string
	line       int
}

// NewSink creates a sink for sprites of spriteSize pixels. The sprite
// named ballSprite is drawn as the ball.
func NewSink(screen tcell.Screen, spriteSize float64, ballSprite string) *Sink {
	return &Sink{screen: screen, spriteSize: spriteSize, ballSprite: ballSprite}
}

// Begin clears the screen for a new frame
func (s *Sink) Begin() {
	s.screen.Clear()
	s.line = 0
}

// End shows the frame
func (s *Sink) End() {
	s.screen.Show()
}

// ToCell converts a screen pixel position to a terminal cell
func ToCell(pos geom.Vector2) (col, row int) {
	return int(math.Floor(pos.X / CellWidth)), int(math.Floor(pos.Y / CellHeight))
}

func (s *Sink) Sprite(name string, pos geom.Vector2) {
	g := missingGlyph
	if name == s.ballSprite {
		g = ballGlyph
	} else if tile, ok := entity.TileFromName(name); ok {
		if tg, ok := tileGlyphs[tile]; ok {
			g = tg
		}
	}

	col, row := ToCell(pos)
	cols := int(math.Max(1, math.Round(s.spriteSize/CellWidth)))
	rows := int(math.Max(1, math.Round(s.spriteSize/CellHeight)))
	for dy := 0; dy < rows; dy++ {
		for dx := 0; dx < cols; dx++ {
			s.set(col+dx, row+dy, g.r, g.style)
		}
	}
}

func (s *Sink) DebugRect(pos, size geom.Vector2, c color.RGBA) {
	style := colorStyle(c)
	x0, y0 := ToCell(pos)
	x1, y1 := ToCell(pos.Add(size).Sub(geom.Vec(1, 1)))
	s.set(x0, y0, '+', style)
	s.set(x1, y0, '+', style)
	s.set(x0, y1, '+', style)
	s.set(x1, y1, '+', style)
}

func (s *Sink) DebugCircle(center geom.Vector2, radius float64, c color.RGBA) {
	col, row := ToCell(center)
	s.set(col, row, '◦', colorStyle(c))
}

func (s *Sink) DebugPoint(pos geom.Vector2, c color.RGBA) {
	col, row := ToCell(pos)
	s.set(col, row, '*', colorStyle(c))
}

// UIText writes a line of text under the previous one, from the top left
func (s *Sink) UIText(text string) {
	col := 0
	for _, r := range text {
		s.set(col, s.line, r, textStyle)
		col++
	}
	s.line++
}

func (s *Sink) set(col, row int, r rune, style tcell.Style) {
	w, h := s.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	s.screen.SetContent(col, row, r, nil, style)
}

func colorStyle(c color.RGBA) tcell.Style {
	return rgb(int32(c.R), int32(c.G), int32(c.B))
}
