package level

import (
	"fmt"

	"github.com/younwookim/ringball/internal/application/render"
	"github.com/younwookim/ringball/internal/application/state"
	"github.com/younwookim/ringball/internal/domain/entity"
	"github.com/younwookim/ringball/internal/domain/geom"
)

// draw submits the frame: tiles, player, HUD, then the debug overlay
func (l *Level) draw(sink render.Sink) {
	l.drawTiles(sink)
	sink.Sprite(l.config.Player.Sprite, l.camera.ToScreen(l.player.Position))
	l.drawUI(sink)

	if l.showDebug {
		l.drawDebug(sink)
	}
}

// drawTiles emits every visible non-empty tile, column by column
func (l *Level) drawTiles(sink render.Sink) {
	cell := l.config.CellSize()
	for x := 0; x < l.grid.Width; x++ {
		for y := 0; y < l.grid.Height; y++ {
			tile := l.grid.At(x, y)
			if tile == entity.TileEmpty {
				continue
			}

			pos := geom.Vec(float64(x)*cell, float64(y)*cell)
			if l.camera.IsWithinView(pos) {
				sink.Sprite(tile.String(), l.camera.ToScreen(pos))
			}
		}
	}
}

func (l *Level) drawUI(sink render.Sink) {
	sink.UIText(fmt.Sprintf("Lives : %d", l.player.Lives))

	switch l.state {
	case state.StateLevelComplete:
		sink.UIText(fmt.Sprintf("Level complete! Rings : %d (Enter to replay)", l.rings))
	case state.StateGameOver:
		sink.UIText("Game over (Enter to retry)")
	}
}

func (l *Level) drawDebug(sink render.Sink) {
	for _, c := range l.colliders {
		sink.DebugRect(l.camera.ToScreen(c.Position), c.Size, colorCollider)
	}
	for _, t := range l.triggers {
		sink.DebugRect(l.camera.ToScreen(t.Position), t.Size, colorTrigger)
	}

	center := l.player.ColliderCenter(l.config.ColliderOffset())
	sink.DebugCircle(l.camera.ToScreen(center), l.player.Radius, colorPlayer)

	for _, p := range l.contacts {
		sink.DebugPoint(l.camera.ToScreen(p), colorContact)
	}
}
