package system

import (
	"github.com/younwookim/ringball/internal/domain/entity"
	"github.com/younwookim/ringball/internal/domain/geom"
)

// Compile derives the collision geometry of a grid.
//
// Wall cells are merged into boxes by a greedy run-length pass over a
// scratch copy of the tiles (y outer, x inner): a wall first absorbs the
// walls to its right; only if it absorbed none does it absorb the walls
// below it. Merged cells are cleared in the scratch copy so each wall ends
// up in exactly one box. The result is not a minimal rectangle cover.
//
// Special cells become triggers: rings a centered half-width slab, spikes
// the lower half of the cell, start/end markers and inactive checkpoints
// the full cell. Active checkpoints and slopes produce nothing.
//
// The grid itself is never modified and every call returns fresh slices.
func Compile(grid *entity.LevelGrid, cellSize float64) (colliders, triggers []entity.Box) {
	scratch := grid.Clone().Tiles

	w, h := grid.Width, grid.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tile := scratch[y*w+x]
			pos := geom.Vec(float64(x)*cellSize, float64(y)*cellSize)

			switch tile {
			case entity.TileEmpty:
				continue

			case entity.TileWall:
				mergedW, mergedH := 1, 1

				// Horizontal run
				for i := x + 1; i < w; i++ {
					if scratch[y*w+i] != entity.TileWall {
						break
					}
					scratch[y*w+i] = entity.TileEmpty
					mergedW++
				}

				// Vertical run, only for walls that did not merge sideways
				if mergedW == 1 {
					for j := y + 1; j < h; j++ {
						if scratch[j*w+x] != entity.TileWall {
							break
						}
						scratch[j*w+x] = entity.TileEmpty
						mergedH++
					}
				}

				colliders = append(colliders, entity.Box{
					Kind:     tile,
					Position: pos,
					Size:     geom.Vec(float64(mergedW)*cellSize, float64(mergedH)*cellSize),
				})

			case entity.TileRing:
				triggers = append(triggers, entity.Box{
					Kind:     tile,
					Position: pos.Add(geom.Vec(cellSize/4, 0)),
					Size:     geom.Vec(cellSize/2, cellSize),
				})

			case entity.TileSpike:
				triggers = append(triggers, entity.Box{
					Kind:     tile,
					Position: pos.Add(geom.Vec(0, cellSize/2)),
					Size:     geom.Vec(cellSize, cellSize/2),
				})

			case entity.TileStartpoint, entity.TileEndpoint, entity.TileCheckpointNotActive:
				triggers = append(triggers, entity.Box{
					Kind:     tile,
					Position: pos,
					Size:     geom.Vec(cellSize, cellSize),
				})
			}
		}
	}

	return colliders, triggers
}
