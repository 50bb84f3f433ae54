// Package tmx imports levels drawn in the Tiled map editor.
package tmx

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/younwookim/ringball/internal/domain/entity"
)

// LayerName is the tile layer read when a map has several
const LayerName = "tiles"

// CodeProperty overrides a tileset tile's local ID as its tile code
const CodeProperty = "code"

// GridSource loads level grids from .tmx files.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
type GridSource struct {
	fsys    fs.FS
	pattern string
}

// NewGridSource reads maps from fsys. pattern is a path, optionally with
// a %d verb for the level number (e.g. "levels/Level%d.tmx").
func NewGridSource(fsys fs.FS, pattern string) *GridSource {
	return &GridSource{fsys: fsys, pattern: pattern}
}

// Path returns the map path of a level
func (s *GridSource) Path(level int) string {
	if strings.Contains(s.pattern, "%d") {
		return fmt.Sprintf(s.pattern, level)
	}
	return s.pattern
}

// LoadGrid converts a map's tile layer into a LevelGrid.
// Empty cells are Empty tiles; other cells take the tile's int "code"
// property if set, otherwise its local tile ID.
func (s *GridSource) LoadGrid(level int) (*entity.LevelGrid, error) {
	path := s.Path(level)
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(s.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load TMX %s: %w", path, err)
	}

	layer := findLayer(levelMap)
	if layer == nil {
		return nil, fmt.Errorf("TMX %s has no tile layer", path)
	}
	if len(layer.Tiles) < levelMap.Width*levelMap.Height {
		return nil, fmt.Errorf("TMX %s: layer %q has %d tiles, expected %d",
			path, layer.Name, len(layer.Tiles), levelMap.Width*levelMap.Height)
	}

	grid := entity.NewLevelGrid(levelMap.Width, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}

			code := tileCode(tile)
			t, ok := entity.TileFromCode(code)
			if !ok {
				return nil, fmt.Errorf("TMX %s: tile (%d,%d) has invalid code %d", path, x, y, code)
			}
			grid.Set(x, y, t)
		}
	}

	return grid, nil
}

// findLayer picks the layer named LayerName, else the first tile layer
func findLayer(m *tiled.Map) *tiled.Layer {
	for _, layer := range m.Layers {
		if layer.Name == LayerName {
			return layer
		}
	}
	if len(m.Layers) > 0 {
		return m.Layers[0]
	}
	return nil
}

func tileCode(tile *tiled.LayerTile) int {
	if tile.Tileset != nil {
		if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			if v := tilesetTile.Properties.GetString(CodeProperty); v != "" {
				if code, err := strconv.Atoi(v); err == nil {
					return code
				}
			}
		}
	}
	return int(tile.ID)
}
