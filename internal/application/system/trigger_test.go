package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ringball/internal/domain/entity"
	"github.com/younwookim/ringball/internal/domain/geom"
)

func createTestTriggerSystem(t *testing.T, lines ...string) (*TriggerSystem, []entity.Box) {
	t.Helper()
	grid := createTestGrid(t, lines...)
	_, triggers := Compile(grid, 64)

	sys := NewTriggerSystem(grid.PixelSize(64), 64)
	sys.Rebuild(triggers)
	return sys, triggers
}

func TestTriggerSystem_Overlaps(t *testing.T) {
	sys, triggers := createTestTriggerSystem(t,
		"0,0,0",
		"0,3,0",
		"0,0,4",
	)
	require.Len(t, triggers, 2)

	tests := []struct {
		name   string
		center geom.Vector2
		want   []entity.Tile
	}{
		{name: "inside ring", center: geom.Vec(96, 96), want: []entity.Tile{entity.TileRing}},
		{name: "reaching into spike", center: geom.Vec(160, 135), want: []entity.Tile{entity.TileSpike}},
		{name: "beside ring slab", center: geom.Vec(56, 96), want: []entity.Tile{entity.TileRing}},
		{name: "nothing near", center: geom.Vec(32, 160), want: nil},
		{name: "upper half of spike cell", center: geom.Vec(160, 128), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []entity.Tile
			for _, hit := range sys.Overlaps(tt.center, 28) {
				got = append(got, hit.Kind)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTriggerSystem_TouchingAcrossCellEdge(t *testing.T) {
	sys, triggers := createTestTriggerSystem(t,
		"0,0,0",
		"0,4,0",
		"0,0,0",
	)
	require.Len(t, triggers, 1)
	spike := triggers[0]

	tests := []struct {
		name   string
		center geom.Vector2
	}{
		{name: "from the left cell", center: geom.Vec(36, 112)},
		{name: "from the right cell", center: geom.Vec(156, 112)},
		{name: "from the cell below", center: geom.Vec(96, 156)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, geom.CircleAABB(tt.center, 28, spike.Min(), spike.Max()).Hit)

			hits := sys.Overlaps(tt.center, 28)
			require.Len(t, hits, 1)
			assert.Equal(t, entity.TileSpike, hits[0].Kind)
		})
	}
}

func TestTriggerSystem_CornerMissIsRejected(t *testing.T) {
	sys, _ := createTestTriggerSystem(t,
		"8,0",
		"0,0",
	)

	// Bounding square overlaps the checkpoint cell, the circle does not
	assert.Empty(t, sys.Overlaps(geom.Vec(90, 90), 28))
	assert.Len(t, sys.Overlaps(geom.Vec(80, 80), 28), 1)
}

func TestTriggerSystem_ListOrder(t *testing.T) {
	sys, _ := createTestTriggerSystem(t,
		"0,0,0,0",
		"0,5,3,0",
	)

	hits := sys.Overlaps(geom.Vec(128, 96), 28)

	require.Len(t, hits, 2)
	assert.Equal(t, entity.TileStartpoint, hits[0].Kind)
	assert.Equal(t, entity.TileRing, hits[1].Kind)
}

func TestTriggerSystem_Rebuild(t *testing.T) {
	sys, triggers := createTestTriggerSystem(t, "3,0", "0,0")
	require.NotEmpty(t, sys.Overlaps(geom.Vec(32, 32), 28))

	sys.Rebuild(nil)
	assert.Empty(t, sys.Overlaps(geom.Vec(32, 32), 28))
	assert.Empty(t, sys.Triggers())

	sys.Rebuild(triggers)
	assert.Len(t, sys.Overlaps(geom.Vec(32, 32), 28), 1)
	assert.Equal(t, triggers, sys.Triggers())
}

func TestTriggerSystem_OutsideLevel(t *testing.T) {
	sys, _ := createTestTriggerSystem(t, "5,0", "0,0")

	assert.NotPanics(t, func() {
		assert.Empty(t, sys.Overlaps(geom.Vec(-500, -500), 28))
		assert.Empty(t, sys.Overlaps(geom.Vec(5000, 5000), 28))
	})
	assert.Len(t, sys.Overlaps(geom.Vec(32, -20), 28), 1)
}
