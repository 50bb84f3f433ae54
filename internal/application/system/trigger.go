package system

import (
	"sort"

	"github.com/solarlune/resolv"
	"github.com/younwookim/ringball/internal/domain/entity"
	"github.com/younwookim/ringball/internal/domain/geom"
)

const (
	tagTrigger = "trigger"
	tagProbe   = "probe"
)

// TriggerSystem finds the triggers the player's circle overlaps.
// Trigger boxes live in a resolv space as a broad phase; candidates are
// then tested exactly against the circle.
type TriggerSystem struct {
	space    *resolv.Space
	probe    *resolv.Object
	objects  []*resolv.Object
	triggers []entity.Box
}

// NewTriggerSystem creates a trigger space covering a level of levelSize
// pixels partitioned into cellSize cells
func NewTriggerSystem(levelSize geom.Vector2, cellSize int) *TriggerSystem {
	space := resolv.NewSpace(int(levelSize.X), int(levelSize.Y), cellSize, cellSize)
	probe := resolv.NewObject(0, 0, 1, 1, tagProbe)
	space.Add(probe)

	return &TriggerSystem{space: space, probe: probe}
}

// Rebuild replaces the trigger set
func (s *TriggerSystem) Rebuild(triggers []entity.Box) {
	if len(s.objects) > 0 {
		s.space.Remove(s.objects...)
	}
	s.objects = s.objects[:0]
	s.triggers = triggers

	for i, t := range triggers {
		obj := resolv.NewObject(t.Position.X, t.Position.Y, t.Size.X, t.Size.Y, tagTrigger, t.Kind.String())
		obj.SetShape(resolv.NewRectangle(0, 0, t.Size.X, t.Size.Y))
		obj.Data = i
		s.space.Add(obj)
		s.objects = append(s.objects, obj)
	}
}

// Triggers returns the current trigger set
func (s *TriggerSystem) Triggers() []entity.Box {
	return s.triggers
}

// Overlaps returns the triggers hit by a circle, in trigger-list order
func (s *TriggerSystem) Overlaps(center geom.Vector2, radius float64) []entity.Box {
	// resolv maps a box to the cells under [X, X+W-1], so the probe is
	// padded a pixel each way to reach cells the circle only touches.
	s.probe.X = center.X - radius - 1
	s.probe.Y = center.Y - radius - 1
	s.probe.W = 2*radius + 2
	s.probe.H = 2*radius + 2
	s.probe.Update()

	check := s.probe.Check(0, 0, tagTrigger)
	if check == nil {
		return nil
	}

	var indices []int
	seen := make(map[int]bool, len(check.Objects))
	for _, obj := range check.Objects {
		i, ok := obj.Data.(int)
		if !ok || i >= len(s.triggers) || seen[i] {
			continue
		}
		seen[i] = true
		t := s.triggers[i]
		if geom.CircleAABB(center, radius, t.Min(), t.Max()).Hit {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)

	hits := make([]entity.Box, 0, len(indices))
	for _, i := range indices {
		hits = append(hits, s.triggers[i])
	}
	return hits
}
