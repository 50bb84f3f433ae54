package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointAABB(t *testing.T) {
	min, max := Vec(0, 0), Vec(10, 10)

	tests := []struct {
		name string
		p    Vector2
		want bool
	}{
		{"inside", Vec(5, 5), true},
		{"on min corner", Vec(0, 0), true},
		{"on max edge", Vec(10, 3), true},
		{"left of box", Vec(-0.1, 5), false},
		{"below box", Vec(5, 10.1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointAABB(tt.p, min, max))
		})
	}
}

func TestCircleAABB(t *testing.T) {
	min, max := Vec(0, 0), Vec(64, 64)

	t.Run("circle above box touching top", func(t *testing.T) {
		hit := CircleAABB(Vec(32, -10), 10, min, max)
		assert.True(t, hit.Hit)
		assert.Equal(t, Vec(32, 0), hit.ContactPoint)
	})

	t.Run("circle above box not touching", func(t *testing.T) {
		hit := CircleAABB(Vec(32, -10.5), 10, min, max)
		assert.False(t, hit.Hit)
	})

	t.Run("corner uses euclidean distance", func(t *testing.T) {
		// 7,7 away from the corner is ~9.9 < 10
		hit := CircleAABB(Vec(-7, -7), 10, min, max)
		assert.True(t, hit.Hit)
		assert.Equal(t, Vec(0, 0), hit.ContactPoint)

		// 8,8 away is ~11.3 > 10
		hit = CircleAABB(Vec(-8, -8), 10, min, max)
		assert.False(t, hit.Hit)
	})

	t.Run("center inside box contacts itself", func(t *testing.T) {
		hit := CircleAABB(Vec(20, 30), 5, min, max)
		assert.True(t, hit.Hit)
		assert.Equal(t, Vec(20, 30), hit.ContactPoint)
	})

	t.Run("clamps each axis independently", func(t *testing.T) {
		hit := CircleAABB(Vec(70, 30), 8, min, max)
		assert.True(t, hit.Hit)
		assert.Equal(t, Vec(64, 30), hit.ContactPoint)
	})
}
