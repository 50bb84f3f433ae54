package terminal

import (
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ringball/internal/application/render"
	"github.com/younwookim/ringball/internal/application/scene"
	"github.com/younwookim/ringball/internal/application/system"
	"github.com/younwookim/ringball/internal/domain/geom"
)

func createTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, col, row int) rune {
	r, _, _, _ := screen.GetContent(col, row)
	return r
}

func TestToCell(t *testing.T) {
	tests := []struct {
		pos      geom.Vector2
		col, row int
	}{
		{geom.Vec(0, 0), 0, 0},
		{geom.Vec(31.9, 63.9), 0, 0},
		{geom.Vec(64, 128), 2, 2},
		{geom.Vec(-1, -1), -1, -1},
	}

	for _, tt := range tests {
		col, row := ToCell(tt.pos)
		assert.Equal(t, tt.col, col, "col of %v", tt.pos)
		assert.Equal(t, tt.row, row, "row of %v", tt.pos)
	}
}

func TestSink_Sprite(t *testing.T) {
	screen := createTestScreen(t)
	sink := NewSink(screen, 64, "Ball")

	sink.Begin()
	sink.Sprite("Brick", geom.Vec(64, 128))
	sink.Sprite("Ring", geom.Vec(0, 0))
	sink.Sprite("Ball", geom.Vec(320, 64))
	sink.Sprite("Nope", geom.Vec(0, 64))
	sink.End()

	assert.Equal(t, '█', runeAt(screen, 2, 2))
	assert.Equal(t, '█', runeAt(screen, 3, 2))
	assert.Equal(t, ' ', runeAt(screen, 4, 2))
	assert.Equal(t, 'o', runeAt(screen, 0, 0))
	assert.Equal(t, '●', runeAt(screen, 10, 1))
	assert.Equal(t, '?', runeAt(screen, 0, 1))
}

func TestSink_ClipsOffscreen(t *testing.T) {
	screen := createTestScreen(t)
	sink := NewSink(screen, 64, "Ball")

	assert.NotPanics(t, func() {
		sink.Begin()
		sink.Sprite("Brick", geom.Vec(-64, -64))
		sink.Sprite("Brick", geom.Vec(5000, 5000))
		sink.DebugPoint(geom.Vec(-10, 10), color.RGBA{0, 0, 255, 255})
		sink.End()
	})
}

func TestSink_UIText(t *testing.T) {
	screen := createTestScreen(t)
	sink := NewSink(screen, 64, "Ball")

	sink.Begin()
	sink.Sprite("Brick", geom.Vec(0, 0))
	sink.UIText("Lives : 3")
	sink.UIText("Game over")
	sink.End()

	assert.Equal(t, 'L', runeAt(screen, 0, 0))
	assert.Equal(t, '3', runeAt(screen, 8, 0))
	assert.Equal(t, 'G', runeAt(screen, 0, 1))

	// Next frame starts at the top again
	sink.Begin()
	sink.UIText("Lives : 2")
	sink.End()
	assert.Equal(t, '2', runeAt(screen, 8, 0))
	assert.Equal(t, ' ', runeAt(screen, 0, 1))
}

func TestSink_Debug(t *testing.T) {
	screen := createTestScreen(t)
	sink := NewSink(screen, 64, "Ball")
	green := color.RGBA{0, 255, 0, 255}

	sink.Begin()
	sink.DebugRect(geom.Vec(0, 64), geom.Vec(128, 128), green)
	sink.DebugCircle(geom.Vec(200, 100), 28, green)
	sink.DebugPoint(geom.Vec(300, 300), color.RGBA{0, 0, 255, 255})
	sink.End()

	assert.Equal(t, '+', runeAt(screen, 0, 1))
	assert.Equal(t, '+', runeAt(screen, 3, 1))
	assert.Equal(t, '+', runeAt(screen, 0, 2))
	assert.Equal(t, '+', runeAt(screen, 3, 2))
	assert.Equal(t, '◦', runeAt(screen, 6, 1))
	assert.Equal(t, '*', runeAt(screen, 9, 4))
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker(200 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	assert.False(t, h.Held(system.KeyLeft, t0))

	assert.True(t, h.Press(system.KeyLeft, t0), "first event is a press")
	assert.True(t, h.Held(system.KeyLeft, t0.Add(100*time.Millisecond)))
	assert.True(t, h.Held(system.KeyLeft, t0.Add(200*time.Millisecond)))
	assert.False(t, h.Held(system.KeyLeft, t0.Add(201*time.Millisecond)))

	// Auto-repeat extends the hold without a new press
	assert.False(t, h.Press(system.KeyLeft, t0.Add(150*time.Millisecond)))
	assert.True(t, h.Held(system.KeyLeft, t0.Add(300*time.Millisecond)))

	// After release a new event is a press again
	assert.True(t, h.Press(system.KeyLeft, t0.Add(time.Second)))
	assert.False(t, h.Held(system.KeyRight, t0.Add(time.Second)))
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want system.Key
		ok   bool
	}{
		{"arrow up", tcell.KeyUp, 0, system.KeyUp, true},
		{"arrow left", tcell.KeyLeft, 0, system.KeyLeft, true},
		{"arrow right", tcell.KeyRight, 0, system.KeyRight, true},
		{"arrow down", tcell.KeyDown, 0, system.KeyDown, true},
		{"f1", tcell.KeyF1, 0, system.KeyF1, true},
		{"enter", tcell.KeyEnter, 0, system.KeyEnter, true},
		{"space jumps", tcell.KeyRune, ' ', system.KeyUp, true},
		{"a steers left", tcell.KeyRune, 'a', system.KeyLeft, true},
		{"D steers right", tcell.KeyRune, 'D', system.KeyRight, true},
		{"unmapped rune", tcell.KeyRune, 'x', 0, false},
		{"unmapped key", tcell.KeyTab, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyFor(tt.key, tt.r)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

type mockScene struct {
	updateCalled  int
	onEnterCalled int
	onExitCalled  int
	draw          bool
	nextScene     scene.Scene
	inputs        []system.InputState
}

func (m *mockScene) Update(dt float64, input system.InputState, sink render.Sink) (scene.Scene, error) {
	m.updateCalled++
	m.inputs = append(m.inputs, input)
	if m.draw {
		sink.UIText("frame")
	}
	return m.nextScene, nil
}

func (m *mockScene) OnEnter() error {
	m.onEnterCalled++
	return nil
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func createTestHost(t *testing.T, s scene.Scene) (*Host, tcell.SimulationScreen, *time.Time) {
	t.Helper()
	screen := createTestScreen(t)
	h := NewHost(screen, s, 64, "Ball", 60)
	now := time.Unix(1000, 0)
	h.now = func() time.Time { return now }
	return h, screen, &now
}

func TestHost_StepInput(t *testing.T) {
	s := &mockScene{}
	h, _, now := createTestHost(t, s)

	h.press(system.KeyLeft, *now)
	h.press(system.KeyUp, *now)
	require.NoError(t, h.Step(1.0/60.0))

	in := s.inputs[0]
	assert.Equal(t, []system.Key{system.KeyLeft, system.KeyUp}, in.Pressed)
	assert.True(t, in.Left)
	assert.False(t, in.Right)

	// Auto-repeat keeps the key held without a new press
	*now = now.Add(50 * time.Millisecond)
	h.press(system.KeyLeft, *now)
	require.NoError(t, h.Step(1.0/60.0))
	assert.Empty(t, s.inputs[1].Pressed)
	assert.True(t, s.inputs[1].Left)

	// Released once the hold window passes
	*now = now.Add(time.Second)
	require.NoError(t, h.Step(1.0/60.0))
	assert.False(t, s.inputs[2].Left)
}

func TestHost_StepDrawsFrame(t *testing.T) {
	s := &mockScene{draw: true}
	h, screen, _ := createTestHost(t, s)

	require.NoError(t, h.Step(1.0/60.0))
	assert.Equal(t, 'f', runeAt(screen, 0, 0))

	// An empty frame leaves the last one on screen
	s.draw = false
	require.NoError(t, h.Step(1.0/60.0))
	assert.Equal(t, 'f', runeAt(screen, 0, 0))
}

func TestHost_SceneTransition(t *testing.T) {
	scene2 := &mockScene{}
	scene1 := &mockScene{nextScene: scene2}
	h, _, _ := createTestHost(t, scene1)

	require.NoError(t, h.Step(1.0/60.0))
	require.NoError(t, h.Step(1.0/60.0))

	assert.Equal(t, 1, scene1.onExitCalled)
	assert.Equal(t, 1, scene2.onEnterCalled)
	assert.Equal(t, 1, scene2.updateCalled)
}

func TestHost_HandleEventResizeKeepsRunning(t *testing.T) {
	h, _, _ := createTestHost(t, &mockScene{})

	assert.True(t, h.handleEvent(tcell.NewEventResize(40, 20)))
}

func TestHost_RunStopsWithContext(t *testing.T) {
	s := &mockScene{}
	screen := createTestScreen(t)
	h := NewHost(screen, s, 64, "Ball", 60)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := h.Run(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, s.onEnterCalled)
	assert.Greater(t, s.updateCalled, 0)
}
