// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/ringball/internal/application/render"
	"github.com/younwookim/ringball/internal/application/scene"
	"github.com/younwookim/ringball/internal/application/system"
)

// InputSource samples one frame of input
type InputSource interface {
	GetInput() system.InputState
}

// Presenter collects a frame of draw calls and puts the last complete
// frame on screen
type Presenter interface {
	render.Sink
	Begin()
	End()
	Draw(screen *ebiten.Image)
}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current   scene.Scene
	input     InputSource
	presenter Presenter
	screenW   int
	screenH   int

	// Frame timing
	now     func() time.Time
	last    time.Time
	firstDT float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, input InputSource, presenter Presenter, screenW, screenH, tps int) (*Game, error) {
	g := &Game{
		current:   initialScene,
		input:     input,
		presenter: presenter,
		screenW:   screenW,
		screenH:   screenH,
		now:       time.Now,
		firstDT:   1.0 / float64(tps),
	}
	if err := g.current.OnEnter(); err != nil {
		return nil, fmt.Errorf("failed to enter initial scene: %w", err)
	}
	return g, nil
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	dt := g.tick()
	input := g.input.GetInput()
	if input.JustPressed(system.KeyEscape) {
		return ebiten.Termination
	}

	g.presenter.Begin()
	next, err := g.current.Update(dt, input, g.presenter)
	g.presenter.End()
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		if err := g.current.OnEnter(); err != nil {
			return fmt.Errorf("failed to enter scene: %w", err)
		}
	}

	return nil
}

// tick returns the wall-clock time since the previous Update.
// The first frame has no predecessor and gets one nominal tick.
func (g *Game) tick() float64 {
	now := g.now()
	dt := g.firstDT
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now
	return dt
}

// Draw renders the last complete frame.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.presenter.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetClock replaces the time source
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}
