// Package level provides the gameplay scene: one tile level, its player
// and camera, advanced one frame at a time.
package level

import (
	"fmt"
	"image/color"
	"log"

	"github.com/younwookim/ringball/internal/application/render"
	"github.com/younwookim/ringball/internal/application/scene"
	"github.com/younwookim/ringball/internal/application/state"
	"github.com/younwookim/ringball/internal/application/system"
	"github.com/younwookim/ringball/internal/domain/entity"
	"github.com/younwookim/ringball/internal/domain/geom"
	"github.com/younwookim/ringball/internal/infrastructure/config"
)

// Colors for the debug overlay
var (
	colorCollider = color.RGBA{0, 255, 0, 255}
	colorTrigger  = color.RGBA{255, 255, 0, 255}
	colorPlayer   = color.RGBA{0, 255, 0, 255}
	colorContact  = color.RGBA{0, 0, 255, 255}
)

// GridSource supplies numbered level grids
type GridSource interface {
	LoadGrid(level int) (*entity.LevelGrid, error)
}

// Level is the gameplay scene
type Level struct {
	config *config.PhysicsConfig
	source GridSource
	number int

	grid      *entity.LevelGrid
	colliders []entity.Box
	triggers  []entity.Box
	player    *entity.Player
	camera    *entity.Camera
	state     state.GameState

	respawn   geom.Vector2
	rings     int
	contacts  []geom.Vector2
	showDebug bool

	physicsSystem *system.PhysicsSystem
	inputSystem   *system.InputSystem
	triggerSystem *system.TriggerSystem
}

// New creates a level scene for level number of source.
// The grid is read on Load (or OnEnter).
func New(cfg *config.PhysicsConfig, source GridSource, number int) *Level {
	view := geom.Vec(float64(cfg.Display.ScreenWidth), float64(cfg.Display.ScreenHeight))

	return &Level{
		config:        cfg,
		source:        source,
		number:        number,
		player:        entity.NewPlayer(geom.Vector2{}, cfg.Player.Radius, cfg.Player.Lives),
		camera:        entity.NewCamera(view, cfg.Level.CameraBuffer),
		physicsSystem: system.NewPhysicsSystem(cfg),
		inputSystem:   system.NewInputSystem(cfg),
	}
}

// SetDebug turns the collision overlay on or off
func (l *Level) SetDebug(on bool) {
	l.showDebug = on
}

// Load reads the level grid and resets the player and camera.
// On error the current level is left as it was.
func (l *Level) Load() error {
	grid, err := l.source.LoadGrid(l.number)
	if err != nil {
		return fmt.Errorf("failed to load level %d: %w", l.number, err)
	}
	if !grid.HasStart {
		log.Printf("Level %d has no startpoint, spawning at origin", l.number)
	}
	if !grid.HasEnd {
		log.Printf("Level %d has no endpoint", l.number)
	}

	cell := l.config.CellSize()
	levelSize := grid.PixelSize(cell)

	l.grid = grid
	l.triggerSystem = system.NewTriggerSystem(levelSize, l.config.Level.GridSize)
	l.recompile()

	l.camera.SetBoundary(levelSize)
	l.respawn = grid.StartScreenPos(cell)
	l.player = entity.NewPlayer(l.respawn, l.config.Player.Radius, l.config.Player.Lives)
	l.updateCamera()

	l.state = state.StatePlaying
	l.rings = 0
	l.contacts = l.contacts[:0]

	log.Printf("Loaded level %d: %dx%d tiles, %d colliders, %d triggers",
		l.number, grid.Width, grid.Height, len(l.colliders), len(l.triggers))

	return nil
}

// recompile rebuilds colliders and triggers after the grid changed
func (l *Level) recompile() {
	l.colliders, l.triggers = system.Compile(l.grid, l.config.CellSize())
	l.triggerSystem.Rebuild(l.triggers)
}

// OnEnter loads the level (implements scene.Scene)
func (l *Level) OnEnter() error {
	return l.Load()
}

// OnExit implements scene.Scene
func (l *Level) OnExit() {}

// Update advances one frame (implements scene.Scene).
// Frames longer than the stall threshold are dropped whole: nothing
// moves and nothing is drawn.
func (l *Level) Update(dt float64, input system.InputState, sink render.Sink) (scene.Scene, error) {
	if dt > l.config.Physics.StallThreshold || l.grid == nil {
		return nil, nil
	}

	l.contacts = l.contacts[:0]

	if l.state.Running() {
		l.handleKeyInput(input)
		l.contacts = l.physicsSystem.Update(l.player, l.colliders, dt, l.contacts)
		l.handleTriggers()
	} else {
		if input.JustPressed(system.KeyF1) {
			l.showDebug = !l.showDebug
		}
		if input.JustPressed(system.KeyEnter) || input.JustPressed(system.KeyUp) {
			if err := l.Load(); err != nil {
				return nil, err
			}
		}
	}

	l.updateCamera()
	l.draw(sink)

	return nil, nil // nil = stay on this scene
}

func (l *Level) handleKeyInput(input system.InputState) {
	if input.JustPressed(system.KeyF1) {
		l.showDebug = !l.showDebug
	}
	l.inputSystem.UpdatePlayer(l.player, input)
}

// handleTriggers reacts to the triggers the player overlaps this frame
func (l *Level) handleTriggers() {
	cell := l.config.CellSize()
	hits := l.triggerSystem.Overlaps(l.player.ColliderCenter(l.config.ColliderOffset()), l.player.Radius)

	dirty := false
	for _, hit := range hits {
		c := hit.Cell(cell)

		switch hit.Kind {
		case entity.TileRing:
			l.grid.Set(c.X, c.Y, entity.TileEmpty)
			l.rings++
			dirty = true

		case entity.TileCheckpointNotActive:
			l.grid.Set(c.X, c.Y, entity.TileCheckpointActive)
			l.respawn = entity.SpawnAbove(c, cell)
			dirty = true
			log.Printf("Checkpoint reached at (%d, %d)", c.X, c.Y)

		case entity.TileEndpoint:
			if l.state == state.StatePlaying {
				l.state = state.StateLevelComplete
				log.Printf("Level %d complete with %d rings", l.number, l.rings)
			}

		case entity.TileSpike:
			l.loseLife()
			if dirty {
				l.recompile()
			}
			return
		}
	}

	if dirty {
		l.recompile()
	}
}

// loseLife costs one life and respawns, or ends the game on the last one
func (l *Level) loseLife() {
	l.player.Lives--
	if l.player.IsDead() {
		l.player.Lives = 0
		l.state = state.StateGameOver
		log.Printf("Game over on level %d", l.number)
		return
	}

	l.player.Respawn(l.respawn)
	log.Printf("Life lost, %d left", l.player.Lives)
}

func (l *Level) updateCamera() {
	view := l.camera.Size
	l.camera.Follow(l.player.Position, view.Scale(0.5))
}

// Accessors for hosts and tests

func (l *Level) Player() entity.Player {
	return *l.player
}

func (l *Level) Camera() entity.Camera {
	return *l.camera
}

func (l *Level) State() state.GameState {
	return l.state
}

func (l *Level) Rings() int {
	return l.rings
}

func (l *Level) Grid() *entity.LevelGrid {
	return l.grid
}

func (l *Level) Colliders() []entity.Box {
	return l.colliders
}

func (l *Level) Triggers() []entity.Box {
	return l.triggers
}

func (l *Level) ShowDebug() bool {
	return l.showDebug
}
