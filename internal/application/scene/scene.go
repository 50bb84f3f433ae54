// Package scene defines the Scene interface for game screens.
//
// A host owns the clock, the input device and the output device. Each
// frame it hands the current scene the elapsed time, the sampled input
// and a sink for draw calls; the scene never touches a device itself.
package scene

import (
	"github.com/younwookim/ringball/internal/application/render"
	"github.com/younwookim/ringball/internal/application/system"
)

// Scene represents a game screen
//
// The host delegates every frame to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds and submits the frame's
	// draw calls to sink.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64, input system.InputState, sink render.Sink) (next Scene, err error)

	// OnEnter is called when entering this scene.
	// An error aborts the transition.
	OnEnter() error

	// OnExit is called when leaving this scene.
	OnExit()
}
