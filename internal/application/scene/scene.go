// Package scene defines the Scene interface for game screens.
//
// Each screen (menu, adventure, soccer pitch) implements Scene to run its
// own update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one display frame of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay.
	// Returning ebiten.Termination ends the program cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including on shutdown.
	// Recordings are flushed here.
	OnExit()
}

// Factory builds a scene on demand. Scenes hold factories instead of each
// other to keep packages acyclic.
type Factory func() Scene
