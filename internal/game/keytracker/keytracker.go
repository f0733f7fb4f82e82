// keytracker.go - minimal input utility for Ebiten v2.8.8
// Provides IsKeyJustPressed functionality over any number of keys.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of the keys it has seen.
type KeyStateTracker struct {
	prevPressed map[ebiten.Key]bool
}

// New creates an empty tracker.
func New() *KeyStateTracker {
	return &KeyStateTracker{prevPressed: make(map[ebiten.Key]bool)}
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(key)
	justPressed := pressed && !k.prevPressed[key]
	k.prevPressed[key] = pressed
	return justPressed
}
