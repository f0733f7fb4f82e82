package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rurutoria7/wolfenstein-on-fpga/internal/game/keytracker"
)

// InputHandler polls the keyboard once per tick and applies movement to
// the player. Held keys move and turn; edge-triggered keys toggle the
// stats overlay and save snapshots.
type InputHandler struct {
	game *Game
	keys *keytracker.KeyStateTracker
}

// NewInputHandler creates the input handler for a game.
func NewInputHandler(game *Game) *InputHandler {
	return &InputHandler{
		game: game,
		keys: keytracker.New(),
	}
}

// HandleInput processes one tick of keyboard state.
func (ih *InputHandler) HandleInput() {
	p := ih.game.player

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		p.MoveForward(1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		p.MoveForward(-1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		p.Turn(1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		p.Turn(-1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		p.Strafe(1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		p.Strafe(-1)
	}

	if ih.keys.IsKeyJustPressed(ebiten.KeyF3) {
		ih.game.showStats = !ih.game.showStats
	}
	if ih.keys.IsKeyJustPressed(ebiten.KeyF12) {
		path := "snapshot.png"
		if err := ih.game.fb.SaveScaledPNG(path, ih.game.cfg.Display.WindowScale); err != nil {
			log.Printf("snapshot failed: %v", err)
		} else {
			log.Printf("saved %s", path)
		}
	}
}
