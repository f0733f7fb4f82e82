package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// drawStats renders the F3 overlay: frame rate, pose, and cache counters.
func (g *Game) drawStats(screen *ebiten.Image) {
	metrics := g.threading.GetPerformanceMetrics()
	px, py, heading := g.player.Pose()

	lines := []string{
		fmt.Sprintf("FPS %.1f  MEM %dMB", metrics.FramesPerSecond, metrics.MemoryUsageMB),
		fmt.Sprintf("POS %d,%d  ANG %d", px, py, heading),
		fmt.Sprintf("COLS %d  HIT %d  MISS %d", metrics.ColumnsRendered, metrics.CacheHits, metrics.CacheMisses),
	}

	face := basicfont.Face7x13
	white := color.RGBA{255, 255, 255, 255}
	for i, line := range lines {
		ebitext.Draw(screen, line, face, 2, 12+i*13, white)
	}

	for i, alert := range g.threading.CheckPerformanceAlerts() {
		y := 12 + (len(lines)+1+i)*13
		ebitext.Draw(screen, alert.Message, face, 2, y, color.RGBA{255, 80, 80, 255})
	}
}
