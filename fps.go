package partsrun

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows the current FPS and TPS in the map's top-right corner.
// The text refreshes every ~0.5 seconds.
type fpsOverlay struct {
	sinceUpdate float64
	label       string
}

func (o *fpsOverlay) update() {
	o.sinceUpdate += 1 / float64(ebiten.TPS())
	if o.label != "" && o.sinceUpdate < 0.5 {
		return
	}
	o.sinceUpdate = 0
	o.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, o.label, MapWidth-100, 20)
}
