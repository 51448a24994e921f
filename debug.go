package partsrun

import (
	"fmt"
	"os"
	"time"
)

// debugInterval is how many drawn frames pass between debug lines.
const debugInterval = 60

// debugStats holds per-frame timing. Only populated when Game.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	frames     int
}

// debugFrame counts a drawn frame and prints timing and progress to stderr
// every debugInterval frames.
func (g *Game) debugFrame() {
	g.stats.frames++
	if g.stats.frames%debugInterval != 0 {
		return
	}
	g.debugLog()
}

func (g *Game) debugLog() {
	if !g.debug {
		return
	}
	s := g.State
	_, _ = fmt.Fprintf(os.Stderr,
		"[partsrun] update: %v | draw: %v | total: %v\n",
		g.stats.updateTime, g.stats.drawTime, g.stats.updateTime+g.stats.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[partsrun] pos: (%.1f, %.1f) | score: %.1f | found: %d/%d | fades: %d\n",
		s.Player.Pos.X, s.Player.Pos.Y, s.Score, s.FoundCount, len(g.World.Parts), g.fades.active())
}
