package partsrun

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade timing for a freshly tagged part.
const (
	CollectedAlpha = 0.35
	fadeDuration   = 0.4 // seconds
)

// partFades eases tagged parts from full alpha down to CollectedAlpha. Parts
// with no running fade draw at their resting alpha.
type partFades struct {
	tweens map[int]*gween.Tween
	alpha  map[int]float64
}

func newPartFades() *partFades {
	return &partFades{
		tweens: make(map[int]*gween.Tween),
		alpha:  make(map[int]float64),
	}
}

// start begins a fade for part i.
func (f *partFades) start(i int) {
	f.tweens[i] = gween.New(1, CollectedAlpha, fadeDuration, ease.OutQuad)
	f.alpha[i] = 1
}

// update advances all running fades by dt seconds and drops finished ones.
func (f *partFades) update(dt float32) {
	for i, tw := range f.tweens {
		val, finished := tw.Update(dt)
		if finished {
			delete(f.tweens, i)
			delete(f.alpha, i)
			continue
		}
		f.alpha[i] = float64(val)
	}
}

// partAlpha returns the alpha to draw part i with.
func (f *partFades) partAlpha(i int, p *Part) float64 {
	if !p.Collected {
		return 1
	}
	if a, ok := f.alpha[i]; ok {
		return a
	}
	return CollectedAlpha
}

// active reports how many fades are running.
func (f *partFades) active() int {
	return len(f.tweens)
}
