package partsrun

import (
	"math"
	"time"
)

// Frame timing. Simulation runs in reference-frame units: dt == 1 is one
// 60 Hz frame.
const (
	ReferenceFrameMs = 16.67
	MaxDelta         = 3.0
)

// Clock returns the current time. Game uses time.Now unless one is injected.
type Clock func() time.Time

// FrameDelta converts the gap between last and now into reference-frame
// units, clamped to MaxDelta so long stalls simulate at most three frames.
func FrameDelta(now, last time.Time) float64 {
	ms := float64(now.Sub(last)) / float64(time.Millisecond)
	return math.Min(ms/ReferenceFrameMs, MaxDelta)
}

// DeltaSeconds converts a reference-frame dt to wall seconds.
func DeltaSeconds(dt float64) float64 {
	return dt * ReferenceFrameMs / 1000
}
