package partsrun

// syntheticKeyEvent represents a single injected key transition.
type syntheticKeyEvent struct {
	key  string
	down bool
}

// InjectKeyDown queues a key press. Queued events are applied at the start of
// the next Update, before real keyboard input is polled.
func (g *Game) InjectKeyDown(key string) {
	g.injectQueue = append(g.injectQueue, syntheticKeyEvent{key: key, down: true})
}

// InjectKeyUp queues a key release.
func (g *Game) InjectKeyUp(key string) {
	g.injectQueue = append(g.injectQueue, syntheticKeyEvent{key: key, down: false})
}

// drainInjected applies and clears all queued synthetic key events.
func (g *Game) drainInjected() {
	for _, ev := range g.injectQueue {
		if ev.down {
			g.keys.Press(ev.key)
		} else {
			g.keys.Release(ev.key)
		}
	}
	g.injectQueue = g.injectQueue[:0]
}
