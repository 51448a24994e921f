package partsrun

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink is the interface for optional ECS integration.
// When set on a Game, tag events are forwarded to it.
type EventSink interface {
	EmitTag(event TagEvent)
}

// TagEvent describes a part being tagged. Score and Found are the totals
// after the tag was applied.
type TagEvent struct {
	Index int
	Name  string
	Pos   Vec2
	Score float64
	Found int
}

// Game owns the world, the game state and every per-frame system. It
// implements ebiten.Game; the loop has no terminal state.
type Game struct {
	World *World
	State *GameState

	keys     *KeyState
	poller   keyPoller
	renderer Renderer
	hud      *HUD
	fades    *partFades
	fps      fpsOverlay
	clock    Clock
	sink     EventSink

	updateFunc func() error
	debug      bool
	stats      debugStats

	// ShowFPS draws the Ebitengine FPS/TPS readout over the map.
	ShowFPS bool

	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir string

	injectQueue     []syntheticKeyEvent
	screenshotQueue []string
	testRunner      *TestRunner
}

// NewGame creates a game on the default map. The HUD is synced once before
// the first frame.
func NewGame() (*Game, error) {
	hud, err := NewHUD()
	if err != nil {
		return nil, err
	}
	g := &Game{
		World:         NewWorld(),
		keys:          NewKeyState(),
		hud:           hud,
		fades:         newPartFades(),
		clock:         time.Now,
		ScreenshotDir: "screenshots",
	}
	g.State = NewGameState(g.clock())
	g.renderer.PartAlpha = g.fades.partAlpha
	g.syncHUD()
	return g, nil
}

// Keys returns the live key state. Writes are visible to the next frame.
func (g *Game) Keys() *KeyState {
	return g.keys
}

// HUD returns the game's HUD.
func (g *Game) HUD() *HUD {
	return g.hud
}

// SetClock replaces the time source and restarts frame timing from its
// current reading.
func (g *Game) SetClock(c Clock) {
	g.clock = c
	g.State.LastTime = c()
}

// SetEventSink sets the optional ECS bridge.
func (g *Game) SetEventSink(sink EventSink) {
	g.sink = sink
}

// SetUpdateFunc registers fn to run at the end of every Update. A non-nil
// error stops the loop and is returned from ebiten.RunGame.
func (g *Game) SetUpdateFunc(fn func() error) {
	g.updateFunc = fn
}

// SetDebugMode enables or disables periodic timing output on stderr.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// Tick runs one simulation frame at time now: movement, then scoring. The HUD
// is re-synced only on frames that tag at least one part.
func (g *Game) Tick(now time.Time) {
	dt := FrameDelta(now, g.State.LastTime)
	g.State.LastTime = now

	MovePlayer(&g.State.Player, g.keys, g.World.Walls, dt)
	tagged := UpdateScore(g.State, g.World.Parts, dt)

	g.fades.update(float32(DeltaSeconds(dt)))
	if len(tagged) == 0 {
		return
	}
	for _, i := range tagged {
		g.fades.start(i)
		g.emitTag(i)
	}
	g.syncHUD()
}

func (g *Game) syncHUD() {
	g.hud.Sync(g.State, len(g.World.Parts))
}

func (g *Game) emitTag(i int) {
	if g.sink == nil {
		return
	}
	p := &g.World.Parts[i]
	g.sink.EmitTag(TagEvent{
		Index: i,
		Name:  p.Name,
		Pos:   p.Pos,
		Score: g.State.Score,
		Found: g.State.FoundCount,
	})
}

// Update samples input and advances the simulation by one frame.
func (g *Game) Update() error {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	g.drainInjected()
	g.poller.poll(g.keys)
	g.Tick(g.clock())
	g.fps.update()

	if g.updateFunc != nil {
		if err := g.updateFunc(); err != nil {
			return err
		}
	}

	if g.debug {
		g.stats.updateTime = time.Since(t0)
	}
	return nil
}

// Draw repaints the map and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	g.renderer.Draw(screen, g.World, g.State)
	g.hud.Draw(screen)
	if g.ShowFPS {
		g.fps.draw(screen)
	}

	if g.debug {
		g.stats.drawTime = time.Since(t0)
		g.debugFrame()
	}

	g.flushScreenshots(screen)
}

// Layout fixes the logical screen to the map plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return MapWidth, MapHeight + HUDHeight
}

// Run opens a window and runs g until the window is closed. A nil game is a
// no-op: nothing is opened and nil is returned.
func Run(g *Game, cfg RunConfig) error {
	if g == nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(MapWidth*cfg.Scale), int((MapHeight+HUDHeight)*cfg.Scale))
	ebiten.SetTPS(cfg.TPS)

	g.ShowFPS = cfg.ShowFPS
	g.SetDebugMode(cfg.Debug)
	if cfg.ScreenshotDir != "" {
		g.ScreenshotDir = cfg.ScreenshotDir
	}
	g.State.LastTime = g.clock()

	return ebiten.RunGame(g)
}
