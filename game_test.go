package partsrun

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(n float64) { c.now = c.now.Add(frames(n)) }

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame()
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func newClockedGame(t *testing.T) (*Game, *fakeClock) {
	t.Helper()
	g := newTestGame(t)
	c := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	g.SetClock(c.Now)
	return g, c
}

type recordingSink struct {
	events []TagEvent
}

func (r *recordingSink) EmitTag(e TagEvent) { r.events = append(r.events, e) }

func TestNewGameInitialHUD(t *testing.T) {
	g := newTestGame(t)
	h := g.HUD()
	if h.Score != "0" || h.Found != "0" || h.Total != "10" {
		t.Errorf("initial HUD = %q %q %q", h.Score, h.Found, h.Total)
	}
	if len(h.Log) != 0 {
		t.Errorf("initial HUD log = %v", h.Log)
	}
}

func TestSetClockResetsLastTime(t *testing.T) {
	g, c := newClockedGame(t)
	if !g.State.LastTime.Equal(c.now) {
		t.Errorf("LastTime = %v, want %v", g.State.LastTime, c.now)
	}
}

func TestTickClampsStall(t *testing.T) {
	g, c := newClockedGame(t)
	g.Keys().Press("ArrowRight")

	c.advance(500)
	g.Tick(c.now)

	wantX := PlayerStartX + PlayerSpeed*MaxDelta
	if math.Abs(g.State.Player.Pos.X-wantX) > 1e-9 {
		t.Errorf("x = %v, want %v", g.State.Player.Pos.X, wantX)
	}
	if g.State.Score != MaxDelta*ScoreRate {
		t.Errorf("score = %v, want %v", g.State.Score, MaxDelta*ScoreRate)
	}
	if !g.State.LastTime.Equal(c.now) {
		t.Error("LastTime should advance to now")
	}
}

func TestTickTagsPart(t *testing.T) {
	g, c := newClockedGame(t)
	sink := &recordingSink{}
	g.SetEventSink(sink)

	part := g.World.Parts[5]
	g.State.Player.Pos = part.Pos
	c.advance(1)
	g.Tick(c.now)

	if !g.World.Parts[5].Collected {
		t.Fatal("part should be collected")
	}
	if g.State.FoundCount != 1 || g.World.FoundCount() != 1 {
		t.Errorf("FoundCount = %d, world = %d", g.State.FoundCount, g.World.FoundCount())
	}
	if g.State.Log[0] != "Tagged: "+part.Name {
		t.Errorf("log[0] = %q", g.State.Log[0])
	}

	if len(sink.events) != 1 {
		t.Fatalf("sink got %d events, want 1", len(sink.events))
	}
	e := sink.events[0]
	if e.Index != 5 || e.Name != part.Name || e.Pos != part.Pos || e.Found != 1 || e.Score != g.State.Score {
		t.Errorf("event = %+v", e)
	}
}

func TestHUDOnlySyncsOnTag(t *testing.T) {
	g, c := newClockedGame(t)

	for range 30 {
		c.advance(1)
		g.Tick(c.now)
	}
	if g.State.Score <= 0 {
		t.Fatal("score should accrue")
	}
	if g.HUD().Score != "0" {
		t.Errorf("HUD score = %q, should lag until a tag", g.HUD().Score)
	}

	g.State.Player.Pos = g.World.Parts[0].Pos
	c.advance(1)
	g.Tick(c.now)
	if g.HUD().Score != "162" {
		t.Errorf("HUD score = %q, want %q", g.HUD().Score, "162")
	}
	if g.HUD().Found != "1" {
		t.Errorf("HUD found = %q", g.HUD().Found)
	}
	if len(g.HUD().Log) != 1 || g.HUD().Log[0] != "Tagged: "+g.World.Parts[0].Name {
		t.Errorf("HUD log = %v", g.HUD().Log)
	}
}

func TestTickStartsFade(t *testing.T) {
	g, c := newClockedGame(t)
	g.State.Player.Pos = g.World.Parts[1].Pos
	c.advance(1)
	g.Tick(c.now)

	if g.fades.active() != 1 {
		t.Fatalf("active fades = %d, want 1", g.fades.active())
	}
	p := &g.World.Parts[1]
	if a := g.renderer.PartAlpha(1, p); a != 1 {
		t.Errorf("alpha right after tag = %v, want 1", a)
	}

	// 0.4s is about 24 reference frames.
	for range 40 {
		c.advance(1)
		g.Tick(c.now)
	}
	if g.fades.active() != 0 {
		t.Errorf("fade should have finished, %d active", g.fades.active())
	}
	if a := g.renderer.PartAlpha(1, p); a != CollectedAlpha {
		t.Errorf("resting alpha = %v, want %v", a, CollectedAlpha)
	}
}

func TestUpdateAppliesInjectedKeys(t *testing.T) {
	g, c := newClockedGame(t)
	g.InjectKeyDown("ArrowDown")

	c.advance(1)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if math.Abs(g.State.Player.Pos.Y-(PlayerStartY+PlayerSpeed)) > 1e-9 {
		t.Errorf("y = %v, want %v", g.State.Player.Pos.Y, PlayerStartY+PlayerSpeed)
	}

	g.InjectKeyUp("ArrowDown")
	c.advance(1)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if math.Abs(g.State.Player.Pos.Y-(PlayerStartY+PlayerSpeed)) > 1e-9 {
		t.Errorf("player should stop after release, y = %v", g.State.Player.Pos.Y)
	}
}

func TestUpdateFuncError(t *testing.T) {
	g, _ := newClockedGame(t)
	errStop := errors.New("stop")
	calls := 0
	g.SetUpdateFunc(func() error {
		calls++
		return errStop
	})
	if err := g.Update(); err != errStop {
		t.Errorf("Update err = %v, want errStop", err)
	}
	if calls != 1 {
		t.Errorf("update func calls = %d", calls)
	}
}

func TestLayout(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	if w != MapWidth || h != MapHeight+HUDHeight {
		t.Errorf("Layout = %dx%d", w, h)
	}
}

func TestRunNilGame(t *testing.T) {
	if err := Run(nil, DefaultRunConfig()); err != nil {
		t.Errorf("Run(nil) = %v, want nil", err)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	g := newTestGame(t)
	cfg := DefaultRunConfig()
	cfg.TPS = 0
	if err := Run(g, cfg); err == nil {
		t.Error("expected config validation error")
	}
}

// TestRandomPlayInvariants drives random input through many frames and checks
// the properties that must hold after every frame.
func TestRandomPlayInvariants(t *testing.T) {
	g, c := newClockedGame(t)
	rng := rand.New(rand.NewPCG(1, 2))
	keys := []string{"w", "a", "s", "d", "arrowup", "arrowdown", "arrowleft", "arrowright"}
	collected := make([]bool, len(g.World.Parts))

	for frame := range 5000 {
		if rng.IntN(10) == 0 {
			k := keys[rng.IntN(len(keys))]
			if g.Keys().Held(k) {
				g.Keys().Release(k)
			} else {
				g.Keys().Press(k)
			}
		}
		c.advance(rng.Float64() * 4)

		before := *g.State
		g.Tick(c.now)
		s := g.State

		if s.Score < before.Score {
			t.Fatalf("frame %d: score decreased %v -> %v", frame, before.Score, s.Score)
		}
		if s.FoundCount != g.World.FoundCount() {
			t.Fatalf("frame %d: FoundCount %d != collected %d", frame, s.FoundCount, g.World.FoundCount())
		}
		for i, w := range g.World.Walls {
			if s.Player.Bounds().Overlaps(w) {
				t.Fatalf("frame %d: player overlaps wall %d", frame, i)
			}
		}
		for i := range g.World.Parts {
			p := &g.World.Parts[i]
			if collected[i] && !p.Collected {
				t.Fatalf("frame %d: part %d un-collected", frame, i)
			}
			if !collected[i] && p.Collected && Dist(s.Player.Pos, p.Pos) >= TagRadius {
				t.Fatalf("frame %d: part %d tagged out of range", frame, i)
			}
			collected[i] = p.Collected
		}
	}
}
