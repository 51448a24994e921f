package partsrun

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette used by the renderer.
var (
	ColorBackground   = Hex(0x0b1428)
	ColorGrid         = Color{R: 1, G: 1, B: 1, A: 0.04}
	ColorGrass        = Hex(0x0f2c22)
	ColorWall         = Hex(0x475569)
	ColorPart         = Hex(0xfbbf24)
	ColorPartOutline  = Color{A: 0.4}
	ColorPlayer       = Hex(0x38bdf8)
	ColorPlayerStroke = Hex(0x0ea5e9)
)

// Renderer layout.
const (
	GridSpacing = 40
	PartRadius  = 12
)

// Renderer paints the map, parts and player. It never mutates game state.
type Renderer struct {
	// PartAlpha overrides the alpha a part is drawn with. When nil, collected
	// parts draw at CollectedAlpha and the rest at full alpha.
	PartAlpha func(i int, p *Part) float64
}

// Draw repaints the whole map area, back to front: background, grid, grass,
// walls, parts, player.
func (r *Renderer) Draw(screen *ebiten.Image, w *World, s *GameState) {
	drawBackground(screen, w.Grass)
	drawWalls(screen, w.Walls)
	r.drawParts(screen, w.Parts)
	drawPlayer(screen, s.Player)
}

func drawBackground(screen *ebiten.Image, grass Rect) {
	fillRect(screen, Rect{Width: MapWidth, Height: MapHeight}, ColorBackground)

	grid := ColorGrid.RGBA()
	for x := 0; x < MapWidth; x += GridSpacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), MapHeight, 1, grid, false)
	}
	for y := 0; y < MapHeight; y += GridSpacing {
		vector.StrokeLine(screen, 0, float32(y), MapWidth, float32(y), 1, grid, false)
	}

	fillRect(screen, grass, ColorGrass)
}

func drawWalls(screen *ebiten.Image, walls []Wall) {
	for _, w := range walls {
		fillRect(screen, w, ColorWall)
	}
}

func (r *Renderer) drawParts(screen *ebiten.Image, parts []Part) {
	outline := ColorPartOutline.RGBA()
	for i := range parts {
		p := &parts[i]
		alpha := 1.0
		switch {
		case r.PartAlpha != nil:
			alpha = r.PartAlpha(i, p)
		case p.Collected:
			alpha = CollectedAlpha
		}
		cx, cy := float32(p.Pos.X), float32(p.Pos.Y)
		vector.DrawFilledCircle(screen, cx, cy, PartRadius, ColorPart.WithAlpha(alpha).RGBA(), true)
		vector.StrokeCircle(screen, cx, cy, PartRadius, 1, outline, true)
	}
}

func drawPlayer(screen *ebiten.Image, p Player) {
	b := p.Bounds()
	fillRect(screen, b, ColorPlayer)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
		1, ColorPlayerStroke.RGBA(), false)
}

func fillRect(screen *ebiten.Image, r Rect, c Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		c.RGBA(), false)
}
