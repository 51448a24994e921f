package partsrun

// Map dimensions in logical units. The boundary walls enclose this area.
const (
	MapWidth  = 1100
	MapHeight = 620
)

// Wall is an immutable obstacle rectangle.
type Wall = Rect

// Part is a collectible map item. Collected only ever goes from false to true.
type Part struct {
	Name      string
	Pos       Vec2
	Collected bool
}

// World holds the static map geometry and the collectible parts.
type World struct {
	Walls []Wall
	Grass Rect
	Parts []Part
}

// NewWorld builds the default map with every part uncollected.
func NewWorld() *World {
	return &World{
		Walls: DefaultWalls(),
		Grass: DefaultGrass(),
		Parts: DefaultParts(),
	}
}

// FoundCount returns the number of collected parts.
func (w *World) FoundCount() int {
	n := 0
	for i := range w.Parts {
		if w.Parts[i].Collected {
			n++
		}
	}
	return n
}

// DefaultWalls returns the fixed wall layout: four boundary walls followed by
// the interior partitions.
func DefaultWalls() []Wall {
	return []Wall{
		{X: 0, Y: 0, Width: 1100, Height: 14},
		{X: 0, Y: 606, Width: 1100, Height: 14},
		{X: 0, Y: 0, Width: 14, Height: 620},
		{X: 1086, Y: 0, Width: 14, Height: 620},
		{X: 14, Y: 140, Width: 360, Height: 14},
		{X: 340, Y: 140, Width: 14, Height: 240},
		{X: 14, Y: 380, Width: 340, Height: 14},
		{X: 14, Y: 280, Width: 220, Height: 14},
		{X: 580, Y: 14, Width: 14, Height: 300},
		{X: 420, Y: 300, Width: 400, Height: 14},
		{X: 820, Y: 14, Width: 14, Height: 600},
		{X: 580, Y: 460, Width: 240, Height: 14},
	}
}

// DefaultGrass returns the decorative grass patch. It has no collision.
func DefaultGrass() Rect {
	return Rect{X: 420, Y: 474, Width: 400, Height: 132}
}

// DefaultParts returns the fixed set of parts, all uncollected.
func DefaultParts() []Part {
	return []Part{
		{Name: "LED strip (living room)", Pos: Vec2{120, 80}},
		{Name: "Switch (hallway)", Pos: Vec2{260, 210}},
		{Name: "Fuse box (stairs)", Pos: Vec2{600, 40}},
		{Name: "LDR porch light", Pos: Vec2{900, 100}},
		{Name: "Resistor dimmer", Pos: Vec2{480, 360}},
		{Name: "LED night-light", Pos: Vec2{200, 330}},
		{Name: "Garden solar cell", Pos: Vec2{680, 540}},
		{Name: "LDR garden lamp", Pos: Vec2{500, 520}},
		{Name: "Garage resistor pack", Pos: Vec2{940, 400}},
		{Name: "Switch + LED tester", Pos: Vec2{700, 200}},
	}
}
