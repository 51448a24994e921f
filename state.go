package partsrun

import "time"

// Player defaults.
const (
	PlayerStartX = 120
	PlayerStartY = 520
	PlayerSize   = 28
	PlayerSpeed  = 2.6
)

// Player is the controllable rectangle. Pos is its top-left corner.
type Player struct {
	Pos           Vec2
	Width, Height float64
	Speed         float64 // units per reference frame
}

// NewPlayer returns a player at the default spawn point.
func NewPlayer() Player {
	return Player{
		Pos:    Vec2{PlayerStartX, PlayerStartY},
		Width:  PlayerSize,
		Height: PlayerSize,
		Speed:  PlayerSpeed,
	}
}

// Bounds returns the player's rectangle at its current position.
func (p Player) Bounds() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, Width: p.Width, Height: p.Height}
}

// GameState is everything the frame driver mutates from frame to frame.
type GameState struct {
	Player     Player
	Score      float64
	LastTime   time.Time
	FoundCount int

	// Log holds tag entries, newest first. It grows without bound; only the
	// HUD truncates it.
	Log []string
}

// NewGameState returns a fresh state whose clock starts at now.
func NewGameState(now time.Time) *GameState {
	return &GameState{
		Player:   NewPlayer(),
		LastTime: now,
	}
}

// PushLog prepends entry to the log.
func (s *GameState) PushLog(entry string) {
	s.Log = append(s.Log, "")
	copy(s.Log[1:], s.Log)
	s.Log[0] = entry
}

// RecentLog returns up to n of the newest log entries. The returned slice
// aliases the log and MUST NOT be mutated.
func (s *GameState) RecentLog(n int) []string {
	if n < 0 {
		n = 0
	}
	if len(s.Log) < n {
		return s.Log
	}
	return s.Log[:n]
}
