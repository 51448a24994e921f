package partsrun

import "fmt"

// Scoring constants.
const (
	ScoreRate = 2.0   // score per dt unit
	TagRadius = 28.0  // a part is tagged when strictly closer than this
	TagBonus  = 100.0 // flat score per tagged part
)

// TagEntry formats the log line written when a part is tagged.
func TagEntry(name string) string {
	return fmt.Sprintf("Tagged: %s", name)
}

// UpdateScore accrues dt*ScoreRate, then tags every uncollected part within
// TagRadius of the player's position. Each tag sets Collected, increments
// FoundCount, adds TagBonus and prepends a log entry. Returns the indices of
// the parts tagged this call, in part order; nil when nothing was tagged.
func UpdateScore(s *GameState, parts []Part, dt float64) []int {
	s.Score += dt * ScoreRate

	var tagged []int
	for i := range parts {
		p := &parts[i]
		if p.Collected {
			continue
		}
		if Dist(s.Player.Pos, p.Pos) >= TagRadius {
			continue
		}
		p.Collected = true
		s.FoundCount++
		s.Score += TagBonus
		s.PushLog(TagEntry(p.Name))
		tagged = append(tagged, i)
	}
	return tagged
}
