package partsrun

// Direction returns the raw input direction: each axis is -1, 0 or +1 from its
// opposing pair of actions. Holding both keys of a pair cancels out.
func Direction(ks *KeyState) Vec2 {
	var d Vec2
	if ks.Active(ActionUp) {
		d.Y--
	}
	if ks.Active(ActionDown) {
		d.Y++
	}
	if ks.Active(ActionLeft) {
		d.X--
	}
	if ks.Active(ActionRight) {
		d.X++
	}
	return d
}

// MovePlayer advances p along the held direction by Speed*dt. The direction is
// normalized, so diagonals cover the same distance as straight moves. If the
// player's rectangle at the candidate position overlaps any wall the whole
// displacement is discarded; there is no per-axis sliding. Reports whether the
// player moved.
func MovePlayer(p *Player, ks *KeyState, walls []Wall, dt float64) bool {
	dir := Direction(ks)
	if dir.IsZero() {
		return false
	}
	l := dir.Len()
	if l == 0 {
		l = 1
	}
	step := dir.Scale(p.Speed * dt / l)
	next := p.Pos.Add(step)

	candidate := p.Bounds().Moved(next)
	for _, w := range walls {
		if candidate.Overlaps(w) {
			return false
		}
	}
	p.Pos = next
	return true
}
