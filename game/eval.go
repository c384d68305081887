package game

// EvaluateOpenLines compares how many cyclic windows of RunLength cells each
// side can still complete. A window counts for a side when it holds at least
// one of its marks and none of the opponent's. The score is between -1 and 1
// from the perspective of the player to move.
func EvaluateOpenLines(s State) float64 {
	gs, ok := s.(GameState)
	if !ok {
		panic("unexpected state type")
	}
	current, opponent := gs.Board.openWindows(gs.Turn)
	return normalize(float64(current), float64(opponent))
}

func (b Board) openWindows(m Mark) (own, other int) {
	n := b.runLength
	for _, line := range b.lines() {
		size := len(line)
		for i := 0; i < size; i++ {
			mine, theirs := 0, 0
			for j := 0; j < n; j++ {
				switch line[(i+j)%size] {
				case m:
					mine++
				case m.Opponent():
					theirs++
				}
			}
			if mine > 0 && theirs == 0 {
				own++
			} else if theirs > 0 && mine == 0 {
				other++
			}
		}
	}
	return own, other
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
