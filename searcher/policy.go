package searcher

import "math"

// uct scores children of one parent. The exploration numerator only depends
// on the parent's visits, so it is computed once per selection.
type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// pick returns the index of the child with the highest score. Ties go to the
// earliest child.
func (u uct) pick(children []Node) int {
	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range children {
		_, rewards, visits := child.stats()
		if score := u.evaluate(rewards, visits); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}
