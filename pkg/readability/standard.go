package readability

import (
	"fmt"
	"math"
)

// textStandard consolidates the individual formulas into one grade label.
// Each grade-scaled formula votes with its rounded and ceiled value; the
// reading-ease score votes through its published grade bands. The most common
// grade wins, with ties going to the earliest vote.
func textStandard(ease, fkGrade, smog, coleman, ari, daleChall, linsear, fog float64) string {
	votes := make([]int, 0, 16)
	addPair := func(score float64) {
		votes = append(votes, int(math.Round(score)), int(math.Ceil(score)))
	}

	addPair(fkGrade)

	switch {
	case ease >= 90:
		votes = append(votes, 5)
	case ease >= 80:
		votes = append(votes, 6)
	case ease >= 70:
		votes = append(votes, 7)
	case ease >= 60:
		votes = append(votes, 8, 9)
	case ease >= 50:
		votes = append(votes, 10)
	case ease >= 40:
		votes = append(votes, 11)
	case ease >= 30:
		votes = append(votes, 12)
	default:
		votes = append(votes, 13)
	}

	addPair(smog)
	addPair(coleman)
	addPair(ari)
	addPair(daleChall)
	addPair(linsear)
	addPair(fog)

	counts := make(map[int]int, len(votes))
	order := make([]int, 0, len(votes))
	for _, v := range votes {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	best := order[0]
	for _, v := range order {
		if counts[v] > counts[best] {
			best = v
		}
	}

	return fmt.Sprintf("%dth and %dth grade", best, best+1)
}
