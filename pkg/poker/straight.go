package poker

import "cardroom-server/pkg/deck"

// bestStraight returns the high card of the best run of {size} consecutive
// ranks in the set, or 0 if there is none. An ace counts both high and low.
func bestStraight(ranks map[int]bool, size int) int {
	if ranks[deck.HighAce] {
		ranks[deck.LowAce] = true
	}

	best := 0
	run := 0
	for rank := deck.LowAce; rank <= deck.HighAce; rank++ {
		if !ranks[rank] {
			run = 0
			continue
		}

		run++
		if run >= size {
			best = rank
		}
	}

	return best
}
