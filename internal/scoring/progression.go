package scoring

// Game status values as stored and served.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// TotalThrough is a player's running total strictly before roundIdx: the sum
// of their scores over rounds 0..roundIdx-1. Shown next to each cell while a
// round is being entered.
func TotalThrough(rounds []Round, seat, roundIdx int) int {
	total := 0
	for _, r := range rounds {
		if r.RoundIndex >= roundIdx {
			continue
		}
		if seat >= 0 && seat < len(r.Scores) {
			total += r.Scores[seat]
		}
	}
	return total
}

// FinalTotals sums every completed round per seat. Totals are always
// recomputed from the full round list so that editing a historical round
// flows through to every downstream number.
func FinalTotals(rounds []Round, numPlayers int) []int {
	totals := make([]int, numPlayers)
	for _, r := range rounds {
		for seat := 0; seat < numPlayers && seat < len(r.Scores); seat++ {
			totals[seat] += r.Scores[seat]
		}
	}
	return totals
}

// Winner is the seat index holding the highest final total. Ties go to the
// first seat in player order to reach the max; dual winners are not
// represented. Returns -1 for an empty table.
func Winner(totals []int) int {
	if len(totals) == 0 {
		return -1
	}
	winner := 0
	for seat, total := range totals {
		if total > totals[winner] {
			winner = seat
		}
	}
	return winner
}

// NextRound is the index of the round awaiting entry given the rounds
// recorded so far, or ok=false once all numRounds rounds are in. Rounds are
// recorded contiguously from 0, so the pointer is simply the count.
func NextRound(numRounds int, rounds []Round) (int, bool) {
	if len(rounds) >= numRounds {
		return 0, false
	}
	return len(rounds), true
}

// IsComplete reports whether every round of the game has been recorded.
func IsComplete(numRounds int, rounds []Round) bool {
	_, ok := NextRound(numRounds, rounds)
	return !ok
}
