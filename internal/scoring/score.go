// Package scoring implements the rules of the card game Dirt: per-round
// scores from bids and hands won, round validation against the cards dealt,
// and game progression through to winner determination. Everything here is
// pure; persistence and transport live in internal/server and internal/db.
package scoring

// DeckSize is a standard 52-card deck, no jokers.
const DeckSize = 52

const (
	minPlayers = 2
	maxPlayers = 10
)

// Score computes a single player's score for a round.
//
//	made a zero bid:     10
//	made a nonzero bid:  bid + 10
//	missed the bid:      hands won, no bonus
//
// Both arguments are expected to be non-negative; callers gate input through
// ValidateRound first.
func Score(bid, handsWon int) int {
	if bid == 0 {
		if handsWon == 0 {
			return 10
		}
		return handsWon
	}
	if handsWon == bid {
		return bid + 10
	}
	return handsWon
}

// MaxRounds is the largest round count a table of numPlayers can play: the
// first round deals that many cards to every player.
func MaxRounds(numPlayers int) int {
	if numPlayers <= 0 {
		return 0
	}
	return DeckSize / numPlayers
}

// CardsForRound is how many cards each player is dealt in the given 0-based
// round: numRounds in round 0, counting down to 1 in the last round.
func CardsForRound(numRounds, roundIdx int) int {
	return numRounds - roundIdx
}

// ValidPlayerCount reports whether a table size is playable.
func ValidPlayerCount(numPlayers int) bool {
	return numPlayers >= minPlayers && numPlayers <= maxPlayers
}

// ValidRoundCount reports whether numRounds is playable for the table size.
func ValidRoundCount(numPlayers, numRounds int) bool {
	return numRounds >= 1 && numRounds <= MaxRounds(numPlayers)
}
