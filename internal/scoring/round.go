package scoring

import "fmt"

// Round emoji values. A round is happy when every player made their bid and
// sad when nobody did; mixed rounds carry no badge.
const (
	EmojiHappy = "happy"
	EmojiSad   = "sad"
)

// Round is one computed deal-bid-play-score cycle. Entries and Scores are
// seat-ordered, index-aligned with the game's player list.
type Round struct {
	RoundIndex int
	CardsDealt int
	Entries    []Entry
	Scores     []int
	Emoji      string
}

// AllFilled reports whether every entry has a usable bid and, unless GotBid
// is set, a usable hands-won value.
func AllFilled(entries []Entry) bool {
	for _, e := range entries {
		if !e.Bid.Set || e.Bid.Value < 0 {
			return false
		}
		if _, ok := ResolvedHands(e); !ok {
			return false
		}
	}
	return true
}

// HandsTotal sums the resolved hands across entries, counting unfilled
// entries as 0. The total is for display; validity goes through ValidateRound.
func HandsTotal(entries []Entry) int {
	total := 0
	for _, e := range entries {
		if hands, ok := ResolvedHands(e); ok {
			total += hands
		}
	}
	return total
}

// ValidateRound checks the single gating invariant for round submission:
// every entry is filled in and the hands won across the table equal the
// cards dealt, since every card dealt produces exactly one hand won by
// exactly one player.
func ValidateRound(numRounds, roundIdx int, entries []Entry) error {
	cards := CardsForRound(numRounds, roundIdx)
	if cards < 1 {
		return fmt.Errorf("round %d is out of range for a %d-round game", roundIdx+1, numRounds)
	}
	if !AllFilled(entries) {
		return fmt.Errorf("every player needs a bid and hands won")
	}
	if total := HandsTotal(entries); total != cards {
		return fmt.Errorf("hands won must total %d for this round, got %d", cards, total)
	}
	return nil
}

// BuildRound scores a validated set of entries. It is pure and idempotent:
// the same entries always produce the same scores and emoji. Entries that
// fail to resolve score 0; submission paths never reach that case because
// they call ValidateRound first.
func BuildRound(numRounds, roundIdx int, entries []Entry) Round {
	scores := make([]int, len(entries))
	allGot := true
	noneGot := true
	for i, e := range entries {
		if e.GotBid {
			noneGot = false
		} else {
			allGot = false
		}
		hands, ok := ResolvedHands(e)
		if !ok || !e.Bid.Set || e.Bid.Value < 0 {
			continue
		}
		scores[i] = Score(e.Bid.Value, hands)
	}
	emoji := ""
	switch {
	case len(entries) > 0 && allGot:
		emoji = EmojiHappy
	case len(entries) > 0 && noneGot:
		emoji = EmojiSad
	}
	return Round{
		RoundIndex: roundIdx,
		CardsDealt: CardsForRound(numRounds, roundIdx),
		Entries:    entries,
		Scores:     scores,
		Emoji:      emoji,
	}
}
