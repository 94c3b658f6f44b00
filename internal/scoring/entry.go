package scoring

import (
	"encoding/json"
	"strconv"
	"strings"
)

// OptInt is an optional integer. The scorecard client sends bid and hands-won
// values as JSON numbers or as strings, with "" standing for an input the
// player has not filled in yet, so the decoder accepts every form and keeps
// the distinction between zero and unset.
type OptInt struct {
	Value int
	Set   bool
}

// Int returns an OptInt holding value.
func Int(value int) OptInt {
	return OptInt{Value: value, Set: true}
}

func (o *OptInt) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*o = OptInt{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*o = OptInt{}
			return nil
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			// Non-numeric text behaves like an empty input.
			*o = OptInt{}
			return nil
		}
		*o = OptInt{Value: value, Set: true}
		return nil
	}
	var value int
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = OptInt{Value: value, Set: true}
	return nil
}

// MarshalJSON writes unset values as "" so stored entries round-trip in the
// shape the client submitted them.
func (o OptInt) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte(`""`), nil
	}
	return json.Marshal(o.Value)
}

// Entry is one player's line on a round scorecard: what they bid, how many
// hands they actually won, and whether they made their bid exactly. When
// GotBid is set the hands-won input is locked in the UI and the bid value is
// authoritative.
type Entry struct {
	Bid      OptInt `json:"bid"`
	HandsWon OptInt `json:"handsWon"`
	GotBid   bool   `json:"gotBid"`
}

// ResolvedHands is the effective number of hands the entry claims: the bid
// when GotBid is set, otherwise the hands-won input. The second return is
// false while the relevant input is empty or negative.
func ResolvedHands(e Entry) (int, bool) {
	if e.GotBid {
		if !e.Bid.Set || e.Bid.Value < 0 {
			return 0, false
		}
		return e.Bid.Value, true
	}
	if !e.HandsWon.Set || e.HandsWon.Value < 0 {
		return 0, false
	}
	return e.HandsWon.Value, true
}
