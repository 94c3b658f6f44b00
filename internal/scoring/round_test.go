package scoring

import (
	"encoding/json"
	"reflect"
	"testing"
)

func entry(bid, hands OptInt, gotBid bool) Entry {
	return Entry{Bid: bid, HandsWon: hands, GotBid: gotBid}
}

func TestEntryDecodesStringsAndNumbers(t *testing.T) {
	raw := `[
		{"bid": "1", "handsWon": "", "gotBid": true},
		{"bid": 2, "handsWon": 2, "gotBid": false},
		{"bid": "", "handsWon": "abc", "gotBid": false}
	]`
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		t.Fatalf("unmarshal entries: %v", err)
	}
	if !entries[0].Bid.Set || entries[0].Bid.Value != 1 {
		t.Fatalf("expected bid 1, got %#v", entries[0].Bid)
	}
	if entries[0].HandsWon.Set {
		t.Fatalf("expected empty handsWon to be unset, got %#v", entries[0].HandsWon)
	}
	if !entries[1].HandsWon.Set || entries[1].HandsWon.Value != 2 {
		t.Fatalf("expected handsWon 2, got %#v", entries[1].HandsWon)
	}
	if entries[2].Bid.Set || entries[2].HandsWon.Set {
		t.Fatalf("expected unparseable inputs to be unset, got %#v", entries[2])
	}
}

func TestEntryRoundTripsUnsetAsEmptyString(t *testing.T) {
	e := entry(Int(1), OptInt{}, true)
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}
	if string(data) != `{"bid":1,"handsWon":"","gotBid":true}` {
		t.Fatalf("unexpected encoding: %s", data)
	}
}

func TestResolvedHands(t *testing.T) {
	if hands, ok := ResolvedHands(entry(Int(3), OptInt{}, true)); !ok || hands != 3 {
		t.Fatalf("expected gotBid entry to resolve to the bid, got %d ok=%v", hands, ok)
	}
	if hands, ok := ResolvedHands(entry(Int(3), Int(1), false)); !ok || hands != 1 {
		t.Fatalf("expected hands-won to win without gotBid, got %d ok=%v", hands, ok)
	}
	if _, ok := ResolvedHands(entry(OptInt{}, OptInt{}, true)); ok {
		t.Fatal("expected gotBid with no bid to be unresolved")
	}
	if _, ok := ResolvedHands(entry(Int(3), Int(-1), false)); ok {
		t.Fatal("expected negative hands to be unresolved")
	}
}

func TestValidateRoundMixed(t *testing.T) {
	// 3 players, 5 rounds, round 0: 5 cards dealt. Bids 1/2/2, two players
	// made their bid and the third won exactly 2.
	entries := []Entry{
		entry(Int(1), OptInt{}, true),
		entry(Int(2), OptInt{}, true),
		entry(Int(2), Int(2), false),
	}
	if err := ValidateRound(5, 0, entries); err != nil {
		t.Fatalf("expected valid round, got %v", err)
	}
	round := BuildRound(5, 0, entries)
	if !reflect.DeepEqual(round.Scores, []int{11, 12, 12}) {
		t.Fatalf("unexpected scores %v", round.Scores)
	}
	if round.Emoji != "" {
		t.Fatalf("expected no emoji on a mixed round, got %q", round.Emoji)
	}
	if round.CardsDealt != 5 {
		t.Fatalf("expected 5 cards dealt, got %d", round.CardsDealt)
	}
}

func TestBuildRoundAllMadeBid(t *testing.T) {
	entries := []Entry{
		entry(Int(1), OptInt{}, true),
		entry(Int(2), OptInt{}, true),
		entry(Int(2), OptInt{}, true),
	}
	if err := ValidateRound(5, 0, entries); err != nil {
		t.Fatalf("expected valid round, got %v", err)
	}
	round := BuildRound(5, 0, entries)
	if !reflect.DeepEqual(round.Scores, []int{11, 12, 12}) {
		t.Fatalf("unexpected scores %v", round.Scores)
	}
	if round.Emoji != EmojiHappy {
		t.Fatalf("expected happy round, got %q", round.Emoji)
	}
}

func TestBuildRoundNobodyMadeBid(t *testing.T) {
	entries := []Entry{
		entry(Int(1), Int(0), false),
		entry(Int(2), Int(0), false),
		entry(Int(2), Int(5), false),
	}
	if err := ValidateRound(5, 0, entries); err != nil {
		t.Fatalf("expected valid round, got %v", err)
	}
	round := BuildRound(5, 0, entries)
	if !reflect.DeepEqual(round.Scores, []int{0, 0, 5}) {
		t.Fatalf("unexpected scores %v", round.Scores)
	}
	if round.Emoji != EmojiSad {
		t.Fatalf("expected sad round, got %q", round.Emoji)
	}
}

func TestValidateRoundRejectsWrongTotal(t *testing.T) {
	entries := []Entry{
		entry(Int(1), Int(1), false),
		entry(Int(2), Int(2), false),
		entry(Int(2), Int(3), false),
	}
	if err := ValidateRound(5, 0, entries); err == nil {
		t.Fatal("expected 6 hands against 5 cards to be rejected")
	}
}

func TestValidateRoundRejectsUnfilled(t *testing.T) {
	entries := []Entry{
		entry(Int(1), OptInt{}, false),
		entry(Int(2), Int(2), false),
		entry(Int(2), Int(2), false),
	}
	if err := ValidateRound(5, 0, entries); err == nil {
		t.Fatal("expected missing hands-won to be rejected")
	}
}

func TestValidateRoundRejectsOutOfRangeIndex(t *testing.T) {
	if err := ValidateRound(5, 5, nil); err == nil {
		t.Fatal("expected round index past the end to be rejected")
	}
}

func TestHandsTotalIgnoresUnfilled(t *testing.T) {
	entries := []Entry{
		entry(Int(1), OptInt{}, false),
		entry(Int(2), Int(3), false),
	}
	if got := HandsTotal(entries); got != 3 {
		t.Fatalf("expected total 3, got %d", got)
	}
}

func TestBuildRoundIdempotent(t *testing.T) {
	entries := []Entry{
		entry(Int(0), OptInt{}, true),
		entry(Int(1), Int(0), false),
	}
	first := BuildRound(1, 0, entries)
	second := BuildRound(1, 0, entries)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical rounds, got %#v vs %#v", first, second)
	}
	if !reflect.DeepEqual(first.Scores, []int{10, 0}) {
		t.Fatalf("unexpected scores %v", first.Scores)
	}
}
