package scoring

import "testing"

func TestScoreZeroBid(t *testing.T) {
	if got := Score(0, 0); got != 10 {
		t.Fatalf("expected made zero bid to score 10, got %d", got)
	}
	if got := Score(0, 2); got != 2 {
		t.Fatalf("expected failed zero bid to score hands only, got %d", got)
	}
}

func TestScoreMadeBid(t *testing.T) {
	for bid := 1; bid <= 13; bid++ {
		if got := Score(bid, bid); got != bid+10 {
			t.Fatalf("Score(%d, %d) = %d, expected %d", bid, bid, got, bid+10)
		}
	}
}

func TestScoreMissedBid(t *testing.T) {
	cases := []struct {
		bid, hands, want int
	}{
		{3, 4, 4},
		{3, 2, 2},
		{5, 0, 0},
		{1, 7, 7},
	}
	for _, tc := range cases {
		if got := Score(tc.bid, tc.hands); got != tc.want {
			t.Fatalf("Score(%d, %d) = %d, expected %d", tc.bid, tc.hands, got, tc.want)
		}
	}
}

func TestScoreNeverNegative(t *testing.T) {
	for bid := 0; bid <= 10; bid++ {
		for hands := 0; hands <= 10; hands++ {
			if got := Score(bid, hands); got < 0 {
				t.Fatalf("Score(%d, %d) = %d, expected non-negative", bid, hands, got)
			}
		}
	}
}

func TestMaxRounds(t *testing.T) {
	cases := []struct {
		players, want int
	}{
		{2, 26},
		{3, 17},
		{4, 13},
		{10, 5},
	}
	for _, tc := range cases {
		if got := MaxRounds(tc.players); got != tc.want {
			t.Fatalf("MaxRounds(%d) = %d, expected %d", tc.players, got, tc.want)
		}
	}
}

func TestCardsForRound(t *testing.T) {
	if got := CardsForRound(5, 0); got != 5 {
		t.Fatalf("expected 5 cards in round 1, got %d", got)
	}
	if got := CardsForRound(5, 4); got != 1 {
		t.Fatalf("expected 1 card in the final round, got %d", got)
	}
}

func TestValidCounts(t *testing.T) {
	if ValidPlayerCount(1) || ValidPlayerCount(11) {
		t.Fatal("expected 1 and 11 players to be rejected")
	}
	if !ValidPlayerCount(2) || !ValidPlayerCount(10) {
		t.Fatal("expected 2 and 10 players to be accepted")
	}
	if ValidRoundCount(3, 0) || ValidRoundCount(3, 18) {
		t.Fatal("expected out-of-range round counts to be rejected")
	}
	if !ValidRoundCount(3, 17) {
		t.Fatal("expected 17 rounds for 3 players to be accepted")
	}
}
