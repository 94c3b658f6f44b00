package web

import (
	"io"

	"github.com/a-h/templ"
)

func Rules() templ.Component {
	return page("How to Play - Dirt Scores", func(w io.Writer) error {
		_, err := io.WriteString(w, `
      <section class="card rules">
        <h2>How to Play Dirt</h2>

        <h3>Overview</h3>
        <p>Dirt is a card hand-taking game where players bid the number of hands they
        expect to take each round. Points are earned by accurately predicting and
        achieving your bid.</p>

        <h3>The Deck</h3>
        <p>Played with a standard 52-card deck, no jokers. Ace is high.
        <strong>Diamonds is always trump.</strong></p>

        <h3>The Deal</h3>
        <p>For a game with N rounds, each player receives N cards in Round 1, N-1 in
        Round 2, and so on down to 1 card in the final round. Remaining cards form a
        discard pile and are not used.</p>

        <h3>Bidding</h3>
        <p>After the deal, each player bids the number of hands they believe they will
        win. Bidding starts left of the dealer and goes clockwise. A bid of zero is
        allowed.</p>

        <h3>Play</h3>
        <ul>
          <li>The player left of the dealer leads the first hand with any card.</li>
          <li>Going clockwise, players must follow suit if possible.</li>
          <li>If a player cannot follow suit, they may play any card including a trump (Diamond).</li>
          <li>The highest card in the led suit wins, unless a trump is played, in which case the highest trump wins.</li>
          <li>The hand winner leads the next hand.</li>
        </ul>

        <h3>Scoring</h3>
        <ul>
          <li><strong>Made your bid:</strong> Bid + 10 points. (e.g. bid 3, win 3 = 13 pts)</li>
          <li><strong>Over your bid:</strong> Only hands won, no bonus. (e.g. bid 3, win 4 = 4 pts)</li>
          <li><strong>Under your bid:</strong> Only hands won, no bonus. (e.g. bid 3, win 2 = 2 pts)</li>
          <li><strong>Zero bid made:</strong> 10 points.</li>
          <li><strong>Zero bid failed:</strong> Only hands won. (e.g. bid 0, win 2 = 2 pts)</li>
        </ul>

        <h3>Winning</h3>
        <p>After all rounds are complete, the player with the highest total score wins
        the game.</p>

        <h3>Next Round</h3>
        <p>The player who started play in the previous round becomes the dealer for the
        next round.</p>
      </section>
`)
		return err
	})
}
