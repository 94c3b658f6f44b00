package web

import (
	"io"

	"github.com/a-h/templ"
)

func Home(games []GameSummary) templ.Component {
	return page("Dirt Scores", func(w io.Writer) error {
		if _, err := io.WriteString(w, `
      <section class="card">
        <h2>Game History</h2>
`); err != nil {
			return err
		}
		if len(games) == 0 {
			if _, err := io.WriteString(w, `        <p class="muted">No games yet. Deal the cards!</p>
`); err != nil {
				return err
			}
		}
		for _, game := range games {
			if _, err := io.WriteString(w, `        <div class="game-item">
          <a class="game-title" href="/games/`+esc(game.Slug)+`">`+esc(game.Title)+`</a>
          <div class="game-meta">`+joinNames(game.Players)+`</div>
          <div class="game-meta">`+esc(game.StartedAt)+` &bull; `+itoa(game.Rounds)+` rounds `+statusBadge(game.Status)+`</div>
        </div>
`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `      </section>
`)
		return err
	})
}
