package web

import (
	"io"

	"github.com/a-h/templ"
)

func PlayerPage(data PlayerData) templ.Component {
	return page(data.Name+" - Dirt Scores", func(w io.Writer) error {
		if _, err := io.WriteString(w, `
      <section class="card">
        <h2>`+esc(data.Name)+`</h2>
        <div class="stat-grid">
          <div class="stat-box"><div class="stat-value">`+itoa(data.GamesPlayed)+`</div><div class="stat-label">Games Played</div></div>
          <div class="stat-box"><div class="stat-value">`+itoa(data.Wins)+`</div><div class="stat-label">Wins</div></div>
          <div class="stat-box"><div class="stat-value">`+itoa(data.Losses)+`</div><div class="stat-label">Losses</div></div>
          <div class="stat-box"><div class="stat-value">`+itoa(data.TotalPoints)+`</div><div class="stat-label">Total Points</div></div>
        </div>
`); err != nil {
			return err
		}
		if err := gameLinks(w, "In Progress", data.InProgress); err != nil {
			return err
		}
		if err := gameLinks(w, "Completed Games", data.Completed); err != nil {
			return err
		}
		if data.GamesPlayed == 0 && len(data.InProgress) == 0 {
			if _, err := io.WriteString(w, `        <p class="muted">No completed games yet.</p>
`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `      </section>
`)
		return err
	})
}

func gameLinks(w io.Writer, label string, games []PlayerGameLink) error {
	if len(games) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, `        <div class="section-label">`+esc(label)+`</div>
`); err != nil {
		return err
	}
	for _, game := range games {
		won := ""
		if game.Won {
			won = ` <span class="badge badge-done">Won</span>`
		}
		if _, err := io.WriteString(w, `        <div class="game-link-row"><a href="/games/`+esc(game.Slug)+`">`+esc(game.Title)+`</a> <span class="muted">`+esc(game.StartedAt)+`</span>`+won+`</div>
`); err != nil {
			return err
		}
	}
	return nil
}
