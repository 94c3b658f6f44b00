package web

import (
	"io"

	"github.com/a-h/templ"
)

func Scorecard(data ScorecardData) templ.Component {
	return page(data.Title+" - Dirt Scores", func(w io.Writer) error {
		if _, err := io.WriteString(w, `
      <section class="card">
        <h2>`+esc(data.Title)+`</h2>
        <div class="section-label">`+esc(data.StartedAt)+` &bull; `+itoa(len(data.PlayerNames))+` players &bull; `+itoa(data.NumRounds)+` rounds</div>
`); err != nil {
			return err
		}
		if data.Completed && data.WinnerName != "" {
			if _, err := io.WriteString(w, `        <div class="winner-banner">Winner: `+esc(data.WinnerName)+` with `+itoa(data.WinnerTotal)+` pts</div>
`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `        <table class="scorecard">
          <thead>
            <tr><th>Round</th>`); err != nil {
			return err
		}
		for _, name := range data.PlayerNames {
			if _, err := io.WriteString(w, `<th>`+esc(name)+`</th>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr>
          </thead>
          <tbody>
`); err != nil {
			return err
		}
		for _, row := range data.Rows {
			if _, err := io.WriteString(w, `            <tr><td><div class="round-label">`+esc(row.Label)+`</div>`); err != nil {
				return err
			}
			if row.Emoji != "" {
				if _, err := io.WriteString(w, `<div class="round-emoji">`+esc(row.Emoji)+`</div>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</td>`); err != nil {
				return err
			}
			for _, cell := range row.Cells {
				if _, err := io.WriteString(w, `<td>`+itoa(cell.Score)+`<span class="running">= `+itoa(cell.Running)+`</span></td>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tr>
`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `            <tr class="total-row"><td>`+totalLabel(data.Completed)+`</td>`); err != nil {
			return err
		}
		for _, total := range data.Totals {
			if _, err := io.WriteString(w, `<td>`+itoa(total)+`</td>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tr>
          </tbody>
        </table>
      </section>
`)
		return err
	})
}

func totalLabel(completed bool) string {
	if completed {
		return "Final"
	}
	return "Total"
}
