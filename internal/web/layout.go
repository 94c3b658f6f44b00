package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func page(title string, body func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`+esc(title)+`</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <div class="app">
      <header class="header">
        <h1><a href="/">DIRT</a></h1>
        <p>Card Game Score Tracker</p>
        <nav><a href="/rules">Rules</a></nav>
      </header>
`); err != nil {
			return err
		}
		if err := body(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `
    </div>
  </body>
</html>
`)
		return err
	})
}
