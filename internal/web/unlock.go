package web

import (
	"io"

	"github.com/a-h/templ"
)

func Unlock() templ.Component {
	return page("Unlock - Dirt Scores", func(w io.Writer) error {
		_, err := io.WriteString(w, `
      <section class="card">
        <h2>Table Passcode</h2>
        <p class="muted">This scoreboard is locked. Enter the table passcode to continue.</p>
        <form id="unlockForm" class="unlock-form">
          <input type="password" name="passcode" placeholder="Passcode" autocomplete="off" required/>
          <button type="submit">Unlock</button>
        </form>
        <div id="unlockResult" class="muted"></div>
      </section>

      <script>
        const form = document.getElementById("unlockForm");
        const result = document.getElementById("unlockResult");
        form.addEventListener("submit", async (event) => {
          event.preventDefault();
          const passcode = new FormData(form).get("passcode");
          const res = await fetch("/api/auth", {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify({ passcode }),
          });
          if (res.ok) {
            window.location.href = "/";
            return;
          }
          result.textContent = "Wrong passcode.";
        });
      </script>
`)
		return err
	})
}
