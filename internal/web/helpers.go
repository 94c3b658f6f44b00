package web

import (
	"html"
	"strconv"
	"strings"
)

func esc(text string) string {
	return html.EscapeString(text)
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

func joinNames(names []string) string {
	escaped := make([]string, len(names))
	for i, name := range names {
		escaped[i] = esc(name)
	}
	return strings.Join(escaped, ", ")
}

func statusBadge(status string) string {
	if status == "completed" {
		return `<span class="badge badge-done">Completed</span>`
	}
	return `<span class="badge badge-progress">In Progress</span>`
}
