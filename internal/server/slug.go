package server

import (
	"fmt"
	"strings"
)

// slugFor builds the unique URL-safe permalink identifier for a record:
// the lowercased name with runs of non-alphanumerics collapsed to hyphens,
// suffixed with the row id. The id suffix is what guarantees uniqueness;
// the DB unique index backstops it.
func slugFor(name string, id uint) string {
	base := slugify(name)
	if base == "" {
		base = "x"
	}
	return fmt.Sprintf("%s-%d", base, id)
}

func slugify(text string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
