package navigation

import (
	"strings"
	"unicode"

	"github.com/louisbranch/appshell/internal/platform/icons"
)

// Entry is one menu item definition.
type Entry struct {
	// Title is the display label and the entry's identity.
	Title string
	// Path is the absolute route path activated by the entry.
	Path string
	// Icon is resolved to a glyph by the icons package at render time.
	Icon icons.Kind
}

// Key returns the rendering identity for an entry: the title slug qualified
// by the path, so entries sharing a label stay distinct.
func (e Entry) Key() string {
	return slug(e.Title) + "@" + e.Path
}

func slug(value string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
