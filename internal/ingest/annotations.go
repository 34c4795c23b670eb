package ingest

import (
	"strings"
	"unicode"

	"tablero/internal/domain"
)

// MergeAnnotations attaches loose annotation lines to the line items
// whose product code they mention. Fragments are separated by newlines
// or a literal "//". Matching compares whitespace-stripped forms, so
// "R 20 rojos" still reaches the "R20" item. A fragment may attach to
// several items; nothing enforces exclusivity, and merging the same
// text twice duplicates the note suffix. Both are accepted consequences
// of free-text input.
func MergeAnnotations(items []domain.LineItem, annotationText string) []domain.LineItem {
	fragments := splitAnnotations(annotationText)
	if len(fragments) == 0 {
		return items
	}

	merged := make([]domain.LineItem, len(items))
	copy(merged, items)

	for i := range merged {
		code := stripSpaces(merged[i].Code)
		if code == "" {
			continue
		}
		for _, frag := range fragments {
			if !strings.Contains(stripSpaces(frag), code) {
				continue
			}
			note := strings.TrimSpace(strings.ReplaceAll(frag, merged[i].Code, ""))
			if note == "" {
				continue
			}
			if merged[i].Note != "" {
				merged[i].Note += " | " + note
			} else {
				merged[i].Note = note
			}
		}
	}
	return merged
}

func splitAnnotations(text string) []string {
	var fragments []string
	for _, chunk := range strings.Split(strings.ReplaceAll(text, "//", "\n"), "\n") {
		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			fragments = append(fragments, trimmed)
		}
	}
	return fragments
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
