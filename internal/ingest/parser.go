// Package ingest turns pasted delivery-slip text into structured remito
// drafts. The input is whatever staff copy out of the printed document,
// so everything here is best-effort: a pattern that is absent leaves the
// field empty and a line that cannot be parsed is dropped. No function
// in this package returns an error.
package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"tablero/internal/domain"
)

var (
	numberRe = regexp.MustCompile(`\d{4}-\d{8}`)
	dateRe   = regexp.MustCompile(`\d{2}/\d{2}/(?:\d{4}|\d{2})`)
)

// rejectedLabels are header field labels that disqualify a line from
// being the client-name fallback.
var rejectedLabels = []string{"cuit", "fecha", "tel", "domicilio"}

// ParseDeliveryBlock extracts a remito draft from the three pasted text
// regions: the document header, the quantity/code lines, and the loose
// annotation lines.
func ParseDeliveryBlock(rawHeader, rawLines, rawAnnotations string) domain.RemitoDraft {
	draft := domain.RemitoDraft{
		Number:      numberRe.FindString(rawHeader),
		IssueDate:   dateRe.FindString(rawHeader),
		Client:      extractClient(rawHeader),
		Annotations: rawAnnotations,
	}
	draft.LineItems = MergeAnnotations(parseLineItems(rawLines), rawAnnotations)
	return draft
}

// extractClient scans the header for the client name. An explicit
// "Razón Social:" label wins and stops the scan; the label's value is
// the text after the colon, or the next non-empty line when the label
// stands alone. Without a label, the last line longer than 3 characters
// that is not a known field label is used.
func extractClient(rawHeader string) string {
	lines := strings.Split(rawHeader, "\n")
	fallback := ""

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		norm := normalizeLabel(trimmed)
		if strings.HasPrefix(norm, "razon social") {
			if idx := strings.Index(trimmed, ":"); idx >= 0 {
				if after := strings.TrimSpace(trimmed[idx+1:]); after != "" {
					return after
				}
			}
			// Label on its own line: the value is the next non-empty line.
			for _, next := range lines[i+1:] {
				if v := strings.TrimSpace(next); v != "" {
					return v
				}
			}
			return ""
		}

		if len(trimmed) > 3 && !looksLikeFieldLabel(norm) {
			fallback = trimmed
		}
	}
	return fallback
}

func looksLikeFieldLabel(normalizedLine string) bool {
	for _, label := range rejectedLabels {
		if strings.HasPrefix(normalizedLine, label) {
			return true
		}
	}
	return false
}

// parseLineItems parses "qty code..." lines. The first whitespace token
// is the quantity (comma accepted as decimal separator), the rest is the
// product code. Lines without at least two tokens, or with an
// unparseable or negative quantity, are dropped silently.
func parseLineItems(rawLines string) []domain.LineItem {
	var items []domain.LineItem
	for _, line := range strings.Split(rawLines, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		qty, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", "."), 64)
		if err != nil || qty < 0 {
			continue
		}
		items = append(items, domain.LineItem{
			Code:     strings.Join(fields[1:], " "),
			Quantity: qty,
		})
	}
	return items
}

// normalizeLabel lowercases a line and strips the accents that show up
// in scanned Argentine documents, so label matching works for both
// "Razón Social" and "RAZON SOCIAL".
func normalizeLabel(s string) string {
	s = strings.ToLower(s)
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	)
	return replacer.Replace(s)
}
