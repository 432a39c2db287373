// Package chunker splits long text into bounded pieces at natural boundaries
// so each piece can be sent as its own translation request.
package chunker

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxChars keeps one translated chunk comfortably inside the model's
// output ceiling.
const DefaultMaxChars = 1800

// Separator is reinserted between chunks when a split document is reassembled.
const Separator = "\n\n"

// Split cuts text into ordered pieces of at most maxChars bytes each,
// preferring a blank-line boundary, then a line boundary, then a hard cut.
// Pieces are trimmed and empty pieces dropped; the input is never reordered,
// duplicated, or truncated beyond whitespace at the cut points.
func Split(text string, maxChars int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if maxChars < 1 {
		maxChars = 1
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxChars {
			if piece := strings.TrimSpace(text); piece != "" {
				chunks = append(chunks, piece)
			}
			break
		}

		window := text[:maxChars]
		cut := strings.LastIndex(window, "\n\n")
		if cut <= 0 {
			cut = strings.LastIndex(window, "\n")
		}
		if cut <= 0 {
			cut = hardCut(text, maxChars)
		}

		if piece := strings.TrimSpace(text[:cut]); piece != "" {
			chunks = append(chunks, piece)
		}
		// Skip the whitespace run at the boundary so the scan always advances.
		text = strings.TrimLeft(text[cut:], " \t\r\n")
	}
	return chunks
}

// Join reassembles chunks in order with the canonical separator.
func Join(chunks []string) string {
	return strings.Join(chunks, Separator)
}

// hardCut returns the furthest cut position at or before limit that does not
// split a UTF-8 sequence.
func hardCut(text string, limit int) int {
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	if cut == 0 {
		return limit
	}
	return cut
}
