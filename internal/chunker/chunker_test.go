package chunker

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

func normalize(s string) string {
	return whitespaceRuns.ReplaceAllString(strings.TrimSpace(s), " ")
}

func TestSplitEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t\n"} {
		if got := Split(input, 100); len(got) != 0 {
			t.Fatalf("Split(%q) should be empty, got %v", input, got)
		}
	}
}

func TestSplitShortInputIsSinglePiece(t *testing.T) {
	got := Split("  hello world  ", 100)
	if len(got) != 1 || got[0] != "hello world" {
		t.Fatalf("short input should come back as one trimmed piece, got %v", got)
	}
}

func TestSplitPrefersBlankLineBoundary(t *testing.T) {
	text := "first paragraph here.\n\nsecond paragraph here.\nstill second."
	got := Split(text, 40)
	if len(got) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(got), got)
	}
	if got[0] != "first paragraph here." {
		t.Fatalf("first chunk should end at the blank line, got %q", got[0])
	}
	if got[1] != "second paragraph here.\nstill second." {
		t.Fatalf("second chunk wrong: %q", got[1])
	}
}

func TestSplitFallsBackToLineBoundary(t *testing.T) {
	text := "line one goes here\nline two goes here\nline three"
	got := Split(text, 25)
	if len(got) < 2 {
		t.Fatalf("expected a line-boundary split, got %v", got)
	}
	if got[0] != "line one goes here" {
		t.Fatalf("first chunk should end at a newline, got %q", got[0])
	}
}

func TestSplitHardCutOnUnbrokenRun(t *testing.T) {
	text := strings.Repeat("x", 95)
	got := Split(text, 30)
	if len(got) != 4 {
		t.Fatalf("expected 4 hard-cut chunks, got %d", len(got))
	}
	for i, piece := range got[:3] {
		if len(piece) != 30 {
			t.Fatalf("chunk %d should be exactly 30 chars, got %d", i, len(piece))
		}
	}
	if joined := strings.Join(got, ""); joined != text {
		t.Fatal("hard cuts must not drop or duplicate characters")
	}
}

func TestSplitRoundTrip(t *testing.T) {
	paragraphs := []string{
		"Aaji kept the letter folded inside the old copper dabba.",
		"Niraj read it twice before the power cut, once after.",
		"The Ganpati procession outside drowned half of Kavya's reply.",
		"By morning the whole wada knew, the way wadas always know.",
	}
	text := strings.Join(paragraphs, "\n\n")

	// Bounds at or above the longest line, so every cut lands on a
	// textual boundary and the blank-line rejoin is lossless.
	for _, maxChars := range []int{70, 130, 200, 1000} {
		got := Split(text, maxChars)
		if normalize(Join(got)) != normalize(text) {
			t.Fatalf("round trip failed for maxChars=%d", maxChars)
		}
		for i, piece := range got {
			if piece != strings.TrimSpace(piece) {
				t.Fatalf("maxChars=%d chunk %d not trimmed: %q", maxChars, i, piece)
			}
			if len(piece) > maxChars {
				t.Fatalf("maxChars=%d chunk %d exceeds bound: %d chars", maxChars, i, len(piece))
			}
		}
	}
}

func TestSplitDoesNotBreakUTF8(t *testing.T) {
	text := strings.Repeat("गणपती बाप्पा मोरया ", 40)
	for _, maxChars := range []int{10, 35, 101} {
		for i, piece := range Split(text, maxChars) {
			if !utf8.ValidString(piece) {
				t.Fatalf("maxChars=%d chunk %d contains a broken rune", maxChars, i)
			}
		}
	}
}

func TestSplitTerminates(t *testing.T) {
	text := "a\n\n\n\nb\n \n c" + strings.Repeat(" d", 50)
	got := Split(text, 3)
	if len(got) == 0 {
		t.Fatal("expected chunks")
	}
	if normalize(Join(got)) != normalize(text) {
		t.Fatal("whitespace-heavy input lost content")
	}
}
