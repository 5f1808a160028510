package pdf

import "testing"

// charRun lays out one character per rune starting at x, 5pt wide.
func charRun(s string, x, y float64) []CharObject {
	var chars []CharObject
	for _, r := range s {
		chars = append(chars, CharObject{
			Text:   string(r),
			X0:     x,
			Y0:     y,
			X1:     x + 5,
			Y1:     y + 10,
			Width:  5,
			Height: 10,
		})
		x += 5
	}
	return chars
}

func TestSegmentWordsEmpty(t *testing.T) {
	if words := segmentWords(nil, defaultXTolerance, defaultYTolerance); words != nil {
		t.Errorf("Expected nil for empty input, got %v", words)
	}
}

func TestSegmentWordsSplitsAtGaps(t *testing.T) {
	chars := append(charRun("Go", 0, 10), charRun("fast", 20, 10)...)

	words := segmentWords(chars, defaultXTolerance, defaultYTolerance)
	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
	if words[0].Text != "Go" || words[1].Text != "fast" {
		t.Errorf("Unexpected word texts: %q, %q", words[0].Text, words[1].Text)
	}
	if words[0].Line != 0 || words[1].Line != 0 {
		t.Errorf("Expected both words on line 0, got %d and %d", words[0].Line, words[1].Line)
	}
	if words[0].WordNo != 0 || words[1].WordNo != 1 {
		t.Errorf("Unexpected word numbers: %d, %d", words[0].WordNo, words[1].WordNo)
	}
}

func TestSegmentWordsGroupsLines(t *testing.T) {
	chars := append(charRun("top", 0, 10), charRun("bottom", 0, 40)...)

	words := segmentWords(chars, defaultXTolerance, defaultYTolerance)
	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
	if words[0].Text != "top" || words[0].Line != 0 {
		t.Errorf("Unexpected first word: %+v", words[0])
	}
	if words[1].Text != "bottom" || words[1].Line != 1 {
		t.Errorf("Unexpected second word: %+v", words[1])
	}
}

func TestSegmentWordsBBoxUnion(t *testing.T) {
	words := segmentWords(charRun("abc", 10, 20), defaultXTolerance, defaultYTolerance)
	if len(words) != 1 {
		t.Fatalf("Expected 1 word, got %d", len(words))
	}

	w := words[0]
	if w.X0 != 10 || w.X1 != 25 || w.Y0 != 20 || w.Y1 != 30 {
		t.Errorf("Unexpected bounding box: (%.1f, %.1f, %.1f, %.1f)", w.X0, w.Y0, w.X1, w.Y1)
	}
}

func TestSegmentWordsUnsortedInput(t *testing.T) {
	// Characters arrive out of reading order; segmentation must sort.
	chars := append(charRun("b", 40, 10), charRun("a", 0, 10)...)

	words := segmentWords(chars, defaultXTolerance, defaultYTolerance)
	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
	if words[0].Text != "a" || words[1].Text != "b" {
		t.Errorf("Expected reading order a, b; got %q, %q", words[0].Text, words[1].Text)
	}
}
