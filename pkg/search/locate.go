package search

import (
	"sort"
	"strings"

	"github.com/pyhub-apps/pdfpub/pkg/pdf"
)

// Locate finds every occurrence of fragment in the stream's comparison
// text and returns the bounding box of each word overlapped by an
// occurrence, one box per word. The scan resumes one character past
// each match start, so overlapping occurrences are all reported, and
// duplicate boxes across distinct occurrences are preserved.
func Locate(s *Stream, fragment string, caseSensitive bool) []pdf.BoundingBox {
	frag := NormalizeFragment(fragment, caseSensitive)
	if frag == "" {
		return nil
	}

	var rects []pdf.BoundingBox
	from := 0

	for from < len(s.Text) {
		idx := strings.Index(s.Text[from:], frag)
		if idx < 0 {
			break
		}
		matchStart := from + idx
		matchEnd := matchStart + len(frag)

		// First word whose end exceeds the match start, and last word
		// whose start precedes the match end.
		i0 := sort.SearchInts(s.Ends, matchStart+1)
		i1 := sort.SearchInts(s.Starts, matchEnd) - 1

		if i0 <= i1 && i1 < len(s.Words) {
			for i := i0; i <= i1; i++ {
				rects = append(rects, s.Words[i].BBox())
			}
		}

		from = matchStart + 1
	}

	return rects
}

// NormalizeFragment collapses interior whitespace runs to single
// spaces, trims the edges, and case-folds unless caseSensitive is set.
// This mirrors how the stream's comparison text is built.
func NormalizeFragment(fragment string, caseSensitive bool) string {
	frag := strings.Join(strings.Fields(fragment), " ")
	if !caseSensitive {
		frag = pdf.Fold(frag)
	}
	return frag
}
