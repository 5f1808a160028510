// Package search implements fragment matching over a page's linearized
// word stream. It is the fallback used when a page's native search
// misses a fragment that likely spans a line break or hyphenation
// point.
package search

import (
	"sort"
	"strings"

	"github.com/pyhub-apps/pdfpub/pkg/pdf"
)

// Stream is a page's linearized word representation: the words in
// reading order, a comparison string with word texts joined by single
// spaces, and per-word half-open [start, end) offsets into it.
// Starts and Ends are non-decreasing, so occurrences can be mapped back
// to words with binary searches.
type Stream struct {
	Words  []pdf.Word
	Text   string
	Starts []int
	Ends   []int
}

// NewStream builds a Stream from a page's words. The comparison text is
// case-folded unless caseSensitive is set; folding is applied per word
// before offsets are recorded so the offsets stay in sync with the
// folded text.
func NewStream(words []pdf.Word, caseSensitive bool) *Stream {
	s := &Stream{}
	if len(words) == 0 {
		return s
	}

	ordered := make([]pdf.Word, len(words))
	copy(ordered, words)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Block != b.Block {
			return a.Block < b.Block
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.WordNo < b.WordNo
	})

	var b strings.Builder
	starts := make([]int, len(ordered))
	ends := make([]int, len(ordered))

	for i, w := range ordered {
		t := w.Text
		if !caseSensitive {
			t = pdf.Fold(t)
		}
		starts[i] = b.Len()
		b.WriteString(t)
		ends[i] = b.Len()
		b.WriteByte(' ')
	}

	s.Words = ordered
	// Only the trailing separator is trimmed; each end offset was fixed
	// before its separator was appended, so recorded offsets stay valid.
	s.Text = strings.TrimRight(b.String(), " ")
	s.Starts = starts
	s.Ends = ends

	return s
}
