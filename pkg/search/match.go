package search

import (
	"strings"

	"github.com/pyhub-apps/pdfpub/pkg/pdf"
)

// Options control matching across both the native and fallback paths.
type Options struct {
	CaseSensitive bool
	WholeWords    bool
}

// PageRects returns the aggregated highlight rectangles for all
// fragments on one page. Each fragment first goes through the page's
// native search; the word-stream fallback runs only when that finds
// nothing and the fragment may span a line break or hyphenation point.
// The word stream is built at most once per page and shared across
// fragments.
func PageRects(page pdf.Page, fragments []string, opts Options) []pdf.BoundingBox {
	var all []pdf.BoundingBox
	var stream *Stream

	for _, frag := range fragments {
		rects := page.Search(frag, pdf.SearchOptions{
			CaseSensitive: opts.CaseSensitive,
			WholeWords:    opts.WholeWords,
		})

		if len(rects) == 0 && mightSpanLines(frag) {
			if stream == nil {
				stream = NewStream(page.ExtractWords(), opts.CaseSensitive)
			}
			if stream.Text != "" {
				rects = Locate(stream, frag, opts.CaseSensitive)
			}
		}

		all = append(all, rects...)
	}

	return all
}

// mightSpanLines reports whether a fragment could have been broken
// across lines: it contains a space, tab, or hyphen.
func mightSpanLines(frag string) bool {
	return strings.ContainsAny(frag, " \t-")
}
