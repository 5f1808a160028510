// Package publish assembles and writes the output document: page
// selection under the active inclusion policy, highlight annotation,
// and serialization via pdfcpu.
package publish

// Policy determines which source pages appear in the output document
// regardless of match status.
type Policy int

const (
	// MatchedOnly copies only pages with at least one match.
	MatchedOnly Policy = iota

	// AlwaysFirstPage copies the first page unconditionally, plus all
	// matched pages.
	AlwaysFirstPage

	// AllPages copies every source page.
	AllPages
)

// PolicyFromFlags resolves the CLI flag pair; include-all-pages takes
// precedence over always-add-first-page.
func PolicyFromFlags(alwaysFirst, includeAll bool) Policy {
	switch {
	case includeAll:
		return AllPages
	case alwaysFirst:
		return AlwaysFirstPage
	default:
		return MatchedOnly
	}
}

func (p Policy) String() string {
	switch p {
	case AlwaysFirstPage:
		return "always-add-first-page"
	case AllPages:
		return "include-all-pages"
	default:
		return "matched-only"
	}
}
