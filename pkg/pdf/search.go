package pdf

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// searchWords implements the native layout-aware search. Matching is
// per line; with dehyphenation a hyphen-terminated line is additionally
// joined with the first word of the following line. Fragments spanning
// a line break without hyphenation are not found here, which is why the
// word-stream fallback exists.
func searchWords(words []Word, fragment string, opts SearchOptions, caps Capabilities) []BoundingBox {
	frag := strings.Join(strings.Fields(fragment), " ")
	if frag == "" {
		return nil
	}

	fold := !opts.CaseSensitive && caps.IgnoreCase
	if fold {
		frag = Fold(frag)
	}
	wholeWords := opts.WholeWords && caps.WholeWords

	lines := groupLines(words)

	var rects []BoundingBox
	for i, line := range lines {
		rects = append(rects, searchLine(line, frag, wholeWords, fold)...)
		if caps.Dehyphenate && i+1 < len(lines) {
			rects = append(rects, searchHyphenJoin(line, lines[i+1], frag, fold)...)
		}
	}

	return rects
}

// groupLines splits reading-ordered words into runs sharing the same
// block and line.
func groupLines(words []Word) [][]Word {
	var lines [][]Word
	var current []Word

	for _, w := range words {
		if len(current) > 0 && (w.Block != current[0].Block || w.Line != current[0].Line) {
			lines = append(lines, current)
			current = nil
		}
		current = append(current, w)
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}

	return lines
}

// searchLine finds non-overlapping occurrences of frag in the line's
// space-joined text and returns the boxes of every overlapped word.
func searchLine(line []Word, frag string, wholeWords, fold bool) []BoundingBox {
	var b strings.Builder
	starts := make([]int, len(line))
	ends := make([]int, len(line))

	for i, w := range line {
		if i > 0 {
			b.WriteByte(' ')
		}
		t := w.Text
		if fold {
			t = Fold(t)
		}
		starts[i] = b.Len()
		b.WriteString(t)
		ends[i] = b.Len()
	}
	text := b.String()

	var rects []BoundingBox
	from := 0
	for from < len(text) {
		idx := strings.Index(text[from:], frag)
		if idx < 0 {
			break
		}
		matchStart := from + idx
		matchEnd := matchStart + len(frag)

		if wholeWords && !onWordBoundary(text, matchStart, matchEnd) {
			from = matchStart + 1
			continue
		}

		for i := range line {
			if ends[i] > matchStart && starts[i] < matchEnd {
				rects = append(rects, line[i].BBox())
			}
		}
		from = matchEnd
	}

	return rects
}

// searchHyphenJoin matches frag across a hyphenated line break: the
// last word of line minus its trailing hyphen joined with the first
// word of next. Both word boxes are reported when an occurrence
// actually crosses the junction.
func searchHyphenJoin(line, next []Word, frag string, fold bool) []BoundingBox {
	if len(line) == 0 || len(next) == 0 {
		return nil
	}

	last := line[len(line)-1]
	first := next[0]

	head := last.Text
	tail := first.Text
	if fold {
		head = Fold(head)
		tail = Fold(tail)
	}
	if !strings.HasSuffix(head, "-") {
		return nil
	}
	head = strings.TrimSuffix(head, "-")

	joined := head + tail
	from := 0
	for from < len(joined) {
		idx := strings.Index(joined[from:], frag)
		if idx < 0 {
			break
		}
		matchStart := from + idx
		if matchStart < len(head) && matchStart+len(frag) > len(head) {
			return []BoundingBox{last.BBox(), first.BBox()}
		}
		from = matchStart + 1
	}

	return nil
}

// onWordBoundary reports whether the match at [start, end) is not glued
// to a letter or digit on either side.
func onWordBoundary(text string, start, end int) bool {
	if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
