// Package pdf wraps the text extraction backends and exposes the
// document, page and word model used by the match pipeline.
package pdf

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Default grouping tolerances, in points.
const (
	defaultXTolerance = 3.0
	defaultYTolerance = 3.0
)

// Open opens a PDF file and returns a Document.
// The ledongthuc backend is tried first as it has the most accurate
// text positioning; the dslipak backend serves as fallback.
func Open(filepath string) (Document, error) {
	doc, err := OpenWithLedongthuc(filepath)
	if err == nil {
		return doc, nil
	}

	if doc, derr := OpenWithDslipak(filepath); derr == nil {
		return doc, nil
	}

	return nil, fmt.Errorf("failed to open %s: %w", filepath, err)
}

// Fold returns s with Unicode case folding applied.
func Fold(s string) string {
	// A cases.Caser is stateful, so a fresh one is used per call.
	return cases.Fold().String(s)
}

// segmentWords groups positioned characters into reading-order words.
// Characters are sorted top to bottom then left to right, grouped into
// lines by vertical proximity, and split into words at horizontal gaps.
func segmentWords(chars []CharObject, xTol, yTol float64) []Word {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]CharObject, len(chars))
	copy(sorted, chars)
	sort.Slice(sorted, func(i, j int) bool {
		if abs(sorted[i].Y0-sorted[j].Y0) > yTol {
			return sorted[i].Y0 < sorted[j].Y0
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var lines [][]CharObject
	var current []CharObject
	currentY := sorted[0].Y0

	for _, ch := range sorted {
		if abs(ch.Y0-currentY) > yTol {
			if len(current) > 0 {
				lines = append(lines, current)
			}
			current = []CharObject{ch}
			currentY = ch.Y0
		} else {
			current = append(current, ch)
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}

	var words []Word
	for lineNo, line := range lines {
		words = append(words, wordsFromLine(line, lineNo, xTol)...)
	}

	return words
}

// wordsFromLine splits a single line of characters into words at
// horizontal gaps.
func wordsFromLine(lineChars []CharObject, lineNo int, xTol float64) []Word {
	if len(lineChars) == 0 {
		return nil
	}

	sort.Slice(lineChars, func(i, j int) bool {
		return lineChars[i].X0 < lineChars[j].X0
	})

	var words []Word
	var current []CharObject

	for i, ch := range lineChars {
		if i == 0 {
			current = []CharObject{ch}
			continue
		}
		// A gap wider than the tolerance or a third of the character
		// width starts a new word.
		gap := ch.X0 - lineChars[i-1].X1
		if gap > xTol || gap > ch.Width*0.3 {
			if len(current) > 0 {
				words = append(words, buildWord(current, lineNo, len(words)))
			}
			current = []CharObject{ch}
		} else {
			current = append(current, ch)
		}
	}
	if len(current) > 0 {
		words = append(words, buildWord(current, lineNo, len(words)))
	}

	return words
}

// buildWord merges a group of characters into a Word with the union of
// their bounding boxes.
func buildWord(chars []CharObject, lineNo, wordNo int) Word {
	var text strings.Builder
	minX, minY := chars[0].X0, chars[0].Y0
	maxX, maxY := chars[0].X1, chars[0].Y1

	for _, ch := range chars {
		text.WriteString(ch.Text)
		minX = min(minX, ch.X0)
		minY = min(minY, ch.Y0)
		maxX = max(maxX, ch.X1)
		maxY = max(maxY, ch.Y1)
	}

	return Word{
		Text:   text.String(),
		Line:   lineNo,
		WordNo: wordNo,
		X0:     minX,
		Y0:     minY,
		X1:     maxX,
		Y1:     maxY,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
