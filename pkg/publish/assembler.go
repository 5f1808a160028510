package publish

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pyhub-apps/pdfpub/pkg/pdf"
)

// PageMatches holds the rectangles found on one source page.
type PageMatches struct {
	PageIndex int     // 0-based source page index
	Height    float64 // page height, for annotation coordinate conversion
	Rects     []pdf.BoundingBox
}

// Result reports what Assemble produced for one input file.
type Result struct {
	Output       string
	PagesWritten int
	Highlights   int
}

// Assemble copies the pages selected by the policy from input into
// output and applies highlight annotations on the copied pages. When no
// page qualifies, no file is produced and Result.PagesWritten is zero.
// The final file is rewritten with garbage collection and stream
// compression.
func Assemble(input, output string, pageCount int, matches []PageMatches, policy Policy, style Style) (Result, error) {
	included, rank := selectPages(pageCount, matches, policy)

	res := Result{Output: output, PagesWritten: len(included)}
	if len(included) == 0 {
		return res, nil
	}

	selected := make([]string, len(included))
	for i, pageIdx := range included {
		selected[i] = strconv.Itoa(pageIdx + 1)
	}

	conf := model.NewDefaultConfiguration()
	if err := api.TrimFile(input, output, selected, conf); err != nil {
		return res, fmt.Errorf("failed to copy pages: %w", err)
	}

	ctx, err := api.ReadContextFile(output)
	if err != nil {
		return res, fmt.Errorf("failed to reopen output: %w", err)
	}

	for _, m := range matches {
		outNr, ok := rank[m.PageIndex]
		if !ok || len(m.Rects) == 0 {
			continue
		}
		n, err := applyHighlights(ctx, outNr, m.Height, m.Rects, style)
		if err != nil {
			return res, fmt.Errorf("failed to highlight page %d: %w", m.PageIndex+1, err)
		}
		res.Highlights += n
	}

	if err := api.WriteContextFile(ctx, output); err != nil {
		return res, fmt.Errorf("failed to save output: %w", err)
	}
	if err := api.OptimizeFile(output, output, conf); err != nil {
		return res, fmt.Errorf("failed to optimize output: %w", err)
	}

	return res, nil
}

// selectPages resolves the policy into the sorted list of 0-based
// source pages to copy, plus each copied page's 1-based position in the
// output document. A page is included at most once no matter how many
// fragments matched it.
func selectPages(pageCount int, matches []PageMatches, policy Policy) ([]int, map[int]int) {
	included := make(map[int]bool)

	switch policy {
	case AllPages:
		for i := 0; i < pageCount; i++ {
			included[i] = true
		}
	case AlwaysFirstPage:
		if pageCount > 0 {
			included[0] = true
		}
	}

	for _, m := range matches {
		if len(m.Rects) > 0 && m.PageIndex >= 0 && m.PageIndex < pageCount {
			included[m.PageIndex] = true
		}
	}

	pages := make([]int, 0, len(included))
	for i := range included {
		pages = append(pages, i)
	}
	sort.Ints(pages)

	rank := make(map[int]int, len(pages))
	for outNr, src := range pages {
		rank[src] = outNr + 1
	}

	return pages, rank
}
