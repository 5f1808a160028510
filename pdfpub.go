// Package pdfpub extracts the pages of a PDF that contain any of a set
// of text fragments into a new document and highlights each match.
package pdfpub

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/pyhub-apps/pdfpub/pkg/pdf"
	"github.com/pyhub-apps/pdfpub/pkg/publish"
	"github.com/pyhub-apps/pdfpub/pkg/search"
)

// Re-export types from the engine packages for the public API
type (
	BoundingBox = pdf.BoundingBox
	Word        = pdf.Word
	Policy      = publish.Policy
	Style       = publish.Style
)

// Options control one processing run.
type Options struct {
	// Fragments to search for; a page matches if any fragment matches.
	Fragments []string

	CaseSensitive bool
	WholeWords    bool
	Policy        publish.Policy

	// Suffix for the output name; publish.DefaultSuffix when empty.
	Suffix string

	// Style of the highlight marker; publish.DefaultStyle when zero.
	Style publish.Style
}

// Result reports what processing one input produced.
type Result struct {
	Input        string
	Output       string
	PagesWritten int
	Highlights   int
}

// Outcome pairs a result with the error that aborted it, if any.
type Outcome struct {
	Result Result
	Err    error
}

// Process runs the full pipeline for one input file: scan all pages for
// fragment matches, copy the qualifying pages into the output document,
// and highlight the matches there. No output file is produced when zero
// pages qualify.
func Process(input string, opts Options) (Result, error) {
	res := Result{Input: input}

	if _, err := os.Stat(input); err != nil {
		return res, err
	}

	suffix := opts.Suffix
	if suffix == "" {
		suffix = publish.DefaultSuffix
	}
	style := opts.Style
	if style == (publish.Style{}) {
		style = publish.DefaultStyle
	}

	doc, err := pdf.Open(input)
	if err != nil {
		return res, err
	}
	defer doc.Close()

	matchOpts := search.Options{
		CaseSensitive: opts.CaseSensitive,
		WholeWords:    opts.WholeWords,
	}

	var matches []publish.PageMatches
	for i := 0; i < doc.PageCount(); i++ {
		page, err := doc.GetPage(i)
		if err != nil {
			return res, fmt.Errorf("failed to load page %d: %w", i+1, err)
		}
		rects := search.PageRects(page, opts.Fragments, matchOpts)
		if len(rects) == 0 {
			continue
		}
		matches = append(matches, publish.PageMatches{
			PageIndex: i,
			Height:    page.GetHeight(),
			Rects:     rects,
		})
	}

	out, err := publish.Assemble(input, publish.OutputName(input, suffix), doc.PageCount(), matches, opts.Policy, style)
	if err != nil {
		return res, err
	}

	res.Output = out.Output
	res.PagesWritten = out.PagesWritten
	res.Highlights = out.Highlights
	return res, nil
}

// ProcessAll processes each input independently; jobs bounds how many
// run at once. Outcomes are returned in input order, and one input's
// failure does not stop the others.
func ProcessAll(inputs []string, opts Options, jobs int) []Outcome {
	outcomes := make([]Outcome, len(inputs))
	if jobs < 1 {
		jobs = 1
	}

	var g errgroup.Group
	g.SetLimit(jobs)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			res, err := Process(input, opts)
			outcomes[i] = Outcome{Result: res, Err: err}
			return nil
		})
	}
	g.Wait()

	return outcomes
}
