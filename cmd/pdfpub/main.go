// Command pdfpub extracts pages containing any of the given text
// fragments into <name>-pub.pdf and highlights the matches in yellow.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pyhub-apps/pdfpub"
	"github.com/pyhub-apps/pdfpub/pkg/config"
	"github.com/pyhub-apps/pdfpub/pkg/publish"
)

type textFlags []string

func (t *textFlags) String() string { return fmt.Sprint([]string(*t)) }

func (t *textFlags) Set(v string) error {
	*t = append(*t, v)
	return nil
}

func main() {
	var texts textFlags
	flag.Var(&texts, "t", "text fragment to search for (repeatable)")
	flag.Var(&texts, "text", "text fragment to search for (repeatable)")
	caseSensitive := flag.Bool("case-sensitive", false, "make searches case-sensitive")
	wholeWords := flag.Bool("whole-words", false, "match whole words only (best effort)")
	alwaysFirst := flag.Bool("always-add-first-page", false, "always include the first page in the output")
	includeAll := flag.Bool("include-all-pages", false, "include all pages in the output (still highlights matches)")
	configPath := flag.String("config", "", "optional YAML configuration file")
	jobs := flag.Int("jobs", 0, "process up to N input files concurrently")
	flag.Usage = usage
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 || len(texts) == 0 {
		usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
	}
	if *jobs > 0 {
		cfg.Jobs = *jobs
	}

	opts := pdfpub.Options{
		Fragments:     texts,
		CaseSensitive: *caseSensitive,
		WholeWords:    *wholeWords,
		Policy:        publish.PolicyFromFlags(*alwaysFirst, *includeAll),
		Suffix:        cfg.Suffix,
		Style:         cfg.Style(),
	}

	anyErrors := false
	for _, o := range pdfpub.ProcessAll(inputs, opts, cfg.Jobs) {
		r := o.Result
		switch {
		case o.Err != nil:
			anyErrors = true
			fmt.Fprintf(os.Stderr, "[%s] ERROR: %v\n", r.Input, o.Err)
		case r.PagesWritten == 0:
			fmt.Printf("[%s] No matches found. No output created.\n", r.Input)
		default:
			fmt.Printf("[%s] -> %s | pages: %d | highlights: %d\n", r.Input, r.Output, r.PagesWritten, r.Highlights)
		}
	}
	if anyErrors {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pdfpub [flags] -t <fragment> [-t <fragment> ...] <input.pdf> ...\n\n")
	fmt.Fprintf(os.Stderr, "Extract pages containing any of the given text fragments into\n<name>-pub.pdf and highlight the matches.\n\nFlags:\n")
	flag.PrintDefaults()
}
