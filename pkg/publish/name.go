package publish

import (
	"path/filepath"
	"strings"
)

// DefaultSuffix is appended to the input base name for output files.
const DefaultSuffix = "-pub"

// OutputName derives the output path for an input file. For
// path/name.pdf the result is path/name<suffix>.pdf; other extensions
// are kept in place and .pdf appended.
func OutputName(input, suffix string) string {
	ext := filepath.Ext(input)
	if strings.ToLower(ext) != ".pdf" {
		return input + suffix + ".pdf"
	}
	return strings.TrimSuffix(input, ext) + suffix + ".pdf"
}
