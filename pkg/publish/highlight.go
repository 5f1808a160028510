package publish

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pyhub-apps/pdfpub/pkg/pdf"
)

// Style controls highlight annotation appearance.
type Style struct {
	Color   [3]float64
	Opacity float64
}

// DefaultStyle is a translucent yellow marker.
var DefaultStyle = Style{Color: [3]float64{1, 1, 0}, Opacity: 0.35}

// applyHighlights appends one /Highlight annotation per rectangle to
// the page's Annots array. Rectangles arrive in top-left origin page
// coordinates and are converted to PDF user space here. Rectangles are
// not merged or deduplicated; repeated words produce stacked overlays.
func applyHighlights(ctx *model.Context, pageNr int, pageHeight float64, rects []pdf.BoundingBox, style Style) (int, error) {
	pageDict, _, _, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return 0, fmt.Errorf("failed to get page dict: %w", err)
	}

	var annots types.Array
	if obj, ok := pageDict["Annots"]; ok && obj != nil {
		annots, err = ctx.DereferenceArray(obj)
		if err != nil {
			return 0, fmt.Errorf("failed to resolve Annots: %w", err)
		}
	}

	for _, r := range rects {
		ir, err := ctx.IndRefForNewObject(highlightDict(r, pageHeight, style))
		if err != nil {
			return 0, fmt.Errorf("failed to allocate annotation: %w", err)
		}
		annots = append(annots, *ir)
	}
	pageDict["Annots"] = annots

	return len(rects), nil
}

// highlightDict builds a standard text-markup highlight annotation, so
// any compliant viewer renders it.
func highlightDict(r pdf.BoundingBox, pageHeight float64, style Style) types.Dict {
	// Flip to the PDF's bottom-left origin.
	yBot := pageHeight - r.Y1
	yTop := pageHeight - r.Y0

	return types.Dict{
		"Type":    types.Name("Annot"),
		"Subtype": types.Name("Highlight"),
		"Rect":    types.NewNumberArray(r.X0, yBot, r.X1, yTop),
		// Quad order: upper-left, upper-right, lower-left, lower-right.
		"QuadPoints": types.NewNumberArray(r.X0, yTop, r.X1, yTop, r.X0, yBot, r.X1, yBot),
		"C":          types.NewNumberArray(style.Color[0], style.Color[1], style.Color[2]),
		"CA":         types.Float(style.Opacity),
		"F":          types.Integer(4), // print flag
	}
}
