package pdf

import (
	"fmt"

	gopdf "github.com/dslipak/pdf"
)

// dslipakCaps is narrower than the ledongthuc backend's: glyph metrics
// are approximate, so whole-word boundaries and dehyphenation are not
// offered.
var dslipakCaps = Capabilities{
	IgnoreCase: true,
}

// DslipakDocument implements Document using the dslipak/pdf library
type DslipakDocument struct {
	reader *gopdf.Reader
	pages  []Page
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(filepath string) (Document, error) {
	r, err := gopdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	doc := &DslipakDocument{reader: r}
	if err := doc.initializePages(); err != nil {
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}

	return doc, nil
}

func (d *DslipakDocument) initializePages() error {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := newDslipakPage(d.reader, i)
		if err != nil {
			return fmt.Errorf("failed to initialize page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// GetPage returns a specific page by index (0-based)
func (d *DslipakDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *DslipakDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *DslipakDocument) Close() error {
	d.reader = nil
	d.pages = nil
	return nil
}

// DslipakPage implements Page using dslipak/pdf
type DslipakPage struct {
	pageNumber int
	width      float64
	height     float64
	words      []Word
}

func newDslipakPage(reader *gopdf.Reader, pageNumber int) (p Page, err error) {
	// Same defensive recovery as the ledongthuc backend; both readers
	// share ancestry and panic on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read page %d: %v", pageNumber, r)
		}
	}()

	page := reader.Page(pageNumber)

	// The dslipak reader does not expose MediaBox; assume US Letter.
	width := 612.0
	height := 792.0

	content := page.Content()

	var chars []CharObject
	for _, text := range content.Text {
		runes := []rune(text.S)
		if len(runes) == 0 {
			continue
		}

		// Coordinates are normalized to a top-left origin so both
		// backends report rectangles in the same space.
		fontHeight := text.FontSize
		y0 := height - (text.Y + fontHeight*0.8)

		charWidth := text.W / float64(len(runes))
		x := text.X

		for _, r := range runes {
			if r != ' ' && r != '\n' && r != '\r' {
				chars = append(chars, CharObject{
					Text:     string(r),
					Font:     text.Font,
					FontSize: text.FontSize,
					X0:       x,
					Y0:       y0,
					X1:       x + charWidth,
					Y1:       y0 + fontHeight,
					Width:    charWidth,
					Height:   fontHeight,
				})
			}
			x += charWidth
		}
	}

	return &DslipakPage{
		pageNumber: pageNumber,
		width:      width,
		height:     height,
		words:      segmentWords(chars, defaultXTolerance, defaultYTolerance),
	}, nil
}

// GetPageNumber returns the page number (1-based)
func (p *DslipakPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *DslipakPage) GetWidth() float64 {
	return p.width
}

// GetHeight returns the page height
func (p *DslipakPage) GetHeight() float64 {
	return p.height
}

// ExtractWords returns the page's words in reading order
func (p *DslipakPage) ExtractWords() []Word {
	return p.words
}

// Search runs the native layout-aware search over the page's words
func (p *DslipakPage) Search(fragment string, opts SearchOptions) []BoundingBox {
	return searchWords(p.words, fragment, opts, dslipakCaps)
}

// Capabilities reports what this page's native search supports
func (p *DslipakPage) Capabilities() Capabilities {
	return dslipakCaps
}
