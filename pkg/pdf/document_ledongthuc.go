package pdf

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"
)

// ledongthucCaps is resolved once for the backend; ledongthuc delivers
// accurate glyph positions, so the full search feature set is on.
var ledongthucCaps = Capabilities{
	IgnoreCase:  true,
	WholeWords:  true,
	Dehyphenate: true,
}

// LedongthucDocument implements Document using the ledongthuc/pdf library
type LedongthucDocument struct {
	file   io.Closer
	reader *lpdf.Reader
	pages  []Page
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string) (Document, error) {
	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	doc := &LedongthucDocument{file: f, reader: r}
	if err := doc.initializePages(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}

	return doc, nil
}

func (d *LedongthucDocument) initializePages() error {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := newLedongthucPage(d.reader, i)
		if err != nil {
			return fmt.Errorf("failed to initialize page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// GetPage returns a specific page by index (0-based)
func (d *LedongthucDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// LedongthucPage implements Page using ledongthuc/pdf
type LedongthucPage struct {
	pageNumber int
	width      float64
	height     float64
	words      []Word
}

func newLedongthucPage(reader *lpdf.Reader, pageNumber int) (p Page, err error) {
	// The underlying reader panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read page %d: %v", pageNumber, r)
		}
	}()

	page := reader.Page(pageNumber)

	// Page dimensions from MediaBox, defaulting to US Letter.
	width := 612.0
	height := 792.0

	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		// MediaBox is [x0, y0, x1, y1]
		width = mediaBox.Index(2).Float64() - mediaBox.Index(0).Float64()
		height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	}

	chars := charsFromContent(page.Content(), height)

	return &LedongthucPage{
		pageNumber: pageNumber,
		width:      width,
		height:     height,
		words:      segmentWords(chars, defaultXTolerance, defaultYTolerance),
	}, nil
}

// charsFromContent splits positioned text runs into per-character
// objects with top-left origin coordinates.
func charsFromContent(content lpdf.Content, pageHeight float64) []CharObject {
	var chars []CharObject

	for _, text := range content.Text {
		runes := []rune(text.S)
		if len(runes) == 0 {
			continue
		}

		// text.Y is the baseline; the baseline sits at roughly 80% of
		// the font height.
		fontHeight := text.FontSize
		y0 := pageHeight - (text.Y + fontHeight*0.8)

		charWidth := text.W / float64(len(runes))
		x := text.X

		for _, r := range runes {
			if r != ' ' {
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

	return chars
}

// GetPageNumber returns the page number (1-based)
func (p *LedongthucPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *LedongthucPage) GetWidth() float64 {
	return p.width
}

// GetHeight returns the page height
func (p *LedongthucPage) GetHeight() float64 {
	return p.height
}

// ExtractWords returns the page's words in reading order
func (p *LedongthucPage) ExtractWords() []Word {
	return p.words
}

// Search runs the native layout-aware search over the page's words
func (p *LedongthucPage) Search(fragment string, opts SearchOptions) []BoundingBox {
	return searchWords(p.words, fragment, opts, ledongthucCaps)
}

// Capabilities reports what this page's native search supports
func (p *LedongthucPage) Capabilities() Capabilities {
	return ledongthucCaps
}
