package pdf

// Document represents an open PDF document
type Document interface {
	// GetPage returns a specific page by index (0-based)
	GetPage(index int) (Page, error)

	// PageCount returns the total number of pages
	PageCount() int

	// Close releases resources associated with the document
	Close() error
}

// Page represents a single page in a PDF document
type Page interface {
	// GetPageNumber returns the page number (1-based)
	GetPageNumber() int

	// GetWidth returns the page width
	GetWidth() float64

	// GetHeight returns the page height
	GetHeight() float64

	// ExtractWords returns the page's words in reading order.
	// Callers must not modify the returned slice.
	ExtractWords() []Word

	// Search finds occurrences of fragment on the page and returns one
	// bounding box per overlapped word
	Search(fragment string, opts SearchOptions) []BoundingBox

	// Capabilities reports what this page's native search supports
	Capabilities() Capabilities
}
