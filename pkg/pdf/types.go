package pdf

// BoundingBox represents a rectangular area with coordinates.
// The origin is the top-left corner of the page; Y grows downward.
type BoundingBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// Width returns the width of the bounding box
func (b BoundingBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the bounding box
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Intersects checks if two bounding boxes intersect
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(b.X1 < other.X0 || b.X0 > other.X1 || b.Y1 < other.Y0 || b.Y0 > other.Y1)
}

// CharObject represents a positioned character extracted from a page
type CharObject struct {
	Text     string
	Font     string
	FontSize float64
	X0       float64
	Y0       float64
	X1       float64
	Y1       float64
	Width    float64
	Height   float64
}

// GetBBox returns the character's bounding box
func (c CharObject) GetBBox() BoundingBox {
	return BoundingBox{X0: c.X0, Y0: c.Y0, X1: c.X1, Y1: c.Y1}
}

// Word is a text token extracted from a page, with its reading-order
// position (block, line, word within line) and bounding rectangle.
type Word struct {
	Text   string
	Block  int
	Line   int
	WordNo int
	X0     float64
	Y0     float64
	X1     float64
	Y1     float64
}

// BBox returns the word's bounding box
func (w Word) BBox() BoundingBox {
	return BoundingBox{X0: w.X0, Y0: w.Y0, X1: w.X1, Y1: w.Y1}
}

// SearchOptions modify page text search behavior.
type SearchOptions struct {
	CaseSensitive bool
	WholeWords    bool
}

// Capabilities describes what a backend's native search supports.
// It is resolved once per backend instead of probed per call; options
// the backend cannot honor are silently degraded.
type Capabilities struct {
	IgnoreCase        bool
	WholeWords        bool
	Dehyphenate       bool
	PreserveLigatures bool
}
