package publish

import (
	"testing"

	"github.com/pyhub-apps/pdfpub/pkg/pdf"
)

func matchOn(pageIdx int) PageMatches {
	return PageMatches{
		PageIndex: pageIdx,
		Height:    792,
		Rects:     []pdf.BoundingBox{{X0: 10, Y0: 20, X1: 60, Y1: 32}},
	}
}

func TestSelectPagesMatchedOnly(t *testing.T) {
	pages, rank := selectPages(5, []PageMatches{matchOn(2)}, MatchedOnly)
	if len(pages) != 1 || pages[0] != 2 {
		t.Fatalf("Expected only page 2, got %v", pages)
	}
	if rank[2] != 1 {
		t.Errorf("Expected page 2 at output position 1, got %d", rank[2])
	}
}

func TestSelectPagesAllPages(t *testing.T) {
	pages, rank := selectPages(5, []PageMatches{matchOn(2)}, AllPages)
	if len(pages) != 5 {
		t.Fatalf("Expected all 5 pages, got %v", pages)
	}
	if rank[2] != 3 {
		t.Errorf("Expected direct mapping for page 2, got position %d", rank[2])
	}
}

func TestSelectPagesAlwaysFirstPage(t *testing.T) {
	// No matches at all: the first page is still included.
	pages, _ := selectPages(5, nil, AlwaysFirstPage)
	if len(pages) != 1 || pages[0] != 0 {
		t.Fatalf("Expected only the first page, got %v", pages)
	}

	pages, rank := selectPages(5, []PageMatches{matchOn(2)}, AlwaysFirstPage)
	if len(pages) != 2 || pages[0] != 0 || pages[1] != 2 {
		t.Fatalf("Expected pages 0 and 2, got %v", pages)
	}
	if rank[0] != 1 || rank[2] != 2 {
		t.Errorf("Unexpected output positions: %v", rank)
	}
}

func TestSelectPagesFirstPageMatchNotDuplicated(t *testing.T) {
	pages, _ := selectPages(5, []PageMatches{matchOn(0)}, AlwaysFirstPage)
	if len(pages) != 1 {
		t.Errorf("Expected first page included once, got %v", pages)
	}
}

func TestSelectPagesNoMatches(t *testing.T) {
	pages, _ := selectPages(5, nil, MatchedOnly)
	if len(pages) != 0 {
		t.Errorf("Expected no pages, got %v", pages)
	}
}

func TestSelectPagesIgnoresEmptyRects(t *testing.T) {
	m := PageMatches{PageIndex: 3, Height: 792}
	pages, _ := selectPages(5, []PageMatches{m}, MatchedOnly)
	if len(pages) != 0 {
		t.Errorf("Expected rect-less match to be ignored, got %v", pages)
	}
}

func TestSelectPagesIgnoresOutOfRange(t *testing.T) {
	pages, _ := selectPages(2, []PageMatches{matchOn(7)}, MatchedOnly)
	if len(pages) != 0 {
		t.Errorf("Expected out-of-range match to be ignored, got %v", pages)
	}
}

func TestSelectPagesSourceOrder(t *testing.T) {
	pages, rank := selectPages(10, []PageMatches{matchOn(7), matchOn(1), matchOn(4)}, MatchedOnly)
	if len(pages) != 3 || pages[0] != 1 || pages[1] != 4 || pages[2] != 7 {
		t.Fatalf("Expected ascending source order, got %v", pages)
	}
	if rank[1] != 1 || rank[4] != 2 || rank[7] != 3 {
		t.Errorf("Unexpected output positions: %v", rank)
	}
}

func TestAssembleNoPages(t *testing.T) {
	res, err := Assemble("missing.pdf", "missing-pub.pdf", 5, nil, MatchedOnly, DefaultStyle)
	if err != nil {
		t.Fatalf("Expected no error when nothing qualifies, got %v", err)
	}
	if res.PagesWritten != 0 || res.Highlights != 0 {
		t.Errorf("Expected empty result, got %+v", res)
	}
}
