// Package layout defines the boundary to the PDF word-geometry extractor.
// The rest of the pipeline consumes pages of positioned words and assumes
// nothing else about how they were produced.
package layout

// WordRecord is a single extracted text span with its page geometry.
// Top is the distance from the top edge of the page to the span's
// baseline row; Size is the font size in points.
type WordRecord struct {
	Text     string
	Top      float64
	Size     float64
	FontName string
}

// PageWords is one page's worth of extracted words. Number is 1-based.
type PageWords struct {
	Number int
	Height float64
	Words  []WordRecord
}

// Source yields the pages of a document at the given path. Implementations
// must keep Words in reading order within a page.
type Source interface {
	Pages(path string) ([]PageWords, error)
}
