package layout

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// fallbackPageHeight is used when a page carries no resolvable MediaBox.
const fallbackPageHeight = 842.0 // A4 in points

// PDFSource extracts word geometry from PDF files using the text layer.
// It performs no OCR: pages without a text layer yield no words.
type PDFSource struct{}

// Pages reads every page of the PDF at path and returns its words with
// position, font size, and font name. Character-level fragments from the
// content stream are coalesced into words; glyph forms such as ligatures
// are folded to their NFKC equivalents.
func (PDFSource) Pages(path string) ([]PageWords, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]PageWords, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, PageWords{Number: i, Height: fallbackPageHeight})
			continue
		}
		height := pageHeight(p)
		pages = append(pages, PageWords{
			Number: i,
			Height: height,
			Words:  coalesceWords(p.Content().Text, height),
		})
	}
	return pages, nil
}

// pageHeight resolves the page MediaBox, walking up to the page tree root
// when the box is inherited.
func pageHeight(p pdf.Page) float64 {
	node := p.V
	for i := 0; i < 8 && !node.IsNull(); i++ {
		box := node.Key("MediaBox")
		if !box.IsNull() && box.Len() == 4 {
			if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
				return h
			}
		}
		node = node.Key("Parent")
	}
	return fallbackPageHeight
}

// coalesceWords merges the per-character fragments of the content stream
// into words. A word ends at whitespace, at a change of row or font, or at
// a horizontal gap wider than a fraction of the font size.
func coalesceWords(texts []pdf.Text, height float64) []WordRecord {
	var (
		words []WordRecord
		buf   strings.Builder
		cur   pdf.Text
		endX  float64
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		words = append(words, WordRecord{
			Text:     norm.NFKC.String(buf.String()),
			Top:      height - cur.Y,
			Size:     cur.FontSize,
			FontName: cur.Font,
		})
		buf.Reset()
	}

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			flush()
			continue
		}
		if buf.Len() > 0 {
			gap := t.X - endX
			if t.Y != cur.Y || t.Font != cur.Font || gap > maxGap(t.FontSize) {
				flush()
			}
		}
		if buf.Len() == 0 {
			cur = t
		}
		buf.WriteString(t.S)
		endX = t.X + t.W
	}
	flush()
	return words
}

func maxGap(fontSize float64) float64 {
	gap := fontSize * 0.3
	if gap < 1.0 {
		gap = 1.0
	}
	return gap
}
