// Package segment turns per-page word geometry into titled sections using
// font-size, boldness, and position heuristics.
package segment

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/makpr016/docsieve/internal/layout"
	"github.com/makpr016/docsieve/internal/refine"
	"github.com/makpr016/docsieve/internal/relevance"
)

// topBandRatio marks the fraction of the page height, measured from the
// top edge, inside which any line is treated as a heading candidate.
const topBandRatio = 0.15

// defaultMedianFontSize guards against pages that somehow report words
// without sizes; empty pages are skipped before it matters.
const defaultMedianFontSize = 10.0

// Section is a titled span of document text. Page is the page on which
// the heading line appeared; Text accumulates until the section is sealed.
type Section struct {
	Title string
	Text  string
	Page  int
}

// Line is a row of words sharing a rounded vertical position.
type Line struct {
	Text        string
	Top         float64
	AvgFontSize float64
	Bold        bool
}

// openSection is the mutable in-progress state of the scan. The content
// builder is owned exclusively by Segment and moved into the immutable
// Section on sealing.
type openSection struct {
	title   string
	page    int
	content strings.Builder
}

func (o *openSection) seal() Section {
	return Section{Title: o.title, Text: o.content.String(), Page: o.page}
}

// Segment produces the ordered section list for a whole document. Content
// that precedes the first valid heading is dropped; pages without any
// valid heading extend the preceding section across the page boundary.
func Segment(pages []layout.PageWords, cfg relevance.Config) []Section {
	var sections []Section
	var current *openSection

	for _, page := range pages {
		if len(page.Words) == 0 {
			continue
		}
		median := medianFontSize(page.Words)

		// Per-page buffer, flushed into the open section at heading
		// boundaries and at the end of the page.
		var content strings.Builder

		for _, line := range GroupLines(page.Words) {
			if isHeadingCandidate(line, median, page.Height, cfg) && isValidHeading(line.Text, cfg) {
				if current != nil {
					current.content.WriteString(content.String())
					content.Reset()
					sections = append(sections, current.seal())
				}
				content.Reset()
				current = &openSection{title: refine.CleanTitle(line.Text), page: page.Number}
				continue
			}
			if current != nil {
				content.WriteString(line.Text)
				content.WriteString(" ")
			}
		}

		if current != nil {
			current.content.WriteString(content.String())
		}
	}

	if current != nil {
		sections = append(sections, current.seal())
	}
	return sections
}

// GroupLines buckets words by their vertical position rounded to one
// decimal place and returns the lines in top-to-bottom order. Words inside
// a line keep extraction order.
func GroupLines(words []layout.WordRecord) []Line {
	buckets := make(map[float64][]layout.WordRecord)
	for _, w := range words {
		key := math.Round(w.Top*10) / 10
		buckets[key] = append(buckets[key], w)
	}

	tops := make([]float64, 0, len(buckets))
	for top := range buckets {
		tops = append(tops, top)
	}
	sort.Float64s(tops)

	lines := make([]Line, 0, len(tops))
	for _, top := range tops {
		lines = append(lines, buildLine(top, buckets[top]))
	}
	return lines
}

func buildLine(top float64, words []layout.WordRecord) Line {
	parts := make([]string, 0, len(words))
	var sizeSum float64
	bold := false
	for _, w := range words {
		parts = append(parts, w.Text)
		sizeSum += w.Size
		if strings.Contains(strings.ToLower(w.FontName), "bold") {
			bold = true
		}
	}
	return Line{
		Text:        strings.Join(parts, " "),
		Top:         top,
		AvgFontSize: sizeSum / float64(len(words)),
		Bold:        bold,
	}
}

// isHeadingCandidate applies the layout heuristics: oversized mean font,
// any bold word, or placement in the top band of the page.
func isHeadingCandidate(line Line, median, pageHeight float64, cfg relevance.Config) bool {
	if line.AvgFontSize > median*cfg.HeadingThreshold {
		return true
	}
	if line.Bold {
		return true
	}
	return line.Top < pageHeight*topBandRatio
}

// isValidHeading demotes candidates whose trimmed text is outside the
// configured length bounds or does not start with an uppercase rune.
func isValidHeading(text string, cfg relevance.Config) bool {
	trimmed := strings.TrimSpace(text)
	n := utf8.RuneCountInString(trimmed)
	if n <= cfg.MinHeadingLength || n >= cfg.MaxHeadingLength {
		return false
	}
	first, _ := utf8.DecodeRuneInString(trimmed)
	return unicode.IsUpper(first)
}

func medianFontSize(words []layout.WordRecord) float64 {
	if len(words) == 0 {
		return defaultMedianFontSize
	}
	sizes := make([]float64, len(words))
	for i, w := range words {
		sizes[i] = w.Size
	}
	sort.Float64s(sizes)
	mid := len(sizes) / 2
	if len(sizes)%2 == 0 {
		return (sizes[mid-1] + sizes[mid]) / 2
	}
	return sizes[mid]
}
