// Package rank sorts scored sections and paragraphs and applies the output
// selection policy that bounds and diversifies the result set.
package rank

import (
	"sort"
	"strings"

	"github.com/makpr016/docsieve/internal/refine"
)

// maxTitleRunes bounds cleaned section titles in diverse selection.
const maxTitleRunes = 100

// ScoredSection is a whole section with its combined relevance.
type ScoredSection struct {
	Document  string
	Title     string
	Page      int
	Relevance float64
}

// Paragraph is a scored paragraph within a section.
type Paragraph struct {
	Document     string
	Text         string
	Page         int
	SectionTitle string
	Relevance    float64
}

// Policy selects how the descending-sorted stream is turned into results.
type Policy int

const (
	// PolicyTopN takes the first N items unconditionally.
	PolicyTopN Policy = iota
	// PolicyDiverse accepts at most one item per source document and, for
	// paragraphs, requires actionable content.
	PolicyDiverse
)

// ParsePolicy maps a config string onto a Policy; unknown values fall back
// to diverse selection.
func ParsePolicy(s string) Policy {
	if strings.EqualFold(strings.TrimSpace(s), "topn") {
		return PolicyTopN
	}
	return PolicyDiverse
}

// filterVerbs gate paragraph acceptance under PolicyDiverse. This list is
// fixed and independent of the action verbs used for scoring.
var filterVerbs = []string{
	"visit", "explore", "try", "go", "see", "stay", "eat", "book", "reserve", "discover",
}

// SelectSections returns up to limit sections, highest relevance first.
// The sort is stable so ties keep their insertion order and the output is
// deterministic. Under PolicyDiverse at most one section per document is
// accepted and titles are cleaned and truncated for display.
func SelectSections(items []ScoredSection, policy Policy, limit int) []ScoredSection {
	sorted := sortedSections(items)

	out := make([]ScoredSection, 0, limit)
	seen := map[string]struct{}{}
	for _, s := range sorted {
		title := refine.Truncate(refine.CleanTitle(s.Title), maxTitleRunes)
		if title == "" {
			continue
		}
		if policy == PolicyDiverse {
			if _, ok := seen[s.Document]; ok {
				continue
			}
			seen[s.Document] = struct{}{}
			s.Title = title
		}
		out = append(out, s)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// SelectParagraphs returns up to limit paragraphs, highest relevance first.
// Under PolicyDiverse at most one paragraph per document is accepted and
// only paragraphs containing an actionable verb survive.
func SelectParagraphs(items []Paragraph, policy Policy, limit int) []Paragraph {
	sorted := sortedParagraphs(items)

	out := make([]Paragraph, 0, limit)
	seen := map[string]struct{}{}
	for _, p := range sorted {
		text := refine.CleanText(p.Text)
		if text == "" {
			continue
		}
		if policy == PolicyDiverse {
			if _, ok := seen[p.Document]; ok {
				continue
			}
			if !containsFilterVerb(text) {
				continue
			}
			seen[p.Document] = struct{}{}
			p.Text = text
		}
		out = append(out, p)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func sortedSections(items []ScoredSection) []ScoredSection {
	sorted := make([]ScoredSection, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Relevance > sorted[j].Relevance
	})
	return sorted
}

func sortedParagraphs(items []Paragraph) []Paragraph {
	sorted := make([]Paragraph, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Relevance > sorted[j].Relevance
	})
	return sorted
}

func containsFilterVerb(text string) bool {
	lower := strings.ToLower(text)
	for _, v := range filterVerbs {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}
