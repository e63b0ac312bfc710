// Package relevance holds the run configuration for heuristic scoring and
// the deterministic content-relevance arithmetic applied to every section
// and paragraph before ranking.
package relevance

import (
	"math"
	"regexp"
	"strings"
)

// maxBoost caps the multiplicative heuristic score so a span stacked with
// matching terms cannot drown out semantic similarity entirely.
const maxBoost = 3.0

// Config collects the term sets and thresholds shared by segmentation,
// paragraph splitting, and scoring. Built once at startup and treated as
// read-only for the rest of the run.
type Config struct {
	// ActionVerbs boost a span once when any of them appears in it.
	ActionVerbs map[string]struct{}
	// BoostTerms boost a span once per matching term.
	BoostTerms map[string]struct{}
	// PenaltyTerms penalize a span once per matching term.
	PenaltyTerms map[string]struct{}

	// HeadingThreshold is the multiplier applied to a page's median font
	// size; lines whose mean size exceeds it are heading candidates.
	HeadingThreshold float64

	MinHeadingLength   int
	MaxHeadingLength   int
	MinParagraphLength int
	MaxParagraphLength int
}

// NewSet builds a string set from its arguments.
func NewSet(items ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Defaults returns the baseline configuration used when no domain override
// is supplied.
func Defaults() Config {
	return Config{
		ActionVerbs: NewSet(
			"visit", "explore", "try", "go", "see", "stay", "eat",
			"book", "reserve", "create", "manage", "prepare", "develop",
		),
		BoostTerms:         NewSet(),
		PenaltyTerms:       NewSet(),
		HeadingThreshold:   1.5,
		MinHeadingLength:   3,
		MaxHeadingLength:   100,
		MinParagraphLength: 30,
		MaxParagraphLength: 500,
	}
}

// Merge overlays a domain-derived override onto c and returns the result.
// Set-valued fields are unioned; scalar fields are replaced when the
// override carries a non-zero value. Neither receiver nor argument is
// mutated.
func (c Config) Merge(override Config) Config {
	merged := c
	merged.ActionVerbs = unionSets(c.ActionVerbs, override.ActionVerbs)
	merged.BoostTerms = unionSets(c.BoostTerms, override.BoostTerms)
	merged.PenaltyTerms = unionSets(c.PenaltyTerms, override.PenaltyTerms)
	if override.HeadingThreshold != 0 {
		merged.HeadingThreshold = override.HeadingThreshold
	}
	if override.MinHeadingLength != 0 {
		merged.MinHeadingLength = override.MinHeadingLength
	}
	if override.MaxHeadingLength != 0 {
		merged.MaxHeadingLength = override.MaxHeadingLength
	}
	if override.MinParagraphLength != 0 {
		merged.MinParagraphLength = override.MinParagraphLength
	}
	if override.MaxParagraphLength != 0 {
		merged.MaxParagraphLength = override.MaxParagraphLength
	}
	return merged
}

func unionSets(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

// numberRe matches maximal runs of ASCII digits bounded by word boundaries,
// so "3-day" yields "3" but the digits of "B12" do not match.
var numberRe = regexp.MustCompile(`\b\d+\b`)

// ContentRelevance scores text against the job description using purely
// heuristic multiplicative boosts and penalties. The result is always in
// [0, 3.0]; empty text scores a neutral 1.0. Because the factors multiply,
// iteration order over the term sets cannot affect the outcome.
func ContentRelevance(text, job string, cfg Config) float64 {
	if text == "" {
		return 1.0
	}

	lower := strings.ToLower(text)
	score := 1.0

	// Action-oriented content gets a single boost regardless of how many
	// verbs match.
	for verb := range cfg.ActionVerbs {
		if strings.Contains(lower, verb) {
			score *= 1.5
			break
		}
	}

	// Domain terms compound per match.
	for term := range cfg.BoostTerms {
		if strings.Contains(lower, strings.ToLower(term)) {
			score *= 1.3
		}
	}
	for term := range cfg.PenaltyTerms {
		if strings.Contains(lower, strings.ToLower(term)) {
			score *= 0.7
		}
	}

	// Quantities named in the job ("3-day trip for 10 people") matter a
	// lot when echoed verbatim in the text.
	for _, num := range numberRe.FindAllString(job, -1) {
		if strings.Contains(text, num) {
			score *= 1.5
		}
	}

	return math.Min(maxBoost, score)
}

// Combined is the ranking key: semantic similarity times heuristic content
// relevance. An empty span has similarity zero and therefore ranks last.
func Combined(similarity, content float64) float64 {
	return similarity * content
}
