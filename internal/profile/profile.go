// Package profile derives a domain configuration from the job description
// so boost terms and action verbs track the task at hand instead of a
// hard-coded vocabulary.
package profile

import (
	"regexp"
	"strings"

	"github.com/makpr016/docsieve/internal/relevance"
)

var wordRe = regexp.MustCompile(`\w+`)

// stopWords are dropped from the derived boost terms.
var stopWords = relevance.NewSet(
	"and", "the", "for", "to", "of", "in", "a", "on", "with", "as", "be", "is",
)

// actionVocabulary is the fixed set of verbs matched against the job text.
var actionVocabulary = []string{
	"create", "manage", "prepare", "plan", "organize",
	"develop", "build", "make", "design", "arrange",
}

// Derive builds the domain override for a job description: every token of
// the lowered job minus stop words becomes a boost term, and any vocabulary
// verb present in the job becomes an action verb. Digit runs like "3" in
// "3-day" tokenize separately and therefore boost too.
func Derive(job string) relevance.Config {
	lower := strings.ToLower(job)

	boost := make(map[string]struct{})
	for _, tok := range wordRe.FindAllString(lower, -1) {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		boost[tok] = struct{}{}
	}

	verbs := make(map[string]struct{})
	for _, verb := range actionVocabulary {
		if strings.Contains(lower, verb) {
			verbs[verb] = struct{}{}
		}
	}

	return relevance.Config{
		ActionVerbs:      verbs,
		BoostTerms:       boost,
		PenaltyTerms:     relevance.NewSet(),
		HeadingThreshold: 1.5,
	}
}
