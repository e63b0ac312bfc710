// Package refine turns raw section text into cleaned paragraphs and hosts
// the text cleaning helpers shared with ranking.
package refine

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/makpr016/docsieve/internal/relevance"
)

var (
	paragraphBreakRe = regexp.MustCompile(`\n{2,}`)
	bulletRe         = regexp.MustCompile(`[\x{2022}\x{25CF}*\-+]`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
	leadingNonWordRe = regexp.MustCompile(`^\W+`)
)

// SplitParagraphs splits a section's raw text on blank lines and returns
// the cleaned candidates whose length is strictly between the configured
// bounds. It is a pure function of its inputs: identical text and config
// always yield the identical sequence, in source order.
func SplitParagraphs(text string, cfg relevance.Config) []string {
	if text == "" {
		return nil
	}

	var out []string
	for _, raw := range paragraphBreakRe.Split(text, -1) {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		clean := CleanText(raw)
		n := utf8.RuneCountInString(clean)
		if n > cfg.MinParagraphLength && n < cfg.MaxParagraphLength {
			out = append(out, clean)
		}
	}
	return out
}

// CleanText removes bullet glyphs, collapses whitespace runs to single
// spaces, and strips leading non-word characters.
func CleanText(s string) string {
	clean := bulletRe.ReplaceAllString(s, "")
	clean = strings.TrimSpace(whitespaceRe.ReplaceAllString(clean, " "))
	return leadingNonWordRe.ReplaceAllString(clean, "")
}

// CleanTitle normalizes a heading for display: trim, strip leading
// punctuation, collapse internal whitespace.
func CleanTitle(s string) string {
	clean := strings.TrimSpace(s)
	clean = leadingNonWordRe.ReplaceAllString(clean, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(clean, " "))
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
