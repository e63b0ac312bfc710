package refine

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/makpr016/docsieve/internal/relevance"
)

func TestSplitParagraphs_SplitsOnBlankLines(t *testing.T) {
	cfg := relevance.Defaults()
	text := "The old town is best explored on foot in the early morning hours.\n\n" +
		"Local markets open before sunrise and close shortly after midday heat."
	got := SplitParagraphs(text, cfg)
	if len(got) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %v", len(got), got)
	}
}

func TestSplitParagraphs_EnforcesStrictLengthBounds(t *testing.T) {
	cfg := relevance.Defaults()
	cfg.MinParagraphLength = 10
	cfg.MaxParagraphLength = 40

	exactlyMin := strings.Repeat("a", 10)
	exactlyMax := strings.Repeat("b", 40)
	inside := strings.Repeat("c", 20)
	text := exactlyMin + "\n\n" + exactlyMax + "\n\n" + inside

	got := SplitParagraphs(text, cfg)
	if len(got) != 1 || got[0] != inside {
		t.Fatalf("bounds must be strict on both ends, got %v", got)
	}
	for _, p := range got {
		n := utf8.RuneCountInString(p)
		if n <= cfg.MinParagraphLength || n >= cfg.MaxParagraphLength {
			t.Fatalf("paragraph length %d outside open interval (%d, %d)", n, cfg.MinParagraphLength, cfg.MaxParagraphLength)
		}
	}
}

func TestSplitParagraphs_CleansBulletsAndWhitespace(t *testing.T) {
	cfg := relevance.Defaults()
	cfg.MinParagraphLength = 5
	text := "• pack   light\tclothes for the trip\n\nsecond paragraph stays intact here"
	got := SplitParagraphs(text, cfg)
	if len(got) != 2 {
		t.Fatalf("expected 2 paragraphs, got %v", got)
	}
	if got[0] != "pack light clothes for the trip" {
		t.Fatalf("bullet and whitespace cleanup failed: %q", got[0])
	}
}

func TestSplitParagraphs_IsPure(t *testing.T) {
	cfg := relevance.Defaults()
	cfg.MinParagraphLength = 3
	text := "first usable chunk of text\n\n\n\nsecond usable chunk of text\n\n   \n\n- third one"
	a := SplitParagraphs(text, cfg)
	b := SplitParagraphs(text, cfg)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical input must yield identical output: %v vs %v", a, b)
	}
	for _, p := range a {
		if strings.TrimSpace(p) == "" {
			t.Fatalf("no output paragraph may be empty")
		}
	}
}

func TestSplitParagraphs_EmptyText(t *testing.T) {
	if got := SplitParagraphs("", relevance.Defaults()); got != nil {
		t.Fatalf("empty input must yield no paragraphs, got %v", got)
	}
}

func TestCleanTitle_StripsLeadingPunctuationAndCollapses(t *testing.T) {
	if got := CleanTitle("  •• Day   One:  Arrival  "); got != "Day One: Arrival" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanText_StripsLeadingNonWord(t *testing.T) {
	if got := CleanText("... but the museum quarter rewards patience"); got != "but the museum quarter rewards patience" {
		t.Fatalf("got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 4); got != "abcd" {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("short", 100); got != "short" {
		t.Fatalf("got %q", got)
	}
}
