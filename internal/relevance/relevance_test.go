package relevance

import (
	"math"
	"testing"
)

func TestContentRelevance_EmptyTextIsNeutral(t *testing.T) {
	cfg := Defaults()
	cfg.BoostTerms = NewSet("everything")
	cfg.PenaltyTerms = NewSet("anything")
	if got := ContentRelevance("", "manage everything", cfg); got != 1.0 {
		t.Fatalf("empty text must score 1.0 regardless of config, got %v", got)
	}
}

func TestContentRelevance_NoMatchesIsNeutral(t *testing.T) {
	cfg := Config{
		ActionVerbs:  NewSet("assemble"),
		BoostTerms:   NewSet("quarterly"),
		PenaltyTerms: NewSet("archive"),
	}
	got := ContentRelevance("nothing here lines up at all", "review the results", cfg)
	if got != 1.0 {
		t.Fatalf("expected neutral 1.0, got %v", got)
	}
}

func TestContentRelevance_BoostTermsCompound(t *testing.T) {
	cfg := Config{
		ActionVerbs: NewSet(),
		BoostTerms:  NewSet("beach", "hotel"),
	}
	one := ContentRelevance("the beach was lovely", "job", cfg)
	two := ContentRelevance("the beach hotel was lovely", "job", cfg)
	if math.Abs(one-1.3) > 1e-9 {
		t.Fatalf("single boost term: want 1.3, got %v", one)
	}
	if math.Abs(two-1.3*1.3) > 1e-9 {
		t.Fatalf("boost terms must compound multiplicatively: want %v, got %v", 1.3*1.3, two)
	}
}

func TestContentRelevance_ActionVerbBoostsOnce(t *testing.T) {
	cfg := Config{ActionVerbs: NewSet("visit", "explore")}
	got := ContentRelevance("visit and explore the old town", "job", cfg)
	if math.Abs(got-1.5) > 1e-9 {
		t.Fatalf("multiple action verbs must boost once: want 1.5, got %v", got)
	}
}

func TestContentRelevance_PenaltyTerms(t *testing.T) {
	cfg := Config{PenaltyTerms: NewSet("advertisement")}
	got := ContentRelevance("this advertisement is irrelevant", "job", cfg)
	if math.Abs(got-0.7) > 1e-9 {
		t.Fatalf("want 0.7, got %v", got)
	}
}

func TestContentRelevance_JobNumbersBoost(t *testing.T) {
	cfg := Config{}
	job := "Plan a 3-day trip for 10 people"
	base := ContentRelevance("a trip for friends", job, cfg)
	boosted := ContentRelevance("a 3 day trip for 10 friends", job, cfg)
	if base != 1.0 {
		t.Fatalf("no numeric overlap must stay neutral, got %v", base)
	}
	if math.Abs(boosted-1.5*1.5) > 1e-9 {
		t.Fatalf("each echoed job number boosts 1.5x: want %v, got %v", 1.5*1.5, boosted)
	}
}

func TestContentRelevance_AlwaysWithinRange(t *testing.T) {
	cfg := Config{
		ActionVerbs: NewSet("visit"),
		BoostTerms:  NewSet("a", "e", "i", "o", "u", "t", "s"),
	}
	got := ContentRelevance("visit absolutely everything in the itinerary", "see 1 2 3 4 5", cfg)
	if got < 0 || got > 3.0 {
		t.Fatalf("score out of [0, 3.0]: %v", got)
	}
	if got != 3.0 {
		t.Fatalf("heavily stacked matches must hit the cap, got %v", got)
	}
}

func TestMerge_UnionsSetsAndReplacesScalars(t *testing.T) {
	base := Defaults()
	override := Config{
		BoostTerms:       NewSet("trip", "beach"),
		ActionVerbs:      NewSet("plan"),
		HeadingThreshold: 1.8,
	}
	merged := base.Merge(override)

	for _, term := range []string{"trip", "beach"} {
		if _, ok := merged.BoostTerms[term]; !ok {
			t.Fatalf("missing unioned boost term %q", term)
		}
	}
	if _, ok := merged.ActionVerbs["visit"]; !ok {
		t.Fatalf("merge must keep default action verbs")
	}
	if _, ok := merged.ActionVerbs["plan"]; !ok {
		t.Fatalf("merge must add override action verbs")
	}
	if merged.HeadingThreshold != 1.8 {
		t.Fatalf("scalar override must replace: got %v", merged.HeadingThreshold)
	}
	if merged.MinParagraphLength != base.MinParagraphLength {
		t.Fatalf("unset override scalars must keep defaults")
	}
	if base.HeadingThreshold != 1.5 {
		t.Fatalf("merge must not mutate the receiver")
	}
}

func TestCombined_IsProduct(t *testing.T) {
	if got := Combined(0.5, 2.0); got != 1.0 {
		t.Fatalf("want 1.0, got %v", got)
	}
	if got := Combined(0, 3.0); got != 0 {
		t.Fatalf("zero similarity must zero the combined score, got %v", got)
	}
}
