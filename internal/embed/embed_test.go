package embed

import (
	"context"
	"math"
	"testing"
)

func TestFallbackEncoder_Deterministic(t *testing.T) {
	enc := FallbackEncoder{}
	a, err := enc.Encode(context.Background(), "plan a trip to the coast")
	if err != nil {
		t.Fatalf("fallback encode must not fail: %v", err)
	}
	b, _ := enc.Encode(context.Background(), "plan a trip to the coast")
	if len(a) != fallbackDims || len(b) != fallbackDims {
		t.Fatalf("unexpected vector widths %d/%d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("identical text must encode identically (dim %d: %v vs %v)", i, a[i], b[i])
		}
	}
}

func TestFallbackEncoder_SimilarTextScoresHigher(t *testing.T) {
	enc := FallbackEncoder{}
	query, _ := enc.Encode(context.Background(), "plan a beach trip")
	near, _ := enc.Encode(context.Background(), "a beach trip itinerary")
	far, _ := enc.Encode(context.Background(), "quarterly compliance audit report")

	if Cosine(query, near) <= Cosine(query, far) {
		t.Fatalf("token overlap must raise similarity: near=%v far=%v", Cosine(query, near), Cosine(query, far))
	}
}

func TestFallbackEncoder_EmptyText(t *testing.T) {
	enc := FallbackEncoder{}
	vec, err := enc.Encode(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range vec {
		if v != 0 {
			t.Fatalf("empty text must encode to the zero vector")
		}
	}
}

func TestCosine_Properties(t *testing.T) {
	a := []float32{1, 0, 0}
	if got := Cosine(a, a); math.Abs(got-1) > 1e-9 {
		t.Fatalf("self similarity must be 1, got %v", got)
	}
	if got := Cosine(a, []float32{0, 1, 0}); got != 0 {
		t.Fatalf("orthogonal vectors must score 0, got %v", got)
	}
	if got := Cosine(a, []float32{-1, 0, 0}); math.Abs(got+1) > 1e-9 {
		t.Fatalf("opposite vectors must score -1, got %v", got)
	}
	if got := Cosine(a, []float32{1, 2}); got != 0 {
		t.Fatalf("mismatched lengths must score 0, got %v", got)
	}
	if got := Cosine(a, []float32{0, 0, 0}); got != 0 {
		t.Fatalf("zero-norm input must score 0, got %v", got)
	}
}

func TestCache_RoundTrip(t *testing.T) {
	c := &Cache{Dir: t.TempDir()}
	key := CacheKey("test-model", "some span of text")

	if _, ok := c.Get(key); ok {
		t.Fatalf("empty cache must miss")
	}
	want := []float32{0.25, -0.5, 1}
	if err := c.Save(key, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := c.Get(key)
	if !ok {
		t.Fatalf("expected a cache hit after save")
	}
	if len(got) != len(want) {
		t.Fatalf("vector length changed: %v vs %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vector changed at %d: %v vs %v", i, got[i], want[i])
		}
	}
}

func TestCacheKey_DistinguishesModelAndText(t *testing.T) {
	if CacheKey("m1", "text") == CacheKey("m2", "text") {
		t.Fatalf("different models must key differently")
	}
	if CacheKey("m", "a") == CacheKey("m", "b") {
		t.Fatalf("different texts must key differently")
	}
}

func TestQueryText_Template(t *testing.T) {
	got := QueryText("Travel Planner", "Plan a 3-day trip")
	want := "Persona: Travel Planner\nTask: Plan a 3-day trip"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNilCache_IsInert(t *testing.T) {
	var c *Cache
	if _, ok := c.Get("k"); ok {
		t.Fatalf("nil cache must miss")
	}
	if err := c.Save("k", []float32{1}); err != nil {
		t.Fatalf("nil cache save must be a no-op, got %v", err)
	}
}
