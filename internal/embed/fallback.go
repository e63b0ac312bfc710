package embed

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strings"
)

// fallbackDims is the vector width of the deterministic encoder. Small
// enough to stay cheap, wide enough to keep token collisions rare on the
// input sizes this tool sees.
const fallbackDims = 256

var tokenRe = regexp.MustCompile(`\w+`)

// FallbackEncoder is a deterministic hashed bag-of-words embedder used when
// no embedding model is configured, so runs work fully offline. Vectors are
// L2-normalized, making cosine similarity a pure token-overlap measure.
type FallbackEncoder struct{}

// Encode never fails and always returns the same vector for the same text.
func (FallbackEncoder) Encode(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, fallbackDims)
	for _, tok := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		h := fnv.New64a()
		_, _ = h.Write([]byte(tok))
		vec[h.Sum64()%fallbackDims]++
	}

	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return vec, nil
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
	return vec, nil
}
