package embed

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
)

// Cache stores embedding vectors on disk keyed by a digest of model and
// text, so repeated runs over the same corpus skip the network entirely.
type Cache struct {
	Dir string
}

// CacheKey builds the digest for a model/text pair.
func CacheKey(model, text string) string {
	h := sha256.Sum256([]byte(model + "\n\n" + text))
	return hex.EncodeToString(h[:])
}

func (c *Cache) pathFor(key string) string {
	return filepath.Join(c.Dir, key+".json")
}

// Get returns the cached vector if present.
func (c *Cache) Get(key string) ([]float32, bool) {
	if c == nil || c.Dir == "" {
		return nil, false
	}
	b, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	var vec []float32
	if err := json.Unmarshal(b, &vec); err != nil {
		return nil, false
	}
	return vec, true
}

// Save writes the vector to cache, creating the directory on first use.
func (c *Cache) Save(key string, vec []float32) error {
	if c == nil || c.Dir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	b, err := json.Marshal(vec)
	if err != nil {
		return err
	}
	return os.WriteFile(c.pathFor(key), b, 0o644)
}
