// Package embed is the boundary to the semantic-similarity collaborator:
// text goes in, a fixed-length vector comes out, and cosine similarity
// compares vectors. Both operations are treated as pure and deterministic.
package embed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// Encoder computes a fixed-length embedding for a text span.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingClient is the minimal surface needed from an OpenAI-compatible
// backend. It mirrors the CreateEmbeddings method of the official client so
// any compatible or local server can be adapted.
type EmbeddingClient interface {
	CreateEmbeddings(ctx context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

// OpenAIEncoder encodes text through an OpenAI-compatible embeddings
// endpoint, with an optional disk cache keyed by model and text digest.
type OpenAIEncoder struct {
	Client EmbeddingClient
	Model  string
	Cache  *Cache
}

// NewOpenAIEncoder builds an encoder against the given base URL (empty for
// the default endpoint) using the provided API key and model.
func NewOpenAIEncoder(baseURL, apiKey, model string, cache *Cache) *OpenAIEncoder {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIEncoder{Client: openai.NewClientWithConfig(cfg), Model: model, Cache: cache}
}

// Encode returns the embedding vector for text, consulting the cache first.
func (e *OpenAIEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	key := CacheKey(e.Model, text)
	if e.Cache != nil {
		if vec, ok := e.Cache.Get(key); ok {
			return vec, nil
		}
	}

	resp, err := e.Client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(e.Model),
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding response carried no vectors")
	}
	vec := resp.Data[0].Embedding

	if e.Cache != nil {
		if err := e.Cache.Save(key, vec); err != nil {
			log.Warn().Err(err).Msg("embedding cache save failed")
		}
	}
	return vec, nil
}

// QueryText is the fixed template combining persona and job into the single
// query embedded once per run.
func QueryText(persona, job string) string {
	return fmt.Sprintf("Persona: %s\nTask: %s", persona, job)
}
