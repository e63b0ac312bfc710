// Package app wires the pipeline together: manifest in, segmented and
// scored documents in the middle, ranked JSON report out.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/makpr016/docsieve/internal/embed"
	"github.com/makpr016/docsieve/internal/layout"
	"github.com/makpr016/docsieve/internal/profile"
	"github.com/makpr016/docsieve/internal/rank"
	"github.com/makpr016/docsieve/internal/refine"
	"github.com/makpr016/docsieve/internal/relevance"
	"github.com/makpr016/docsieve/internal/report"
	"github.com/makpr016/docsieve/internal/segment"
)

// minTitleRunes is the shortest trimmed section title that takes part in
// ranking; anything shorter is layout noise.
const minTitleRunes = 3

// ErrNoDocuments is returned when no manifest document could be read.
// The report is still written (with empty result lists) before Run
// returns it, so callers can apply an exit-code policy.
var ErrNoDocuments = fmt.Errorf("no usable documents")

// App is the assembled pipeline.
type App struct {
	cfg Config
	enc embed.Encoder
	src layout.Source
}

// New builds the pipeline from config. When no embedding model is
// configured the deterministic fallback encoder is used so runs work
// fully offline.
func New(cfg Config) *App {
	var enc embed.Encoder
	if cfg.LLMModel != "" {
		var cache *embed.Cache
		if cfg.CacheDir != "" {
			cache = &embed.Cache{Dir: cfg.CacheDir}
		}
		enc = embed.NewOpenAIEncoder(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cache)
		log.Info().Str("model", cfg.LLMModel).Str("base", cfg.LLMBaseURL).Msg("using embeddings endpoint")
	} else {
		enc = embed.FallbackEncoder{}
		log.Info().Msg("no embedding model configured; using deterministic fallback encoder")
	}
	return &App{cfg: cfg, enc: enc, src: layout.PDFSource{}}
}

// Run executes one extraction run end to end.
func (a *App) Run(ctx context.Context) error {
	m, err := report.LoadManifest(a.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	rcfg := relevance.Defaults().Merge(profile.Derive(m.Job.Task))

	queryVec, err := a.enc.Encode(ctx, embed.QueryText(m.Persona.Role, m.Job.Task))
	if err != nil {
		return fmt.Errorf("embed query: %w", err)
	}

	docs := a.processDocuments(m, rcfg)
	sections, paragraphs := a.rankContent(ctx, docs, m.Job.Task, queryVec, rcfg)

	policy := rank.ParsePolicy(a.cfg.Policy)
	limit := a.cfg.MaxResults
	if limit <= 0 {
		limit = 5
	}
	selSections := rank.SelectSections(sections, policy, limit)
	selParagraphs := rank.SelectParagraphs(paragraphs, policy, limit)

	rep := report.Assemble(m, selSections, selParagraphs, time.Now())
	if err := report.Write(rep, a.cfg.OutputPath); err != nil {
		return err
	}
	log.Info().
		Str("out", a.cfg.OutputPath).
		Int("sections", len(selSections)).
		Int("paragraphs", len(selParagraphs)).
		Msg("wrote report")

	if a.cfg.OutputPDFPath != "" {
		if err := report.WritePDF(rep, a.cfg.OutputPDFPath); err != nil {
			log.Warn().Err(err).Msg("pdf summary failed; json report already written")
		} else {
			log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote pdf summary")
		}
	}

	if len(docs) == 0 {
		return ErrNoDocuments
	}
	return nil
}

// processDocuments segments every readable manifest document in manifest
// order. Failures are isolated per document: a missing or unreadable file
// is logged and skipped without aborting the run.
func (a *App) processDocuments(m report.Manifest, rcfg relevance.Config) []report.Document {
	docs := make([]report.Document, 0, len(m.Documents))
	for _, ref := range m.Documents {
		path := filepath.Join(a.cfg.InputDir, ref.Filename)
		if _, err := os.Stat(path); err != nil {
			log.Warn().Str("file", ref.Filename).Msg("document missing; skipping")
			continue
		}
		pages, err := a.src.Pages(path)
		if err != nil {
			log.Warn().Err(err).Str("file", ref.Filename).Msg("document unreadable; skipping")
			continue
		}
		sections := segment.Segment(pages, rcfg)
		log.Debug().Str("file", ref.Filename).Int("pages", len(pages)).Int("sections", len(sections)).Msg("segmented document")
		docs = append(docs, report.Document{Filename: ref.Filename, Title: ref.Title, Sections: sections})
	}
	return docs
}

// rankContent scores every paragraph and every whole section of every
// document against the query.
func (a *App) rankContent(ctx context.Context, docs []report.Document, job string, queryVec []float32, rcfg relevance.Config) ([]rank.ScoredSection, []rank.Paragraph) {
	var sections []rank.ScoredSection
	var paragraphs []rank.Paragraph

	for _, doc := range docs {
		for _, sec := range doc.Sections {
			if utf8.RuneCountInString(strings.TrimSpace(sec.Title)) < minTitleRunes {
				continue
			}

			for _, para := range refine.SplitParagraphs(sec.Text, rcfg) {
				sim := a.similarity(ctx, para, queryVec)
				content := relevance.ContentRelevance(para, job, rcfg)
				paragraphs = append(paragraphs, rank.Paragraph{
					Document:     doc.Filename,
					Text:         para,
					Page:         sec.Page,
					SectionTitle: sec.Title,
					Relevance:    relevance.Combined(sim, content),
				})
			}

			full := sec.Title + " " + sec.Text
			sim := a.similarity(ctx, full, queryVec)
			content := relevance.ContentRelevance(full, job, rcfg)
			sections = append(sections, rank.ScoredSection{
				Document:  doc.Filename,
				Title:     sec.Title,
				Page:      sec.Page,
				Relevance: relevance.Combined(sim, content),
			})
		}
	}
	return sections, paragraphs
}

// similarity embeds a span and compares it to the query vector. Empty
// spans score zero by definition; encoder failures degrade the span to
// zero instead of failing the run.
func (a *App) similarity(ctx context.Context, text string, queryVec []float32) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	vec, err := a.enc.Encode(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("embedding failed; scoring span as zero")
		return 0
	}
	return embed.Cosine(vec, queryVec)
}
