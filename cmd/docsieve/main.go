package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/makpr016/docsieve/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath  string
		inputDir   string
		outputPath string
		outputPDF  string
		configPath string
		llmBaseURL string
		llmModel   string
		llmKey     string
		cacheDir   string
		maxResults int
		policy     string
		verbose    bool
	)

	flag.StringVar(&inputPath, "input", "input/input.json", "Path to the JSON run manifest")
	flag.StringVar(&inputDir, "input.dir", "input", "Directory containing the manifest's PDF files")
	flag.StringVar(&outputPath, "output", "output/output.json", "Path to write the JSON report")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path to write a PDF summary")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for embeddings")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Embedding model name (empty uses the offline fallback encoder)")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the embeddings endpoint")
	flag.StringVar(&cacheDir, "cache.dir", ".docsieve-cache", "Embedding cache directory (empty disables)")
	flag.IntVar(&maxResults, "max.results", 5, "Maximum entries per output category")
	flag.StringVar(&policy, "policy", "diverse", "Output selection policy: diverse (per-document dedup) or topn")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		InputPath:     inputPath,
		InputDir:      inputDir,
		OutputPath:    outputPath,
		OutputPDFPath: outputPDF,
		LLMBaseURL:    llmBaseURL,
		LLMModel:      llmModel,
		LLMAPIKey:     llmKey,
		CacheDir:      cacheDir,
		MaxResults:    maxResults,
		Policy:        policy,
		Verbose:       verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("config file load failed")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 when the run completed but no manifest
		// document was usable, 1 for load/config failures.
		if errors.Is(err, app.ErrNoDocuments) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()
	a := app.New(cfg)
	if err := a.Run(ctx); err != nil {
		return fmt.Errorf("docsieve: %w", err)
	}
	return nil
}
