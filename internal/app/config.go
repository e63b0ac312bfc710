package app

// Config carries every runtime setting of the pipeline. Flags, environment
// variables, and an optional config file populate it before Run.
type Config struct {
	// InputPath is the JSON run manifest.
	InputPath string
	// InputDir is where the manifest's PDF filenames are resolved.
	InputDir string
	// OutputPath receives the JSON report.
	OutputPath string
	// OutputPDFPath, when set, additionally receives a PDF summary.
	OutputPDFPath string

	// LLMBaseURL, LLMModel, and LLMAPIKey configure the OpenAI-compatible
	// embeddings endpoint. An empty model selects the offline fallback
	// encoder.
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// CacheDir holds cached embedding vectors; empty disables caching.
	CacheDir string

	// MaxResults bounds each output category.
	MaxResults int
	// Policy selects output selection: "diverse" (default) or "topn".
	Policy string

	Verbose bool
}
