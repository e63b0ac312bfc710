// Package report owns the run manifest schema, the output report schema,
// and the writers that persist the result.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/makpr016/docsieve/internal/segment"
)

// DocumentRef is one entry of the manifest's document list.
type DocumentRef struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
}

// Manifest is the parsed run input: which PDFs to read and for whom.
type Manifest struct {
	Documents []DocumentRef `json:"documents"`
	Persona   struct {
		Role string `json:"role"`
	} `json:"persona"`
	Job struct {
		Task string `json:"task"`
	} `json:"job_to_be_done"`
}

// Document is a fully segmented input file, read-only after construction.
type Document struct {
	Filename string
	Title    string
	Sections []segment.Section
}

// LoadManifest reads and validates the input JSON. A manifest missing any
// of its required top-level keys is a fatal load error: the caller must
// not produce partial output in that case.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	b, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return m, fmt.Errorf("parse manifest: %w", err)
	}
	for _, key := range []string{"documents", "persona", "job_to_be_done"} {
		if _, ok := raw[key]; !ok {
			return m, fmt.Errorf("manifest: missing required key %q", key)
		}
	}

	if err := json.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}
