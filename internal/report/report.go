package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/makpr016/docsieve/internal/rank"
)

// Report is the structured run output.
type Report struct {
	Metadata           Metadata         `json:"metadata"`
	ExtractedSections  []SectionEntry   `json:"extracted_sections"`
	SubsectionAnalysis []ParagraphEntry `json:"subsection_analysis"`
}

// Metadata records what the run was asked to do and when it finished.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// SectionEntry is one selected section; ImportanceRank is 1-based in
// selection order, which matches descending relevance.
type SectionEntry struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// ParagraphEntry is one selected refined paragraph.
type ParagraphEntry struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// Assemble wraps the selected items into the output report. Every manifest
// document is listed in the metadata even when it contributed nothing.
func Assemble(m Manifest, sections []rank.ScoredSection, paragraphs []rank.Paragraph, now time.Time) Report {
	inputs := make([]string, 0, len(m.Documents))
	for _, d := range m.Documents {
		inputs = append(inputs, d.Filename)
	}

	secs := make([]SectionEntry, 0, len(sections))
	for i, s := range sections {
		secs = append(secs, SectionEntry{
			Document:       s.Document,
			SectionTitle:   s.Title,
			ImportanceRank: i + 1,
			PageNumber:     s.Page,
		})
	}

	paras := make([]ParagraphEntry, 0, len(paragraphs))
	for _, p := range paragraphs {
		paras = append(paras, ParagraphEntry{
			Document:    p.Document,
			RefinedText: p.Text,
			PageNumber:  p.Page,
		})
	}

	return Report{
		Metadata: Metadata{
			InputDocuments:      inputs,
			Persona:             m.Persona.Role,
			JobToBeDone:         m.Job.Task,
			ProcessingTimestamp: now.Format(time.RFC3339),
		},
		ExtractedSections:  secs,
		SubsectionAnalysis: paras,
	}
}

// Write persists the report as 2-space-indented JSON, creating the parent
// directory when it does not exist yet.
func Write(r Report, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
