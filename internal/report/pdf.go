package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders a minimal human-readable summary of the report. This is
// intentionally simple: metadata, the ranked section list, and the refined
// paragraphs, one block each.
func WritePDF(r Report, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Persona Document Analysis", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, fmt.Sprintf("Persona: %s", r.Metadata.Persona), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Job to be done: %s", r.Metadata.JobToBeDone), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Processed: %s", r.Metadata.ProcessingTimestamp), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Extracted sections", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, s := range r.ExtractedSections {
		line := fmt.Sprintf("%d. %s (%s, page %d)", s.ImportanceRank, s.SectionTitle, s.Document, s.PageNumber)
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Subsection analysis", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range r.SubsectionAnalysis {
		pdf.MultiCell(0, 5, fmt.Sprintf("%s, page %d:", p.Document, p.PageNumber), "", "L", false)
		pdf.MultiCell(0, 5, p.RefinedText, "", "L", false)
		pdf.Ln(2)
	}

	return pdf.OutputFileAndClose(outPath)
}
