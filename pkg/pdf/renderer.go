// Package pdf renders an assembled vendor evaluation report into a PDF
// document. Layout lives entirely here; every computed value comes from the
// report assembler.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"github.com/vendoreval/vendoreval-api/internal/dto"
)

// Renderer produces PDF reports with gofpdf.
type Renderer struct {
	logger zerolog.Logger
}

// NewRenderer constructs the renderer.
func NewRenderer(logger zerolog.Logger) *Renderer {
	return &Renderer{logger: logger.With().Str("component", "pdf_renderer").Logger()}
}

// Render produces the full document in memory and returns it only after the
// render completed, so callers never stream a truncated PDF.
func (r *Renderer) Render(document dto.ReportDocument) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Vendor Performance Evaluation Report", false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 12, "Vendor Performance Evaluation Report", "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 6, fmt.Sprintf("Vendor Name: %s", document.VendorName), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf("Company: %s", document.Company), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf("Email: %s", document.Email), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf("Last evaluated by %s on %s", document.Evaluator, document.EvaluatedAt), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(0, 8, fmt.Sprintf("Final Weighted Score: %.2f / 10 (%s)", document.FinalScore, document.Label), "1", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	for _, segment := range document.Segments {
		doc.CellFormat(0, 6, fmt.Sprintf("%s: Avg %.2f x Weight %g = %.2f", segment.Name, segment.Average, segment.Weight, segment.Weighted), "", 1, "L", false, 0, "")
	}
	doc.Ln(6)

	for _, segment := range document.Segments {
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, fmt.Sprintf("%s (Weight: %g)", segment.Name, segment.Weight), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)

		for _, question := range segment.Questions {
			doc.MultiCell(0, 5, fmt.Sprintf("- %s", question.Text), "", "L", false)
			doc.CellFormat(0, 5, fmt.Sprintf("   Rating: %d/10", question.Score), "", 1, "L", false, 0, "")
			doc.MultiCell(0, 5, fmt.Sprintf("   Comment: %s", question.Comment), "", "L", false)
			doc.Ln(1)
		}

		doc.Ln(3)
	}

	var buffer bytes.Buffer
	if err := doc.Output(&buffer); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	r.logger.Debug().Int("bytes", buffer.Len()).Int("questions", document.QuestionCount).Msg("report rendered")

	return buffer.Bytes(), nil
}
