package dto

import "github.com/vendoreval/vendoreval-api/internal/scoring"

// ReportRequest identifies the vendor to render.
type ReportRequest struct {
	VendorID string `json:"vendorId" validate:"required"`
}

// ReportQuestion is one resolved catalog question inside a report. Unrated
// questions appear with score 0 and comment "-" rather than being omitted.
type ReportQuestion struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// ReportSegment groups the resolved questions of one segment with its
// computed average.
type ReportSegment struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Weight    float64          `json:"weight"`
	Average   float64          `json:"average"`
	Weighted  float64          `json:"weighted"`
	Questions []ReportQuestion `json:"questions"`
}

// ReportDocument is the flat, renderer-agnostic report structure handed to
// the PDF renderer. Segments arrive ordered by name ascending, questions in
// catalog order.
type ReportDocument struct {
	VendorName    string          `json:"vendor_name"`
	Company       string          `json:"company"`
	Email         string          `json:"email"`
	Evaluator     string          `json:"evaluator"`
	EvaluatedAt   string          `json:"evaluated_at"`
	FinalScore    float64         `json:"final_score"`
	Label         string          `json:"label"`
	Segments      []ReportSegment `json:"segments"`
	QuestionCount int             `json:"question_count"`
}

// ScoreSummaryResponse is the live score preview returned to the evaluation
// screen. It shares the scoring.Summary computed by the engine.
type ScoreSummaryResponse struct {
	VendorID string          `json:"vendor_id"`
	Summary  scoring.Summary `json:"summary"`
}
