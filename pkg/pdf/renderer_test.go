package pdf

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/vendoreval/vendoreval-api/internal/dto"
)

func TestRendererProducesCompleteDocument(t *testing.T) {
	renderer := NewRenderer(zerolog.New(io.Discard))

	document := dto.ReportDocument{
		VendorName:  "Acme Logistics",
		Company:     "Acme Corp",
		Email:       "sales@acme.test",
		Evaluator:   "Jane",
		EvaluatedAt: "2026-03-01 10:00",
		FinalScore:  7.25,
		Label:       "Good",
		Segments: []dto.ReportSegment{
			{
				ID:      "s1",
				Name:    "Delivery",
				Weight:  2,
				Average: 7.25,
				Questions: []dto.ReportQuestion{
					{ID: "q1", Text: "Deliveries arrive on time?", Score: 8, Comment: "mostly"},
					{ID: "q2", Text: "Packaging intact?", Score: 0, Comment: "-"},
				},
			},
		},
		QuestionCount: 2,
	}

	payload, err := renderer.Render(document)
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	require.Equal(t, "%PDF", string(payload[:4]))
}

func TestRendererHandlesEmptyCatalog(t *testing.T) {
	renderer := NewRenderer(zerolog.New(io.Discard))

	payload, err := renderer.Render(dto.ReportDocument{
		VendorName:  "Empty Vendor",
		Company:     "N/A",
		Email:       "N/A",
		Evaluator:   "Unknown",
		EvaluatedAt: "N/A",
		Label:       "Bad",
	})
	require.NoError(t, err)
	require.NotEmpty(t, payload)
}
