// Package scoring computes the weighted evaluation score for a vendor. It is
// the single source of truth for the formula: both the live score endpoint and
// the PDF report assembler consume it, so the two can never drift.
package scoring

// Question identifies one evaluative prompt.
type Question struct {
	ID   string
	Text string
}

// Segment is a weighted group of questions.
type Segment struct {
	ID        string
	Name      string
	Weight    float64
	Questions []Question
}

// SegmentResult is the computed breakdown for one segment.
type SegmentResult struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Average  float64 `json:"average"`
	Weighted float64 `json:"weighted"`
}

// Summary is the full scoring output for a vendor.
type Summary struct {
	Segments   []SegmentResult `json:"segments"`
	FinalScore float64         `json:"final_score"`
	Label      string          `json:"label"`
}

// Qualitative labels for a final score.
const (
	LabelExcellent = "Excellent"
	LabelGood      = "Good"
	LabelAverage   = "Average"
	LabelBad       = "Bad"
)

// SegmentAverage averages the scores of a segment's questions. A question
// without a score counts as 0; a segment without questions averages to 0.
func SegmentAverage(segment Segment, scores map[string]float64) float64 {
	if len(segment.Questions) == 0 {
		return 0
	}

	var sum float64
	for _, question := range segment.Questions {
		sum += scores[question.ID]
	}

	return sum / float64(len(segment.Questions))
}

// FinalScore computes the weight-averaged mean of the segment averages.
// A non-positive total weight yields 0.
func FinalScore(segments []Segment, scores map[string]float64) float64 {
	var weightedSum, totalWeight float64
	for _, segment := range segments {
		weightedSum += SegmentAverage(segment, scores) * segment.Weight
		totalWeight += segment.Weight
	}

	if totalWeight <= 0 {
		return 0
	}

	return weightedSum / totalWeight
}

// Classify maps a final score to its qualitative label. Band lower bounds are
// inclusive: exactly 9.0 is Excellent, 8.999 is Good.
func Classify(score float64) string {
	switch {
	case score >= 9:
		return LabelExcellent
	case score >= 7:
		return LabelGood
	case score >= 5:
		return LabelAverage
	default:
		return LabelBad
	}
}

// Evaluate runs the full computation once and returns the per-segment
// breakdown alongside the final score and label.
func Evaluate(segments []Segment, scores map[string]float64) Summary {
	results := make([]SegmentResult, 0, len(segments))
	var weightedSum, totalWeight float64

	for _, segment := range segments {
		average := SegmentAverage(segment, scores)
		weighted := average * segment.Weight
		weightedSum += weighted
		totalWeight += segment.Weight

		results = append(results, SegmentResult{
			ID:       segment.ID,
			Name:     segment.Name,
			Weight:   segment.Weight,
			Average:  average,
			Weighted: weighted,
		})
	}

	final := 0.0
	if totalWeight > 0 {
		final = weightedSum / totalWeight
	}

	return Summary{
		Segments:   results,
		FinalScore: final,
		Label:      Classify(final),
	}
}
