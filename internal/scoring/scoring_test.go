package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentAverageEmptySegment(t *testing.T) {
	average := SegmentAverage(Segment{ID: "s1", Weight: 2}, map[string]float64{"q1": 9})
	require.Zero(t, average)
}

func TestSegmentAverageMissingRatingCountsAsZero(t *testing.T) {
	segment := Segment{
		ID:     "s1",
		Weight: 1,
		Questions: []Question{
			{ID: "q1"},
			{ID: "q2"},
		},
	}

	average := SegmentAverage(segment, map[string]float64{"q1": 8})
	require.InDelta(t, 4.0, average, 1e-9)
}

func TestFinalScoreZeroTotalWeight(t *testing.T) {
	segments := []Segment{
		{ID: "s1", Weight: 0, Questions: []Question{{ID: "q1"}}},
		{ID: "s2", Weight: 0, Questions: []Question{{ID: "q2"}}},
	}

	require.Zero(t, FinalScore(segments, map[string]float64{"q1": 10, "q2": 10}))
	require.Zero(t, FinalScore(nil, nil))
}

func TestClassifyBandBoundaries(t *testing.T) {
	require.Equal(t, LabelExcellent, Classify(9.0))
	require.Equal(t, LabelGood, Classify(8.999))
	require.Equal(t, LabelGood, Classify(7.0))
	require.Equal(t, LabelAverage, Classify(5.0))
	require.Equal(t, LabelBad, Classify(4.999))
	require.Equal(t, LabelBad, Classify(0))
}

func TestEvaluateSingleSegment(t *testing.T) {
	segments := []Segment{
		{
			ID:     "s1",
			Name:   "Quality",
			Weight: 2,
			Questions: []Question{
				{ID: "q1"},
				{ID: "q2"},
			},
		},
	}

	summary := Evaluate(segments, map[string]float64{"q1": 8, "q2": 6})
	require.Len(t, summary.Segments, 1)
	require.InDelta(t, 7.0, summary.Segments[0].Average, 1e-9)
	require.InDelta(t, 14.0, summary.Segments[0].Weighted, 1e-9)
	require.InDelta(t, 7.0, summary.FinalScore, 1e-9)
	require.Equal(t, LabelGood, summary.Label)
}

func TestEvaluateWeightedAcrossSegments(t *testing.T) {
	segments := []Segment{
		{ID: "a", Name: "A", Weight: 1, Questions: []Question{{ID: "q1"}}},
		{ID: "b", Name: "B", Weight: 3, Questions: []Question{{ID: "q2"}}},
	}

	summary := Evaluate(segments, map[string]float64{"q1": 10})
	require.InDelta(t, 2.5, summary.FinalScore, 1e-9)
	require.Equal(t, LabelBad, summary.Label)
	require.InDelta(t, 10.0, summary.Segments[0].Weighted, 1e-9)
	require.Zero(t, summary.Segments[1].Weighted)
}

func TestEvaluateMatchesFinalScore(t *testing.T) {
	segments := []Segment{
		{ID: "a", Weight: 2, Questions: []Question{{ID: "q1"}, {ID: "q2"}}},
		{ID: "b", Weight: 5, Questions: []Question{{ID: "q3"}}},
	}
	scores := map[string]float64{"q1": 3, "q2": 7, "q3": 9}

	summary := Evaluate(segments, scores)
	require.InDelta(t, FinalScore(segments, scores), summary.FinalScore, 1e-9)
}
