package afinn

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the sentiment of several scores.
type Summary struct {
	Count    int     `json:"count"`
	Total    int     `json:"total"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"` // Sample standard deviation, 0 for a single score
	Min      int     `json:"min"`
	Max      int     `json:"max"`
	Positive int     `json:"positive"`
	Negative int     `json:"negative"`
	Neutral  int     `json:"neutral"`
}

// Summarize computes sentiment statistics over scores. No scores give the
// zero Summary.
func Summarize(scores []Score) Summary {
	if len(scores) == 0 {
		return Summary{}
	}

	values := make([]float64, len(scores))
	summary := Summary{Count: len(scores)}
	for i, score := range scores {
		values[i] = float64(score.sentiment)
		switch {
		case score.sentiment > 0:
			summary.Positive++
		case score.sentiment < 0:
			summary.Negative++
		default:
			summary.Neutral++
		}
	}

	summary.Total = int(floats.Sum(values))
	summary.Min = int(floats.Min(values))
	summary.Max = int(floats.Max(values))
	if len(values) == 1 {
		summary.Mean = values[0]
	} else {
		summary.Mean, summary.StdDev = stat.MeanStdDev(values, nil)
	}

	return summary
}
