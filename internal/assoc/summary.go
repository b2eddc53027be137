package assoc

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of the overall association score.
type Summary struct {
	Min   float64
	Max   float64
	Mean  float64
	Stdev float64
}

// Summarize computes min, max, arithmetic mean and sample standard deviation
// (N-1 denominator) of ScoreOverall across records. Statistics over zero rows
// are undefined, so callers must branch on the result state first; an empty
// record set is rejected with an error.
func Summarize(records []Record) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, errors.New("cannot summarize zero records")
	}

	scores := make([]float64, len(records))
	for i, r := range records {
		scores[i] = r.ScoreOverall
	}

	return Summary{
		Min:   floats.Min(scores),
		Max:   floats.Max(scores),
		Mean:  stat.Mean(scores, nil),
		Stdev: stat.StdDev(scores, nil),
	}, nil
}
