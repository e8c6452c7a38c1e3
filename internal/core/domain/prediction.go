package domain

import (
	"fmt"
	"math"
	"time"
)

const probabilitySumTolerance = 1e-3

// ClassProbabilities is indexed by Diagnosis.
type ClassProbabilities [2]float64

func (p ClassProbabilities) Of(d Diagnosis) float64 {
	return p[d]
}

func (p ClassProbabilities) Validate() error {
	for _, d := range Diagnoses {
		x := p[d]
		if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 || x > 1 {
			return fmt.Errorf("%w: %s=%v", ErrInvalidProbability, d, x)
		}
	}
	if sum := p[0] + p[1]; math.Abs(sum-1) > probabilitySumTolerance {
		return fmt.Errorf("%w: sum=%v", ErrInvalidProbability, sum)
	}
	return nil
}

// Prediction is the outcome of one inference call. Probabilities are kept
// unrounded; rounding happens only when rendering a response.
type Prediction struct {
	Label         Diagnosis
	Probabilities ClassProbabilities
	CreatedAt     time.Time
}
