package domain

import (
	"fmt"
	"math"
)

// FeatureCount is the number of inputs the classifier was trained on.
const FeatureCount = 10

// FeatureNames is the training-time column order of the feature vector.
var FeatureNames = [FeatureCount]string{
	"radius_mean",
	"perimeter_mean",
	"area_mean",
	"concavity_mean",
	"concave_points_mean",
	"area_se",
	"radius_worst",
	"perimeter_worst",
	"area_worst",
	"concave_points_worst",
}

// ExampleFeatures is a representative sample used for form defaults and docs.
var ExampleFeatures = FeatureVector{14.2, 90.2, 600.1, 0.1, 0.05, 40.1, 16.4, 110.2, 900.5, 0.15}

// FeatureVector holds one sample in FeatureNames order.
type FeatureVector [FeatureCount]float64

// Validate rejects NaN and infinite values.
func (v FeatureVector) Validate() error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s: %w", FeatureNames[i], ErrNonFiniteFeature)
		}
	}
	return nil
}

// Slice returns a copy of the vector as a slice.
func (v FeatureVector) Slice() []float64 {
	out := make([]float64, FeatureCount)
	copy(out, v[:])
	return out
}
