package ports

import "breast-cancer-api/internal/core/domain"

// Classifier is a loaded, read-only model. Implementations must be safe for
// concurrent use.
type Classifier interface {
	// Predict returns the discrete class for a feature vector.
	Predict(features domain.FeatureVector) (domain.Diagnosis, error)

	// PredictProba returns the probability of each class, indexed by Diagnosis.
	PredictProba(features domain.FeatureVector) (domain.ClassProbabilities, error)
}

// ModelInfo describes a loaded classifier for health reporting.
type ModelInfo struct {
	Format           string `json:"format"`
	Inputs           int    `json:"inputs"`
	LayerSizes       []int  `json:"layer_sizes"`
	HiddenActivation string `json:"hidden_activation"`
	OutputActivation string `json:"output_activation"`
	Standardized     bool   `json:"standardized"`
}

// Describer is implemented by classifiers that can report their shape.
type Describer interface {
	Describe() ModelInfo
}
