package mlp

import (
	"fmt"
	"math"

	"breast-cancer-api/internal/core/domain"
	ports "breast-cancer-api/internal/core/ports/output"
)

// Model is a feed-forward network built from a validated Artifact. It is never
// mutated after construction, so concurrent calls need no locking.
type Model struct {
	artifact Artifact
	hidden   activation
}

var (
	_ ports.Classifier = (*Model)(nil)
	_ ports.Describer  = (*Model)(nil)
)

// New validates a and returns a ready Model.
func New(a Artifact) (*Model, error) {
	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelLoad, err)
	}
	return &Model{artifact: a, hidden: hiddenActivations[a.HiddenActivation]}, nil
}

func (m *Model) Predict(features domain.FeatureVector) (domain.Diagnosis, error) {
	proba, err := m.PredictProba(features)
	if err != nil {
		return 0, err
	}
	if proba[domain.DiagnosisMalignant] > proba[domain.DiagnosisBenign] {
		return domain.DiagnosisMalignant, nil
	}
	return domain.DiagnosisBenign, nil
}

func (m *Model) PredictProba(features domain.FeatureVector) (domain.ClassProbabilities, error) {
	out := m.forward(m.standardize(features))

	var proba domain.ClassProbabilities
	switch m.artifact.OutputActivation {
	case outputLogistic:
		p := logistic(out[0])
		proba = domain.ClassProbabilities{1 - p, p}
	case outputSoftmax:
		softmax(out)
		proba = domain.ClassProbabilities{out[0], out[1]}
	}

	for _, p := range proba {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return domain.ClassProbabilities{}, fmt.Errorf("non-finite network output %v", out)
		}
	}
	return proba, nil
}

func (m *Model) Describe() ports.ModelInfo {
	sizes := make([]int, 0, len(m.artifact.Layers))
	for _, l := range m.artifact.Layers {
		sizes = append(sizes, l.outputs())
	}
	return ports.ModelInfo{
		Format:           m.artifact.Format,
		Inputs:           domain.FeatureCount,
		LayerSizes:       sizes,
		HiddenActivation: m.artifact.HiddenActivation,
		OutputActivation: m.artifact.OutputActivation,
		Standardized:     m.artifact.Scaler != nil,
	}
}

func (m *Model) standardize(features domain.FeatureVector) []float64 {
	x := features.Slice()
	if s := m.artifact.Scaler; s != nil {
		for i := range x {
			x[i] = (x[i] - s.Mean[i]) / s.Scale[i]
		}
	}
	return x
}

func (m *Model) forward(x []float64) []float64 {
	last := len(m.artifact.Layers) - 1
	for li, l := range m.artifact.Layers {
		next := make([]float64, l.outputs())
		copy(next, l.Biases)
		for i, xi := range x {
			row := l.Weights[i]
			for j := range next {
				next[j] += xi * row[j]
			}
		}
		if li != last {
			m.hidden(next)
		}
		x = next
	}
	return x
}
