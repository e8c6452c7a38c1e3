package mlp

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"breast-cancer-api/internal/core/domain"
)

// FormatV1 identifies the JSON export of a trained multi-layer perceptron.
const FormatV1 = "mlp/v1"

// Artifact is the on-disk description of a trained network. Weights follow the
// usual coefs layout: Weights[i][j] connects input i to unit j.
type Artifact struct {
	Format           string   `json:"format"`
	FeatureNames     []string `json:"feature_names,omitempty"`
	Scaler           *Scaler  `json:"scaler,omitempty"`
	HiddenActivation string   `json:"hidden_activation"`
	OutputActivation string   `json:"output_activation"`
	Layers           []Layer  `json:"layers"`
}

// Scaler standardizes inputs as (x - Mean) / Scale before the first layer.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

type Layer struct {
	Weights [][]float64 `json:"weights"`
	Biases  []float64   `json:"biases"`
}

func (l Layer) inputs() int  { return len(l.Weights) }
func (l Layer) outputs() int { return len(l.Biases) }

// Load reads and validates the artifact at path. Any failure wraps
// domain.ErrModelLoad.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelLoad, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode parses an artifact from r and builds a Model from it.
func Decode(r io.Reader) (*Model, error) {
	var a Artifact
	dec := json.NewDecoder(r)
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: decode artifact: %v", domain.ErrModelLoad, err)
	}
	return New(a)
}

func (a Artifact) validate() error {
	if a.Format != FormatV1 {
		return fmt.Errorf("unsupported format %q", a.Format)
	}

	if a.FeatureNames != nil {
		if len(a.FeatureNames) != domain.FeatureCount {
			return fmt.Errorf("artifact lists %d features, want %d", len(a.FeatureNames), domain.FeatureCount)
		}
		for i, name := range a.FeatureNames {
			if name != domain.FeatureNames[i] {
				return fmt.Errorf("feature %d is %q, want %q", i, name, domain.FeatureNames[i])
			}
		}
	}

	if a.Scaler != nil {
		if len(a.Scaler.Mean) != domain.FeatureCount || len(a.Scaler.Scale) != domain.FeatureCount {
			return fmt.Errorf("scaler must have %d mean and scale values", domain.FeatureCount)
		}
		for i, s := range a.Scaler.Scale {
			if s == 0 {
				return fmt.Errorf("scaler scale for %s is zero", domain.FeatureNames[i])
			}
		}
	}

	if _, ok := hiddenActivations[a.HiddenActivation]; !ok {
		return fmt.Errorf("unknown hidden activation %q", a.HiddenActivation)
	}

	if len(a.Layers) == 0 {
		return fmt.Errorf("artifact has no layers")
	}

	in := domain.FeatureCount
	for i, l := range a.Layers {
		if l.inputs() != in {
			return fmt.Errorf("layer %d expects %d inputs, previous layer produces %d", i, l.inputs(), in)
		}
		if l.outputs() == 0 {
			return fmt.Errorf("layer %d has no units", i)
		}
		for r, row := range l.Weights {
			if len(row) != l.outputs() {
				return fmt.Errorf("layer %d weight row %d has %d columns, want %d", i, r, len(row), l.outputs())
			}
		}
		in = l.outputs()
	}

	switch a.OutputActivation {
	case outputLogistic:
		if in != 1 {
			return fmt.Errorf("logistic output needs 1 unit, got %d", in)
		}
	case outputSoftmax:
		if in != 2 {
			return fmt.Errorf("softmax output needs 2 units, got %d", in)
		}
	default:
		return fmt.Errorf("unknown output activation %q", a.OutputActivation)
	}

	return nil
}
