package testutil

import (
	"github.com/stretchr/testify/mock"

	"breast-cancer-api/internal/core/domain"
	ports "breast-cancer-api/internal/core/ports/output"
)

// MockClassifier is a mock of ports.Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(features domain.FeatureVector) (domain.Diagnosis, error) {
	args := m.Called(features)
	return args.Get(0).(domain.Diagnosis), args.Error(1)
}

func (m *MockClassifier) PredictProba(features domain.FeatureVector) (domain.ClassProbabilities, error) {
	args := m.Called(features)
	return args.Get(0).(domain.ClassProbabilities), args.Error(1)
}

// MockDescribedClassifier additionally reports a model shape.
type MockDescribedClassifier struct {
	MockClassifier
	Info ports.ModelInfo
}

func (m *MockDescribedClassifier) Describe() ports.ModelInfo {
	return m.Info
}

// PanickingClassifier panics on every call.
type PanickingClassifier struct{}

func (PanickingClassifier) Predict(domain.FeatureVector) (domain.Diagnosis, error) {
	panic("index out of range [10] with length 10")
}

func (PanickingClassifier) PredictProba(domain.FeatureVector) (domain.ClassProbabilities, error) {
	panic("index out of range [10] with length 10")
}

// SampleFeatures is the reference request used across handler and service tests.
var SampleFeatures = domain.ExampleFeatures

// SampleRequest is SampleFeatures keyed by wire name.
func SampleRequest() map[string]interface{} {
	body := make(map[string]interface{}, domain.FeatureCount)
	for i, name := range domain.FeatureNames {
		body[name] = SampleFeatures[i]
	}
	return body
}
