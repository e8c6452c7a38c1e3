package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"breast-cancer-api/internal/core/domain"
	ports "breast-cancer-api/internal/core/ports/output"
	"breast-cancer-api/internal/testutil"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 15, 12, 34, 56, 789123000, time.UTC)
}

func TestPredictionService_Predict(t *testing.T) {
	classifier := new(testutil.MockClassifier)
	svc := NewPredictionService(classifier)
	svc.now = fixedClock

	classifier.On("Predict", testutil.SampleFeatures).Return(domain.DiagnosisMalignant, nil)
	classifier.On("PredictProba", testutil.SampleFeatures).Return(domain.ClassProbabilities{0.08765, 0.91235}, nil)

	result, err := svc.Predict(context.Background(), testutil.SampleFeatures)
	require.NoError(t, err)
	assert.Equal(t, domain.DiagnosisMalignant, result.Label)
	assert.Equal(t, 0.91235, result.Probabilities.Of(domain.DiagnosisMalignant))
	assert.Equal(t, fixedClock(), result.CreatedAt)
	classifier.AssertExpectations(t)
}

func TestPredictionService_Predict_NonFiniteInput(t *testing.T) {
	classifier := new(testutil.MockClassifier)
	svc := NewPredictionService(classifier)

	features := testutil.SampleFeatures
	features[4] = math.NaN()

	_, err := svc.Predict(context.Background(), features)
	assert.True(t, errors.Is(err, domain.ErrNonFiniteFeature))
	assert.True(t, domain.IsBadRequest(err))
	classifier.AssertNotCalled(t, "Predict", mock.Anything)
	classifier.AssertNotCalled(t, "PredictProba", mock.Anything)
}

func TestPredictionService_Predict_ClassifierError(t *testing.T) {
	classifier := new(testutil.MockClassifier)
	svc := NewPredictionService(classifier)

	classifier.On("Predict", mock.Anything).Return(domain.DiagnosisBenign, errors.New("shape mismatch"))

	_, err := svc.Predict(context.Background(), testutil.SampleFeatures)
	assert.True(t, errors.Is(err, domain.ErrInference))
	assert.False(t, domain.IsBadRequest(err))
	assert.Contains(t, err.Error(), "shape mismatch")
}

func TestPredictionService_Predict_ProbaError(t *testing.T) {
	classifier := new(testutil.MockClassifier)
	svc := NewPredictionService(classifier)

	classifier.On("Predict", mock.Anything).Return(domain.DiagnosisBenign, nil)
	classifier.On("PredictProba", mock.Anything).Return(domain.ClassProbabilities{}, errors.New("overflow"))

	_, err := svc.Predict(context.Background(), testutil.SampleFeatures)
	assert.True(t, errors.Is(err, domain.ErrInference))
}

func TestPredictionService_Predict_InvalidProbabilities(t *testing.T) {
	classifier := new(testutil.MockClassifier)
	svc := NewPredictionService(classifier)

	classifier.On("Predict", mock.Anything).Return(domain.DiagnosisBenign, nil)
	classifier.On("PredictProba", mock.Anything).Return(domain.ClassProbabilities{0.4, 0.4}, nil)

	_, err := svc.Predict(context.Background(), testutil.SampleFeatures)
	assert.True(t, errors.Is(err, domain.ErrInference))
}

func TestPredictionService_Predict_UnknownLabel(t *testing.T) {
	classifier := new(testutil.MockClassifier)
	svc := NewPredictionService(classifier)

	classifier.On("Predict", mock.Anything).Return(domain.Diagnosis(3), nil)
	classifier.On("PredictProba", mock.Anything).Return(domain.ClassProbabilities{0.5, 0.5}, nil)

	_, err := svc.Predict(context.Background(), testutil.SampleFeatures)
	assert.True(t, errors.Is(err, domain.ErrInference))
}

func TestPredictionService_Predict_Panic(t *testing.T) {
	svc := NewPredictionService(testutil.PanickingClassifier{})

	_, err := svc.Predict(context.Background(), testutil.SampleFeatures)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInference))
	assert.Contains(t, err.Error(), "classifier panic")
}

func TestPredictionService_ModelInfo(t *testing.T) {
	svc := NewPredictionService(new(testutil.MockClassifier))
	_, ok := svc.ModelInfo()
	assert.False(t, ok)

	described := &testutil.MockDescribedClassifier{Info: ports.ModelInfo{Format: "mlp/v1", Inputs: 10}}
	info, ok := NewPredictionService(described).ModelInfo()
	assert.True(t, ok)
	assert.Equal(t, "mlp/v1", info.Format)
}
