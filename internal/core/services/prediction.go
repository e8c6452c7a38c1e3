package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"breast-cancer-api/internal/core/domain"
	ports "breast-cancer-api/internal/core/ports/output"
)

type PredictionService struct {
	classifier ports.Classifier
	now        func() time.Time
}

func NewPredictionService(classifier ports.Classifier) *PredictionService {
	return &PredictionService{classifier: classifier, now: time.Now}
}

// Predict runs both classifier operations on the same vector. Classifier
// failures, including panics, come back wrapped in domain.ErrInference.
func (s *PredictionService) Predict(ctx context.Context, features domain.FeatureVector) (*domain.Prediction, error) {
	if err := features.Validate(); err != nil {
		return nil, err
	}

	label, proba, err := s.infer(features)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInference, err)
	}

	if !label.Valid() {
		return nil, fmt.Errorf("%w: unknown class %d", domain.ErrInference, int(label))
	}
	if err := proba.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInference, err)
	}

	log.WithContext(ctx).WithFields(log.Fields{
		"label":       label.String(),
		"p_benign":    proba.Of(domain.DiagnosisBenign),
		"p_malignant": proba.Of(domain.DiagnosisMalignant),
	}).Debug("prediction computed")

	return &domain.Prediction{
		Label:         label,
		Probabilities: proba,
		CreatedAt:     s.now(),
	}, nil
}

// ModelInfo reports the classifier shape when the classifier exposes one.
func (s *PredictionService) ModelInfo() (ports.ModelInfo, bool) {
	d, ok := s.classifier.(ports.Describer)
	if !ok {
		return ports.ModelInfo{}, false
	}
	return d.Describe(), true
}

func (s *PredictionService) infer(features domain.FeatureVector) (label domain.Diagnosis, proba domain.ClassProbabilities, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classifier panic: %v", r)
		}
	}()

	label, err = s.classifier.Predict(features)
	if err != nil {
		return 0, proba, fmt.Errorf("predict: %w", err)
	}
	proba, err = s.classifier.PredictProba(features)
	if err != nil {
		return 0, proba, fmt.Errorf("predict proba: %w", err)
	}
	return label, proba, nil
}
