package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"

	"breast-cancer-api/internal/adapters/primary/http/dto"
	"breast-cancer-api/internal/adapters/primary/http/middleware"
	"breast-cancer-api/internal/core/domain"
)

// Predict answers 400 for any caller error and 500 with a fixed message for
// inference failures. The classifier is not called unless all ten features
// bound successfully.
func (h *Handler) Predict(c *gin.Context) {
	logger := log.WithField("request_id", c.GetString(middleware.ContextRequestID))

	var req dto.PredictRequest
	if err := bindPredictRequest(c, &req); err != nil {
		err = bindError(err)
		logger.WithError(err).Warn("rejected prediction request")
		mapDomainError(c, err)
		return
	}

	features := req.FeatureVector()
	fields := make(log.Fields, domain.FeatureCount)
	for i, name := range domain.FeatureNames {
		fields[name] = features[i]
	}
	logger.WithFields(fields).Info("received prediction request")

	prediction, err := h.predictionSvc.Predict(c.Request.Context(), features)
	if err != nil {
		if domain.IsBadRequest(err) {
			logger.WithError(err).Warn("rejected prediction request")
		} else {
			logger.WithError(err).Error("prediction failed")
		}
		mapDomainError(c, err)
		return
	}

	resp := dto.ToPredictResponse(prediction)
	logger.WithFields(log.Fields{
		"predicted_label": resp.PredictedLabel,
		"p_benign":        prediction.Probabilities.Of(domain.DiagnosisBenign),
		"p_malignant":     prediction.Probabilities.Of(domain.DiagnosisMalignant),
	}).Info("prediction served")

	c.JSON(http.StatusOK, resp)
}

// bindPredictRequest decodes exactly one JSON object from the body. Anything
// after it, including a second value, makes the body malformed.
func bindPredictRequest(c *gin.Context, req *dto.PredictRequest) error {
	body, err := c.GetRawData()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedBody, err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(req); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after JSON object", domain.ErrMalformedBody)
	}

	return binding.Validator.ValidateStruct(req)
}
