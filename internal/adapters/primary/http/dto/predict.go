package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"

	"breast-cancer-api/internal/core/domain"
)

// MsgInternalError is the only text ever returned for a server-side failure.
const MsgInternalError = "Internal server error"

// TimestampLayout renders local time as ISO-8601 with microseconds.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// ============================================================================
// Request DTOs
// ============================================================================

// PredictRequest carries the ten tumor measurements. Extra fields are ignored.
type PredictRequest struct {
	RadiusMean         *Measurement `json:"radius_mean" binding:"required"`
	PerimeterMean      *Measurement `json:"perimeter_mean" binding:"required"`
	AreaMean           *Measurement `json:"area_mean" binding:"required"`
	ConcavityMean      *Measurement `json:"concavity_mean" binding:"required"`
	ConcavePointsMean  *Measurement `json:"concave_points_mean" binding:"required"`
	AreaSE             *Measurement `json:"area_se" binding:"required"`
	RadiusWorst        *Measurement `json:"radius_worst" binding:"required"`
	PerimeterWorst     *Measurement `json:"perimeter_worst" binding:"required"`
	AreaWorst          *Measurement `json:"area_worst" binding:"required"`
	ConcavePointsWorst *Measurement `json:"concave_points_worst" binding:"required"`
}

// FeatureVector assembles the measurements in training order. It must only be
// called on a request that passed binding.
func (r *PredictRequest) FeatureVector() domain.FeatureVector {
	return domain.FeatureVector{
		r.RadiusMean.Float64(),
		r.PerimeterMean.Float64(),
		r.AreaMean.Float64(),
		r.ConcavityMean.Float64(),
		r.ConcavePointsMean.Float64(),
		r.AreaSE.Float64(),
		r.RadiusWorst.Float64(),
		r.PerimeterWorst.Float64(),
		r.AreaWorst.Float64(),
		r.ConcavePointsWorst.Float64(),
	}
}

// Measurement accepts a JSON number or a string holding one. Booleans,
// objects and arrays are rejected.
type Measurement float64

func (m *Measurement) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 {
		return domain.ErrNonNumericFeature
	}

	var text string
	switch c := raw[0]; {
	case c == '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return domain.ErrNonNumericFeature
		}
		text = strings.TrimSpace(text)
		if text == "" || isHexLiteral(text) {
			return domain.ErrNonNumericFeature
		}
	case c == '-' || (c >= '0' && c <= '9'):
		text = string(raw)
	default:
		return domain.ErrNonNumericFeature
	}

	v, err := cast.ToFloat64E(text)
	if err != nil {
		// out of range literals such as 1e400 overflow to ±Inf
		if _, perr := strconv.ParseFloat(text, 64); errors.Is(perr, strconv.ErrRange) {
			return fmt.Errorf("%w: %q", domain.ErrNonFiniteFeature, text)
		}
		return fmt.Errorf("%w: %q", domain.ErrNonNumericFeature, text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %q", domain.ErrNonFiniteFeature, text)
	}

	*m = Measurement(v)
	return nil
}

// isHexLiteral reports strings such as "0x1p3" that strconv parses but a
// decimal float reader does not.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func (m *Measurement) Float64() float64 {
	if m == nil {
		return math.NaN()
	}
	return float64(*m)
}

// Validation errors report the JSON field name instead of the Go struct
// field. This must run before any struct is validated, since the validator
// caches field names per type.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// ============================================================================
// Response DTOs
// ============================================================================

type PredictResponse struct {
	Success        bool                   `json:"success"`
	PredictedLabel string                 `json:"predicted_label"`
	Probabilities  map[string]Probability `json:"probabilities"`
	Timestamp      string                 `json:"timestamp"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Probability renders with exactly four decimal places.
type Probability float64

// Rounding applies to the exact binary value: 0.00015 is stored just below
// the tie and renders as 0.0001.
func (p Probability) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p), 'f', 4, 64)), nil
}

func ToPredictResponse(p *domain.Prediction) PredictResponse {
	probs := make(map[string]Probability, len(domain.Diagnoses))
	for _, d := range domain.Diagnoses {
		probs[d.String()] = Probability(p.Probabilities.Of(d))
	}
	return PredictResponse{
		Success:        true,
		PredictedLabel: p.Label.String(),
		Probabilities:  probs,
		Timestamp:      p.CreatedAt.Format(TimestampLayout),
	}
}

func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
