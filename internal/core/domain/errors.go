package domain

import "errors"

// ============================================================================
// Request Errors (BadRequest)
// ============================================================================

var (
	ErrMalformedBody     = errors.New("invalid JSON body")
	ErrMissingFeature    = errors.New("missing required field")
	ErrNonNumericFeature = errors.New("all features must be numeric")
	ErrNonFiniteFeature  = errors.New("all features must be finite numbers")
)

// ============================================================================
// Inference Errors (InternalError)
// ============================================================================

var (
	ErrInference          = errors.New("inference failed")
	ErrInvalidProbability = errors.New("classifier returned invalid probabilities")
)

// ============================================================================
// Startup Errors (StartupFailure)
// ============================================================================

var (
	ErrModelLoad = errors.New("load model artifact")
)

// IsBadRequest reports whether err was caused by the caller's input.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrMalformedBody) ||
		errors.Is(err, ErrMissingFeature) ||
		errors.Is(err, ErrNonNumericFeature) ||
		errors.Is(err, ErrNonFiniteFeature)
}
