package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassProbabilities_Validate(t *testing.T) {
	tests := []struct {
		name    string
		probs   ClassProbabilities
		wantErr bool
	}{
		{"valid", ClassProbabilities{0.25, 0.75}, false},
		{"within tolerance", ClassProbabilities{0.2, 0.8005}, false},
		{"sum too low", ClassProbabilities{0.2, 0.7}, true},
		{"negative", ClassProbabilities{-0.1, 1.1}, true},
		{"nan", ClassProbabilities{math.NaN(), 0.5}, true},
		{"inf", ClassProbabilities{0, math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.probs.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidProbability))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClassProbabilities_Of(t *testing.T) {
	p := ClassProbabilities{0.3, 0.7}
	assert.Equal(t, 0.3, p.Of(DiagnosisBenign))
	assert.Equal(t, 0.7, p.Of(DiagnosisMalignant))
}
