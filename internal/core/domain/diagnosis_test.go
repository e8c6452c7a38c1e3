package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosis_String(t *testing.T) {
	assert.Equal(t, "Jinak (B)", DiagnosisBenign.String())
	assert.Equal(t, "Ganas (M)", DiagnosisMalignant.String())
	assert.Equal(t, "Diagnosis(7)", Diagnosis(7).String())
}

func TestDiagnosisFromIndex(t *testing.T) {
	d, err := DiagnosisFromIndex(0)
	require.NoError(t, err)
	assert.Equal(t, DiagnosisBenign, d)

	d, err = DiagnosisFromIndex(1)
	require.NoError(t, err)
	assert.Equal(t, DiagnosisMalignant, d)

	_, err = DiagnosisFromIndex(2)
	assert.Error(t, err)
	_, err = DiagnosisFromIndex(-1)
	assert.Error(t, err)
}
