package domain

import "fmt"

// Diagnosis is the classifier output class. The numeric values are the label
// encoding used when the model was trained and must not be reordered.
type Diagnosis int

const (
	DiagnosisBenign    Diagnosis = 0
	DiagnosisMalignant Diagnosis = 1
)

// Diagnoses lists every class in label-encoding order.
var Diagnoses = [2]Diagnosis{DiagnosisBenign, DiagnosisMalignant}

func (d Diagnosis) String() string {
	switch d {
	case DiagnosisBenign:
		return "Jinak (B)"
	case DiagnosisMalignant:
		return "Ganas (M)"
	default:
		return fmt.Sprintf("Diagnosis(%d)", int(d))
	}
}

func (d Diagnosis) Valid() bool {
	return d == DiagnosisBenign || d == DiagnosisMalignant
}

// DiagnosisFromIndex maps a classifier output index to a Diagnosis.
func DiagnosisFromIndex(idx int) (Diagnosis, error) {
	d := Diagnosis(idx)
	if !d.Valid() {
		return 0, fmt.Errorf("class index %d out of range", idx)
	}
	return d, nil
}
