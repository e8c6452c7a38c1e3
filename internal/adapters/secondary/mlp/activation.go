package mlp

import "math"

const (
	outputLogistic = "logistic"
	outputSoftmax  = "softmax"
)

type activation func(x []float64)

var hiddenActivations = map[string]activation{
	"identity": func([]float64) {},
	"logistic": logisticInPlace,
	"tanh": func(x []float64) {
		for i := range x {
			x[i] = math.Tanh(x[i])
		}
	},
	"relu": func(x []float64) {
		for i := range x {
			if x[i] < 0 {
				x[i] = 0
			}
		}
	},
}

func logistic(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

func logisticInPlace(x []float64) {
	for i := range x {
		x[i] = logistic(x[i])
	}
}

func softmax(x []float64) {
	maxV := math.Inf(-1)
	for _, v := range x {
		if v > maxV {
			maxV = v
		}
	}
	var sum float64
	for i := range x {
		x[i] = math.Exp(x[i] - maxV)
		sum += x[i]
	}
	for i := range x {
		x[i] /= sum
	}
}
