// Package fraud implements the transaction amount dataset
package fraud

import "github.com/neurlang/perceptron/datasets"

// Amounts returns transaction amounts labelled 1 when fraudulent
func Amounts() datasets.Samples {
	return datasets.Samples{
		X: [][]float64{{1000}, {50}, {2000}, {10}},
		Y: []float64{1, 0, 1, 0},
	}
}
