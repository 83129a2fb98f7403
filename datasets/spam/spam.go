// Package spam implements the keyword spam dataset
package spam

import "github.com/neurlang/perceptron/datasets"

// Keywords returns two keyword presence flags per mail, labelled 1 for spam
func Keywords() datasets.Samples {
	return datasets.Samples{
		X: [][]float64{{1, 0}, {0, 1}, {1, 1}, {0, 0}},
		Y: []float64{1, 1, 1, 0},
	}
}
