// Package logic implements the two-input boolean gate datasets
package logic

import "github.com/neurlang/perceptron/datasets"

func inputs() [][]float64 {
	return [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
}

// And is 1 only when both inputs are 1
func And() datasets.Samples {
	return datasets.Samples{X: inputs(), Y: []float64{0, 0, 0, 1}}
}

// Or is 1 when at least one input is 1
func Or() datasets.Samples {
	return datasets.Samples{X: inputs(), Y: []float64{0, 1, 1, 1}}
}
