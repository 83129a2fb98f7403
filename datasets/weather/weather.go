// Package weather implements the temperature datasets
package weather

import "github.com/neurlang/perceptron/datasets"

// Rain returns temperatures in degrees Celsius labelled 1 when it rains
func Rain() datasets.Samples {
	return datasets.Samples{
		X: [][]float64{
			{10}, // cold
			{12}, // cold
			{28}, // hot
			{30}, // hot
			{18}, // cool
			{26}, // warm
		},
		Y: []float64{1, 1, 0, 0, 1, 0},
	}
}

// Sunny returns temperatures labelled 1 for a sunny day
func Sunny() datasets.Samples {
	return datasets.Samples{
		X: [][]float64{{30}, {10}, {20}, {35}},
		Y: []float64{1, 0, 0, 1},
	}
}

// ProbeTemperatures are the unseen temperatures queried after training
var ProbeTemperatures = []float64{8, 14, 20, 27, 32}

// Probes returns ProbeTemperatures as feature vectors
func Probes() (o [][]float64) {
	for _, t := range ProbeTemperatures {
		o = append(o, []float64{t})
	}
	return
}

// Label names the rain decision
func Label(rain bool) string {
	if rain {
		return "rain"
	}
	return "no rain"
}
