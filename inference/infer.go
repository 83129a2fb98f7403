// Package inference implements the thresholded classification stage of the perceptron
package inference

// Threshold splits the model output into the two classes
const Threshold = 0.5

// Model is anything which maps a feature vector to a real output
type Model interface {
	Predict(features []float64) (float64, error)
}

// BoolInfer reports whether the model output for input reaches Threshold
func BoolInfer(input []float64, m Model) (bool, error) {
	out, err := m.Predict(input)
	if err != nil {
		return false, err
	}
	return out >= Threshold, nil
}

// Class returns 1 for true and 0 for false, the target encoding of the datasets
func Class(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
