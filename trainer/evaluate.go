package trainer

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/inference"
import "github.com/neurlang/perceptron/perceptron"
import "github.com/pkg/errors"
import "gonum.org/v1/gonum/stat"

func check(s datasets.Samples) error {
	if len(s.X) != len(s.Y) {
		return errors.Wrapf(perceptron.ErrShape, "%d samples, %d targets", len(s.X), len(s.Y))
	}
	if s.Len() == 0 {
		return datasets.ErrEmpty
	}
	return nil
}

// MeanSquaredError averages (target - output)^2 over the samples
func MeanSquaredError(m inference.Model, s datasets.Samples) (float64, error) {
	if err := check(s); err != nil {
		return 0, err
	}
	var squares = make([]float64, s.Len())
	for i := range squares {
		x, y := s.Sample(i)
		out, err := m.Predict(x)
		if err != nil {
			return 0, errors.Wrapf(err, "sample %d", i)
		}
		squares[i] = (y - out) * (y - out)
	}
	return stat.Mean(squares, nil), nil
}

// Accuracy returns the fraction of samples whose thresholded output equals the target
func Accuracy(m inference.Model, s datasets.Samples) (float64, error) {
	if err := check(s); err != nil {
		return 0, err
	}
	var correct int
	for i := 0; i < s.Len(); i++ {
		x, y := s.Sample(i)
		b, err := inference.BoolInfer(x, m)
		if err != nil {
			return 0, errors.Wrapf(err, "sample %d", i)
		}
		if inference.Class(b) == y {
			correct++
		}
	}
	return float64(correct) / float64(s.Len()), nil
}
