package trainer

import "testing"

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/perceptron"
import "github.com/pkg/errors"

type echo struct{}

func (echo) Predict(x []float64) (float64, error) {
	if len(x) != 1 {
		return 0, perceptron.ErrDimension
	}
	return x[0], nil
}

func TestMeanSquaredError(t *testing.T) {
	s := datasets.Samples{X: [][]float64{{0}, {1}, {0.5}, {3}}, Y: []float64{1, 1, 0, 1}}
	got, err := MeanSquaredError(echo{}, s)
	if err != nil {
		t.Fatal(err)
	}
	if want := (1 + 0 + 0.25 + 4) / 4.0; got != want {
		t.Errorf("mse %v, want %v", got, want)
	}
}

func TestAccuracy(t *testing.T) {
	s := datasets.Samples{X: [][]float64{{0}, {1}, {0.5}, {0.49}}, Y: []float64{1, 1, 0, 0}}
	got, err := Accuracy(echo{}, s)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.5 {
		t.Errorf("accuracy %v, want 0.5", got)
	}
}

func TestEvaluateErrors(t *testing.T) {
	if _, err := MeanSquaredError(echo{}, datasets.Samples{}); err != datasets.ErrEmpty {
		t.Errorf("empty: %v", err)
	}
	if _, err := Accuracy(echo{}, datasets.Samples{X: [][]float64{{1}}}); errors.Cause(err) != perceptron.ErrShape {
		t.Errorf("shape: %v", err)
	}
	s := datasets.Samples{X: [][]float64{{1}, {1, 2}}, Y: []float64{1, 0}}
	if _, err := MeanSquaredError(echo{}, s); errors.Cause(err) != perceptron.ErrDimension {
		t.Errorf("dimension: %v", err)
	}
}
