package inference

import "errors"
import "testing"

type constant float64

func (c constant) Predict(features []float64) (float64, error) {
	if len(features) != 1 {
		return 0, errors.New("one feature")
	}
	return float64(c), nil
}

func TestBoolInfer(t *testing.T) {
	testCases := []struct {
		out  float64
		want bool
	}{
		{0.5, true},
		{0.4999, false},
		{1, true},
		{-1, false},
		{37, true},
	}
	for _, tc := range testCases {
		got, err := BoolInfer([]float64{0}, constant(tc.out))
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("BoolInfer with output %v == %v, want %v", tc.out, got, tc.want)
		}
	}
}

func TestBoolInferError(t *testing.T) {
	if _, err := BoolInfer(nil, constant(1)); err == nil {
		t.Error("model error swallowed")
	}
}

func TestClass(t *testing.T) {
	if Class(true) != 1 || Class(false) != 0 {
		t.Error("class encoding")
	}
}
