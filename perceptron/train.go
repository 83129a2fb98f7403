package perceptron

import "github.com/pkg/errors"
import "gonum.org/v1/gonum/floats"

// Train runs epochs passes of the delta rule over the samples X and their targets y.
//
// Samples are visited in order and every update is applied before the next
// sample is predicted. The batch is validated before the first update, so a
// rejected call leaves the parameters as they were. Epochs <= 0 does nothing.
func (p *Perceptron) Train(X [][]float64, y []float64, epochs int) error {
	if len(X) != len(y) {
		return errors.Wrapf(ErrShape, "%d samples, %d targets", len(X), len(y))
	}
	for i, x := range X {
		if len(x) != len(p.weights) {
			return errors.Wrapf(ErrDimension, "sample %d has %d features, want %d", i, len(x), len(p.weights))
		}
	}
	for e := 0; e < epochs; e++ {
		for i, x := range X {
			p.update(x, y[i]-p.act.Eval(p.sum(x)))
		}
	}
	return nil
}

// sum is WeightedSum for an already validated sample
func (p *Perceptron) sum(x []float64) float64 {
	return p.bias + floats.Dot(p.weights, x)
}

// update adjusts weights and bias by the error (target - output):
// w = w + lr * error * input, b = b + lr * error
func (p *Perceptron) update(x []float64, delta float64) {
	for j := range p.weights {
		p.weights[j] += p.lr * delta * x[j]
	}
	p.bias += p.lr * delta
}
