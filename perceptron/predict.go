package perceptron

import "github.com/pkg/errors"

// WeightedSum returns bias plus the dot product of weights and features
func (p *Perceptron) WeightedSum(features []float64) (float64, error) {
	if len(features) != len(p.weights) {
		return 0, errors.Wrapf(ErrDimension, "got %d features, want %d", len(features), len(p.weights))
	}
	return p.sum(features), nil
}

// Predict returns the activation of the weighted sum
func (p *Perceptron) Predict(features []float64) (float64, error) {
	sum, err := p.WeightedSum(features)
	if err != nil {
		return 0, err
	}
	return p.act.Eval(sum), nil
}
