// Package perceptron implements a single-neuron binary classifier trained by the online delta rule
//
// A Perceptron is not safe for concurrent use while it is being trained.
// Predict only reads the parameters, so concurrent predictions are fine as
// long as no Train call runs on the same instance. Give every goroutine
// which trains its own Perceptron.
package perceptron

import "math"
import "math/rand"

import "github.com/neurlang/perceptron/activation"
import "github.com/pkg/errors"

// DefaultLearningRate is used when the learning rate is left 0
const DefaultLearningRate = 0.1

// initial weights are drawn from [-initSpread, initSpread)
const initSpread = 0.1

// Perceptron is one neuron: a weight per input feature, a bias and an activation
type Perceptron struct {
	weights []float64
	bias    float64
	lr      float64 // learning rate
	act     activation.Kind
}

// New creates a perceptron with inputs weights drawn uniformly from [-0.1, 0.1) using rng.
// A nil rng draws from the math/rand package source.
func New(inputs int, learningRate float64, act activation.Kind, rng *rand.Rand) (*Perceptron, error) {
	if inputs <= 0 {
		return nil, errors.Wrapf(ErrConfig, "inputs %d must be positive", inputs)
	}
	p, err := newPerceptron(make([]float64, inputs), 0, learningRate, act)
	if err != nil {
		return nil, err
	}
	uniform := rand.Float64
	if rng != nil {
		uniform = rng.Float64
	}
	for i := range p.weights {
		p.weights[i] = uniform()*2*initSpread - initSpread
	}
	return p, nil
}

// NewDefault creates a sigmoid perceptron with the default learning rate
func NewDefault(inputs int, rng *rand.Rand) (*Perceptron, error) {
	return New(inputs, DefaultLearningRate, activation.Default, rng)
}

// NewWithWeights creates a perceptron starting from the given weights and bias.
// The weights are copied.
func NewWithWeights(weights []float64, bias, learningRate float64, act activation.Kind) (*Perceptron, error) {
	if len(weights) == 0 {
		return nil, errors.Wrap(ErrConfig, "no weights")
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	return newPerceptron(w, bias, learningRate, act)
}

// MustNew creates a new perceptron, panicking on invalid configuration
func MustNew(inputs int, learningRate float64, act activation.Kind, rng *rand.Rand) *Perceptron {
	p, err := New(inputs, learningRate, act, rng)
	if err != nil {
		panic(err.Error())
	}
	return p
}

func newPerceptron(weights []float64, bias, lr float64, act activation.Kind) (*Perceptron, error) {
	if !act.Valid() {
		return nil, errors.Wrapf(ErrConfig, "activation %s", act)
	}
	if lr == 0 {
		lr = DefaultLearningRate
	}
	if math.IsNaN(lr) || lr < 0 || lr > 1 {
		return nil, errors.Wrapf(ErrConfig, "learning rate %v outside (0, 1]", lr)
	}
	return &Perceptron{
		weights: weights,
		bias:    bias,
		lr:      lr,
		act:     act,
	}, nil
}

// Inputs returns the number of input features
func (p *Perceptron) Inputs() int {
	return len(p.weights)
}

// Weights returns a copy of the weights
func (p *Perceptron) Weights() []float64 {
	o := make([]float64, len(p.weights))
	copy(o, p.weights)
	return o
}

// Bias returns the bias
func (p *Perceptron) Bias() float64 {
	return p.bias
}

// LearningRate returns the learning rate
func (p *Perceptron) LearningRate() float64 {
	return p.lr
}

// Activation returns the activation kind
func (p *Perceptron) Activation() activation.Kind {
	return p.act
}
