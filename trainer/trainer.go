package trainer

import "github.com/neurlang/perceptron/activation"
import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/learning"
import "github.com/neurlang/perceptron/parallel"
import "github.com/neurlang/perceptron/perceptron"
import "github.com/pkg/errors"

// Result is one trained perceptron and its error on the training samples
type Result struct {
	Activation activation.Kind
	Perceptron *perceptron.Perceptron

	InitialError float64 // mean squared error before the first epoch
	Error        float64 // mean squared error after the last epoch
	Accuracy     float64 // fraction of samples classified correctly after training
}

// Train builds a perceptron from h, seeded by h.Seed, and trains it on s for h.Epochs epochs.
func Train(h *learning.HyperParameters, s datasets.Samples) (Result, error) {
	p, err := perceptron.New(s.Width(), h.LearningRate, h.Activation, h.Rand())
	if err != nil {
		return Result{}, err
	}
	return run(h, p, s)
}

// Sweep trains one perceptron per kind on s and returns the results in the order of kinds.
//
// The perceptrons are initialized one after another from a single source
// seeded by h.Seed, so the first one starts like Train would, then they are
// trained on up to h.Threads goroutines, each owning one perceptron.
func Sweep(h *learning.HyperParameters, s datasets.Samples, kinds []activation.Kind) ([]Result, error) {
	var rng = h.Rand()
	var nets = make([]*perceptron.Perceptron, len(kinds))
	for i, k := range kinds {
		p, err := perceptron.New(s.Width(), h.LearningRate, k, rng)
		if err != nil {
			return nil, errors.Wrapf(err, "activation %s", k)
		}
		nets[i] = p
	}

	var results = make([]Result, len(kinds))
	var errs = make([]error, len(kinds))
	parallel.ForEach(len(kinds), h.Threads, func(i int) {
		results[i], errs[i] = run(h, nets[i], s)
	})
	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "activation %s", kinds[i])
		}
	}
	return results, nil
}

func run(h *learning.HyperParameters, p *perceptron.Perceptron, s datasets.Samples) (r Result, err error) {
	r.Activation = p.Activation()
	r.Perceptron = p
	r.InitialError, err = MeanSquaredError(p, s)
	if err != nil {
		return r, err
	}
	r.Error = r.InitialError
	for e := 1; e <= h.Epochs; e++ {
		if err = p.Train(s.X, s.Y, 1); err != nil {
			return r, err
		}
		if r.Error, err = MeanSquaredError(p, s); err != nil {
			return r, err
		}
		h.Printf("%s epoch %d mse %g", r.Activation, e, r.Error)
	}
	r.Accuracy, err = Accuracy(p, s)
	return r, err
}
