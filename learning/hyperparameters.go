// Package learning implements the hyperparameters of perceptron training
package learning

import (
	"io"
	"log"
	"math/rand"
	"os"
)

import "github.com/neurlang/perceptron/activation"

// SetLogger appends the training trace to filename
func (h *HyperParameters) SetLogger(filename string) error {
	outfile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	h.SetLogWriter(outfile)
	h.f = outfile
	return nil
}

// Close closes the file opened by SetLogger
func (h *HyperParameters) Close() error {
	if h.f == nil {
		return nil
	}
	err := h.f.Close()
	h.f = nil
	h.l = nil
	return err
}

// SetLogWriter writes the training trace to w, nil disables it
func (h *HyperParameters) SetLogWriter(w io.Writer) {
	if h.f != nil {
		h.f.Close()
		h.f = nil
	}
	if w == nil {
		h.l = nil
		return
	}
	h.l = log.New(w, "", 0)
}

// Printf writes to the trace when a logger is set
func (h *HyperParameters) Printf(format string, v ...interface{}) {
	if h.l != nil {
		h.l.Printf(format, v...)
	}
}

// Rand returns a new random source seeded with Seed
func (h *HyperParameters) Rand() *rand.Rand {
	return rand.New(rand.NewSource(h.Seed))
}

type HyperParameters struct {
	LearningRate float64         // delta rule step size, 0 selects the default of 0.1
	Epochs       int             // passes over the training set
	Activation   activation.Kind // nonlinearity of the trained perceptron

	Seed    int64 // seed of the initial weights
	Threads int   // number of perceptrons trained at once by a sweep, 0 sizes it by the cpu

	l *log.Logger
	f *os.File
}

// Default returns the hyperparameters of the weather demo
func Default() HyperParameters {
	return HyperParameters{
		LearningRate: 0.1,
		Epochs:       20,
		Activation:   activation.Default,
		Seed:         1,
	}
}
