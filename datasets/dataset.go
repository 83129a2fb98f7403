// Package datasets implements the sample and decision set types used by the perceptron demos
package datasets

import "github.com/pkg/errors"

// ErrEmpty is returned when normalizing a set without samples
var ErrEmpty = errors.New("empty samples")

// Dataset maps an integer feature to a binary decision
type Dataset map[uint32]bool

func (d *Dataset) Init() {
	*d = make(map[uint32]bool)
}

// Samples pairs feature vectors X with their targets Y, index for index
type Samples struct {
	X [][]float64
	Y []float64
}

// Len returns the number of samples
func (s Samples) Len() int {
	return len(s.X)
}

// Width returns the number of features of the first sample, 0 when empty
func (s Samples) Width() int {
	if len(s.X) == 0 {
		return 0
	}
	return len(s.X[0])
}

// Sample returns the features and the target at position n
func (s Samples) Sample(n int) ([]float64, float64) {
	return s.X[n], s.Y[n]
}
