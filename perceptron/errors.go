package perceptron

import "github.com/pkg/errors"

var (
	// ErrConfig is returned when constructing with bad input width, activation or learning rate
	ErrConfig = errors.New("invalid perceptron configuration")

	// ErrDimension is returned when a feature vector length differs from the input width
	ErrDimension = errors.New("feature dimension mismatch")

	// ErrShape is returned when the samples and targets have different lengths
	ErrShape = errors.New("samples and targets shape mismatch")
)
