// Package activation implements the activation functions of the perceptron
package activation

import "math"
import "strconv"

import "github.com/pkg/errors"

// ErrUnknown is returned when parsing a name which is not an activation
var ErrUnknown = errors.New("unknown activation")

// Kind selects the nonlinearity applied to the weighted sum
type Kind uint8

const (
	Step Kind = iota
	Sigmoid
	Tanh
	ReLU
	Linear
	// Softmax with a single output unit degenerates to the logistic function.
	Softmax

	kinds
)

// Default is the activation used when none is chosen
const Default = Sigmoid

var names = [kinds]string{
	Step:    "step",
	Sigmoid: "sigmoid",
	Tanh:    "tanh",
	ReLU:    "relu",
	Linear:  "linear",
	Softmax: "softmax",
}

// All returns every activation kind in declaration order
func All() []Kind {
	o := make([]Kind, 0, kinds)
	for k := Kind(0); k < kinds; k++ {
		o = append(o, k)
	}
	return o
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	return k < kinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return "activation(" + strconv.Itoa(int(k)) + ")"
	}
	return names[k]
}

// Parse turns a lower-case activation name into its Kind
func Parse(name string) (Kind, error) {
	for k, v := range names {
		if v == name {
			return Kind(k), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknown, "%q", name)
}

// Set implements flag.Value
func (k *Kind) Set(name string) error {
	v, err := Parse(name)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Eval applies the activation to the weighted sum x.
func (k Kind) Eval(x float64) float64 {
	switch k {
	case Step:
		if x >= 0 {
			return 1
		}
		return 0
	case Sigmoid, Softmax:
		return sigmoid(x)
	case Tanh:
		return math.Tanh(x)
	case ReLU:
		if x > 0 {
			return x
		}
		return 0
	case Linear:
		return x
	}
	return x
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
