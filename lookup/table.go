// Package lookup compiles the decisions of a trained single-feature model into a quaternary filter
package lookup

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/inference"
import "github.com/neurlang/quaternary"
import "github.com/pkg/errors"

// MaxSpan is the largest number of integers a table can cover
const MaxSpan = 1 << 20

// ErrRange is returned for an empty or too large compile range
var ErrRange = errors.New("invalid lookup range")

// Table answers the thresholded model decision for every integer it was compiled over
type Table struct {
	from, to int32
	filter   []byte
}

// Compile evaluates m on every integer x in [from, to] as the one-feature input {x}
// and stores the decisions of inference.BoolInfer.
func Compile(m inference.Model, from, to int32) (*Table, error) {
	if from > to || int64(to)-int64(from)+1 > MaxSpan {
		return nil, errors.Wrapf(ErrRange, "[%d, %d]", from, to)
	}
	var set datasets.Dataset
	set.Init()
	for x := int64(from); x <= int64(to); x++ {
		b, err := inference.BoolInfer([]float64{float64(x)}, m)
		if err != nil {
			return nil, errors.Wrapf(err, "compile %d", x)
		}
		set[key(int32(x))] = b
	}
	return &Table{
		from:   from,
		to:     to,
		filter: quaternary.Make(map[uint32]bool(set)),
	}, nil
}

func key(x int32) uint32 {
	return uint32(x)
}

// Infer returns the compiled decision for x; ok is false outside the compiled range
func (t *Table) Infer(x int32) (decision, ok bool) {
	if x < t.from || x > t.to {
		return false, false
	}
	return quaternary.Filter(t.filter).GetUint32(key(x)), true
}

// Range returns the first and the last compiled integer
func (t *Table) Range() (from, to int32) {
	return t.from, t.to
}

// Size returns the size of the filter in bytes
func (t *Table) Size() int {
	return len(t.filter)
}
