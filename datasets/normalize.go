package datasets

import "math"

import "gonum.org/v1/gonum/floats"

// Scale holds the per-feature divisors of a max-abs normalization
type Scale []float64

// MaxAbs computes the largest absolute value of every feature of s.
// A feature which is 0 everywhere keeps a divisor of 0 and is left as it is.
func MaxAbs(s Samples) (Scale, error) {
	if s.Len() == 0 || s.Width() == 0 {
		return nil, ErrEmpty
	}
	var column = make([]float64, s.Len())
	var o = make(Scale, s.Width())
	for j := range o {
		for i, x := range s.X {
			if j < len(x) {
				column[i] = math.Abs(x[j])
			} else {
				column[i] = 0
			}
		}
		o[j] = floats.Max(column)
	}
	return o, nil
}

// Apply returns a normalized copy of the feature vector x
func (c Scale) Apply(x []float64) []float64 {
	o := make([]float64, len(x))
	for j, v := range x {
		if j < len(c) && c[j] != 0 {
			v /= c[j]
		}
		o[j] = v
	}
	return o
}

// Normalize returns a copy of s with every feature vector passed through Apply
func (c Scale) Normalize(s Samples) Samples {
	o := Samples{
		X: make([][]float64, len(s.X)),
		Y: append([]float64(nil), s.Y...),
	}
	for i, x := range s.X {
		o.X[i] = c.Apply(x)
	}
	return o
}
