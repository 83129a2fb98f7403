package datasets

import "testing"

func TestSamples(t *testing.T) {
	var empty Samples
	if empty.Len() != 0 || empty.Width() != 0 {
		t.Errorf("empty samples: len %d width %d", empty.Len(), empty.Width())
	}
	s := Samples{X: [][]float64{{1, 2, 3}, {4, 5, 6}}, Y: []float64{0, 1}}
	if s.Len() != 2 || s.Width() != 3 {
		t.Errorf("len %d width %d", s.Len(), s.Width())
	}
	x, y := s.Sample(1)
	if x[2] != 6 || y != 1 {
		t.Errorf("Sample(1) == %v %v", x, y)
	}
}

func TestDatasetInit(t *testing.T) {
	var d Dataset
	d.Init()
	d[7] = true
	if !d[7] || d[8] {
		t.Errorf("dataset %v", d)
	}
}

func TestMaxAbs(t *testing.T) {
	s := Samples{
		X: [][]float64{{0, 95, -16}, {4, 60, 9}, {6, 40, 0}, {0, 0, 0}},
		Y: []float64{0, 1, 1, 0},
	}
	scale, err := MaxAbs(s)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{6, 95, 16}
	for j := range want {
		if scale[j] != want[j] {
			t.Errorf("scale[%d] == %v, want %v", j, scale[j], want[j])
		}
	}
	n := scale.Normalize(s)
	if n.X[0][2] != -1 || n.X[2][0] != 1 || n.X[1][1] != 60.0/95 {
		t.Errorf("normalized %v", n.X)
	}
	if s.X[0][2] != -16 {
		t.Error("Normalize modified its input")
	}
	if n.Y[1] != 1 || len(n.Y) != 4 {
		t.Errorf("targets %v", n.Y)
	}
}

func TestMaxAbsZeroFeature(t *testing.T) {
	s := Samples{X: [][]float64{{0, 2}, {0, -4}}, Y: []float64{0, 1}}
	scale, err := MaxAbs(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := scale.Apply([]float64{3, 2}); got[0] != 3 || got[1] != 0.5 {
		t.Errorf("Apply == %v", got)
	}
}

func TestMaxAbsEmpty(t *testing.T) {
	if _, err := MaxAbs(Samples{}); err != ErrEmpty {
		t.Errorf("MaxAbs(empty) error %v", err)
	}
}
