// Package academic implements the student risk datasets
package academic

import "github.com/neurlang/perceptron/datasets"

// Student features
const (
	Failed     = iota // failed courses, 0..10
	Attendance        // attendance percentage, 0..100
	Average           // grade average, 0..20
)

var students = [][]float64{
	{0, 95, 16},
	{1, 90, 14},
	{4, 60, 9},
	{5, 50, 8},
	{2, 75, 12},
	{3, 65, 11},
	{0, 85, 18},
	{6, 40, 6},
	{1, 72, 10},
	{0, 98, 19},
	{2, 68, 9},
	{3, 80, 13},
}

// AtRisk reports whether a student is at risk: 4 or more failed courses,
// an average below 10 or attendance below 70 percent
func AtRisk(student []float64) bool {
	return student[Failed] >= 4 || student[Average] < 10 || student[Attendance] < 70
}

// Students returns the raw student records labelled by AtRisk
func Students() (s datasets.Samples) {
	for _, v := range students {
		s.X = append(s.X, append([]float64(nil), v...))
		if AtRisk(v) {
			s.Y = append(s.Y, 1)
		} else {
			s.Y = append(s.Y, 0)
		}
	}
	return
}

// StudyHours returns daily study hours labelled 1 for students at risk
func StudyHours() datasets.Samples {
	return datasets.Samples{
		X: [][]float64{{8}, {4}, {6}, {2}},
		Y: []float64{0, 1, 0, 1},
	}
}
