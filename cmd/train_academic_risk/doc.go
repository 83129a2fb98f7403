// Package main provides a demo program for classifying students at academic risk
// from failed courses, attendance and grade average, normalized to [0, 1],
// reporting the learned weights and the training accuracy of every activation.
package main
