// Package main provides a demo program for predicting rain from the temperature.
// It trains one perceptron per activation function on six labelled temperatures
// and classifies five unseen ones, optionally compiling the step perceptron
// into a lookup table over whole degrees.
package main
