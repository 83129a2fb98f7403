// Package trainer provides high-level training orchestration for perceptrons.
// It trains one perceptron, or a sweep with one perceptron per activation,
// over a dataset and evaluates the result on the training samples.
package trainer
