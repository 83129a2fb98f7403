// Package main provides a demo program which trains a step perceptron on
// several small practical cases: logic gates, spam, sunny days, fraud and
// academic risk.
package main
