// Package main provides a demo program for learning the AND and OR gates
// with every activation function.
package main
