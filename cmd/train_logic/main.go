package main

import "flag"
import "fmt"
import "log"

import "github.com/neurlang/perceptron/activation"
import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/datasets/logic"
import "github.com/neurlang/perceptron/learning"
import "github.com/neurlang/perceptron/trainer"

func main() {
	h := learning.Default()

	flag.IntVar(&h.Epochs, "epochs", h.Epochs, "training epochs")
	flag.Float64Var(&h.LearningRate, "lr", h.LearningRate, "learning rate")
	flag.Int64Var(&h.Seed, "seed", h.Seed, "seed of the initial weights")
	flag.Parse()

	gates := []struct {
		name string
		set  datasets.Samples
	}{
		{"AND", logic.And()},
		{"OR", logic.Or()},
	}

	for _, gate := range gates {
		results, err := trainer.Sweep(&h, gate.set, activation.All())
		if err != nil {
			log.Fatal(err)
		}
		for _, r := range results {
			fmt.Printf("\n=== %s, activation: %s ===\n", gate.name, r.Activation)
			for i, x := range gate.set.X {
				out, err := r.Perceptron.Predict(x)
				if err != nil {
					log.Fatal(err)
				}
				fmt.Printf("input %v -> prediction %.4f (expected %v)\n", x, out, gate.set.Y[i])
			}
			fmt.Printf("accuracy %.0f%%\n", 100*r.Accuracy)
		}
	}
}
