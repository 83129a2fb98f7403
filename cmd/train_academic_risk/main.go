package main

import "flag"
import "fmt"
import "log"

import "github.com/neurlang/perceptron/activation"
import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/datasets/academic"
import "github.com/neurlang/perceptron/inference"
import "github.com/neurlang/perceptron/learning"
import "github.com/neurlang/perceptron/trainer"

func main() {
	h := learning.Default()

	flag.IntVar(&h.Epochs, "epochs", h.Epochs, "training epochs")
	flag.Float64Var(&h.LearningRate, "lr", h.LearningRate, "learning rate")
	flag.Int64Var(&h.Seed, "seed", h.Seed, "seed of the initial weights")
	logfile := flag.String("log", "", "append the per epoch training error to this file")
	flag.Parse()

	if *logfile != "" {
		if err := h.SetLogger(*logfile); err != nil {
			log.Fatal(err)
		}
		defer h.Close()
	}

	raw := academic.Students()
	scale, err := datasets.MaxAbs(raw)
	if err != nil {
		log.Fatal(err)
	}
	set := scale.Normalize(raw)

	fmt.Println("dataset (normalized):")
	for i, x := range set.X {
		fmt.Printf("%d %.3f => %v\n", i, x, set.Y[i])
	}

	results, err := trainer.Sweep(&h, set, activation.All())
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		fmt.Printf("\n=== activation: %s ===\n", r.Activation)
		fmt.Printf("weights: %.4f bias: %.4f\n", r.Perceptron.Weights(), r.Perceptron.Bias())
		for i, x := range set.X {
			out, err := r.Perceptron.Predict(x)
			if err != nil {
				log.Fatal(err)
			}
			class := inference.Class(out >= inference.Threshold)
			fmt.Printf("input %v -> output %.4f -> class %v (expected %v)\n", raw.X[i], out, class, set.Y[i])
		}
		fmt.Printf("training accuracy: %.1f%%\n", 100*r.Accuracy)
	}
}
