package main

import "flag"
import "fmt"
import "log"

import "github.com/neurlang/perceptron/activation"
import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/datasets/weather"
import "github.com/neurlang/perceptron/inference"
import "github.com/neurlang/perceptron/learning"
import "github.com/neurlang/perceptron/lookup"
import "github.com/neurlang/perceptron/trainer"

func main() {
	h := learning.Default()

	flag.IntVar(&h.Epochs, "epochs", h.Epochs, "training epochs")
	flag.Float64Var(&h.LearningRate, "lr", h.LearningRate, "learning rate")
	flag.Int64Var(&h.Seed, "seed", h.Seed, "seed of the initial weights")
	flag.IntVar(&h.Threads, "threads", 0, "perceptrons trained at once, 0 for every core")
	normalize := flag.Bool("normalize", false, "divide temperatures by the largest training temperature")
	table := flag.Bool("table", false, "print the compiled decision of the step perceptron for 0..40 degrees")
	logfile := flag.String("log", "", "append the per epoch training error to this file")
	flag.Parse()

	if *logfile != "" {
		if err := h.SetLogger(*logfile); err != nil {
			log.Fatal(err)
		}
		defer h.Close()
	}

	set := weather.Rain()
	probes := weather.Probes()
	scale := datasets.Scale{1}
	if *normalize {
		var err error
		if scale, err = datasets.MaxAbs(set); err != nil {
			log.Fatal(err)
		}
		set = scale.Normalize(set)
	}

	results, err := trainer.Sweep(&h, set, activation.All())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== rain prediction with every activation ===")
	for _, r := range results {
		fmt.Printf("\n--- activation: %s ---\n", r.Activation)
		for _, probe := range probes {
			out, err := r.Perceptron.Predict(scale.Apply(probe))
			if err != nil {
				log.Fatal(err)
			}
			rain := out >= inference.Threshold
			fmt.Printf("temp %v°C -> %s (pred: %.2f)\n", probe[0], weather.Label(rain), out)
		}
	}

	if *table {
		step := results[0]
		t, err := lookup.Compile(scaled{step.Perceptron, scale}, 0, 40)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\n--- %s lookup table (%d bytes) ---\n", step.Activation, t.Size())
		for x := int32(0); x <= 40; x++ {
			rain, _ := t.Infer(x)
			fmt.Printf("%d°C %s\n", x, weather.Label(rain))
		}
	}
}

// scaled feeds the model normalized features
type scaled struct {
	m     inference.Model
	scale datasets.Scale
}

func (s scaled) Predict(x []float64) (float64, error) {
	return s.m.Predict(s.scale.Apply(x))
}
