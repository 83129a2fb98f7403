package main

import "flag"
import "fmt"
import "log"

import "github.com/neurlang/perceptron/activation"
import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/datasets/academic"
import "github.com/neurlang/perceptron/datasets/fraud"
import "github.com/neurlang/perceptron/datasets/logic"
import "github.com/neurlang/perceptron/datasets/spam"
import "github.com/neurlang/perceptron/datasets/weather"
import "github.com/neurlang/perceptron/learning"
import "github.com/neurlang/perceptron/trainer"

type trainingCase struct {
	name        string
	description string
	set         datasets.Samples
}

var cases = []trainingCase{
	{"AND", "1 only when both inputs are 1", logic.And()},
	{"OR", "1 when at least one input is 1", logic.Or()},
	{"Spam", "mails with any of the keywords are spam (1)", spam.Keywords()},
	{"Weather", "high temperatures are sunny days (1), low ones rainy (0)", weather.Sunny()},
	{"Fraud", "very large transactions may be fraud (1), small ones are normal (0)", fraud.Amounts()},
	{"Academic risk", "few study hours mean risk (1), many hours low risk (0)", academic.StudyHours()},
}

func main() {
	h := learning.Default()
	h.Activation = activation.Step
	h.Epochs = 15

	flag.IntVar(&h.Epochs, "epochs", h.Epochs, "training epochs")
	flag.Float64Var(&h.LearningRate, "lr", h.LearningRate, "learning rate")
	flag.Int64Var(&h.Seed, "seed", h.Seed, "seed of the initial weights")
	flag.Var(&h.Activation, "activation", "activation function")
	flag.Parse()

	fmt.Println("=== simple perceptron ===")
	fmt.Println("activation:", h.Activation)

	for _, c := range cases {
		r, err := trainer.Train(&h, c.set)
		if err != nil {
			log.Fatalf("%s: %v", c.name, err)
		}
		fmt.Printf("\n=== case: %s ===\n", c.name)
		fmt.Println("description:", c.description)
		fmt.Println("inputs -> expected | prediction")
		for i, x := range c.set.X {
			out, err := r.Perceptron.Predict(x)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%v -> %v | %v\n", x, c.set.Y[i], out)
		}
	}
}
