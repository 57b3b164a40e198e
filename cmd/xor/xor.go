package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/sharnoff/shellnet"
	"github.com/sharnoff/shellnet/costfuncs"
	"github.com/sharnoff/shellnet/hyperparams"
	"github.com/sharnoff/shellnet/initializers"
)

func format(fs ...float64) (str string) {
	for i := range fs {
		if i > 0 {
			str += ", "
		}
		str += fmt.Sprintf("%.4f", fs[i])
	}

	return
}

const (
	statusFrequency int = 500

	// main hyperparameters
	maxIterations int     = 20000
	minIterations int     = 1000
	targetError   float64 = 0.05
)

func train(net *shellnet.Network, dataset []shellnet.Datum, rate shellnet.HyperParameter) {
	args := shellnet.TrainArgs{
		Data:         shellnet.DataSlice(dataset),
		RunCondition: shellnet.UntilError(targetError, minIterations, maxIterations),
		LearningRate: rate,
		SendStatus:   shellnet.Every(statusFrequency),
		Update: func(r shellnet.Result) {
			fmt.Printf("%d, %s\n", r.Iteration, format(r.Error, r.RecentAverage))
		},
	}

	fmt.Println("Starting training...")
	fmt.Println("Iteration, Error, Recent Average Error")

	iters, err := net.Train(args)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	fmt.Printf("Done training after %d iterations! Recent average error: %.4f\n", iters, net.RecentAverageError())
}

func test(net *shellnet.Network, dataset []shellnet.Datum, cf costfuncs.CostFunction) {
	fmt.Println("Testing...")
	cost, correct, err := net.Test(shellnet.DataSlice(dataset), cf, shellnet.CorrectRound, len(dataset))
	if err != nil {
		log.Fatalf("%+v", err)
	}

	for _, d := range dataset {
		if err := net.Forward(d.Inputs); err != nil {
			log.Fatalf("%+v", err)
		}

		fmt.Printf("%v → %s (want %v)\n", d.Inputs, format(net.Results()...), d.Outputs)
	}

	fmt.Printf("Average %s cost: %.4f, correct: %.0f%%\n", cf.TypeString(), cost, 100*correct)
}

func main() {
	seed := flag.Int64("seed", 1, "seed for the initial weights")
	rate := flag.String("eta", "0.15", "learning rate: a number, or steps like \"0.3,0.15@2000\"")
	costName := flag.String("cost", "rms", "cost function reported when testing: rms or mse")
	flag.Parse()

	log.SetPrefix("[xor " + uuid.New().String() + "] ")

	lr, err := hyperparams.Parse(*rate)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	cf, err := costfuncs.Named(*costName)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	dataset := []shellnet.Datum{
		{Inputs: []float64{0, 0}, Outputs: []float64{0}},
		{Inputs: []float64{0, 1}, Outputs: []float64{1}},
		{Inputs: []float64{1, 0}, Outputs: []float64{1}},
		{Inputs: []float64{1, 1}, Outputs: []float64{0}},
	}

	fmt.Println("Setting up network...")
	net, err := shellnet.New(shellnet.Topology{2, 4, 1}, shellnet.DefaultHyperparameters(), initializers.Uniform().Seed(*seed))
	if err != nil {
		log.Fatalf("%+v", err)
	}
	fmt.Println("Done!")

	train(net, dataset, lr)
	test(net, dataset, cf)
}
