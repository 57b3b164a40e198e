package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/sharnoff/shellnet"
	"github.com/sharnoff/shellnet/hyperparams"
	"github.com/sharnoff/shellnet/initializers"
	"github.com/sharnoff/shellnet/trainingdata"
)

func showVectorVals(label string, vs []float64) string {
	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteByte(' ')
	for _, v := range vs {
		fmt.Fprintf(&sb, "%g ", v)
	}

	return sb.String()
}

func main() {
	path := flag.String("data", "data.dat", "training data file")
	rate := flag.String("eta", "0.15", "learning rate: a number, or steps like \"0.3,0.15@2000\"")
	momentum := flag.Float64("alpha", shellnet.DefaultMomentum, "momentum")
	smoothing := flag.Float64("smoothing", shellnet.DefaultSmoothing, "number of samples the recent average error spans")
	seed := flag.Int64("seed", 0, "seed for the initial weights; 0 for a random seed")
	passes := flag.Int("passes", 0, "maximum number of training passes; 0 for no limit")
	every := flag.Int("every", 1, "print every nth pass")
	flag.Parse()

	log.SetPrefix("[train " + uuid.New().String() + "] ")

	if *every < 1 {
		log.Fatalf("-every must be >= 1 (%d)", *every)
	}

	lr, err := hyperparams.Parse(*rate)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	td, f, err := trainingdata.Open(*path)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer f.Close()

	topology, err := td.Topology()
	if err != nil {
		log.Fatalf("%+v", err)
	}

	hp := shellnet.Hyperparameters{
		LearningRate: lr.Value(0),
		Momentum:     *momentum,
		Smoothing:    *smoothing,
	}

	weights := initializers.Uniform()
	if *seed != 0 {
		weights.Seed(*seed)
	}

	net, err := shellnet.New(topology, hp, weights)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	run := shellnet.TrainUntil(*passes)
	if *passes == 0 {
		run = func(int, float64) bool { return true }
	}

	iters, err := net.Train(shellnet.TrainArgs{
		Data:         td,
		RunCondition: run,
		LearningRate: lr,
		SendStatus:   shellnet.Every(*every),
		Update: func(r shellnet.Result) {
			fmt.Printf("\nPass %d", r.Iteration+1)
			fmt.Println(showVectorVals(": Inputs:", r.Inputs))
			fmt.Println(showVectorVals("Outputs:", r.Outputs))
			fmt.Println(showVectorVals("Targets:", r.Targets))
			fmt.Printf("Net recent average error: %g\n", r.RecentAverage)
		},
	})
	if err != nil {
		log.Printf("%+v", err)
		f.Close()
		os.Exit(1)
	}

	fmt.Printf("\nDone after %d passes. Net recent average error: %g\n", iters, net.RecentAverageError())
}
