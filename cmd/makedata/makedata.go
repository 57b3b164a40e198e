package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/google/uuid"

	"github.com/sharnoff/shellnet/trainingdata"
)

func main() {
	n := flag.Int("n", 2000, "number of samples to write")
	path := flag.String("out", "data.dat", "file to write; \"-\" for stdout")
	seed := flag.Int64("seed", 1, "seed for choosing samples")
	flag.Parse()

	log.SetPrefix("[makedata " + uuid.New().String() + "] ")

	if *n < 0 {
		log.Fatalf("Number of samples must be >= 0 (%d)", *n)
	}

	out := os.Stdout
	if *path != "-" {
		f, err := os.Create(*path)
		if err != nil {
			log.Fatalf("Can't create %q: %v", *path, err)
		}
		defer f.Close()

		out = f
	}

	w := trainingdata.NewWriter(out)
	rng := rand.New(rand.NewSource(*seed))

	// random XOR samples for a 2-4-1 network
	if err := w.WriteTopology([]int{2, 4, 1}); err != nil {
		log.Fatalf("%+v", err)
	}

	for i := 0; i < *n; i++ {
		a, b := rng.Intn(2), rng.Intn(2)

		if err := w.WriteSample([]float64{float64(a), float64(b)}, []float64{float64(a ^ b)}); err != nil {
			log.Fatalf("%+v", err)
		}
	}

	if err := w.Flush(); err != nil {
		log.Fatalf("Can't write samples: %v", err)
	}

	if *path != "-" {
		fmt.Printf("Wrote %d samples to %s\n", *n, *path)
	}
}
