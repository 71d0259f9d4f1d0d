package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "heaptool",
		Usage: "benchmark, verify, and exercise the njheaps containers",
		Commands: []*cli.Command{
			{
				Name:   "bench",
				Usage:  "time a randomized workload against both heaps",
				Action: runBench,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:        "ops",
						DefaultText: "1000000",
						Value:       1_000_000,
						Usage:       "number of randomized operations",
					},
					&cli.UintFlag{
						Name:        "seed",
						DefaultText: "123",
						Value:       123,
						Usage:       "workload RNG seed",
					},
					&cli.FloatFlag{
						Name:        "add-prob",
						DefaultText: "0.67",
						Value:       0.67,
						Usage:       "probability of an insertion per step",
					},
					&cli.UintFlag{
						Name:  "max-elems",
						Usage: "cap on live elements (unlimited when unset)",
					},
				},
			},
			{
				Name:   "sort",
				Usage:  "heapsort integers from arguments or stdin",
				Action: runSort,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "desc",
						Usage: "sort descending (drains the interval heap max side)",
					},
				},
			},
			{
				Name:   "verify",
				Usage:  "run a differential check against the reference oracle",
				Action: runVerify,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:        "ops",
						DefaultText: "100000",
						Value:       100_000,
						Usage:       "number of randomized operations per container",
					},
					&cli.UintFlag{
						Name:        "seed",
						DefaultText: "123",
						Value:       123,
						Usage:       "workload RNG seed",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
