package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/navijation/njheaps/binaryheap"
	"github.com/navijation/njheaps/intervalheap"
	"github.com/navijation/njheaps/util"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func runBench(ctx context.Context, cmd *cli.Command) error {
	ops := cmd.Uint("ops")
	seed := int64(cmd.Uint("seed"))

	addProb := cmd.Float("add-prob")
	if addProb <= 0 || addProb > 1 {
		return errors.Errorf("add-prob must be in (0, 1], got %v", addProb)
	}

	maxElems := util.None[uint64]()
	if cmd.IsSet("max-elems") {
		maxElems = util.Some(cmd.Uint("max-elems"))
	}
	capacity := maxElems.Or(^uint64(0))

	runID := uuid.Must(uuid.NewRandom())
	fmt.Printf("bench %s: ops=%d add-prob=%.2f seed=%d", runID, ops, addProb, seed)
	if maxElems.Exists() {
		fmt.Printf(" max-elems=%d", capacity)
	}
	fmt.Println()

	binaryElapsed := timeWorkload(seed, func(rng *rand.Rand) {
		benchBinary(rng, ops, addProb, capacity)
	})
	intervalElapsed := timeWorkload(seed, func(rng *rand.Rand) {
		benchInterval(rng, ops, addProb, capacity)
	})

	fmt.Printf("  binaryheap:   %v\n", binaryElapsed)
	fmt.Printf("  intervalheap: %v\n", intervalElapsed)
	return nil
}

func timeWorkload(seed int64, workload func(rng *rand.Rand)) time.Duration {
	rng := rand.New(rand.NewSource(seed))
	start := time.Now()
	workload(rng)
	return time.Since(start)
}

func benchBinary(rng *rand.Rand, ops uint64, addProb float64, maxElems uint64) {
	h := binaryheap.New[int]()
	for i := uint64(0); i < ops; i++ {
		switch {
		case rng.Float64() > addProb && !h.Empty():
			h.Pop()
		case uint64(h.Size()) < maxElems:
			h.Push(rng.Int())
		default:
			h.ReplaceTop(rng.Int())
		}
	}
	for !h.Empty() {
		h.Pop()
	}
}

func benchInterval(rng *rand.Rand, ops uint64, addProb float64, maxElems uint64) {
	h := intervalheap.New[int]()
	for i := uint64(0); i < ops; i++ {
		switch {
		case rng.Float64() > addProb && !h.Empty():
			if rng.Intn(2) == 0 {
				h.PopMin()
			} else {
				h.PopMax()
			}
		case uint64(h.Size()) < maxElems:
			h.Push(rng.Int())
		case rng.Intn(2) == 0:
			h.ReplaceMin(rng.Int())
		default:
			h.ReplaceMax(rng.Int())
		}
	}
	for !h.Empty() {
		h.PopMax()
	}
}
