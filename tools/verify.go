package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/navijation/njheaps/binaryheap"
	"github.com/navijation/njheaps/heaptest"
	"github.com/navijation/njheaps/intervalheap"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func runVerify(ctx context.Context, cmd *cli.Command) error {
	ops := cmd.Uint("ops")
	seed := int64(cmd.Uint("seed"))

	if err := verifyBinary(rand.New(rand.NewSource(seed)), ops); err != nil {
		return errors.Wrap(err, "binaryheap diverged from oracle")
	}
	fmt.Printf("binaryheap: %d ops ok\n", ops)

	if err := verifyInterval(rand.New(rand.NewSource(seed)), ops); err != nil {
		return errors.Wrap(err, "intervalheap diverged from oracle")
	}
	fmt.Printf("intervalheap: %d ops ok\n", ops)
	return nil
}

func verifyBinary(rng *rand.Rand, ops uint64) error {
	h := binaryheap.New[int]()
	oracle := heaptest.NewOracle(func(a, b int) bool { return a < b })

	check := func(step uint64) error {
		if h.Size() != oracle.Size() {
			return errors.Errorf("step %d: size %d, oracle %d", step, h.Size(), oracle.Size())
		}
		if !oracle.Empty() && h.Min() != oracle.Min() {
			return errors.Errorf("step %d: min %d, oracle %d", step, h.Min(), oracle.Min())
		}
		return nil
	}

	for i := uint64(0); i < ops; i++ {
		v := rng.Intn(1_000_000)
		switch op := rng.Intn(3); {
		case op == 0 && !oracle.Empty():
			want := oracle.PopMin()
			if got := h.Pop(); got != want {
				return errors.Errorf("step %d: popped %d, oracle %d", i, got, want)
			}
		case op == 1 && !oracle.Empty():
			oracle.PopMin()
			oracle.Push(v)
			h.ReplaceTop(v)
		default:
			oracle.Push(v)
			h.Push(v)
		}
		if err := check(i); err != nil {
			return err
		}
	}
	return nil
}

func verifyInterval(rng *rand.Rand, ops uint64) error {
	h := intervalheap.New[int]()
	oracle := heaptest.NewOracle(func(a, b int) bool { return a < b })

	check := func(step uint64) error {
		if h.Size() != oracle.Size() {
			return errors.Errorf("step %d: size %d, oracle %d", step, h.Size(), oracle.Size())
		}
		if oracle.Empty() {
			return nil
		}
		if h.Min() != oracle.Min() {
			return errors.Errorf("step %d: min %d, oracle %d", step, h.Min(), oracle.Min())
		}
		if h.Max() != oracle.Max() {
			return errors.Errorf("step %d: max %d, oracle %d", step, h.Max(), oracle.Max())
		}
		return nil
	}

	for i := uint64(0); i < ops; i++ {
		v := rng.Intn(1_000_000)
		switch op := rng.Intn(5); {
		case op == 0 && !oracle.Empty():
			want := oracle.PopMin()
			if got := h.PopMin(); got != want {
				return errors.Errorf("step %d: popped min %d, oracle %d", i, got, want)
			}
		case op == 1 && !oracle.Empty():
			want := oracle.PopMax()
			if got := h.PopMax(); got != want {
				return errors.Errorf("step %d: popped max %d, oracle %d", i, got, want)
			}
		case op == 2 && !oracle.Empty():
			oracle.PopMin()
			oracle.Push(v)
			h.ReplaceMin(v)
		case op == 3 && !oracle.Empty():
			oracle.PopMax()
			oracle.Push(v)
			h.ReplaceMax(v)
		default:
			oracle.Push(v)
			h.Push(v)
		}
		if err := check(i); err != nil {
			return err
		}
	}
	return nil
}
