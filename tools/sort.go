package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/navijation/njheaps/binaryheap"
	"github.com/navijation/njheaps/intervalheap"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func runSort(ctx context.Context, cmd *cli.Command) error {
	values, err := collectSortInputs(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("desc") {
		h := intervalheap.FromSlice(func(a, b int) bool { return a < b }, values)
		for !h.Empty() {
			fmt.Println(h.PopMax())
		}
		return nil
	}

	h := binaryheap.FromSlice(func(a, b int) bool { return a < b }, values)
	for !h.Empty() {
		fmt.Println(h.Pop())
	}
	return nil
}

func collectSortInputs(cmd *cli.Command) ([]int, error) {
	fields := cmd.Args().Slice()
	if len(fields) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			fields = append(fields, strings.Fields(scanner.Text())...)
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
	}

	out := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid integer %q", field)
		}
		out = append(out, value)
	}
	return out, nil
}
