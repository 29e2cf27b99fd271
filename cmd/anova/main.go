// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// anova reads whitespace-separated rows of the form
//
//	value label1 [label2 ...]
//
// from stdin and prints an n-way analysis of variance of value over
// the label columns.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/statbox/go-statbox/stats"
)

var maxOrder = flag.Int("maxorder", 0, "highest interaction order to test (0 means full factorial)")

func main() {
	flag.Parse()

	ys, factors, err := readInput(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := stats.Sample{Xs: ys}
	fmt.Printf("N %d  mean %.6g  std dev %.6g\n\n", len(ys), s.Mean(), s.StdDev())

	res, err := stats.AnovaN(ys, factors, *maxOrder)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	res.Fprint(os.Stdout)
}

func readInput(r io.Reader) (ys []float64, factors [][]string, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		value, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", line)
		}
		if factors == nil {
			if len(fields) < 2 {
				return nil, nil, errors.Errorf("line %d: need at least one label column", line)
			}
			factors = make([][]string, len(fields)-1)
		} else if len(fields)-1 != len(factors) {
			return nil, nil, errors.Errorf("line %d: got %d label columns, want %d",
				line, len(fields)-1, len(factors))
		}
		ys = append(ys, value)
		for j, label := range fields[1:] {
			factors[j] = append(factors[j], label)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return ys, factors, nil
}
