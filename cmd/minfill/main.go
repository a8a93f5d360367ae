// SPDX-License-Identifier: MIT

// Command minfill computes exact minimum fill-ins of graphs given as edge
// lists and generates test instances.
//
//	minfill solve graph.txt
//	minfill gen chordal-minus --n 40 --k 3 --seed 7 | minfill solve --format json
package main

import (
	"fmt"
	"os"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "minfill:", err)
		os.Exit(1)
	}
}
