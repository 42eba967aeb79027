// SPDX-License-Identifier: EPL-2.0

// Package main provides feaplot, which draws selected dimensions of a raw
// feature file written by feacat as a PNG chart.
//
// Usage:
//
//	feaplot --dims 0,1,2 -o utt01.png utt01.fea
package main

import (
	"fmt"
	"os"

	"github.com/dinesh-batta/AaltoASR/cmd/feaplot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
