// SPDX-License-Identifier: MIT

// lvnmf factorizes non-negative matrices and audio spectrograms from the
// command line.
//
// Usage:
//
//	lvnmf factorize --input spectrum.csv --rank 4 --rule euclidean --out-dir out/
//	lvnmf factorize --input clip.wav --rank 8 --config run.yaml -v
//	lvnmf synth --out demo.wav
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvnmf/cmd/lvnmf/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvnmf:", err)
		os.Exit(1)
	}
}
