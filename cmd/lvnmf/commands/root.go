// SPDX-License-Identifier: MIT

package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Command builds the lvnmf command tree. Every call returns a fresh tree,
// so flag state never leaks between invocations.
func Command() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "lvnmf",
		Short: "Non-negative matrix factorization toolkit",
		Long: `lvnmf factorizes a non-negative matrix X (n×m) into W (n×k) and H (k×m)
with multiplicative updates under the KL, Itakura-Saito or Euclidean divergence.

Input is either a CSV matrix or a WAV clip, which is first turned into a
magnitude spectrogram. W and H are written as CSV files next to a model
file that reconstruct reads back.

Examples:
  lvnmf factorize --input X.csv --rank 2 --rule euclidean
  lvnmf factorize --input clip.wav --rank 8 --config run.yaml -v
  lvnmf reconstruct --model model.msgpack --input X.csv
  lvnmf synth --out demo.wav
  lvnmf config > run.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every iteration")

	logger := func(cmd *cobra.Command) *slog.Logger {
		return newLogger(cmd.ErrOrStderr(), verbose)
	}

	root.AddCommand(
		newFactorizeCmd(logger),
		newReconstructCmd(logger),
		newSynthCmd(logger),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return Command().Execute()
}

// newLogger returns a text logger on w at Debug when verbose, Info otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
