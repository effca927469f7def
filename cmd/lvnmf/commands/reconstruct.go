// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnmf/cmd/lvnmf/internal/model"
	"github.com/katalvlaran/lvnmf/matrix"
	"github.com/katalvlaran/lvnmf/nmf"
)

func newReconstructCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var modelFn, input, out string

	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Rebuild W·H from a saved model and optionally score it",
		Long: `Load a model written by factorize, write V = W·H as CSV to --out and,
when --input names the original CSV matrix, report the divergence under the
model's rule and the relative error ‖X−V‖/‖X‖.

Example:
  lvnmf reconstruct --model out/model.msgpack --input X.csv --out V.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconstruct(cmd, logger(cmd), modelFn, input, out)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&modelFn, "model", "m", "", "model file written by factorize")
	fl.StringVarP(&input, "input", "i", "", "original CSV matrix to score against")
	fl.StringVarP(&out, "out", "o", "V.csv", "output CSV for W·H")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func runReconstruct(cmd *cobra.Command, log *slog.Logger, modelFn, input, out string) error {
	m, err := model.Load(modelFn)
	if err != nil {
		return err
	}
	w, h, err := m.Factors()
	if err != nil {
		return err
	}
	v, err := nmf.Reconstruct(w, h)
	if err != nil {
		return err
	}
	if err := writeCSV(out, v); err != nil {
		return err
	}
	rows, cols := v.Shape()
	log.Info("model loaded", "path", modelFn, "rank", m.Rank, "rule", m.Rule, "iterations", m.Iterations)

	stdout := cmd.OutOrStdout()
	fmt.Fprintf(stdout, "V %d×%d -> %s\n", rows, cols, out)
	if input == "" {
		return nil
	}

	x, err := readCSV(input)
	if err != nil {
		return err
	}
	rule, err := m.UpdateRule()
	if err != nil {
		return err
	}
	div, err := nmf.Divergence(rule, x, v, nmf.DefaultEpsilon)
	if err != nil {
		return err
	}
	relErr, err := relativeError(x, v)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "divergence=%g relative_error=%.6f\n", div, relErr)

	return nil
}

// relativeError returns ‖X−V‖_F / ‖X‖_F, or ‖X−V‖_F for an all-zero X.
func relativeError(x, v matrix.Matrix) (float64, error) {
	residual, err := matrix.Sub(x, v)
	if err != nil {
		return 0, err
	}
	num, err := matrix.FrobeniusNorm(residual)
	if err != nil {
		return 0, err
	}
	den, err := matrix.FrobeniusNorm(x)
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return num, nil
	}

	return num / den, nil
}
