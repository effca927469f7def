// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnmf/signal"
	"github.com/katalvlaran/lvnmf/wavio"
)

// toneHz is the pitch of the steady partial mixed under the sweep.
const toneHz = 440.0

func newSynthCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var (
		out     string
		samples int
		rate    int
		seed    int64
		noise   float64
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Write a deterministic chirp-plus-tone WAV clip",
		Long: `Write a mono 16-bit WAV clip holding a linear chirp mixed with a steady
440 Hz tone. The two sources give a rank-2 factorization something to separate.

Example:
  lvnmf synth --out demo.wav --samples 32000 --rate 16000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples < 1 || rate < 1 {
				return fmt.Errorf("--samples and --rate must be positive")
			}
			if 2*toneHz >= float64(rate) {
				return fmt.Errorf("--rate %d is too low for a %.0f Hz tone", rate, toneHz)
			}

			sweep := signal.Chirp(samples,
				signal.WithAmplitude(0.5),
				signal.WithSweep(0.01, 0.2),
				signal.WithNoise(noise),
				signal.WithSeed(seed),
			)
			if sweep == nil {
				return fmt.Errorf("--noise must be non-negative")
			}
			mix := signal.Mix(sweep, signal.Tone(samples, toneHz/float64(rate), signal.WithAmplitude(0.3)))
			if signal.Peak(mix) > 1 {
				signal.Normalize(mix, 1)
			}

			clip := &wavio.Clip{SampleRate: rate, Samples: mix}
			if err := wavio.WriteFile(out, clip); err != nil {
				return err
			}
			logger(cmd).Info("clip written", "path", out, "samples", samples, "duration", clip.Duration())

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&out, "out", "o", "", "output WAV path")
	fl.IntVar(&samples, "samples", 16000, "clip length in samples")
	fl.IntVar(&rate, "rate", 16000, "sample rate in Hz")
	fl.Int64Var(&seed, "seed", 1, "noise seed")
	fl.Float64Var(&noise, "noise", 0, "Gaussian noise sigma")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
