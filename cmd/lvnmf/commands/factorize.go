// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnmf/cmd/lvnmf/internal/config"
	"github.com/katalvlaran/lvnmf/cmd/lvnmf/internal/model"
	"github.com/katalvlaran/lvnmf/matrix"
	"github.com/katalvlaran/lvnmf/nmf"
	"github.com/katalvlaran/lvnmf/spectrogram"
	"github.com/katalvlaran/lvnmf/wavio"
)

const (
	basisFile      = "W.csv"
	activationFile = "H.csv"
)

var errNoRank = errors.New("rank is required (--rank or nmf.rank in --config)")

type factorizeFlags struct {
	input     string
	configFn  string
	outDir    string
	rank      int
	maxIter   int
	rule      string
	threshold float64
	normalize string
	stop      string
	init      string
	fftSize   int
	hopSize   int
	window    string
	power     bool
	rate      int
}

func newFactorizeCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var f factorizeFlags

	cmd := &cobra.Command{
		Use:   "factorize",
		Short: "Factorize a CSV matrix or a WAV spectrogram into W and H",
		Long: `Factorize X ≈ W·H and write W.csv (n×k), H.csv (k×m) and model.msgpack
to --out-dir. The model file feeds "lvnmf reconstruct".

A .wav input is decoded to mono, optionally resampled to --sample-rate and
turned into a magnitude spectrogram (bins × frames); any other input is read
as a CSV matrix. Flags override values from --config.

Example:
  lvnmf factorize --input X.csv --rank 2 --rule euclidean --out-dir out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.configFn)
			if err != nil {
				return err
			}
			if err := f.apply(cmd, cfg); err != nil {
				return err
			}
			return runFactorize(cmd, logger(cmd), cfg, f.input, f.outDir)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "input matrix (.csv) or clip (.wav)")
	fl.StringVarP(&f.configFn, "config", "c", "", "YAML run configuration")
	fl.StringVarP(&f.outDir, "out-dir", "o", ".", "directory for W.csv and H.csv")
	fl.IntVarP(&f.rank, "rank", "k", 0, "factorization rank")
	fl.IntVar(&f.maxIter, "max-iter", nmf.DefaultMaxIter, "iteration cap")
	fl.StringVar(&f.rule, "rule", nmf.RuleKL.String(), "update rule: kl, is, euclidean")
	fl.Float64Var(&f.threshold, "threshold", nmf.DefaultThreshold, "early-stopping threshold, 0 disables")
	fl.StringVar(&f.normalize, "normalize", nmf.NormalizeNone.String(), "W column normalization: none, l1, l2, max")
	fl.StringVar(&f.stop, "stop", nmf.StopDivergence.String(), "stop criterion: divergence, factor")
	fl.StringVar(&f.init, "init", nmf.InitSequential.String(), "seeding: sequential, nndsvd")
	fl.IntVar(&f.fftSize, "fft-size", spectrogram.DefaultFFTSize, "STFT frame length for WAV input")
	fl.IntVar(&f.hopSize, "hop-size", 0, "STFT hop for WAV input, 0 means fft-size/4")
	fl.StringVar(&f.window, "window", spectrogram.WindowHann.String(), "STFT window: hann, hamming, rect")
	fl.BoolVar(&f.power, "power", false, "power instead of magnitude spectrogram")
	fl.IntVar(&f.rate, "sample-rate", 0, "resample WAV input to this rate first, 0 keeps the clip rate")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// apply copies every flag the user set onto cfg.
func (f *factorizeFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	set := cmd.Flags().Changed
	var err error

	if set("rank") {
		cfg.NMF.Rank = f.rank
	}
	if set("max-iter") {
		cfg.NMF.MaxIter = f.maxIter
	}
	if set("threshold") {
		cfg.NMF.Threshold = f.threshold
	}
	if set("rule") {
		if cfg.NMF.Rule, err = nmf.ParseUpdateRule(f.rule); err != nil {
			return fmt.Errorf("--rule: %w", err)
		}
	}
	if set("normalize") {
		if cfg.NMF.Normalize, err = nmf.ParseNormalizeMode(f.normalize); err != nil {
			return fmt.Errorf("--normalize: %w", err)
		}
	}
	if set("stop") {
		if cfg.NMF.Stop, err = nmf.ParseStopCriterion(f.stop); err != nil {
			return fmt.Errorf("--stop: %w", err)
		}
	}
	if set("init") {
		if cfg.NMF.Init, err = nmf.ParseInitStrategy(f.init); err != nil {
			return fmt.Errorf("--init: %w", err)
		}
	}
	if set("fft-size") {
		cfg.Spectrogram.FFTSize = f.fftSize
	}
	if set("hop-size") {
		cfg.Spectrogram.HopSize = f.hopSize
	}
	if set("window") {
		if cfg.Spectrogram.Window, err = spectrogram.ParseWindow(f.window); err != nil {
			return fmt.Errorf("--window: %w", err)
		}
	}
	if set("power") {
		cfg.Spectrogram.Power = f.power
	}
	if set("sample-rate") {
		cfg.Spectrogram.SampleRate = f.rate
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.NMF.Rank == 0 {
		return errNoRank
	}

	return nil
}

func runFactorize(cmd *cobra.Command, log *slog.Logger, cfg *config.Config, input, outDir string) error {
	x, err := loadInput(log, cfg, input)
	if err != nil {
		return err
	}
	n, m := x.Shape()
	log.Info("input loaded", "path", input, "rows", n, "cols", m)

	opts := append(cfg.NMFOptions(), nmf.WithLogger(log))
	res, err := nmf.Factorize(x, cfg.NMF.Rank, opts...)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeCSV(filepath.Join(outDir, basisFile), res.W); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(outDir, activationFile), res.H); err != nil {
		return err
	}
	modelPath := filepath.Join(outDir, model.FileName)
	if err := model.Save(modelPath, model.FromResult(cfg.NMF.Rule, res)); err != nil {
		return fmt.Errorf("save model: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rank=%d rule=%s iterations=%d converged=%t divergence=%g\n",
		cfg.NMF.Rank, cfg.NMF.Rule, res.Iterations, res.Converged, res.FinalDivergence())
	fmt.Fprintf(out, "W %d×%d -> %s\n", n, cfg.NMF.Rank, filepath.Join(outDir, basisFile))
	fmt.Fprintf(out, "H %d×%d -> %s\n", cfg.NMF.Rank, m, filepath.Join(outDir, activationFile))
	fmt.Fprintf(out, "model -> %s\n", modelPath)

	return nil
}

// loadInput reads a CSV matrix, or a WAV clip turned into its spectrogram.
func loadInput(log *slog.Logger, cfg *config.Config, path string) (*matrix.Dense, error) {
	if !isWAV(path) {
		return readCSV(path)
	}

	clip, err := wavio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log.Debug("clip decoded", "sample_rate", clip.SampleRate, "samples", len(clip.Samples), "duration", clip.Duration())
	if rate := cfg.Spectrogram.SampleRate; rate > 0 && rate != clip.SampleRate {
		if clip, err = wavio.Resample(clip, rate); err != nil {
			return nil, err
		}
		log.Debug("clip resampled", "sample_rate", clip.SampleRate, "samples", len(clip.Samples))
	}

	return spectrogram.Compute(clip.Samples, cfg.SpectrogramOptions()...)
}

func isWAV(path string) bool { return strings.EqualFold(filepath.Ext(path), ".wav") }

func readCSV(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return matrix.ReadCSV(f)
}

func writeCSV(path string, m matrix.Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return matrix.WriteCSV(f, m)
}
