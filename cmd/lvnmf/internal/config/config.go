// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration of the lvnmf CLI.
//
// A run file mirrors the solver and spectrogram options; every key is
// optional and missing keys keep their library defaults:
//
//	nmf:
//	  rank: 4
//	  max_iter: 300
//	  rule: kl            # kl | is | euclidean (or 0..2)
//	  threshold: 0.001    # 0 disables early stopping
//	  normalize: none     # none | l1 | l2 | max (or 0..3)
//	  stop: divergence    # divergence | factor
//	  epsilon: 1e-16
//	  init: sequential    # sequential | nndsvd
//	spectrogram:
//	  fft_size: 1024
//	  hop_size: 256       # 0 means fft_size/4
//	  window: hann        # hann | hamming | rect
//	  power: false
//	  sample_rate: 0      # resample WAV input first; 0 keeps the clip rate
//
// Command-line flags override file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnmf/nmf"
	"github.com/katalvlaran/lvnmf/spectrogram"
)

// ErrInvalid is returned for a run file that parses but holds unusable values.
var ErrInvalid = errors.New("config: invalid run configuration")

// Config is the root of a run file.
type Config struct {
	NMF         NMF         `yaml:"nmf"`
	Spectrogram Spectrogram `yaml:"spectrogram"`
}

// NMF mirrors nmf.Options plus the factorization rank.
type NMF struct {
	Rank      int               `yaml:"rank"`
	MaxIter   int               `yaml:"max_iter"`
	Rule      nmf.UpdateRule    `yaml:"rule"`
	Threshold float64           `yaml:"threshold"`
	Normalize nmf.NormalizeMode `yaml:"normalize"`
	Stop      nmf.StopCriterion `yaml:"stop"`
	Epsilon   float64           `yaml:"epsilon"`
	Init      nmf.InitStrategy  `yaml:"init"`
}

// Spectrogram mirrors spectrogram.Options.
type Spectrogram struct {
	FFTSize int                `yaml:"fft_size"`
	HopSize int                `yaml:"hop_size"`
	Window  spectrogram.Window `yaml:"window"`
	Power   bool               `yaml:"power"`

	// SampleRate, when positive, resamples WAV input before the STFT.
	SampleRate int `yaml:"sample_rate"`
}

// Default returns the library defaults with no rank set.
func Default() *Config {
	o := nmf.DefaultOptions()
	s := spectrogram.DefaultOptions()

	return &Config{
		NMF: NMF{
			MaxIter:   o.MaxIter,
			Rule:      o.Rule,
			Threshold: o.Threshold,
			Normalize: o.Normalize,
			Stop:      o.Stop,
			Epsilon:   o.Epsilon,
			Init:      o.Init,
		},
		Spectrogram: Spectrogram{
			FFTSize: s.FFTSize,
			HopSize: s.HopSize,
			Window:  s.Window,
			Power:   s.Power,
		},
	}
}

// Load reads the run file at path over Default. An empty path returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a run file over Default. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values the YAML types cannot express. Enum values are
// already checked while decoding.
func (c *Config) Validate() error {
	switch {
	case c.NMF.Rank < 0:
		return fmt.Errorf("%w: nmf.rank must be non-negative (%d)", ErrInvalid, c.NMF.Rank)
	case c.NMF.MaxIter <= 0:
		return fmt.Errorf("%w: nmf.max_iter must be positive (%d)", ErrInvalid, c.NMF.MaxIter)
	case c.NMF.Threshold < 0:
		return fmt.Errorf("%w: nmf.threshold must be non-negative (%g)", ErrInvalid, c.NMF.Threshold)
	case !(c.NMF.Epsilon > 0):
		return fmt.Errorf("%w: nmf.epsilon must be positive (%g)", ErrInvalid, c.NMF.Epsilon)
	case c.Spectrogram.FFTSize < 2:
		return fmt.Errorf("%w: spectrogram.fft_size must be at least 2 (%d)", ErrInvalid, c.Spectrogram.FFTSize)
	case c.Spectrogram.HopSize < 0:
		return fmt.Errorf("%w: spectrogram.hop_size must be non-negative (%d)", ErrInvalid, c.Spectrogram.HopSize)
	case c.Spectrogram.SampleRate < 0:
		return fmt.Errorf("%w: spectrogram.sample_rate must be non-negative (%d)", ErrInvalid, c.Spectrogram.SampleRate)
	}

	return nil
}

// NMFOptions converts the nmf section into solver options.
func (c *Config) NMFOptions() []nmf.Option {
	return []nmf.Option{
		nmf.WithMaxIter(c.NMF.MaxIter),
		nmf.WithRule(c.NMF.Rule),
		nmf.WithThreshold(c.NMF.Threshold),
		nmf.WithNormalize(c.NMF.Normalize),
		nmf.WithStop(c.NMF.Stop),
		nmf.WithEpsilon(c.NMF.Epsilon),
		nmf.WithInit(c.NMF.Init),
	}
}

// SpectrogramOptions converts the spectrogram section into STFT options.
func (c *Config) SpectrogramOptions() []spectrogram.Option {
	return []spectrogram.Option{
		spectrogram.WithOptions(spectrogram.Options{
			FFTSize: c.Spectrogram.FFTSize,
			HopSize: c.Spectrogram.HopSize,
			Window:  c.Spectrogram.Window,
			Power:   c.Spectrogram.Power,
		}),
	}
}

// Write encodes c as YAML, enums by name.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return enc.Close()
}
