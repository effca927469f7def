// SPDX-License-Identifier: MIT

package spectrogram

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvnmf/matrix"
)

const opCompute = "Compute"

// Compute returns the STFT spectrogram of samples as a bins × frames matrix,
// bins = FFTSize/2+1. Every entry is ≥ 0, so the result is a valid NMF input.
//
// Errors:
//   - ErrEmptySignal, ErrNaNInf, ErrOptionViolation.
func Compute(samples []float64, opts ...Option) (*matrix.Dense, error) {
	o, err := resolve(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: %w", opCompute, ErrEmptySignal)
	}
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: sample %d: %w", opCompute, i, ErrNaNInf)
		}
	}

	n, hop := o.FFTSize, o.HopSize
	frames := FrameCount(len(samples), n, hop)
	bins := n/2 + 1

	out, err := matrix.NewDense(bins, frames)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	dst := out.Data()

	taper := windowCoefficients(o.Window, n)
	fft := fourier.NewFFT(n)
	buf := make([]float64, n)
	coeff := make([]complex128, bins)

	for f := 0; f < frames; f++ {
		start := f * hop
		for i := range buf {
			buf[i] = 0
		}
		if start < len(samples) {
			copy(buf, samples[start:min(start+n, len(samples))])
		}
		floats.Mul(buf, taper)

		coeff = fft.Coefficients(coeff, buf)
		for b, c := range coeff {
			mag := cmplx.Abs(c)
			if o.Power {
				mag *= mag
			}
			dst[b*frames+f] = mag
		}
	}

	return out, nil
}

// FrameCount returns the number of frames Compute produces for a signal of
// length samples. Signals shorter than one frame yield exactly one frame.
func FrameCount(samples, fftSize, hop int) int {
	if samples <= fftSize || hop <= 0 {
		return 1
	}
	return 1 + (samples-fftSize)/hop
}

// BinFrequency returns the centre frequency of bin in Hz.
func BinFrequency(bin, fftSize int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(fftSize)
}

// windowCoefficients returns the n-point taper for w.
func windowCoefficients(w Window, n int) []float64 {
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = 1
	}
	switch w {
	case WindowHamming:
		return window.Hamming(seq)
	case WindowRect:
		return window.Rectangular(seq)
	default:
		return window.Hann(seq)
	}
}
