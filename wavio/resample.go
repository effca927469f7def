// SPDX-License-Identifier: MIT

package wavio

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

const opResample = "Resample"

// Resample converts clip to rate with a high-quality polyphase filter.
// A clip already at rate comes back as a copy. The input is left untouched.
//
// The filter has a short start-up delay, so the output can be a few
// samples shorter than len(Samples)·rate/SampleRate.
func Resample(clip *Clip, rate int) (*Clip, error) {
	if clip == nil || clip.SampleRate <= 0 || len(clip.Samples) == 0 {
		return nil, fmt.Errorf("%s: %w", opResample, ErrEmptyClip)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%s: target rate %d: %w", opResample, rate, ErrUnsupported)
	}
	if rate == clip.SampleRate {
		return &Clip{SampleRate: rate, Samples: append([]float64(nil), clip.Samples...)}, nil
	}

	r, err := resampling.New(&resampling.Config{
		InputRate:  float64(clip.SampleRate),
		OutputRate: float64(rate),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %d -> %d Hz: %w", opResample, clip.SampleRate, rate, err)
	}
	out, err := r.Process(clip.Samples)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opResample, err)
	}

	return &Clip{SampleRate: rate, Samples: out}, nil
}
