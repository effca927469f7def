// SPDX-License-Identifier: MIT

package spectrogram

import "errors"

var (
	// ErrEmptySignal indicates that Compute received no samples.
	ErrEmptySignal = errors.New("spectrogram: empty signal")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("spectrogram: option violation")

	// ErrNaNInf indicates a non-finite input sample.
	ErrNaNInf = errors.New("spectrogram: NaN or Inf sample")
)
