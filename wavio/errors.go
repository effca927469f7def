// SPDX-License-Identifier: MIT

package wavio

import "errors"

var (
	// ErrNotWAV indicates the stream is not a readable RIFF/WAVE file.
	ErrNotWAV = errors.New("wavio: not a WAV file")

	// ErrUnsupported indicates a WAV encoding other than integer PCM.
	ErrUnsupported = errors.New("wavio: unsupported WAV encoding")

	// ErrEmptyClip indicates a clip with no samples or no sample rate.
	ErrEmptyClip = errors.New("wavio: empty clip")
)
