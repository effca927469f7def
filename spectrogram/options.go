// SPDX-License-Identifier: MIT

package spectrogram

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultFFTSize is the default frame length in samples.
	DefaultFFTSize = 1024

	// minFFTSize keeps the symmetric window formulas well defined.
	minFFTSize = 2
)

// Window selects the taper applied to every frame before the FFT.
type Window int

const (
	// WindowHann is the raised-cosine window (default).
	WindowHann Window = iota

	// WindowHamming is the Hamming window.
	WindowHamming

	// WindowRect applies no taper.
	WindowRect
)

var windowNames = []string{"hann", "hamming", "rect"}

// String returns the lower-case window name.
func (w Window) String() string {
	if w >= 0 && int(w) < len(windowNames) {
		return windowNames[w]
	}
	return "unknown(" + strconv.Itoa(int(w)) + ")"
}

// ParseWindow accepts "hann", "hamming", "rect" or the ordinal "0".."2".
func ParseWindow(s string) (Window, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range windowNames {
		if s == n {
			return Window(i), nil
		}
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 && v < len(windowNames) {
		return Window(v), nil
	}

	return 0, fmt.Errorf("%w: unknown window %q", ErrOptionViolation, s)
}

// MarshalText implements encoding.TextMarshaler.
func (w Window) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseWindow.
func (w *Window) UnmarshalText(b []byte) (err error) {
	*w, err = ParseWindow(string(b))
	return err
}

// Option configures Compute.
type Option func(*Options)

// Options holds the STFT parameters.
type Options struct {
	// FFTSize is the frame length (≥ 2).
	FFTSize int

	// HopSize is the frame advance; 0 means FFTSize/4 (at least 1).
	HopSize int

	// Window tapers every frame.
	Window Window

	// Power selects |X|² over |X|.
	Power bool

	err error
}

// DefaultOptions returns FFTSize 1024, hop FFTSize/4, Hann window, magnitude.
func DefaultOptions() Options {
	return Options{FFTSize: DefaultFFTSize, Window: WindowHann}
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithFFTSize sets the frame length. n < 2 → ErrOptionViolation.
func WithFFTSize(n int) Option {
	return func(o *Options) {
		if n < minFFTSize {
			o.fail("FFTSize must be at least %d (%d)", minFFTSize, n)
			return
		}
		o.FFTSize = n
	}
}

// WithHopSize sets the frame advance. h < 0 → ErrOptionViolation; 0 restores the default.
func WithHopSize(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.fail("HopSize must be non-negative (%d)", h)
			return
		}
		o.HopSize = h
	}
}

// WithWindow selects the frame taper.
func WithWindow(w Window) Option {
	return func(o *Options) {
		if w < WindowHann || w > WindowRect {
			o.fail("unknown window %d", int(w))
			return
		}
		o.Window = w
	}
}

// WithPower selects a power spectrogram when on is true.
func WithPower(on bool) Option {
	return func(o *Options) { o.Power = on }
}

// WithOptions copies a fully populated Options value, e.g. one decoded
// from a config file, and validates it as the individual setters would.
func WithOptions(src Options) Option {
	return func(o *Options) {
		for _, apply := range []Option{
			WithFFTSize(src.FFTSize),
			WithHopSize(src.HopSize),
			WithWindow(src.Window),
			WithPower(src.Power),
		} {
			apply(o)
		}
	}
}

// resolve applies opts over the defaults and fills the derived hop size.
func resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.HopSize == 0 {
		o.HopSize = max(o.FFTSize/4, 1)
	}

	return o, nil
}
