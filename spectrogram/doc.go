// SPDX-License-Identifier: MIT

// Package spectrogram turns a mono sample stream into the non-negative
// time-frequency matrix that NMF decomposes.
//
// What:
//
//	Compute runs a short-time Fourier transform over windowed frames and
//	returns a (FFTSize/2+1) × frames matrix of magnitudes (or powers).
//	Row b is frequency bin b, column f is frame f, so a factorization
//	X ≈ W·H yields spectral templates in W and their activations in H.
//
// Framing:
//
//	frames = 1 + ⌊(len(samples) − FFTSize) / HopSize⌋ for signals at least
//	one frame long; shorter signals are zero-padded to exactly one frame.
//	Trailing samples that do not fill a whole frame are dropped.
//
// Options:
//
//	WithFFTSize(n)   frame length, n ≥ 2 (default 1024, power of two not required)
//	WithHopSize(h)   frame advance, h ≥ 1 (default FFTSize/4)
//	WithWindow(w)    WindowHann (default), WindowHamming, WindowRect
//	WithPower(true)  |X|² instead of |X|
//
// Complexity:
//
//	Time O(frames · FFTSize · log FFTSize), Space O(bins · frames).
package spectrogram
