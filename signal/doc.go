// SPDX-License-Identifier: MIT

// Package signal generates deterministic test signals (linear chirps, pure
// tones and their mixtures) used as fixtures for the spectrogram and NMF
// pipeline and by the lvnmf synth command.
//
// Frequencies are expressed in cycles/sample, so f = Hz / sampleRate.
// Generators return nil on invalid input instead of panicking; for a fixed
// seed and options the output is bit-for-bit reproducible.
package signal
