// SPDX-License-Identifier: MIT

// Package wavio reads and writes mono PCM WAV clips for the spectrogram and
// NMF pipeline.
//
// Decode accepts 8, 16, 24 and 32-bit integer PCM with any channel count,
// down-mixes to mono by averaging channels and scales samples to [-1, 1].
// Encode writes 16-bit mono PCM; samples outside [-1, 1] are clipped.
// Resample converts a clip to another rate before the STFT.
// Container parsing is delegated to github.com/go-audio/wav.
package wavio
