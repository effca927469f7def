// SPDX-License-Identifier: MIT

// Package lvnmf is a pure-Go toolkit for non-negative matrix factorization
// (NMF) and the audio plumbing around it.
//
// What is in the box?
//
//	matrix/       row-major Dense storage, NDArray input, validated kernels
//	              (Mul, MulTransA/B, Hadamard, ColumnNorms...), gonum interop, CSV
//	nmf/          multiplicative-update NMF under KL, Itakura-Saito or
//	              Euclidean divergence; NMF(X, k) returns (H, W)
//	spectrogram/  STFT magnitude/power spectrogram, the usual NMF input for audio
//	wavio/        mono WAV decode/encode and resampling
//	signal/       deterministic chirps and tones for fixtures and demos
//	cmd/lvnmf/    command line front end (factorize, reconstruct, synth, config,
//	              version)
//
// Quick example:
//
//	x, _ := matrix.NewNDArray([]int{2, 2}, []float64{1, 2, 3, 4})
//	h, w, err := nmf.NMF(x, 1, nmf.WithRule(nmf.RuleEuclidean))
//
// W and H are seeded with the sequential values 1..n·k and 1..k·m, so every
// run is deterministic; NNDSVD seeding is available with
// nmf.WithInit(nmf.InitNNDSVD).
//
//	go get github.com/katalvlaran/lvnmf
package lvnmf
