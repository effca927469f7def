// SPDX-License-Identifier: MIT

package wavio_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnmf/signal"
	"github.com/katalvlaran/lvnmf/wavio"
)

// writeRaw encodes interleaved integer samples with the given layout.
func writeRaw(t *testing.T, path string, rate, depth, chans int, data []int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, depth, chans, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: chans, SampleRate: rate},
		SourceBitDepth: depth,
	}))
	require.NoError(t, enc.Close())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tone.wav")
	in := &wavio.Clip{SampleRate: 8000, Samples: signal.Tone(800, 0.05, signal.WithAmplitude(0.8))}

	require.NoError(t, wavio.WriteFile(path, in))
	out, err := wavio.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8000, out.SampleRate)
	require.Len(t, out.Samples, len(in.Samples))
	for i := range in.Samples {
		require.InDeltaf(t, in.Samples[i], out.Samples[i], 1.0/32767, "sample %d", i)
	}
	assert.Equal(t, 100*time.Millisecond, out.Duration())
}

func TestEncode_Clips(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "loud.wav")
	require.NoError(t, wavio.WriteFile(path, &wavio.Clip{SampleRate: 100, Samples: []float64{2, -3, math.NaN(), 0.5}}))

	out, err := wavio.ReadFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 1, out.Samples[0], 1e-12)
	assert.InDelta(t, -1, out.Samples[1], 1e-12)
	assert.Zero(t, out.Samples[2])
	assert.InDelta(t, 0.5, out.Samples[3], 1.0/32767)
}

func TestDecode_StereoDownMix(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeRaw(t, path, 44100, 16, 2, []int{16384, 0, -32767, -32767, 32767, 32767})

	out, err := wavio.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, out.Samples, 3)
	assert.InDelta(t, 0.25, out.Samples[0], 1e-4)
	assert.InDelta(t, -1, out.Samples[1], 1e-12)
	assert.InDelta(t, 1, out.Samples[2], 1e-12)
}

func TestDecode_EightBitUnsigned(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "u8.wav")
	writeRaw(t, path, 8000, 8, 1, []int{128, 255, 1})

	out, err := wavio.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, out.Samples, 3)
	assert.InDelta(t, 0, out.Samples[0], 1e-12)
	assert.InDelta(t, 1, out.Samples[1], 1e-12)
	assert.InDelta(t, -1, out.Samples[2], 1e-12)
}

func TestDecode_NotWAV(t *testing.T) {
	t.Parallel()
	_, err := wavio.Decode(bytes.NewReader([]byte("definitely not a riff container")))
	require.ErrorIs(t, err, wavio.ErrNotWAV)
}

func TestEncode_Empty(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "empty.wav")
	require.ErrorIs(t, wavio.WriteFile(path, &wavio.Clip{SampleRate: 8000}), wavio.ErrEmptyClip)
	require.ErrorIs(t, wavio.WriteFile(path, &wavio.Clip{Samples: []float64{1}}), wavio.ErrEmptyClip)
	require.ErrorIs(t, wavio.WriteFile(path, nil), wavio.ErrEmptyClip)
}

func TestClip_Duration(t *testing.T) {
	t.Parallel()
	assert.Zero(t, (*wavio.Clip)(nil).Duration())
	assert.Equal(t, 2*time.Second, (&wavio.Clip{SampleRate: 4, Samples: make([]float64, 8)}).Duration())
}
