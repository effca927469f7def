// SPDX-License-Identifier: MIT

package wavio

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// EncodeBitDepth is the sample width Encode writes.
	EncodeBitDepth = 16

	// wavFormatPCM is the WAVE_FORMAT_PCM tag.
	wavFormatPCM = 1

	opDecode = "Decode"
	opEncode = "Encode"
)

// Clip is a mono sample stream in [-1, 1].
type Clip struct {
	SampleRate int
	Samples    []float64
}

// Duration returns the playback length of the clip.
func (c *Clip) Duration() time.Duration {
	if c == nil || c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(c.Samples)) * time.Second / time.Duration(c.SampleRate)
}

// Decode reads a WAV stream and returns its mono down-mix.
//
// Errors:
//   - ErrNotWAV: bad header, no channels, or no PCM data.
//   - ErrUnsupported: non-integer PCM or an unusual bit depth.
func Decode(r io.ReadSeeker) (*Clip, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		if err := d.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", opDecode, ErrNotWAV, err)
		}
		return nil, fmt.Errorf("%s: %w", opDecode, ErrNotWAV)
	}
	if d.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%s: %w: format tag %d", opDecode, ErrUnsupported, d.WavAudioFormat)
	}
	depth := int(d.BitDepth)
	full := audio.IntMaxSignedValue(depth)
	if full == 0 {
		return nil, fmt.Errorf("%s: %w: %d-bit samples", opDecode, ErrUnsupported, depth)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opDecode, ErrNotWAV, err)
	}
	chans := int(d.NumChans)
	frames := len(buf.Data) / chans
	if frames == 0 {
		return nil, fmt.Errorf("%s: %w", opDecode, ErrEmptyClip)
	}

	// 8-bit PCM is unsigned and centred on 128.
	offset := 0
	if depth == 8 {
		offset = 128
	}
	scale := 1 / (float64(full) * float64(chans))

	out := make([]float64, frames)
	for f := range out {
		sum := 0
		for c := 0; c < chans; c++ {
			sum += buf.Data[f*chans+c] - offset
		}
		out[f] = clamp(float64(sum) * scale)
	}

	return &Clip{SampleRate: int(d.SampleRate), Samples: out}, nil
}

// Encode writes clip as 16-bit mono PCM. Samples are clipped to [-1, 1] and
// NaN is written as silence. w must be seekable so the header sizes can be
// patched once all samples are written.
func Encode(w io.WriteSeeker, clip *Clip) error {
	if clip == nil || len(clip.Samples) == 0 || clip.SampleRate <= 0 {
		return fmt.Errorf("%s: %w", opEncode, ErrEmptyClip)
	}

	full := float64(audio.IntMaxSignedValue(EncodeBitDepth))
	data := make([]int, len(clip.Samples))
	for i, s := range clip.Samples {
		data[i] = int(math.Round(clamp(s) * full))
	}

	enc := wav.NewEncoder(w, clip.SampleRate, EncodeBitDepth, 1, wavFormatPCM)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: 1, SampleRate: clip.SampleRate},
		SourceBitDepth: EncodeBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%s: %w", opEncode, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: %w", opEncode, err)
	}

	return nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile encodes clip into a new file at path, replacing any existing one.
func WriteFile(path string, clip *Clip) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, clip)
}

// clamp limits v to [-1, 1]; NaN becomes silence.
func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}
