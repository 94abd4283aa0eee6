// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds synthetic audio sources and PCM fixtures for tests.
package audiotest

import (
	"encoding/binary"
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame index i.
type Waveform func(i int, ch int) float32

// MockSource generates a fixed number of frames from a Waveform.
// It satisfies audio.Source without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	generated  int
	waveform   Waveform

	// Err, when set, is returned instead of io.EOF once the frames run out.
	Err    error
	Closed bool
}

// NewMockSource creates a source of frames frames per channel.
func NewMockSource(sampleRate, channels, frames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(i int, _ int) float32 {
		t := float64(i) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource counts up by step per frame; channel c is offset by c.
func NewRampSource(sampleRate, channels, frames int, step float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(i int, c int) float32 {
		return float32(i)*step + float32(c)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	end := io.EOF
	if m.Err != nil {
		end = m.Err
	}

	if m.generated >= m.frames {
		return 0, end
	}

	count := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range count {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += count

	if m.generated >= m.frames {
		return count * m.channels, end
	}

	return count * m.channels, nil
}

// PCM16 encodes samples as little-endian 16-bit PCM bytes.
func PCM16(samples ...int16) []byte {
	out := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}
	return out
}
