// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type stubReader struct {
	rate, channels int
	samples        []float32
	err            error
}

func (s *stubReader) SampleRate() int { return s.rate }
func (s *stubReader) Channels() int   { return s.channels }

func (s *stubReader) Read(p []float32) (int, error) {
	if len(s.samples) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		return 0, io.EOF
	}

	n := copy(p, s.samples)
	s.samples = s.samples[n:]

	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	want := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	s := &source{dec: &stubReader{rate: 48000, channels: 2, samples: append([]float32(nil), want...)}}

	if s.SampleRate() != 48000 || s.Channels() != 2 {
		t.Fatalf("format = %d Hz/%d ch, want 48000 Hz/2 ch", s.SampleRate(), s.Channels())
	}

	// 5 slots trim to 4 so frames never split.
	buf := make([]float32, 5)
	var got []float32
	for {
		n, err := s.ReadSamples(buf)
		if n%2 != 0 {
			t.Fatalf("ReadSamples() returned %d samples, not whole frames", n)
		}
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_ShortDst(t *testing.T) {
	t.Parallel()

	s := &source{dec: &stubReader{rate: 44100, channels: 2, samples: []float32{1, 1}}}

	if n, err := s.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1 slot) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	s := &source{dec: &stubReader{rate: 44100, channels: 1, err: io.ErrUnexpectedEOF}}

	_, err := s.ReadSamples(make([]float32, 8))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestDecoder_NotVorbis(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("OggS but not really")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrNotVorbisStream) {
			t.Errorf("Decode(%q) error = %v, want ErrNotVorbisStream", data, err)
		}
	}
}
