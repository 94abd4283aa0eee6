// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/poemaudio/audio"
	"github.com/ik5/poemaudio/utils"
)

// go-mp3 always produces interleaved stereo, whatever the file's channel mode.
const outputChannels = 2

// byteReader is the part of gomp3.Decoder used by source.
type byteReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        byteReader
	sampleRate int
	buf        []byte
	// odd byte left over from the previous Read, if any
	carry    byte
	hasCarry bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) * 2
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	off := 0
	if s.hasCarry {
		s.buf[0] = s.carry
		s.hasCarry = false
		off = 1
	}

	n, err := s.dec.Read(s.buf[off:])
	n += off

	samples := n / 2
	if n%2 == 1 {
		s.carry, s.hasCarry = s.buf[n-1], true
	}

	for i := range samples {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}

	switch {
	case err == io.EOF:
		return samples, io.EOF
	case err != nil:
		return samples, fmt.Errorf("reading MP3 frames: %w", err)
	}

	return samples, nil
}

// Decoder decodes MPEG-1/2 Layer III streams through hajimehoshi/go-mp3.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3Stream, err)
	}

	return newSource(dec), nil
}

func newSource(dec byteReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}
}
