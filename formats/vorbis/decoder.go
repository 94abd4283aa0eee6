// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/poemaudio/audio"
)

// frameReader is the part of oggvorbis.Reader used by source.
type frameReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec frameReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples decodes straight into dst, trimmed to whole frames.
// oggvorbis returns the number of samples written, already interleaved.
func (s *source) ReadSamples(dst []float32) (int, error) {
	ch := s.dec.Channels()
	dst = dst[:len(dst)-len(dst)%ch]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)

	switch {
	case err == io.EOF:
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("reading Ogg Vorbis packets: %w", err)
	}

	return n, nil
}

// Decoder decodes Ogg Vorbis streams through jfreymuth/oggvorbis.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisStream, err)
	}

	return &source{dec: dec}, nil
}
