// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"io"

	"github.com/ik5/poemaudio/utils"
)

// PCMSource streams raw mono 16-bit little-endian PCM bytes as a Source.
// A trailing odd byte is not a whole sample and is never returned.
type PCMSource struct {
	pcm        []byte
	sampleRate int
	off        int
}

func NewPCMSource(pcm []byte, sampleRate int) *PCMSource {
	return &PCMSource{pcm: pcm, sampleRate: sampleRate}
}

func (p *PCMSource) SampleRate() int { return p.sampleRate }
func (p *PCMSource) Channels() int   { return 1 }
func (p *PCMSource) BufSize() int    { return len(p.pcm) / 2 }
func (p *PCMSource) Close() error    { return nil }

func (p *PCMSource) ReadSamples(dst []float32) (int, error) {
	n := 0
	for n < len(dst) && p.off+2 <= len(p.pcm) {
		dst[n] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(p.pcm[p.off:])))
		p.off += 2
		n++
	}

	if p.off+2 > len(p.pcm) {
		return n, io.EOF
	}

	return n, nil
}
