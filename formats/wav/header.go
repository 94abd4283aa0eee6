// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
)

// HeaderSize is the length of the canonical RIFF/WAVE header written by this package.
const HeaderSize = 44

const (
	fmtChunkSize = 16
	formatPCM    = 1
)

// Header describes a canonical 44-byte PCM WAV header.
type Header struct {
	SampleRate    uint32
	Channels      uint16
	BitsPerSample uint16
	DataSize      uint32
}

// NewPCM16Header returns the header for dataSize bytes of mono 16-bit PCM.
// The size fields are 32-bit: dataSize above math.MaxUint32-36 does not fit
// and is truncated.
func NewPCM16Header(sampleRate int, dataSize int) Header {
	return Header{
		SampleRate:    uint32(sampleRate),
		Channels:      1,
		BitsPerSample: 16,
		DataSize:      uint32(dataSize),
	}
}

func (h Header) ByteRate() uint32 {
	return h.SampleRate * uint32(h.Channels) * uint32(h.BitsPerSample) / 8
}

func (h Header) BlockAlign() uint16 {
	return h.Channels * h.BitsPerSample / 8
}

// RIFFSize is the value of the RIFF chunk size field: total file size minus 8.
func (h Header) RIFFSize() uint32 {
	return HeaderSize + h.DataSize - 8
}

// MarshalBinary lays the header out in little-endian RIFF order.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.appendTo(make([]byte, 0, HeaderSize)), nil
}

// appendTo appends the 44 header bytes to dst.
func (h Header) appendTo(dst []byte) []byte {
	dst = append(dst, "RIFF"...)
	dst = binary.LittleEndian.AppendUint32(dst, h.RIFFSize())
	dst = append(dst, "WAVE"...)

	dst = append(dst, "fmt "...)
	dst = binary.LittleEndian.AppendUint32(dst, fmtChunkSize)
	dst = binary.LittleEndian.AppendUint16(dst, formatPCM)
	dst = binary.LittleEndian.AppendUint16(dst, h.Channels)
	dst = binary.LittleEndian.AppendUint32(dst, h.SampleRate)
	dst = binary.LittleEndian.AppendUint32(dst, h.ByteRate())
	dst = binary.LittleEndian.AppendUint16(dst, h.BlockAlign())
	dst = binary.LittleEndian.AppendUint16(dst, h.BitsPerSample)

	dst = append(dst, "data"...)
	dst = binary.LittleEndian.AppendUint32(dst, h.DataSize)

	return dst
}

// AppendPCM16 returns a complete WAV file: the header for pcm followed by pcm verbatim.
// The sizes in the header always match len(pcm).
func AppendPCM16(sampleRate int, pcm []byte) []byte {
	h := NewPCM16Header(sampleRate, len(pcm))
	out := h.appendTo(make([]byte, 0, HeaderSize+len(pcm)))

	return append(out, pcm...)
}

// ParseHeader reads a canonical 44-byte PCM header from the start of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}

	if !bytes.Equal(b[0:4], []byte("RIFF")) || !bytes.Equal(b[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}

	if !bytes.Equal(b[12:16], []byte("fmt ")) || binary.LittleEndian.Uint32(b[16:20]) != fmtChunkSize {
		return Header{}, ErrUnsupportedWavLayout
	}

	if binary.LittleEndian.Uint16(b[20:22]) != formatPCM {
		return Header{}, ErrOnlyPCM16bitSupported
	}

	if !bytes.Equal(b[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavChunks
	}

	return Header{
		Channels:      binary.LittleEndian.Uint16(b[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(b[24:28]),
		BitsPerSample: binary.LittleEndian.Uint16(b[34:36]),
		DataSize:      binary.LittleEndian.Uint32(b[40:44]),
	}, nil
}
