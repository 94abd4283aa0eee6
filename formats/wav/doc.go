// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes mono/stereo PCM 16-bit WAV files.
//
// Decoding is delegated to github.com/go-audio/wav; encoding always produces
// the canonical 44-byte header followed by the PCM payload, byte for byte.
//
// # Header
//
//	h := wav.NewPCM16Header(24000, len(pcm))
//	raw, _ := h.MarshalBinary() // 44 bytes
//
//	parsed, err := wav.ParseHeader(raw)
//	// parsed == h
//
// Header fields are derived rather than stored: RIFFSize is 36 + DataSize,
// ByteRate is SampleRate * Channels * BitsPerSample / 8 and BlockAlign is
// Channels * BitsPerSample / 8.
//
// # Writing
//
// WritePCM wraps raw little-endian PCM bytes without touching them:
//
//	err := wav.WritePCM(file, 24000, pcm)
//
// WriteWAV16 does the same for []int16 samples:
//
//	err := wav.WriteWAV16(file, 8000, []int16{100, -100, 200, -200})
//
// # Decoding
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are returned as float32 in [-1.0, 1.0). Non-PCM or non 16-bit files
// fail with ErrOnlyPCM16bitSupported.
package wav
