// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives used to turn decoded audio
// into mono 16-bit PCM.
//
// # Source
//
// Every decoder and processor implements Source, so stages chain freely:
//
//	src := audio.NewPCMSource(pcm, 24000)        // raw speech bytes
//	res := audio.NewResampler(src, 8000)         // cubic resampling
//	mono := audio.NewMonoMixer(res)              // channel average
//	samples, err := audio.CollectPCM16(mono, 4096)
//
// Samples travel as interleaved float32 in [-1.0, 1.0]. ReadSamples returns
// io.EOF, possibly together with the final samples, when the stream ends.
//
// # Registry
//
// Registry maps format keys to decoders. Keys are case-insensitive and may be
// given with a leading dot, so a file extension can be looked up directly:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get(filepath.Ext(path))
//
// A Registry is safe for concurrent use.
//
// # Resampling
//
// Resampler interpolates with a Catmull-Rom spline over a four frame window and
// applies a one-pole low-pass filter when downsampling. For N input frames and
// a ratio of srcRate/dstRate, about ceil(N*dstRate/srcRate) frames are produced.
package audio
