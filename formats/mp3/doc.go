// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 input into an audio.Source.
//
// Output is always two interleaved channels at the stream's sample rate;
// mono files come out with both channels equal. Feed the source through
// audio.NewMonoMixer before rendering it as a mono WAV.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
package mp3
