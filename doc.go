// SPDX-License-Identifier: EPL-2.0

// Package poemaudio produces the spoken version of the greeting letter's poem
// as a WAV data URL that a browser can play directly.
//
// # Poem audio
//
// RequestPoemAudio asks a tts.Synthesizer (normally tts/gemini) to read
// PoemText and frames the returned PCM with wavurl:
//
//	synth, _ := gemini.New(ctx, apiKey, gemini.Options{})
//	url, ok := poemaudio.RequestPoemAudio(ctx, synth)
//	if !ok {
//	    // no audio, hide the play button
//	}
//
// Cache does the same at most once per process, which is what a page needs:
// one poem, one rendition.
//
// # Any file to a data URL
//
// RenderDataURL takes any decoded audio.Source (see formats/wav, formats/mp3,
// formats/vorbis and formats/aiff), converts it to mono 16-bit PCM at the
// requested rate and returns the same kind of URL:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	url, err := poemaudio.RenderDataURL(src, 24000, 4096)
//
// # Packages
//
//   - wavurl: base64 PCM to data:audio/wav;base64,... (the core transform)
//   - formats/*: decoders, WAV header parsing and writing
//   - audio: sources, resampling and channel mixing
//   - tts, tts/gemini: speech synthesis
package poemaudio
