// SPDX-License-Identifier: EPL-2.0

// Package gemini reads text aloud through the Gemini API's audio modality.
//
//	synth, err := gemini.New(ctx, apiKey, gemini.Options{Voice: "Kore"})
//	speech, err := synth.Synthesize(ctx, "...")
//	// speech.PCM is mono 16-bit little-endian PCM at speech.SampleRate
//
// The rate is taken from the inline data MIME type when present and falls back
// to Options.SampleRate (24kHz by default). Calls without a deadline get
// Options.Timeout (90s by default).
package gemini
