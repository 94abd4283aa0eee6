// SPDX-License-Identifier: EPL-2.0

// Package wavurl turns headerless PCM into playable WAV data URLs.
//
// Text-to-speech services commonly answer with raw mono 16-bit little-endian
// PCM (for Gemini, base64 encoded at 24kHz). Browsers cannot play that
// directly, so the samples are framed with a canonical 44-byte RIFF/WAVE
// header and returned as
//
//	data:audio/wav;base64,<header+pcm>
//
// which can be assigned straight to an <audio> element's src.
//
//	url, err := wavurl.FromBase64PCM(payload, 24000)
//	if errors.Is(err, wavurl.ErrInvalidBase64) {
//	    // upstream sent garbage
//	}
//
// The header always declares one channel, 16 bits per sample, a byte rate of
// 2*sampleRate, a block align of 2 and sizes that match the buffer exactly.
// The PCM bytes are never altered: an odd trailing byte is kept as is.
// Callers that want to refuse such input call Validate first.
//
// All functions are pure and safe for concurrent use.
package wavurl
