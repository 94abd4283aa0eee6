// SPDX-License-Identifier: EPL-2.0

package wavurl

import "errors"

var (
	// ErrInvalidBase64 is returned when the PCM or URL payload is not standard base64.
	ErrInvalidBase64 = errors.New("invalid base64 audio payload")
	// ErrNotWavDataURL is returned by Decode for strings without the WAV data URL prefix.
	ErrNotWavDataURL = errors.New("not a WAV data URL")
	// ErrOddPCMLength means the buffer does not hold a whole number of 16-bit samples.
	ErrOddPCMLength = errors.New("PCM length is not a multiple of 2")
	// ErrPCMTooLarge means the buffer cannot be described by the 32-bit RIFF size fields.
	ErrPCMTooLarge = errors.New("PCM too large for a WAV file")
	// ErrInvalidSampleRate means the sample rate is zero, negative or does not fit the header.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
)
