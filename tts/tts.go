// SPDX-License-Identifier: EPL-2.0

// Package tts defines the text-to-speech boundary.
package tts

import (
	"context"
	"errors"
)

// ErrNoAudio is returned when the provider answered without any audio payload.
var ErrNoAudio = errors.New("tts response contained no audio")

// Speech is headerless mono 16-bit little-endian PCM.
type Speech struct {
	PCM        []byte
	SampleRate int
}

// Synthesizer converts text to Speech.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*Speech, error)
}
