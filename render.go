// SPDX-License-Identifier: EPL-2.0

package poemaudio

import (
	"fmt"

	"github.com/ik5/poemaudio/audio"
	"github.com/ik5/poemaudio/utils"
	"github.com/ik5/poemaudio/wavurl"
)

// RenderPCM16 resamples src to targetRate, mixes it down to mono and returns
// little-endian 16-bit PCM bytes.
//
// The pipeline is src -> Resampler -> MonoMixer -> int16. bufferSize is the
// read size in samples; 4096 is a good default.
func RenderPCM16(src audio.Source, targetRate int, bufferSize int) ([]byte, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, targetRate)
	}
	if rate := src.SampleRate(); rate <= 0 {
		return nil, fmt.Errorf("%w: source at %d Hz", audio.ErrInvalidSampleRate, rate)
	}

	var stage audio.Source = src
	if src.SampleRate() != targetRate {
		stage = audio.NewResampler(stage, targetRate)
	}
	stage = audio.NewMonoMixer(stage)

	samples, err := audio.CollectPCM16(stage, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("rendering to %d Hz mono: %w", targetRate, err)
	}

	return utils.AppendInt16LE(nil, samples), nil
}

// RenderDataURL is RenderPCM16 followed by wavurl.FromPCM.
func RenderDataURL(src audio.Source, targetRate int, bufferSize int) (string, error) {
	pcm, err := RenderPCM16(src, targetRate, bufferSize)
	if err != nil {
		return "", err
	}

	return wavurl.FromPCM(pcm, targetRate), nil
}
