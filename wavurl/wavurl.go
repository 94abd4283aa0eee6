// SPDX-License-Identifier: EPL-2.0

package wavurl

import (
	"encoding/base64"
	"fmt"
	"math"
	"strings"

	"github.com/ik5/poemaudio/formats/wav"
)

// Prefix starts every URL produced by this package.
const Prefix = "data:audio/wav;base64,"

// FromBase64PCM decodes standard base64 mono 16-bit little-endian PCM and
// wraps it as a WAV data URL. Decoding failures wrap ErrInvalidBase64.
//
// The sample rate and buffer parity are not checked; see Validate.
func FromBase64PCM(pcmBase64 string, sampleRate int) (string, error) {
	pcm, err := base64.StdEncoding.DecodeString(pcmBase64)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}

	return FromPCM(pcm, sampleRate), nil
}

// FromPCM returns data:audio/wav;base64,<header+pcm>. pcm is copied verbatim
// after the 44-byte header. Buffers over MaxPCMSize get a header whose sizes
// wrap; Validate rejects them.
func FromPCM(pcm []byte, sampleRate int) string {
	return FromWAV(wav.AppendPCM16(sampleRate, pcm))
}

// FromWAV wraps an already framed WAV file.
func FromWAV(file []byte) string {
	var sb strings.Builder
	sb.Grow(len(Prefix) + base64.StdEncoding.EncodedLen(len(file)))
	sb.WriteString(Prefix)

	enc := base64.NewEncoder(base64.StdEncoding, &sb)
	_, _ = enc.Write(file)
	_ = enc.Close()

	return sb.String()
}

// Decode returns the WAV file embedded in a URL produced by FromPCM.
func Decode(dataURL string) ([]byte, error) {
	payload, ok := strings.CutPrefix(dataURL, Prefix)
	if !ok {
		return nil, ErrNotWavDataURL
	}

	file, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}

	return file, nil
}

// Validate reports whether pcm and sampleRate describe well-formed mono 16-bit audio.
func Validate(pcm []byte, sampleRate int) error {
	// byte rate is 2*sampleRate and must fit in 32 bits
	if sampleRate <= 0 || int64(sampleRate) > math.MaxUint32/2 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	if err := checkSize(uint64(len(pcm))); err != nil {
		return err
	}

	if len(pcm)%2 != 0 {
		return fmt.Errorf("%w: %d bytes", ErrOddPCMLength, len(pcm))
	}

	return nil
}

// MaxPCMSize is the largest payload whose RIFF chunk size still fits in 32 bits.
const MaxPCMSize = math.MaxUint32 - (wav.HeaderSize - 8)

func checkSize(n uint64) error {
	if n > MaxPCMSize {
		return fmt.Errorf("%w: %d bytes", ErrPCMTooLarge, n)
	}
	return nil
}
