// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WritePCM writes a mono 16-bit WAV at sampleRate whose data chunk is pcm, unmodified.
func WritePCM(w io.Writer, sampleRate int, pcm []byte) error {
	header, _ := NewPCM16Header(sampleRate, len(pcm)).MarshalBinary()

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	if len(pcm) == 0 {
		return nil
	}

	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("writing WAV data: %w", err)
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.  samples must be int16 PCM.
// Samples are serialized in 8K chunks so large buffers are not copied at once.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	header, _ := NewPCM16Header(sampleRate, len(samples)*2).MarshalBinary()

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	const chunkSize = 8192
	buf := make([]byte, 0, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		buf = buf[:0]
		for _, s := range samples[i:min(i+chunkSize, len(samples))] {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing WAV data: %w", err)
		}
	}

	return nil
}
