// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"

	"github.com/ik5/poemaudio/internal/audiotest"
)

func TestPCMSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := NewPCMSource(audiotest.PCM16(16384, -16384, 0), 24000)

	if src.SampleRate() != 24000 || src.Channels() != 1 {
		t.Fatalf("metadata = %d Hz / %d ch, want 24000 Hz / 1 ch", src.SampleRate(), src.Channels())
	}

	dst := make([]float32, 2)

	n, err := src.ReadSamples(dst)
	if n != 2 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v; want 2, nil", n, err)
	}

	if dst[0] != 0.5 || dst[1] != -0.5 {
		t.Errorf("dst = %v, want [0.5 -0.5]", dst)
	}

	n, err = src.ReadSamples(dst)
	if n != 1 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 1, io.EOF", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestPCMSource_OddTrailingByte(t *testing.T) {
	t.Parallel()

	src := NewPCMSource([]byte{0x00, 0x40, 0x7f}, 8000)
	dst := make([]float32, 4)

	n, err := src.ReadSamples(dst)
	if n != 1 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 1, io.EOF", n, err)
	}
}

func TestPCMSource_Empty(t *testing.T) {
	t.Parallel()

	n, err := NewPCMSource(nil, 8000).ReadSamples(make([]float32, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}
