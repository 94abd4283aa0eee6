// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"bytes"
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float32
		want int16
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{0.5, 16383},
		{-0.5, -16383},
		{1.75, 32767},
		{-3, -32767},
		{float32(math.Inf(1)), 32767},
		{float32(math.Inf(-1)), -32767},
	}

	for _, tt := range tests {
		if got := Float32ToInt16(tt.in); got != tt.want {
			t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFloat32ToInt16_RoundTrip(t *testing.T) {
	t.Parallel()

	for v := -32767; v <= 32767; v += 97 {
		in := int16(v)
		got := Float32ToInt16(float32(in) / 32767)
		if d := int(got) - v; d < -1 || d > 1 {
			t.Fatalf("round trip of %d gave %d", v, got)
		}
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	samples := []float32{-1, -0.5, 0, 0.5, 1}
	out := make([]int16, len(samples))

	allocs := testing.AllocsPerRun(100, func() {
		for i, s := range samples {
			out[i] = Float32ToInt16(s)
		}
	})
	if allocs != 0 {
		t.Errorf("Float32ToInt16 allocated %v times", allocs)
	}
}

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int16
		want float32
	}{
		{0, 0},
		{16384, 0.5},
		{-16384, -0.5},
		{math.MinInt16, -1},
	}

	for _, tt := range tests {
		if got := Int16ToFloat32(tt.in); got != tt.want {
			t.Errorf("Int16ToFloat32(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := Int16ToFloat32(math.MaxInt16); got >= 1 {
		t.Errorf("Int16ToFloat32(MaxInt16) = %v, want < 1", got)
	}
}

func TestAppendInt16LE(t *testing.T) {
	t.Parallel()

	prefix := []byte{0xaa}
	got := AppendInt16LE(prefix, []int16{0x1234, -1, 0})
	want := []byte{0xaa, 0x34, 0x12, 0xff, 0xff, 0x00, 0x00}

	if !bytes.Equal(got, want) {
		t.Errorf("AppendInt16LE() = % x, want % x", got, want)
	}

	if len(prefix) != 1 || prefix[0] != 0xaa {
		t.Errorf("prefix modified: % x", prefix)
	}

	if got := AppendInt16LE(nil, nil); len(got) != 0 {
		t.Errorf("AppendInt16LE(nil, nil) = % x, want empty", got)
	}
}
