// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/poemaudio/internal/audiotest"
)

func drain(t *testing.T, src Source, bufSize int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufSize)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 2, 10), 8000)

	if r.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", r.SampleRate())
	}

	if r.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", r.Channels())
	}
}

func TestResampler_SameRateIsIdentity(t *testing.T) {
	t.Parallel()

	got := drain(t, NewResampler(audiotest.NewRampSource(16000, 1, 50, 0.01), 16000), 7)
	if len(got) != 50 {
		t.Fatalf("len = %d, want 50", len(got))
	}

	for i, v := range got {
		if want := float32(i) * 0.01; v != want {
			t.Errorf("sample[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestResampler_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
		frames  int
		want    int
	}{
		{"upsample 2x", 12000, 24000, 100, 200},
		{"downsample 2x", 48000, 24000, 100, 50},
		{"downsample 3x", 24000, 8000, 99, 33},
		{"single frame", 8000, 16000, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSilentSource(tt.srcRate, 1, tt.frames)
			if got := len(drain(t, NewResampler(src, tt.dstRate), 64)); got != tt.want {
				t.Errorf("output length = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResampler_UpsampleInterpolatesLinearRamp(t *testing.T) {
	t.Parallel()

	const frames = 20
	got := drain(t, NewResampler(audiotest.NewRampSource(8000, 1, frames, 1), 16000), 16)

	// Catmull-Rom is exact on straight lines away from the padded edges.
	for k := 1; k < frames-2; k++ {
		if v := got[2*k]; v != float32(k) {
			t.Errorf("out[%d] = %v, want %v", 2*k, v, float32(k))
		}
		if v, want := got[2*k+1], float32(k)+0.5; math.Abs(float64(v-want)) > 1e-5 {
			t.Errorf("out[%d] = %v, want %v", 2*k+1, v, want)
		}
	}
}

func TestResampler_StereoKeepsChannelsApart(t *testing.T) {
	t.Parallel()

	// channel 1 is channel 0 shifted up by exactly 1
	got := drain(t, NewResampler(audiotest.NewRampSource(8000, 2, 30, 0.5), 16000), 32)
	if len(got) != 120 {
		t.Fatalf("len = %d, want 120", len(got))
	}

	for f := 0; f < len(got)/2; f++ {
		if d := got[2*f+1] - got[2*f]; math.Abs(float64(d-1)) > 1e-4 {
			t.Errorf("frame %d: right-left = %v, want 1", f, d)
		}
	}
}

func TestResampler_DownsampleConstantStaysConstant(t *testing.T) {
	t.Parallel()

	for _, v := range drain(t, NewResampler(audiotest.NewConstantSource(44100, 1, 4410, 0.25), 8000), 128) {
		if math.Abs(float64(v-0.25)) > 1e-5 {
			t.Fatalf("sample = %v, want 0.25", v)
		}
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 1, 0), 16000)

	for range 2 {
		if n, err := r.ReadSamples(make([]float32, 8)); n != 0 || err != io.EOF {
			t.Errorf("ReadSamples() = %d, %v; want 0, io.EOF", n, err)
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 2, 10), 16000)

	if _, err := r.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_InvalidRates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		srcRate, dstRate int
	}{
		{"zero source", 0, 8000},
		{"negative source", -44100, 8000},
		{"zero target", 8000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewResampler(audiotest.NewSilentSource(tt.srcRate, 1, 50), tt.dstRate)
			for range 2 {
				if n, err := r.ReadSamples(make([]float32, 8)); n != 0 || !errors.Is(err, ErrInvalidSampleRate) {
					t.Errorf("ReadSamples() = %d, %v; want 0, ErrInvalidSampleRate", n, err)
				}
			}
		})
	}
}

func TestResampler_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := audiotest.NewSilentSource(8000, 1, 5)
	src.Err = boom

	r := NewResampler(src, 8000)
	_, err := r.ReadSamples(make([]float32, 16))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

type stalledSource struct{ Source }

func (stalledSource) ReadSamples([]float32) (int, error) { return 0, nil }
func (stalledSource) Channels() int                      { return 1 }
func (stalledSource) SampleRate() int                    { return 8000 }

func TestResampler_NoProgress(t *testing.T) {
	t.Parallel()

	r := NewResampler(stalledSource{}, 8000)
	if _, err := r.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("ReadSamples() error = %v, want io.ErrNoProgress", err)
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 1)
	if err := NewResampler(src, 16000).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if !src.Closed {
		t.Error("Close() did not close the source")
	}
}

func BenchmarkResampler_Downsample(b *testing.B) {
	src := audiotest.NewSineSource(44100, 2, 1<<30, 440)
	r := NewResampler(src, 8000)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for range b.N {
		_, _ = r.ReadSamples(dst)
	}
}
