// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/poemaudio/internal/audiotest"
)

func TestCollectPCM16_RoundTripsPCMSource(t *testing.T) {
	t.Parallel()

	want := []int16{0, 1000, -1000, 16384, -16384}
	got, err := CollectPCM16(NewPCMSource(audiotest.PCM16(want...), 8000), 2)
	if err != nil {
		t.Fatalf("CollectPCM16() error = %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}

	// float -> int16 scales by 32767, so allow one step of drift
	for i := range want {
		if d := int(got[i]) - int(want[i]); d < -1 || d > 1 {
			t.Errorf("sample[%d] = %d, want ≈%d", i, got[i], want[i])
		}
	}
}

func TestCollectPCM16_Clamps(t *testing.T) {
	t.Parallel()

	got, err := CollectPCM16(audiotest.NewConstantSource(8000, 1, 3, 2.5), 0)
	if err != nil {
		t.Fatalf("CollectPCM16() error = %v", err)
	}

	if want := []int16{32767, 32767, 32767}; !slices.Equal(got, want) {
		t.Errorf("CollectPCM16() = %v, want %v", got, want)
	}
}

func TestCollectPCM16_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := audiotest.NewSilentSource(8000, 1, 10)
	src.Err = boom

	if _, err := CollectPCM16(src, 4); !errors.Is(err, boom) {
		t.Errorf("CollectPCM16() error = %v, want %v", err, boom)
	}
}
