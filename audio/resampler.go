// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/poemaudio/utils"
)

// maxEmptyReads bounds how many times a source may return (0, nil) in a row.
const maxEmptyReads = 100

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// Includes basic anti-aliasing filtering when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	channels int
	step     float64 // source frames per output frame
	badRate  bool
	pos      float64 // fraction between window[1] and window[2]

	// window holds frames t-1, t, t+1, t+2 around the current position.
	window [4][]float32
	primed bool

	// base is the index of window[1]; fetched counts real frames pulled from src.
	base    int
	fetched int

	in      []float32
	inPos   int
	inLen   int
	srcDone bool

	useFilter   bool
	filterAlpha float32
	filterState []float32
}

// NewResampler wraps src. Both rates must be positive; otherwise every
// ReadSamples call fails with ErrInvalidSampleRate.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	srcRate := src.SampleRate()
	step := float64(srcRate) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		channels:    channels,
		step:        step,
		badRate:     srcRate <= 0 || dstRate <= 0,
		in:          make([]float32, channels*1024),
		useFilter:   step > 1,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

func (r *Resampler) drained() bool {
	return r.srcDone && r.inPos >= r.inLen
}

// fetch copies the next source frame into frame. It reports false once the
// source is exhausted.
func (r *Resampler) fetch(frame []float32) (bool, error) {
	empty := 0
	for r.inPos >= r.inLen {
		if r.srcDone {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels

		switch {
		case err == io.EOF:
			r.srcDone = true
		case err != nil:
			return false, fmt.Errorf("reading resampler source: %w", err)
		case n == 0:
			empty++
			if empty > maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(frame, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.useFilter {
		if r.fetched == 0 {
			copy(r.filterState, frame)
		}
		// one-pole low-pass: y[n] = a*x[n] + (1-a)*y[n-1]
		for c, x := range frame {
			y := r.filterAlpha*x + (1-r.filterAlpha)*r.filterState[c]
			frame[c] = y
			r.filterState[c] = y
		}
	}

	r.fetched++
	return true, nil
}

func (r *Resampler) prime() error {
	ok, err := r.fetch(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	copy(r.window[0], r.window[1])

	for i := 2; i < len(r.window); i++ {
		ok, err := r.fetch(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
	}

	r.primed = true
	return nil
}

// shift slides the window one frame forward, repeating the last frame past the end.
func (r *Resampler) shift() error {
	oldest := r.window[0]
	r.window[0], r.window[1], r.window[2] = r.window[1], r.window[2], r.window[3]
	r.window[3] = oldest

	ok, err := r.fetch(r.window[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[3], r.window[2])
	}

	r.base++
	return nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.badRate {
		return 0, fmt.Errorf("%w: %d Hz to %d Hz", ErrInvalidSampleRate, r.src.SampleRate(), r.dstRate)
	}

	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}

		if r.drained() && r.base >= r.fetched {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
