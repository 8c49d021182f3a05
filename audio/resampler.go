// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/samplebox/utils"
)

// Interpolation selects how a Resampler computes values between source frames.
type Interpolation int

const (
	// Linear interpolates between the two neighbouring frames.
	Linear Interpolation = iota
	// Cubic uses a Catmull-Rom spline over four neighbouring frames.
	Cubic
)

// Resampler streams from src to a target sample rate. Works on interleaved
// samples and preserves the channel count.
//
// Output frame k is taken at source position k*srcRate/dstRate, so a source
// of n frames yields ceil(n*dstRate/srcRate) frames.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int64
	channels int
	interp   Interpolation

	// window[1] is source frame srcIndex; window[0] precedes it,
	// window[2] and window[3] follow it. valid marks frames that exist.
	window   [4][]float32
	valid    [4]bool
	srcIndex int64
	outIndex int64
	primed   bool
	done     bool

	srcBuf []float32
	bufLen int
	bufPos int
	srcEOF bool
}

// NewResampler creates a linear interpolating resampler.
func NewResampler(src Source, dstRate int) *Resampler {
	return NewResamplerWith(src, dstRate, Linear)
}

// NewResamplerWith creates a resampler using the given interpolation.
func NewResamplerWith(src Source, dstRate int, interp Interpolation) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:      src,
		srcRate:  int64(src.SampleRate()),
		dstRate:  int64(dstRate),
		channels: channels,
		interp:   interp,
		srcBuf:   make([]float32, 1024*channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for r.bufLen-r.bufPos < r.channels {
		if r.srcEOF {
			return false, nil
		}
		// keep a partial frame at the front of the buffer
		rest := copy(r.srcBuf, r.srcBuf[r.bufPos:r.bufLen])
		r.bufPos, r.bufLen = 0, rest
		n, err := r.src.ReadSamples(r.srcBuf[rest:])
		r.bufLen += n
		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}
	copy(dst, r.srcBuf[r.bufPos:r.bufPos+r.channels])
	r.bufPos += r.channels
	return true, nil
}

func (r *Resampler) prime() error {
	for i := 1; i < len(r.window); i++ {
		ok, err := r.nextFrame(r.window[i])
		if err != nil {
			return err
		}
		r.valid[i] = ok
		if !ok {
			break
		}
	}
	r.primed = true
	return nil
}

// shift drops window[0] and pulls a new frame into window[3].
func (r *Resampler) shift() error {
	oldest := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.valid[:], r.valid[1:])
	r.window[3] = oldest
	r.valid[3] = false
	if !r.valid[2] {
		return nil
	}
	ok, err := r.nextFrame(r.window[3])
	if err != nil {
		return err
	}
	r.valid[3] = ok
	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels
	for written < framesNeeded && !r.done {
		target := r.outIndex * r.srcRate / r.dstRate
		for r.srcIndex < target && r.valid[1] {
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
			r.srcIndex++
		}
		if !r.valid[1] {
			r.done = true
			break
		}
		frac := float32(float64(r.outIndex*r.srcRate%r.dstRate) / float64(r.dstRate))
		r.interpolate(dst[written*r.channels:(written+1)*r.channels], frac)
		written++
		r.outIndex++
	}

	if r.done {
		return written * r.channels, io.EOF
	}
	return written * r.channels, nil
}

// interpolate fills one output frame, repeating edge frames where the window
// runs past either end of the source.
func (r *Resampler) interpolate(out []float32, x float32) {
	cur := r.window[1]
	next := cur
	if r.valid[2] {
		next = r.window[2]
	}

	if r.interp == Linear {
		for c := range r.channels {
			out[c] = utils.LinearInterpolate(cur[c], next[c], x)
		}
		return
	}

	prev := cur
	if r.valid[0] {
		prev = r.window[0]
	}
	after := next
	if r.valid[3] {
		after = r.window[3]
	}
	for c := range r.channels {
		out[c] = utils.CubicInterpolate(prev[c], cur[c], next[c], after[c], x)
	}
}
