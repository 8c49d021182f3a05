// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"fmt"
	"math"

	"github.com/ik5/samplebox/audio"
	"github.com/ik5/samplebox/utils"
)

// Normalize converts the sample in place to 44.1kHz, 16 bit stereo: the rate
// first (linear interpolation), then the width, then mono is duplicated to
// both channels.
func (s *Sample) Normalize() error {
	if err := s.mutable("normalize"); err != nil {
		return err
	}
	if s.rate != NormRate {
		if err := s.resample(NormRate, audio.Linear); err != nil {
			return err
		}
	}
	if s.width != NormWidth {
		s.setWidth(NormWidth, true)
	}
	if s.channels == 1 {
		s.toStereo()
	}
	return nil
}

// Resample converts the sample rate in place using the given interpolation.
func (s *Sample) Resample(rate int, interp audio.Interpolation) error {
	if err := s.mutable("resample"); err != nil {
		return err
	}
	if rate <= 0 {
		return fmt.Errorf("resample to %d Hz: %w", rate, ErrValueRange)
	}
	if rate == s.rate {
		return nil
	}
	return s.resample(rate, interp)
}

func (s *Sample) resample(rate int, interp audio.Interpolation) error {
	view := &reader{frames: s.frames, rate: s.rate, channels: s.channels, width: s.width}
	frames, err := collect(audio.NewResamplerWith(view, rate, interp), s.width)
	if err != nil {
		return fmt.Errorf("resample to %d Hz: %w", rate, err)
	}
	s.frames = frames
	s.rate = rate
	return nil
}

// Make32Bit widens the samples to 4 bytes. With scaleAmplitude the values
// are scaled up to the new range; without it they keep their magnitude, so
// many such samples can be summed before anything clips.
func (s *Sample) Make32Bit(scaleAmplitude bool) error {
	if err := s.mutable("make 32 bit"); err != nil {
		return err
	}
	if s.width != MixWidth {
		s.setWidth(MixWidth, scaleAmplitude)
	}
	return nil
}

// Make16Bit narrows the samples to 2 bytes, optionally amplifying to the
// maximum first.
func (s *Sample) Make16Bit(maximizeAmplitude bool) error {
	if err := s.mutable("make 16 bit"); err != nil {
		return err
	}
	if maximizeAmplitude {
		if err := s.AmplifyMax(); err != nil {
			return err
		}
	}
	if s.width > NormWidth {
		s.setWidth(NormWidth, true)
	}
	return nil
}

// AmplifyMax scales the buffer so its peak lands 2 below full range.
// A silent buffer is left alone.
func (s *Sample) AmplifyMax() error {
	if err := s.mutable("amplify to max"); err != nil {
		return err
	}
	peak := s.Peak()
	if peak == 0 {
		return nil
	}
	target := int64(1)<<(8*s.width-1) - 2
	s.gain(float64(target) / float64(peak))
	return nil
}

// Amplify multiplies every value by factor, saturating at the width's range.
func (s *Sample) Amplify(factor float64) error {
	if err := s.mutable("amplify"); err != nil {
		return err
	}
	s.gain(factor)
	return nil
}

func (s *Sample) gain(factor float64) {
	lo, hi := utils.PCMRange(s.width)
	for i := 0; i < len(s.frames); i += s.width {
		v := float64(getSample(s.frames[i:], s.width)) * factor
		v = math.Floor(math.Max(float64(lo), math.Min(float64(hi), v)))
		putSample(s.frames[i:], s.width, int64(v))
	}
}

// setWidth changes the width. Scaling shifts the value by the width
// difference, keeping the sign; without scaling the value is kept as is.
func (s *Sample) setWidth(width int, scale bool) {
	n := len(s.frames) / s.width
	out := make([]byte, n*width)
	for i := range n {
		v := getSample(s.frames[i*s.width:], s.width)
		if scale {
			if width > s.width {
				v <<= 8 * (width - s.width)
			} else {
				v >>= 8 * (s.width - width)
			}
		} else {
			v = utils.Saturate(v, width)
		}
		putSample(out[i*width:], width, v)
	}
	s.frames = out
	s.width = width
}

func (s *Sample) toStereo() {
	out := make([]byte, 2*len(s.frames))
	for i := 0; i < len(s.frames); i += s.width {
		copy(out[2*i:], s.frames[i:i+s.width])
		copy(out[2*i+s.width:], s.frames[i:i+s.width])
	}
	s.frames = out
	s.channels = 2
}
