// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"bytes"
	"fmt"
)

// Cut keeps only the part between start and end seconds.
func (s *Sample) Cut(start, end float64) error {
	if err := s.mutable("cut"); err != nil {
		return err
	}
	if start < 0 || end <= start {
		return fmt.Errorf("cut [%v, %v): %w", start, end, ErrValueRange)
	}
	from := min(s.FrameIndex(start), len(s.frames))
	to := min(s.FrameIndex(end), len(s.frames))
	s.frames = bytes.Clone(s.frames[from:to])
	return nil
}

// Append adds seconds of silence at the end.
func (s *Sample) Append(seconds float64) error {
	if err := s.mutable("append"); err != nil {
		return err
	}
	if seconds < 0 {
		return fmt.Errorf("append %v seconds: %w", seconds, ErrValueRange)
	}
	s.grow(len(s.frames) + s.FrameIndex(seconds))
	return nil
}

// Fit pads with silence or cuts so the sample lasts exactly seconds.
func (s *Sample) Fit(seconds float64) error {
	if err := s.mutable("fit"); err != nil {
		return err
	}
	if seconds < 0 {
		return fmt.Errorf("fit to %v seconds: %w", seconds, ErrValueRange)
	}
	size := s.FrameIndex(seconds)
	if size > len(s.frames) {
		s.grow(size)
	} else {
		s.frames = s.frames[:size:size]
	}
	return nil
}

// Mix adds other into this sample. When otherSeconds is positive only that
// much of other is used.
//
// With padShortest the shorter buffer is treated as if padded with silence,
// so the result is as long as the longer one. Without it only the common
// prefix is summed: this sample keeps its length and whatever of other runs
// past its end is dropped.
func (s *Sample) Mix(other *Sample, otherSeconds float64, padShortest bool) error {
	if err := s.mutable("mix"); err != nil {
		return err
	}
	src, err := s.mixSource(other, otherSeconds)
	if err != nil {
		return err
	}
	if padShortest && len(src) > len(s.frames) {
		s.grow(len(src))
	}
	n := min(len(s.frames), len(src))
	addInto(s.frames[:n], src[:n], s.width)
	return nil
}

// MixAt adds other into this sample starting at offset seconds, growing the
// buffer with silence when other runs past the end. Everything outside the
// overlapped region is left untouched.
func (s *Sample) MixAt(offset float64, other *Sample, otherSeconds float64) error {
	if err := s.mutable("mix at"); err != nil {
		return err
	}
	if offset < 0 {
		return fmt.Errorf("mix at %v seconds: %w", offset, ErrValueRange)
	}
	src, err := s.mixSource(other, otherSeconds)
	if err != nil {
		return err
	}
	start := s.FrameIndex(offset)
	end := start + len(src)
	if end > len(s.frames) {
		s.grow(end)
	}
	addInto(s.frames[start:end], src, s.width)
	return nil
}

// mixSource checks that other can be summed into s and returns the part of
// its buffer to use.
func (s *Sample) mixSource(other *Sample, otherSeconds float64) ([]byte, error) {
	if !s.sameFormat(other) {
		if other == nil {
			return nil, fmt.Errorf("%w: nothing to mix", ErrFormat)
		}
		return nil, fmt.Errorf("%w: cannot mix %s into %s", ErrFormat, other, s)
	}
	if otherSeconds < 0 {
		return nil, fmt.Errorf("mix %v seconds: %w", otherSeconds, ErrValueRange)
	}
	src := other.frames
	if otherSeconds > 0 {
		src = src[:min(other.FrameIndex(otherSeconds), len(src))]
	}
	if other == s {
		// mixing into itself would read values it has already summed
		src = bytes.Clone(src)
	}
	return src, nil
}

// grow extends the buffer with silence up to size bytes.
func (s *Sample) grow(size int) {
	if size <= len(s.frames) {
		return
	}
	s.frames = append(s.frames, make([]byte, size-len(s.frames))...)
}
