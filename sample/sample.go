// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"bytes"
	"fmt"
	"math"

	"github.com/ik5/samplebox/utils"
)

// Canonical format every instrument is normalized to.
const (
	NormRate     = 44100
	NormChannels = 2
	NormWidth    = 2
)

// MixWidth is the sample width used while layering many samples, leaving
// headroom above NormWidth.
const MixWidth = 4

// frameEpsilon snaps positions within a millionth of a frame onto the frame
// boundary, so FrameIndex(Duration()) is exact.
const frameEpsilon = 1e-6

// Sample is an owned PCM buffer tagged with its format. The frames are only
// reachable through the methods below, and once locked the sample never
// changes again, which makes it safe to share.
type Sample struct {
	frames   []byte // little-endian signed PCM, interleaved
	rate     int
	channels int
	width    int
	locked   bool
	filename string
}

// New returns an empty sample in the canonical format.
func New() *Sample {
	return &Sample{rate: NormRate, channels: NormChannels, width: NormWidth}
}

// FromFrames copies raw little-endian PCM frames into a new sample.
func FromFrames(frames []byte, rate, channels, width int) (*Sample, error) {
	if err := checkFormat(rate, channels, width); err != nil {
		return nil, err
	}
	if len(frames)%(channels*width) != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %d byte frames",
			ErrFormat, len(frames), channels*width)
	}
	return &Sample{
		frames:   bytes.Clone(frames),
		rate:     rate,
		channels: channels,
		width:    width,
	}, nil
}

// Silence returns a canonical sample holding seconds of silence.
func Silence(seconds float64) (*Sample, error) {
	s := New()
	if err := s.Append(seconds); err != nil {
		return nil, err
	}
	return s, nil
}

func checkFormat(rate, channels, width int) error {
	if width < 2 || width > 4 {
		return fmt.Errorf("%w: only sample sizes of 2, 3 or 4 bytes are supported, got %d", ErrFormat, width)
	}
	if channels < 1 || channels > 2 {
		return fmt.Errorf("%w: only mono or stereo is supported, got %d channels", ErrFormat, channels)
	}
	if rate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrFormat, rate)
	}
	return nil
}

// SampleRate in Hz.
func (s *Sample) SampleRate() int { return s.rate }

// Channels is 1 for mono, 2 for stereo.
func (s *Sample) Channels() int { return s.channels }

// Width is the size of one sample value in bytes.
func (s *Sample) Width() int { return s.width }

// Filename is the file the sample was loaded from, empty when it was built
// in memory.
func (s *Sample) Filename() string { return s.filename }

// Locked reports whether the sample rejects changes.
func (s *Sample) Locked() bool { return s.locked }

func (s *Sample) frameSize() int { return s.channels * s.width }

// FrameCount is the number of frames in the buffer.
func (s *Sample) FrameCount() int { return len(s.frames) / s.frameSize() }

// Duration in seconds.
func (s *Sample) Duration() float64 {
	return float64(s.FrameCount()) / float64(s.rate)
}

// FrameIndex converts a time offset into a byte offset into the buffer:
// channels * width * floor(rate * seconds).
func (s *Sample) FrameIndex(seconds float64) int {
	frames := math.Floor(float64(s.rate)*seconds + frameEpsilon)
	return s.frameSize() * int(frames)
}

// Value returns one decoded sample value.
func (s *Sample) Value(frame, channel int) int64 {
	off := frame*s.frameSize() + channel*s.width
	return getSample(s.frames[off:off+s.width], s.width)
}

// Peak is the largest absolute sample value.
func (s *Sample) Peak() int64 {
	var peak int64
	for i := 0; i < len(s.frames); i += s.width {
		v := getSample(s.frames[i:i+s.width], s.width)
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}
	return peak
}

// Equal reports whether both samples hold the same format and frames.
func (s *Sample) Equal(other *Sample) bool {
	return s.sameFormat(other) && bytes.Equal(s.frames, other.frames)
}

func (s *Sample) sameFormat(other *Sample) bool {
	return other != nil &&
		s.rate == other.rate &&
		s.channels == other.channels &&
		s.width == other.width
}

func (s *Sample) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d bit, %.3f s", s.rate, s.channels, 8*s.width, s.Duration())
}

// Dup returns an unlocked copy with its own buffer.
func (s *Sample) Dup() *Sample {
	return &Sample{
		frames:   bytes.Clone(s.frames),
		rate:     s.rate,
		channels: s.channels,
		width:    s.width,
		filename: s.filename,
	}
}

// Lock makes the sample immutable and returns it.
func (s *Sample) Lock() *Sample {
	s.locked = true
	return s
}

func (s *Sample) mutable(op string) error {
	if s.locked {
		return fmt.Errorf("%s: %w", op, ErrLocked)
	}
	return nil
}

// getSample decodes one little-endian signed value of width bytes.
func getSample(b []byte, width int) int64 {
	var u uint32
	for i := width - 1; i >= 0; i-- {
		u = u<<8 | uint32(b[i])
	}
	shift := 32 - 8*width
	return int64(int32(u<<shift) >> shift)
}

// putSample encodes v as width little-endian bytes.
func putSample(b []byte, width int, v int64) {
	for i := range width {
		b[i] = byte(v >> (8 * i))
	}
}

// addInto sums src into dst sample by sample, saturating at the width's range.
func addInto(dst, src []byte, width int) {
	for i := 0; i+width <= len(src); i += width {
		v := getSample(dst[i:], width) + getSample(src[i:], width)
		putSample(dst[i:], width, utils.Saturate(v, width))
	}
}
