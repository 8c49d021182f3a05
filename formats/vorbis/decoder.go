// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/samplebox/audio"
	"github.com/jfreymuth/oggvorbis"
)

// ErrNotVorbis wraps failures to open an Ogg Vorbis stream.
var ErrNotVorbis = errors.New("not an Ogg Vorbis stream")

// oggReader is the part of oggvorbis.Reader the source uses, so tests can mock it.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec oggReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

// ReadSamples reads whole frames only; oggvorbis fills dst with interleaved
// samples and reports how many it wrote.
func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.dec.Channels()
	if frames == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:frames*s.dec.Channels()])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbis, err)
	}
	return &source{dec: dec}, nil
}
