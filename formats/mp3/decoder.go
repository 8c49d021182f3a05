// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/samplebox/audio"
	"github.com/ik5/samplebox/utils"
)

// ErrNotMP3 wraps failures to find an MPEG audio frame in the input.
var ErrNotMP3 = errors.New("not an MP3 stream")

// go-mp3 always produces interleaved 16-bit little-endian stereo.
const (
	channels = 2
	width    = 2
)

// mp3Reader is the part of gomp3.Decoder the source uses, so tests can mock it.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec mp3Reader
	buf []byte
	// odd holds a byte left over when a read ended mid-sample
	odd    []byte
	closer io.Closer
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) BufSize() int    { return cap(s.buf) / width }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst)*width - len(s.odd)
	if cap(s.buf) < len(dst)*width {
		s.buf = make([]byte, len(dst)*width)
	}
	s.buf = s.buf[:len(dst)*width]
	copy(s.buf, s.odd)

	n, err := s.dec.Read(s.buf[len(s.odd) : len(s.odd)+need])
	n += len(s.odd)
	s.odd = s.odd[:0]
	if n%width != 0 {
		s.odd = append(s.odd, s.buf[n-1])
		n--
	}

	samples := n / width
	for i := range samples {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = utils.PCMToFloat(int64(v), width)
	}

	if samples == 0 && err == nil {
		return 0, io.ErrNoProgress
	}
	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}

	s := &source{
		dec: dec,
		buf: make([]byte, 8192),
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s, nil
}
