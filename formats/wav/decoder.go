// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/ik5/samplebox/audio"
	"github.com/ik5/samplebox/utils"
)

// source streams a decoded PCM payload as float32.
type source struct {
	pcm *PCM
	pos int
}

func (s *source) SampleRate() int { return s.pcm.SampleRate }
func (s *source) Channels() int   { return s.pcm.Channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.pcm.Data) {
		return 0, io.EOF
	}

	n := min(len(dst), len(s.pcm.Data)-s.pos)
	for i, v := range s.pcm.Data[s.pos : s.pos+n] {
		dst[i] = utils.PCMToFloat(int64(v), s.pcm.Width)
	}
	s.pos += n

	if s.pos >= len(s.pcm.Data) {
		return n, io.EOF
	}
	return n, nil
}

// Decoder reads 16, 24 or 32 bit PCM WAV files into an audio.Source.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	pcm, err := ReadPCM(r)
	if err != nil {
		return nil, err
	}
	if pcm.Width < 2 {
		return nil, ErrUnsupportedBitDepth
	}
	return &source{pcm: pcm}, nil
}
