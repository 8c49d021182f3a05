// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/samplebox/audio"
	"github.com/ik5/samplebox/formats/aiff"
	"github.com/ik5/samplebox/formats/mp3"
	"github.com/ik5/samplebox/formats/vorbis"
	"github.com/ik5/samplebox/formats/wav"
	"github.com/ik5/samplebox/utils"
)

// decoders serves every instrument format except WAV, which is read as
// integers by ReadWAV so no precision is lost.
var decoders = func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}()

// Load reads an instrument file, picking the decoder by extension. Formats
// other than WAV are decoded to 16 bit.
func Load(path string) (*Sample, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return LoadWAV(path)
	}

	dec, err := decoders.ForFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, path, err)
	}
	defer src.Close()

	s, err := FromSource(src, NormWidth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.filename = path
	return s, nil
}

// FromSource drains src into a new sample of the given width. Sources with
// more than two channels are folded down to mono. src is not closed.
func FromSource(src audio.Source, width int) (*Sample, error) {
	if src.Channels() > 2 {
		src = audio.NewMonoMixer(src)
	}
	if err := checkFormat(src.SampleRate(), src.Channels(), width); err != nil {
		return nil, err
	}
	frames, err := collect(src, width)
	if err != nil {
		return nil, err
	}
	return &Sample{
		frames:   frames,
		rate:     src.SampleRate(),
		channels: src.Channels(),
		width:    width,
	}, nil
}

// maxEmptyReads bounds how often a source may return nothing without
// reporting an error.
const maxEmptyReads = 100

// collect reads src to the end and quantizes it to width byte PCM, dropping
// a trailing partial frame.
func collect(src audio.Source, width int) ([]byte, error) {
	channels := src.Channels()
	size := max(src.BufSize(), 1) * channels
	buf := make([]float32, size)

	var out []byte
	empty := 0
	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			out = putAppend(out, width, utils.FloatToPCM(v, width))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			empty++
			if empty > maxEmptyReads {
				return nil, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}

	frameSize := channels * width
	return out[:len(out)-len(out)%frameSize], nil
}

func putAppend(b []byte, width int, v int64) []byte {
	for i := range width {
		b = append(b, byte(v>>(8*i)))
	}
	return b
}

// reader is an audio.Source over a PCM buffer.
type reader struct {
	frames   []byte
	rate     int
	channels int
	width    int
	pos      int
}

func (r *reader) SampleRate() int { return r.rate }
func (r *reader) Channels() int   { return r.channels }
func (r *reader) BufSize() int    { return 4096 }
func (r *reader) Close() error    { return nil }

func (r *reader) ReadSamples(dst []float32) (int, error) {
	n := 0
	for n < len(dst) && r.pos < len(r.frames) {
		dst[n] = utils.PCMToFloat(getSample(r.frames[r.pos:], r.width), r.width)
		r.pos += r.width
		n++
	}
	if r.pos >= len(r.frames) {
		return n, io.EOF
	}
	return n, nil
}

// Reader returns a Source streaming a snapshot of the sample as floats in
// [-1, 1].
func (s *Sample) Reader() audio.Source {
	frames := s.frames
	if !s.locked {
		frames = append([]byte(nil), s.frames...)
	}
	return &reader{frames: frames, rate: s.rate, channels: s.channels, width: s.width}
}

// ReadWAV decodes an uncompressed PCM WAV stream of 16, 24 or 32 bit mono or
// stereo audio.
func ReadWAV(r io.Reader) (*Sample, error) {
	pcm, err := wav.ReadPCM(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if err := checkFormat(pcm.SampleRate, pcm.Channels, pcm.Width); err != nil {
		return nil, err
	}

	frames := make([]byte, len(pcm.Data)*pcm.Width)
	for i, v := range pcm.Data {
		putSample(frames[i*pcm.Width:], pcm.Width, int64(v))
	}
	return &Sample{
		frames:   frames,
		rate:     pcm.SampleRate,
		channels: pcm.Channels,
		width:    pcm.Width,
	}, nil
}

// LoadWAV reads a WAV file and remembers its path.
func LoadWAV(path string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	s, err := ReadWAV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.filename = path
	return s, nil
}

// WriteWAV encodes the sample as an uncompressed PCM WAV in its current
// format.
func (s *Sample) WriteWAV(w io.Writer) error {
	data := make([]int, len(s.frames)/s.width)
	for i := range data {
		data[i] = int(getSample(s.frames[i*s.width:], s.width))
	}
	return wav.WritePCM(w, &wav.PCM{
		SampleRate: s.rate,
		Channels:   s.channels,
		Width:      s.width,
		Data:       data,
	})
}

// SaveWAV writes the sample to a WAV file at path.
func (s *Sample) SaveWAV(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w", cerr)
		}
	}()

	return s.WriteWAV(f)
}
