// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// formatPCM is the WAVE_FORMAT_PCM tag.
const formatPCM = 1

// PCM is a fully decoded WAV payload with integer samples.
type PCM struct {
	SampleRate int
	Channels   int
	// Width is the size of one sample in bytes.
	Width int
	// Data holds interleaved signed samples.
	Data []int
}

// Frames returns the number of frames in Data.
func (p *PCM) Frames() int {
	if p.Channels == 0 {
		return 0
	}
	return len(p.Data) / p.Channels
}

// ReadPCM decodes a complete uncompressed PCM WAV stream. Bit depths of 8,
// 16, 24 and 32 are accepted; narrowing that down is up to the caller.
func ReadPCM(r io.Reader) (*PCM, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek between chunks
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	// Err hides io.EOF, so a stream that ended before the fmt chunk shows up here
	if dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrNotPCM, dec.WavAudioFormat)
	}
	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}

	channels := int(dec.NumChans)
	data := buf.Data
	// drop a trailing partial frame
	data = data[:len(data)-len(data)%channels]

	return &PCM{
		SampleRate: int(dec.SampleRate),
		Channels:   channels,
		Width:      int(dec.BitDepth) / 8,
		Data:       data,
	}, nil
}

// WritePCM encodes p as an uncompressed PCM WAV. go-audio patches the chunk
// sizes by seeking back, so writers that cannot seek are staged in memory.
func WritePCM(w io.Writer, p *PCM) error {
	switch p.Width {
	case 1, 2, 3, 4:
	default:
		return fmt.Errorf("%w: %d bytes", ErrUnsupportedBitDepth, p.Width)
	}
	if p.Channels < 1 {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, p.Channels)
	}

	ws, seekable := w.(io.WriteSeeker)
	var staged *writeSeeker
	if !seekable {
		staged = &writeSeeker{}
		ws = staged
	}

	enc := gowav.NewEncoder(ws, p.SampleRate, p.Width*8, p.Channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: p.Channels,
			SampleRate:  p.SampleRate,
		},
		Data:           p.Data,
		SourceBitDepth: p.Width * 8,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav: %w", err)
	}

	if staged != nil {
		if _, err := w.Write(staged.buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// writeSeeker is an in-memory io.WriteSeeker.
type writeSeeker struct {
	buf []byte
	pos int
}

func (m *writeSeeker) Write(p []byte) (int, error) {
	end := m.pos + len(p)
	if end > len(m.buf) {
		m.buf = append(m.buf, make([]byte, end-len(m.buf))...)
	}
	copy(m.buf[m.pos:end], p)
	m.pos = end
	return len(p), nil
}

func (m *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = int64(m.pos) + offset
	case io.SeekEnd:
		next = int64(len(m.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("negative position")
	}
	m.pos = int(next)
	return next, nil
}
