// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// createWAVFile builds a canonical 44 byte header WAV with samples packed at
// bitsPerSample.
func createWAVFile(format uint16, sampleRate, channels, bitsPerSample int, samples []int32) []byte {
	width := bitsPerSample / 8
	data := new(bytes.Buffer)
	for _, s := range samples {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(s))
		data.Write(b[:width])
	}

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+data.Len()))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, format)
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*width))
	binary.Write(buf, binary.LittleEndian, uint16(channels*width))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())

	return buf.Bytes()
}

func TestReadPCM_Widths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bits    int
		samples []int32
	}{
		{"16 bit", 16, []int32{0, 100, -100, 32767, -32768, 5}},
		{"24 bit", 24, []int32{0, 8388607, -8388608, -1, 4096, 7}},
		{"32 bit", 32, []int32{0, 2147483647, -2147483648, -70000, 70000, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := createWAVFile(1, 22050, 2, tt.bits, tt.samples)
			pcm, err := ReadPCM(bytes.NewReader(raw))
			if err != nil {
				t.Fatalf("ReadPCM() error = %v", err)
			}

			if pcm.SampleRate != 22050 || pcm.Channels != 2 || pcm.Width != tt.bits/8 {
				t.Errorf("format = %d Hz, %d ch, %d bytes", pcm.SampleRate, pcm.Channels, pcm.Width)
			}
			if pcm.Frames() != 3 {
				t.Errorf("Frames() = %d, want 3", pcm.Frames())
			}
			for i, want := range tt.samples {
				if pcm.Data[i] != int(want) {
					t.Errorf("Data[%d] = %d, want %d", i, pcm.Data[i], want)
				}
			}
		})
	}
}

func TestReadPCM_EightBitIsReported(t *testing.T) {
	t.Parallel()

	raw := createWAVFile(1, 8000, 1, 8, []int32{1, 2, 3, 4})
	pcm, err := ReadPCM(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadPCM() error = %v", err)
	}
	if pcm.Width != 1 {
		t.Errorf("Width = %d, want 1", pcm.Width)
	}
}

func TestReadPCM_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"garbage", []byte("NOT A WAV FILE AT ALL, JUST SOME TEXT"), ErrNotWavFile},
		{"empty", nil, ErrNotWavFile},
		{"ieee float", createWAVFile(3, 8000, 1, 32, []int32{0, 0}), ErrNotPCM},
		{"riff without fmt", []byte("RIFF\x04\x00\x00\x00WAVE"), ErrNotWavFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ReadPCM(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadPCM() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWritePCM_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, width := range []int{2, 3, 4} {
		in := &PCM{
			SampleRate: 44100,
			Channels:   2,
			Width:      width,
			Data:       []int{0, 1, -1, 1000, -1000, 12345, -12345, 0},
		}

		var out bytes.Buffer
		if err := WritePCM(&out, in); err != nil {
			t.Fatalf("width %d: WritePCM() error = %v", width, err)
		}

		got, err := ReadPCM(bytes.NewReader(out.Bytes()))
		if err != nil {
			t.Fatalf("width %d: ReadPCM() error = %v", width, err)
		}
		if got.SampleRate != in.SampleRate || got.Channels != in.Channels || got.Width != in.Width {
			t.Errorf("width %d: format changed to %+v", width, got)
		}
		if len(got.Data) != len(in.Data) {
			t.Fatalf("width %d: %d samples, want %d", width, len(got.Data), len(in.Data))
		}
		for i := range in.Data {
			if got.Data[i] != in.Data[i] {
				t.Errorf("width %d: Data[%d] = %d, want %d", width, i, got.Data[i], in.Data[i])
			}
		}
	}
}

func TestWritePCM_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	in := &PCM{SampleRate: 8000, Channels: 1, Width: 2, Data: []int{5, -5, 10}}
	if err := WritePCM(f, in); err != nil {
		t.Fatalf("WritePCM() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	f, err = os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := ReadPCM(f)
	if err != nil {
		t.Fatalf("ReadPCM() error = %v", err)
	}
	if len(got.Data) != 3 || got.Data[1] != -5 {
		t.Errorf("Data = %v, want [5 -5 10]", got.Data)
	}
}

func TestWritePCM_RejectsBadFormat(t *testing.T) {
	t.Parallel()

	err := WritePCM(io.Discard, &PCM{SampleRate: 8000, Channels: 1, Width: 5})
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("WritePCM() error = %v, want ErrUnsupportedBitDepth", err)
	}
	err = WritePCM(io.Discard, &PCM{SampleRate: 8000, Channels: 0, Width: 2})
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("WritePCM() error = %v, want ErrUnsupportedChannels", err)
	}
}

func TestWriteSeeker(t *testing.T) {
	t.Parallel()

	ws := &writeSeeker{}
	ws.Write([]byte("hello world"))
	if _, err := ws.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	ws.Write([]byte("J"))
	if _, err := ws.Seek(-5, io.SeekEnd); err != nil {
		t.Fatal(err)
	}
	ws.Write([]byte("W"))

	if got := string(ws.buf); got != "Jello World" {
		t.Errorf("buffer = %q, want %q", got, "Jello World")
	}
	if _, err := ws.Seek(-100, io.SeekCurrent); err == nil {
		t.Error("Seek() to a negative position succeeded")
	}
}
