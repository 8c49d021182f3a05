// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestDecoder_Source(t *testing.T) {
	t.Parallel()

	raw := createWAVFile(1, 16000, 1, 16, []int32{0, 16384, -16384, -32768})
	src, err := Decoder{}.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 16000 || src.Channels() != 1 {
		t.Errorf("format = %d Hz, %d ch", src.SampleRate(), src.Channels())
	}

	buf := make([]float32, 3)
	n, err := src.ReadSamples(buf)
	if n != 3 || err != nil {
		t.Fatalf("ReadSamples() = (%d, %v), want (3, nil)", n, err)
	}
	want := []float32{0, 0.5, -0.5}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, buf[i], want[i])
		}
	}

	n, err = src.ReadSamples(buf)
	if n != 1 || err != io.EOF || buf[0] != -1 {
		t.Errorf("last ReadSamples() = (%d, %v, %v), want (1, io.EOF, -1)", n, err, buf[0])
	}
	if n, err = src.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Errorf("drained ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestDecoder_24Bit(t *testing.T) {
	t.Parallel()

	raw := createWAVFile(1, 48000, 2, 24, []int32{4194304, -4194304})
	src, err := Decoder{}.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf := make([]float32, 2)
	n, _ := src.ReadSamples(buf)
	if n != 2 || buf[0] != 0.5 || buf[1] != -0.5 {
		t.Errorf("ReadSamples() = %v, want [0.5 -0.5]", buf[:n])
	}
}

func TestDecoder_RejectsEightBit(t *testing.T) {
	t.Parallel()

	raw := createWAVFile(1, 8000, 1, 8, []int32{1, 2})
	_, err := Decoder{}.Decode(bytes.NewReader(raw))
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedBitDepth", err)
	}
}
