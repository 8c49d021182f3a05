// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"errors"
	"slices"
	"testing"
)

// ramp is a 10 Hz mono sample with values 1..n.
func ramp(t *testing.T, n int) *Sample {
	t.Helper()
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = int64(i + 1)
	}
	return fromValues(t, 10, 1, 2, vals...)
}

func TestCut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end float64
		want       []int64
		wantErr    error
	}{
		{"middle", 0.2, 0.5, []int64{3, 4, 5}, nil},
		{"end clamped", 0.5, 5, []int64{6, 7, 8, 9, 10}, nil},
		{"whole", 0, 1, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, nil},
		{"past the end", 2, 3, []int64{}, nil},
		{"empty range", 0.5, 0.5, nil, ErrValueRange},
		{"reversed", 0.6, 0.5, nil, ErrValueRange},
		{"negative start", -1, 0.5, nil, ErrValueRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := ramp(t, 10)
			err := s.Cut(tt.start, tt.end)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := values(s); !slices.Equal(got, tt.want) {
				t.Errorf("Cut(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestAppendAndFit(t *testing.T) {
	t.Parallel()

	s := ramp(t, 2)
	if err := s.Append(0.3); err != nil {
		t.Fatal(err)
	}
	if got := values(s); !slices.Equal(got, []int64{1, 2, 0, 0, 0}) {
		t.Errorf("Append(0.3) = %v", got)
	}
	if err := s.Append(-0.1); !errors.Is(err, ErrValueRange) {
		t.Errorf("Append(-0.1) err = %v, want ErrValueRange", err)
	}

	if err := s.Fit(0.7); err != nil {
		t.Fatal(err)
	}
	if s.FrameCount() != 7 {
		t.Errorf("Fit(0.7) frames = %d, want 7", s.FrameCount())
	}
	if err := s.Fit(0.1); err != nil {
		t.Fatal(err)
	}
	if got := values(s); !slices.Equal(got, []int64{1}) {
		t.Errorf("Fit(0.1) = %v", got)
	}
	if err := s.Fit(-1); !errors.Is(err, ErrValueRange) {
		t.Errorf("Fit(-1) err = %v, want ErrValueRange", err)
	}
}

func TestFit_DoesNotAliasCutBuffer(t *testing.T) {
	t.Parallel()

	s := ramp(t, 4)
	if err := s.Fit(0.2); err != nil {
		t.Fatal(err)
	}
	if err := s.Fit(0.4); err != nil {
		t.Fatal(err)
	}
	if got := values(s); !slices.Equal(got, []int64{1, 2, 0, 0}) {
		t.Errorf("shrink then grow = %v, want trailing silence", got)
	}
}

func TestMix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		base, other []int64
		seconds     float64
		pad         bool
		want        []int64
	}{
		{"equal lengths", []int64{1, 2, 3}, []int64{10, 20, 30}, 0, true, []int64{11, 22, 33}},
		{"pad longer other", []int64{1}, []int64{10, 20, 30}, 0, true, []int64{11, 20, 30}},
		{"pad shorter other", []int64{1, 2, 3}, []int64{10}, 0, true, []int64{11, 2, 3}},
		{"no pad keeps length", []int64{1, 2}, []int64{10, 20, 30}, 0, false, []int64{11, 22}},
		{"no pad shorter other", []int64{1, 2, 3}, []int64{10}, 0, false, []int64{11, 2, 3}},
		{"truncated other", []int64{1, 2, 3}, []int64{10, 20, 30}, 0.1, true, []int64{11, 2, 3}},
		{"saturates", []int64{32000, -32000}, []int64{1000, -1000}, 0, true, []int64{32767, -32768}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := fromValues(t, 10, 1, 2, tt.base...)
			other := fromValues(t, 10, 1, 2, tt.other...)
			if err := s.Mix(other, tt.seconds, tt.pad); err != nil {
				t.Fatal(err)
			}
			if got := values(s); !slices.Equal(got, tt.want) {
				t.Errorf("Mix = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMix_Commutative(t *testing.T) {
	t.Parallel()

	a := fromValues(t, 44100, 2, 4, 5, -7, 100, 2000000000)
	b := fromValues(t, 44100, 2, 4, -5, 9, 3, 2000000000)

	ab := a.Dup()
	if err := ab.Mix(b, 0, true); err != nil {
		t.Fatal(err)
	}
	ba := b.Dup()
	if err := ba.Mix(a, 0, true); err != nil {
		t.Fatal(err)
	}
	if !ab.Equal(ba) {
		t.Errorf("a+b = %v, b+a = %v", values(ab), values(ba))
	}
	if ab.FrameCount() != max(a.FrameCount(), b.FrameCount()) {
		t.Errorf("frames = %d", ab.FrameCount())
	}
}

func TestMix_FormatMismatch(t *testing.T) {
	t.Parallel()

	s := fromValues(t, 44100, 2, 4, 1, 1)
	tests := map[string]*Sample{
		"width":    fromValues(t, 44100, 2, 2, 1, 1),
		"channels": fromValues(t, 44100, 1, 4, 1),
		"rate":     fromValues(t, 22050, 2, 4, 1, 1),
		"nil":      nil,
	}
	for name, other := range tests {
		if err := s.Mix(other, 0, true); !errors.Is(err, ErrFormat) {
			t.Errorf("%s: Mix err = %v, want ErrFormat", name, err)
		}
		if err := s.MixAt(0, other, 0); !errors.Is(err, ErrFormat) {
			t.Errorf("%s: MixAt err = %v, want ErrFormat", name, err)
		}
	}
}

func TestMixAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    []int64
		offset  float64
		other   []int64
		seconds float64
		want    []int64
	}{
		{"grows with silence", []int64{1, 2}, 0.3, []int64{10, 20}, 0, []int64{1, 2, 0, 10, 20}},
		{"overlap", []int64{1, 2, 3, 4}, 0.1, []int64{10, 20}, 0, []int64{1, 12, 23, 4}},
		{"overhang", []int64{1, 2, 3}, 0.2, []int64{10, 20}, 0, []int64{1, 2, 13, 20}},
		{"truncated other", []int64{1, 2, 3}, 0, []int64{10, 20, 30}, 0.2, []int64{11, 22, 3}},
		{"empty base", nil, 0, []int64{10, 20}, 0, []int64{10, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := fromValues(t, 10, 1, 2, tt.base...)
			other := fromValues(t, 10, 1, 2, tt.other...)
			if err := s.MixAt(tt.offset, other, tt.seconds); err != nil {
				t.Fatal(err)
			}
			if got := values(s); !slices.Equal(got, tt.want) {
				t.Errorf("MixAt(%v) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestMixAt_EmptyEqualsOther(t *testing.T) {
	t.Parallel()

	other := fromValues(t, 44100, 2, 4, 1, -1, 1 << 30, -(1 << 30), 0, 7)
	s := &Sample{rate: 44100, channels: 2, width: 4}
	if err := s.MixAt(0, other, 0); err != nil {
		t.Fatal(err)
	}
	if !s.Equal(other) {
		t.Errorf("MixAt(0) on empty = %v, want %v", values(s), values(other))
	}
	if err := s.MixAt(-0.5, other, 0); !errors.Is(err, ErrValueRange) {
		t.Errorf("negative offset err = %v, want ErrValueRange", err)
	}
}

func TestMix_WithItself(t *testing.T) {
	t.Parallel()

	s := ramp(t, 4)
	// spare capacity lets MixAt grow the buffer in place
	s.frames = append(make([]byte, 0, 64), s.frames...)
	if err := s.MixAt(0.2, s, 0); err != nil {
		t.Fatal(err)
	}
	if got := values(s); !slices.Equal(got, []int64{1, 2, 4, 6, 3, 4}) {
		t.Errorf("MixAt(0.2, itself) = %v, want [1 2 4 6 3 4]", got)
	}

	d := ramp(t, 3)
	if err := d.Mix(d, 0, true); err != nil {
		t.Fatal(err)
	}
	if got := values(d); !slices.Equal(got, []int64{2, 4, 6}) {
		t.Errorf("Mix(itself) = %v, want [2 4 6]", got)
	}
}
