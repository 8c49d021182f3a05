// SPDX-License-Identifier: EPL-2.0

package song

import (
	"fmt"
	"iter"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ik5/samplebox/mixer"
	"github.com/ik5/samplebox/sample"
)

// Defaults for a new song.
const (
	DefaultBPM   = 128
	DefaultTicks = 4
)

// Song is a set of instruments, the patterns playing them and the order the
// patterns are played in.
type Song struct {
	// Instruments are normalized, 32 bit and locked.
	Instruments map[string]*sample.Sample
	Patterns    map[string]mixer.Pattern
	// Sequence lists pattern names in playing order, repeats allowed.
	Sequence []string
	BPM      int
	Ticks    int
	// SamplePath and OutputPath are kept as written in the song file.
	SamplePath string
	OutputPath string

	// dir is where the song file lives; relative paths resolve against it.
	dir string
}

// New returns an empty song at the default tempo.
func New() *Song {
	return &Song{
		Instruments: make(map[string]*sample.Sample),
		Patterns:    make(map[string]mixer.Pattern),
		BPM:         DefaultBPM,
		Ticks:       DefaultTicks,
	}
}

// Mixer builds a mixer over the pattern sequence.
func (s *Song) Mixer() (*mixer.Mixer, error) {
	return s.MixerFor(s.Sequence...)
}

// MixerFor builds a mixer over the named patterns, in the given order.
func (s *Song) MixerFor(names ...string) (*mixer.Mixer, error) {
	patterns := make([]mixer.Pattern, 0, len(names))
	for _, name := range names {
		p, ok := s.Patterns[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
		}
		patterns = append(patterns, p)
	}
	return mixer.New(patterns, s.BPM, s.Ticks, s.Instruments)
}

// Mix renders the pattern sequence into a working format sample.
func (s *Song) Mix() (*sample.Sample, error) {
	if len(s.Sequence) == 0 {
		return nil, ErrNothingToMix
	}
	m, err := s.Mixer()
	if err != nil {
		return nil, err
	}
	return m.Mix()
}

// Triggers lists the ticks of the pattern sequence on which something
// sounds, without rendering any audio.
func (s *Song) Triggers() (iter.Seq[mixer.Trigger], error) {
	m, err := s.Mixer()
	if err != nil {
		return nil, err
	}
	return m.Triggers(), nil
}

// UnusedInstruments returns the instruments none of the named patterns
// plays, sorted. Without names the pattern sequence is checked.
func (s *Song) UnusedInstruments(patterns ...string) []string {
	if len(patterns) == 0 {
		patterns = s.Sequence
	}
	used := make(map[string]bool)
	for _, name := range patterns {
		for instrument := range s.Patterns[name].Bars {
			used[instrument] = true
		}
	}

	var unused []string
	for _, name := range slices.Sorted(maps.Keys(s.Instruments)) {
		if !used[name] {
			unused = append(unused, name)
		}
	}
	return unused
}

// DiscardUnused drops the instruments none of the named patterns plays and
// returns their names. Without names the pattern sequence is checked.
func (s *Song) DiscardUnused(patterns ...string) []string {
	unused := s.UnusedInstruments(patterns...)
	for _, name := range unused {
		delete(s.Instruments, name)
	}
	return unused
}

// Record sets the bars of instrument in pattern, creating the pattern if
// needed. Spaces in bars are ignored. Empty bars remove the instrument from
// the pattern, and a pattern left without instruments is removed.
func (s *Song) Record(pattern, instrument, bars string) error {
	if _, ok := s.Instruments[instrument]; !ok {
		return fmt.Errorf("pattern %q, instrument %q: %w", pattern, instrument, mixer.ErrUnknownInstrument)
	}
	bars = strings.ReplaceAll(bars, " ", "")

	p, ok := s.Patterns[pattern]
	if !ok {
		p = mixer.Pattern{Name: pattern, Bars: make(map[string]string)}
	}

	if bars == "" {
		delete(p.Bars, instrument)
		if len(p.Bars) == 0 {
			delete(s.Patterns, pattern)
			return nil
		}
		s.Patterns[pattern] = p
		return nil
	}

	if err := s.checkBars(p, instrument, bars); err != nil {
		return err
	}
	p.Bars[instrument] = bars
	s.Patterns[pattern] = p
	return nil
}

// checkBars validates bars against the ticks and the other bars of p.
func (s *Song) checkBars(p mixer.Pattern, instrument, bars string) error {
	n := utf8.RuneCountInString(bars)
	if s.Ticks <= 0 || n%s.Ticks != 0 {
		return fmt.Errorf("pattern %q, instrument %q: %w: %d ticks with %d per beat",
			p.Name, instrument, mixer.ErrBarLength, n, s.Ticks)
	}
	for other, b := range p.Bars {
		if m := utf8.RuneCountInString(b); other != instrument && m != n {
			return fmt.Errorf("pattern %q, instrument %q: %w: %d ticks, %q has %d",
				p.Name, instrument, mixer.ErrBarMismatch, n, other, m)
		}
	}
	return nil
}

// SetSequence replaces the pattern sequence. Every name must be a defined
// pattern.
func (s *Song) SetSequence(names []string) error {
	for _, name := range names {
		if _, ok := s.Patterns[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPattern, name)
		}
	}
	s.Sequence = slices.Clone(names)
	return nil
}

// OutputFile returns where a rendering called name belongs: inside the
// song's output path, resolved against the song file's directory.
func (s *Song) OutputFile(name string) string {
	return filepath.Join(s.resolve(s.OutputPath), name)
}

func (s *Song) resolve(path string) string {
	if filepath.IsAbs(path) || s.dir == "" {
		return path
	}
	return filepath.Join(s.dir, path)
}
