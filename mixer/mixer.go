// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ik5/samplebox/sample"
)

// Trigger is a tick on which at least one instrument sounds.
type Trigger struct {
	// Index counts ticks across all patterns, rests included.
	Index int
	// Time is the offset of the tick in seconds.
	Time float64
	// Hits are the sounding instruments, sorted.
	Hits []string
}

// Placement is the sample to lay down for a Trigger.
type Placement struct {
	Trigger
	Sample *sample.Sample
}

// Mixer renders a list of patterns into one sample.
type Mixer struct {
	tracks      []track
	bpm         int
	ticks       int
	instruments map[string]*sample.Sample

	// Progress, when set, is called by Mix after every placed trigger and
	// once more when the output is complete.
	Progress func(done, total float64)
}

// New validates the patterns against the instruments and the timing.
// Instruments not already in the working format (44.1kHz 32 bit stereo) are
// converted on a private copy: normalized, widened without scaling and
// locked.
func New(patterns []Pattern, bpm, ticks int, instruments map[string]*sample.Sample) (*Mixer, error) {
	if bpm <= 0 || ticks <= 0 {
		return nil, fmt.Errorf("%w: bpm %d, ticks %d", ErrInvalidTiming, bpm, ticks)
	}

	used := make(map[string]*sample.Sample)
	tracks := make([]track, 0, len(patterns))
	for _, p := range patterns {
		t := track{names: p.Instruments(), bars: make(map[string][]rune, len(p.Bars))}
		for i, name := range t.names {
			if _, ok := instruments[name]; !ok {
				return nil, fmt.Errorf("pattern %q, instrument %q: %w", p.Name, name, ErrUnknownInstrument)
			}
			bar := []rune(p.Bars[name])
			if len(bar) == 0 || len(bar)%ticks != 0 {
				return nil, fmt.Errorf("pattern %q, instrument %q: %w: %d ticks with %d per beat",
					p.Name, name, ErrBarLength, len(bar), ticks)
			}
			if i > 0 && len(bar) != t.length {
				return nil, fmt.Errorf("pattern %q, instrument %q: %w: %d ticks, expected %d",
					p.Name, name, ErrBarMismatch, len(bar), t.length)
			}
			t.length = len(bar)
			t.bars[name] = bar
			used[name] = instruments[name]
		}
		tracks = append(tracks, t)
	}

	for name, s := range used {
		ws, err := workingFormat(s)
		if err != nil {
			return nil, fmt.Errorf("instrument %q: %w", name, err)
		}
		used[name] = ws
	}

	return &Mixer{
		tracks:      tracks,
		bpm:         bpm,
		ticks:       ticks,
		instruments: used,
	}, nil
}

// track is a validated copy of a Pattern with its bars split into ticks.
type track struct {
	names  []string
	bars   map[string][]rune
	length int
}

func isWorkingFormat(s *sample.Sample) bool {
	return s.SampleRate() == sample.NormRate &&
		s.Channels() == sample.NormChannels &&
		s.Width() == sample.MixWidth
}

func workingFormat(s *sample.Sample) (*sample.Sample, error) {
	if isWorkingFormat(s) {
		return s, nil
	}
	d := s.Dup()
	if err := d.Normalize(); err != nil {
		return nil, err
	}
	if err := d.Make32Bit(false); err != nil {
		return nil, err
	}
	return d.Lock(), nil
}

func (m *Mixer) timePerTick() float64 {
	return 60 / float64(m.bpm) / float64(m.ticks)
}

// Duration is the length of the rendered song in seconds, trailing rests
// included.
func (m *Mixer) Duration() float64 {
	var total float64
	for _, t := range m.tracks {
		total += float64(t.length) * 60 / float64(m.bpm) / float64(m.ticks)
	}
	return total
}

// Triggers walks the patterns tick by tick and yields every tick on which
// something sounds. Ticks holding only rests are skipped.
func (m *Mixer) Triggers() iter.Seq[Trigger] {
	return func(yield func(Trigger) bool) {
		perTick := m.timePerTick()
		index := 0
		for _, tr := range m.tracks {
			for pos := range tr.length {
				var hits []string
				for _, name := range tr.names {
					if !IsRest(tr.bars[name][pos]) {
						hits = append(hits, name)
					}
				}
				if len(hits) > 0 {
					t := Trigger{Index: index, Time: float64(index) * perTick, Hits: hits}
					if !yield(t) {
						return
					}
				}
				index++
			}
		}
	}
}

// Samples yields the sample to place for every trigger. A lone hit is the
// instrument itself. Simultaneous hits are mixed onto a copy of the longest
// of them, locked and reused whenever the same combination sounds again
// during this iteration.
func (m *Mixer) Samples() iter.Seq2[Placement, error] {
	return func(yield func(Placement, error) bool) {
		cache := make(map[string]*sample.Sample)
		for t := range m.Triggers() {
			s, err := m.combine(cache, t.Hits)
			if err != nil {
				yield(Placement{Trigger: t}, err)
				return
			}
			if !yield(Placement{Trigger: t, Sample: s}, nil) {
				return
			}
		}
	}
}

func (m *Mixer) combine(cache map[string]*sample.Sample, hits []string) (*sample.Sample, error) {
	if len(hits) == 1 {
		return m.instruments[hits[0]], nil
	}

	key := strings.Join(hits, "\x00")
	if s, ok := cache[key]; ok {
		return s, nil
	}

	base := hits[0]
	for _, name := range hits[1:] {
		if m.instruments[name].Duration() > m.instruments[base].Duration() {
			base = name
		}
	}

	s := m.instruments[base].Dup()
	for _, name := range hits {
		if name == base {
			continue
		}
		if err := s.Mix(m.instruments[name], 0, true); err != nil {
			return nil, fmt.Errorf("mixing %q into %q: %w", name, base, err)
		}
	}
	s.Lock()
	cache[key] = s
	return s, nil
}

// Mix renders every trigger into a working format sample lasting exactly
// Duration seconds.
func (m *Mixer) Mix() (*sample.Sample, error) {
	out, err := sample.FromFrames(nil, sample.NormRate, sample.NormChannels, sample.MixWidth)
	if err != nil {
		return nil, err
	}

	total := m.Duration()
	for p, err := range m.Samples() {
		if err != nil {
			return nil, err
		}
		if err := out.MixAt(p.Time, p.Sample, 0); err != nil {
			return nil, fmt.Errorf("tick %d: %w", p.Index, err)
		}
		if m.Progress != nil {
			m.Progress(p.Time, total)
		}
	}

	if err := out.Fit(total); err != nil {
		return nil, err
	}
	if m.Progress != nil {
		m.Progress(total, total)
	}
	return out, nil
}
