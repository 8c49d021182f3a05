// SPDX-License-Identifier: EPL-2.0

package song

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ik5/samplebox/sample"
)

// definition is the YAML layout of a song file:
//
//	paths:
//	  samples: ./samples
//	  output: ./out
//	song:
//	  bpm: 120
//	  ticks: 4
//	  patterns: [intro, main, main]
//	instruments:
//	  kick: kick.wav
//	  hat: hat.aiff
//	patterns:
//	  intro:
//	    kick: "x...x..."
//	    hat: "..x...x."
type definition struct {
	Paths       paths                        `yaml:"paths"`
	Song        *header                      `yaml:"song,omitempty"`
	Instruments map[string]string            `yaml:"instruments"`
	Patterns    map[string]map[string]string `yaml:"patterns,omitempty"`
}

type paths struct {
	Samples string `yaml:"samples"`
	Output  string `yaml:"output"`
}

type header struct {
	BPM      int      `yaml:"bpm"`
	Ticks    int      `yaml:"ticks"`
	Patterns []string `yaml:"patterns,flow"`
}

// Read loads a song file. Instrument files are looked up in the sample path,
// which is relative to the song file unless absolute. With discardUnused the
// instruments no sequenced pattern plays are dropped after loading.
func Read(path string, discardUnused bool) (*Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	s, err := Decode(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if discardUnused {
		s.DiscardUnused()
	}
	return s, nil
}

// Decode parses a song definition. dir is the directory relative paths in
// the definition resolve against.
func Decode(r io.Reader, dir string) (*Song, error) {
	var def definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing song: %w", err)
	}

	s := New()
	s.dir = dir
	s.SamplePath = def.Paths.Samples
	s.OutputPath = def.Paths.Output
	if def.Song != nil {
		if def.Song.BPM != 0 {
			s.BPM = def.Song.BPM
		}
		if def.Song.Ticks != 0 {
			s.Ticks = def.Song.Ticks
		}
	}
	if s.BPM <= 0 || s.Ticks <= 0 {
		return nil, fmt.Errorf("%w: bpm %d, ticks %d", ErrInvalidTiming, s.BPM, s.Ticks)
	}

	samples := s.resolve(s.SamplePath)
	for _, name := range slices.Sorted(maps.Keys(def.Instruments)) {
		file := def.Instruments[name]
		if !filepath.IsAbs(file) {
			file = filepath.Join(samples, file)
		}
		inst, err := loadInstrument(file)
		if err != nil {
			return nil, fmt.Errorf("instrument %q: %w", name, err)
		}
		s.Instruments[name] = inst
	}

	for _, name := range slices.Sorted(maps.Keys(def.Patterns)) {
		bars := def.Patterns[name]
		for _, instrument := range slices.Sorted(maps.Keys(bars)) {
			if err := s.Record(name, instrument, bars[instrument]); err != nil {
				return nil, err
			}
		}
	}

	if def.Song != nil {
		if err := s.SetSequence(def.Song.Patterns); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// loadInstrument reads a sample file and prepares it for mixing.
func loadInstrument(path string) (*sample.Sample, error) {
	inst, err := sample.Load(path)
	if err != nil {
		return nil, err
	}
	if err := inst.Normalize(); err != nil {
		return nil, err
	}
	if err := inst.Make32Bit(false); err != nil {
		return nil, err
	}
	return inst.Lock(), nil
}

// Write saves the song definition to path.
func (s *Song) Write(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w", cerr)
		}
	}()

	return s.Encode(f)
}

// Encode writes the song definition as YAML. Instruments are referenced by
// the base name of the file they were loaded from; instruments that were not
// loaded from a file are left out.
func (s *Song) Encode(w io.Writer) error {
	def := definition{
		Paths: paths{Samples: s.SamplePath, Output: s.OutputPath},
		Song: &header{
			BPM:      s.BPM,
			Ticks:    s.Ticks,
			Patterns: s.Sequence,
		},
		Instruments: make(map[string]string),
		Patterns:    make(map[string]map[string]string),
	}
	if def.Song.Patterns == nil {
		def.Song.Patterns = []string{}
	}
	for name, inst := range s.Instruments {
		if inst.Filename() != "" {
			def.Instruments[name] = filepath.Base(inst.Filename())
		}
	}
	for name, p := range s.Patterns {
		def.Patterns[name] = p.Bars
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&def); err != nil {
		return fmt.Errorf("writing song: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("writing song: %w", err)
	}
	return nil
}
