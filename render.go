// SPDX-License-Identifier: EPL-2.0

package samplebox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/samplebox/sample"
	"github.com/ik5/samplebox/song"
)

// Master turns a working format mix into the final 16 bit output, amplified
// so its loudest value reaches full scale.
func Master(mix *sample.Sample) error {
	return mix.Make16Bit(true)
}

// Render mixes the song and masters the result. Without patterns the song's
// own sequence is rendered.
func Render(s *song.Song, patterns ...string) (*sample.Sample, error) {
	var (
		mix *sample.Sample
		err error
	)
	if len(patterns) == 0 {
		mix, err = s.Mix()
	} else {
		mix, err = mixPatterns(s, patterns)
	}
	if err != nil {
		return nil, err
	}

	if err := Master(mix); err != nil {
		return nil, err
	}
	return mix, nil
}

func mixPatterns(s *song.Song, patterns []string) (*sample.Sample, error) {
	m, err := s.MixerFor(patterns...)
	if err != nil {
		return nil, err
	}
	return m.Mix()
}

// RenderFile reads the song at songPath, renders it and writes a WAV file
// to outPath. An empty outPath puts the file in the song's output path,
// named after the song. Returns the duration of the output in seconds.
func RenderFile(songPath, outPath string) (float64, error) {
	s, err := song.Read(songPath, true)
	if err != nil {
		return 0, err
	}

	out, err := Render(s)
	if err != nil {
		return 0, err
	}

	if outPath == "" {
		outPath = DefaultOutput(s, songPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	if err := out.SaveWAV(outPath); err != nil {
		return 0, err
	}
	return out.Duration(), nil
}

// DefaultOutput is the WAV file a song renders to when no output is named.
func DefaultOutput(s *song.Song, songPath string) string {
	base := filepath.Base(songPath)
	return s.OutputFile(strings.TrimSuffix(base, filepath.Ext(base)) + ".wav")
}
