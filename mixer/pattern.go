// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"maps"
	"slices"
	"unicode/utf8"
)

// Pattern maps instrument names to bars. Each character of a bar is one tick: a
// space or '.' is a rest, anything else triggers the instrument.
type Pattern struct {
	Name string
	Bars map[string]string
}

// Instruments returns the instrument names used by the pattern, sorted.
func (p Pattern) Instruments() []string {
	return slices.Sorted(maps.Keys(p.Bars))
}

// Length is the number of ticks in the pattern's bars, 0 for an empty
// pattern.
func (p Pattern) Length() int {
	names := p.Instruments()
	if len(names) == 0 {
		return 0
	}
	return utf8.RuneCountInString(p.Bars[names[0]])
}

// IsRest reports whether c leaves a tick silent.
func IsRest(c rune) bool {
	return c == ' ' || c == '.'
}
