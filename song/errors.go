// SPDX-License-Identifier: EPL-2.0

package song

import "errors"

var (
	// ErrUnknownPattern reports a sequenced pattern that is not defined.
	ErrUnknownPattern = errors.New("unknown pattern")

	// ErrNothingToMix is returned when the pattern sequence is empty.
	ErrNothingToMix = errors.New("nothing to mix, the song has no patterns")

	// ErrInvalidTiming reports a negative tempo or tick count in a song file.
	ErrInvalidTiming = errors.New("bpm and ticks must be positive")
)
