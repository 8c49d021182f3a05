// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"errors"
	"fmt"
)

// ErrConfiguration is wrapped by every error New reports.
var ErrConfiguration = errors.New("invalid mixer configuration")

var (
	ErrUnknownInstrument = fmt.Errorf("%w: unknown instrument", ErrConfiguration)
	ErrBarLength         = fmt.Errorf("%w: bar length is not a positive multiple of ticks", ErrConfiguration)
	ErrBarMismatch       = fmt.Errorf("%w: bars of one pattern differ in length", ErrConfiguration)
	ErrInvalidTiming     = fmt.Errorf("%w: bpm and ticks must be positive", ErrConfiguration)
)
