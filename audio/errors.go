// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// UnsupportedFormatError reports a file whose extension has no registered decoder.
type UnsupportedFormatError struct {
	Format string
	Name   string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: %q (%s)", ErrUnsupportedFormat, e.Format, e.Name)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }
