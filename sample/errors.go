// SPDX-License-Identifier: EPL-2.0

package sample

import "errors"

var (
	// ErrFormat reports an unsupported width or channel count, a buffer whose
	// length does not fit its format, or two samples that cannot be mixed.
	ErrFormat = errors.New("unsupported sample format")

	// ErrLocked is returned by every mutating operation on a locked sample.
	ErrLocked = errors.New("sample is locked")

	// ErrValueRange reports a negative duration or an empty cut range.
	ErrValueRange = errors.New("value out of range")
)
