// SPDX-License-Identifier: EPL-2.0

// Package mixer turns rhythm patterns into audio.
//
// A Pattern holds one bar per instrument, one character per tick. With bpm
// beats per minute and ticks per beat, tick n starts at n*60/bpm/ticks
// seconds, counted across all patterns in order. The Mixer places each
// instrument sample at the start of its ticks and sums everything into one
// 32 bit buffer, mixing instruments that sound together only once per
// combination.
package mixer
