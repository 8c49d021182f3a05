// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF instrument files through github.com/go-audio/aiff.
//
// Signed PCM of 8, 16, 24 and 32 bits is accepted, mono or multi-channel, at
// any sample rate. Samples come out of the audio.Source as float32 in
// [-1.0, 1.0]:
//
//	source, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not an AIFF file
//	}
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory first.
package aiff
