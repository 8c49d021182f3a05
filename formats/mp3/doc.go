// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 instrument files through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always yields 16-bit stereo, so the returned audio.Source reports
// two channels whatever the file holds:
//
//	source, err := mp3.Decoder{}.Decode(file)
//	if errors.Is(err, mp3.ErrNotMP3) {
//	    // no MPEG audio frame found
//	}
//
// Closing the source closes the reader when it is an io.Closer.
package mp3
