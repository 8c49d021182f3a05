// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis instrument files through
// github.com/jfreymuth/oggvorbis.
//
// The stream keeps its native channel count; sources with more than two
// channels are folded down by the sample loader with audio.MonoMixer.
//
//	source, err := vorbis.Decoder{}.Decode(file)
package vorbis
