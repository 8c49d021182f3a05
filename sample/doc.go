// SPDX-License-Identifier: EPL-2.0

// Package sample holds PCM audio buffers and the operations a sequencer
// needs on them: format normalization, time to frame arithmetic, cutting,
// padding and saturating mixes.
//
// A Sample owns little-endian signed PCM frames of 2, 3 or 4 bytes per
// value, mono or stereo. Instruments are normalized to 44.1kHz 16 bit
// stereo and then widened to 32 bit without scaling, which leaves room to
// layer many of them before a final Make16Bit(true):
//
//	s, err := sample.Load("kick.wav")
//	if err != nil {
//		return err
//	}
//	if err := s.Normalize(); err != nil {
//		return err
//	}
//	if err := s.Make32Bit(false); err != nil {
//		return err
//	}
//	s.Lock()
//
// Locked samples reject every mutating method with ErrLocked and can be
// shared freely.
package sample
