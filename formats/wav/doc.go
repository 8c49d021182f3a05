// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes uncompressed PCM WAV files on top of
// github.com/go-audio/wav.
//
// ReadPCM and WritePCM move integer samples without any conversion, which is
// what sample buffers need to stay byte exact:
//
//	pcm, err := wav.ReadPCM(file)
//	// pcm.Width is 1..4 bytes, pcm.Data holds interleaved samples
//	err = wav.WritePCM(out, pcm)
//
// Decoder adapts the same reader to audio.Source for streaming use, scaling
// samples into [-1.0, 1.0]:
//
//	source, err := wav.Decoder{}.Decode(file)
//
// Only format tag 1 (PCM) is accepted; ErrNotPCM is returned for float or
// compressed data and ErrNotWavFile when the RIFF/WAVE structure is missing.
package wav
