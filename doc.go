// SPDX-License-Identifier: EPL-2.0

// Package samplebox renders pattern based songs to audio.
//
// A song is a YAML file naming instrument samples and rhythm patterns:
//
//	paths:
//	  samples: ./samples
//	  output: ./out
//	song:
//	  bpm: 120
//	  ticks: 4
//	  patterns: [intro, main, main]
//	instruments:
//	  kick: kick.wav
//	  hat: hat.aiff
//	patterns:
//	  intro:
//	    kick: "x...x..."
//	    hat: "..x...x."
//
// Every character of a bar is one tick, ticks ticks to a beat. A space or
// '.' is a rest, anything else triggers the instrument. Instruments can be
// WAV, AIFF, MP3 or Ogg Vorbis files.
//
// The simplest way to render a song is RenderFile:
//
//	seconds, err := samplebox.RenderFile("song.yml", "song.wav")
//
// For more control load the song with the song package, build a
// mixer.Mixer from it and finish the mix with Master.
//
// # Packages
//
//   - sample: PCM buffers, format conversion and mixing
//   - mixer: patterns, triggers and rendering
//   - song: the song model and its file format
//   - audio and formats/...: decoding instrument files into sample streams
package samplebox
