// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the sample loaders are
// built from:
//   - Source, a pull interface over interleaved float32 samples
//   - Decoder and Registry, mapping file extensions to decoders
//   - Resampler for sample rate conversion (linear or cubic)
//   - MonoMixer for folding many channels into one
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are float32 in [-1.0, 1.0]. ReadSamples returns io.EOF, possibly
// together with the final samples, once the stream is finished:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// # Resampling
//
// NewResampler interpolates linearly between neighbouring frames, the
// conversion used when samples are normalized to 44.1kHz:
//
//	resampler := audio.NewResampler(source, 44100)
//
// NewResamplerWith(source, rate, audio.Cubic) uses a Catmull-Rom spline
// instead. Output frame k always lands on source position k*in/out, computed
// in integers, so the output length is exact.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForFile("kick.WAV")
package audio
