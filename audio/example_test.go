// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/samplebox/audio"
	"github.com/ik5/samplebox/internal/audiotest"
)

// Example_resampler converts one second of 22.05kHz stereo to 44.1kHz.
func Example_resampler() {
	source := audiotest.NewSineSource(22050, 2, 22050, 440.0)
	resampler := audio.NewResampler(source, 44100)

	buf := make([]float32, 4096)
	total := 0
	for {
		n, err := resampler.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	fmt.Printf("rate %d Hz, %d channels, %d frames\n",
		resampler.SampleRate(), resampler.Channels(), total/resampler.Channels())
	// Output:
	// rate 44100 Hz, 2 channels, 44100 frames
}

// Example_monoMixer folds a stereo source into one channel.
func Example_monoMixer() {
	source := audiotest.NewConstantSource(16000, 2, 4, 0.5)
	mono := audio.NewMonoMixer(source)

	buf := make([]float32, 8)
	n, _ := mono.ReadSamples(buf)
	fmt.Println(mono.Channels(), buf[:n])
	// Output:
	// 1 [0.5 0.5 0.5 0.5]
}
