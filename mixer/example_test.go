// SPDX-License-Identifier: EPL-2.0

package mixer_test

import (
	"fmt"

	"github.com/ik5/samplebox/mixer"
	"github.com/ik5/samplebox/sample"
)

func ExampleMixer_Triggers() {
	kick, _ := sample.Silence(0.05)
	hat, _ := sample.Silence(0.02)

	m, err := mixer.New([]mixer.Pattern{{
		Name: "intro",
		Bars: map[string]string{
			"kick": "x...x...",
			"hat":  "..x.xx..",
		},
	}}, 120, 4, map[string]*sample.Sample{"kick": kick, "hat": hat})
	if err != nil {
		fmt.Println(err)
		return
	}

	for t := range m.Triggers() {
		fmt.Printf("tick %d at %.3fs: %v\n", t.Index, t.Time, t.Hits)
	}
	fmt.Printf("%.1f seconds\n", m.Duration())
	// Output:
	// tick 0 at 0.000s: [kick]
	// tick 2 at 0.250s: [hat]
	// tick 4 at 0.500s: [hat kick]
	// tick 5 at 0.625s: [hat]
	// 1.0 seconds
}
