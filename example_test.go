package mobius_test

import (
	"fmt"

	"github.com/pixelforge/mobius"
	"github.com/pixelforge/mobius/tensor"
)

// Warp a batch sample with a fixed seed so the run is reproducible.
func Example() {
	warp, err := mobius.NewSquare(64,
		mobius.WithProbability(1),
		mobius.WithOrder(1),
		mobius.WithFillValue(0),
		mobius.WithRandSource(mobius.NewSource(7)),
	)
	if err != nil {
		panic(err)
	}

	sample, _ := tensor.Full(64, 64, 3, 127)
	out, err := warp.Apply(sample)
	if err != nil {
		panic(err)
	}
	fmt.Println(out.Height(), out.Width(), out.Channels())
	// Output: 64 64 3
}

// Force a specific effect instead of drawing one at random.
func ExampleWarp_ApplyEffect() {
	warp, err := mobius.New(32, 32, mobius.WithOrder(0))
	if err != nil {
		panic(err)
	}

	sample, _ := tensor.Full(32, 32, 1, 255)
	out, err := warp.ApplyEffect(sample, mobius.Spread)
	if err != nil {
		panic(err)
	}
	fmt.Println(out.SameShape(sample))
	// Output: true
}

// The eight effects form a fixed, named table.
func ExampleEffects() {
	for _, e := range mobius.Effects()[:3] {
		fmt.Println(e)
	}
	// Output:
	// twist
	// half-twist
	// spread
}
