// Hueforge - a harmonious colour palette generator
//
// Hueforge derives complete, perceptually-uniform palettes from anchor
// colours: harmonious hue sets, OKLCH normalization, and an 11-step
// tint/shade ramp per colour.
package main

import (
	"os"

	"github.com/hueforge/hueforge/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
