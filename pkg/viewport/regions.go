package viewport

import (
	"fmt"
	"sort"
	"strings"
)

// Region is a rectangle of the complex plane without a pixel grid.
type Region struct {
	Name       string
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Viewport samples the region on a width×height grid.
func (r Region) Viewport(width, height int) (Viewport[float64], error) {
	return New(r.Xmin, r.Xmax, r.Ymin, r.Ymax, width, height)
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Full shows the whole set.
	Full = Region{Name: "full", Xmin: -2, Xmax: 1, Ymin: -1.5, Ymax: 1.5}

	// Dense filaments and repeating "seahorse" curls.
	SeahorseValley = Region{Name: "seahorse-valley", Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}

	// Large bulb with trunk-like tendrils.
	ElephantValley = Region{Name: "elephant-valley", Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}

	// Small copy of the set with tight spiral arms.
	SpiralMinibrot = Region{Name: "spiral-minibrot", Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}

	// Threefold symmetric spiral structure.
	TripleSpiral = Region{Name: "triple-spiral", Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}

	// Deep, highly detailed spiral filaments.
	ValleyOfTheDragon = Region{Name: "valley-of-the-dragon", Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}

	// Self-similar copy inside a spiral arm.
	MinibrotInMiniSpiral = Region{Name: "minibrot-in-mini-spiral", Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}
)

var regions = map[string]Region{}

func init() {
	for _, r := range []Region{
		Full, SeahorseValley, ElephantValley, SpiralMinibrot,
		TripleSpiral, ValleyOfTheDragon, MinibrotInMiniSpiral,
	} {
		regions[r.Name] = r
	}
}

// LookupRegion finds a named region. Names are case insensitive.
func LookupRegion(name string) (Region, error) {
	r, ok := regions[strings.ToLower(name)]
	if !ok {
		return Region{}, fmt.Errorf("unknown region %q, want one of %s", name, strings.Join(RegionNames(), ", "))
	}
	return r, nil
}

// RegionNames lists the named regions in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for n := range regions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
