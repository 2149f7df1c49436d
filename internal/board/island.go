// Island footprints using layered simplex noise.
package board

import (
	"fmt"
	"math"
	"slices"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexboard/internal/hexgrid"
)

// Island returns n tile coordinates forming an irregular landmass inside a
// hexagon of the given radius. Tiles are ranked by noise elevation with a
// falloff towards the rim, and the n highest are kept. The result follows
// the spiral order of hexgrid.Hexagon, so it can be used directly as a
// generation footprint. The same seed always gives the same island.
func Island(radius, n int, seed int64) ([]hexgrid.Tile, error) {
	all := hexgrid.Hexagon(hexgrid.Tile{}, radius)
	if n < 0 || n > len(all) {
		return nil, fmt.Errorf("island of %d tiles does not fit in radius %d (%d tiles)", n, radius, len(all))
	}

	noise := opensimplex.NewNormalized(seed)
	elev := make(map[hexgrid.Tile]float64, len(all))
	for _, t := range all {
		// Hex axial → cartesian: x = q + r*0.5, y = r * sqrt(3)/2
		x := float64(t.X) + float64(t.Y)*0.5
		y := float64(t.Y) * math.Sqrt(3.0) / 2.0

		e := octaveNoise(noise, x, y, 3, 0.35, 0.5)

		// Continental shaping: pull the rim down so land gathers in the middle.
		dist := float64(hexgrid.Distance(hexgrid.Tile{}, t)) / float64(radius+1)
		e *= 1.0 - math.Pow(dist, 2.0)
		elev[t] = e
	}

	ranked := slices.Clone(all)
	slices.SortStableFunc(ranked, func(a, b hexgrid.Tile) int {
		switch {
		case elev[a] > elev[b]:
			return -1
		case elev[a] < elev[b]:
			return 1
		}
		return 0
	})
	keep := make(map[hexgrid.Tile]bool, n)
	for _, t := range ranked[:n] {
		keep[t] = true
	}

	res := make([]hexgrid.Tile, 0, n)
	for _, t := range all {
		if keep[t] {
			res = append(res, t)
		}
	}
	return res, nil
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
