package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// maxIncline is the elevation difference in meters between neighbouring samples that gets the darkest shade
const maxIncline = 20

// band is one elevation step of the tint: its colour on flat ground and on the steepest slopes
type band struct {
	flat  colorful.Color
	steep colorful.Color
}

// gradient runs from the lowest to the highest elevation of a tile
type gradient []band

func hclBand(h, c, l float64) band {
	return band{
		flat:  colorful.Hcl(h, c, l).Clamped(),
		steep: colorful.Hcl(h, c, l-0.35).Clamped(),
	}
}

var hypsometric = gradient{
	hclBand(140, 0.45, 0.55),
	hclBand(125, 0.45, 0.65),
	hclBand(105, 0.45, 0.75),
	hclBand(85, 0.45, 0.8),
	hclBand(65, 0.4, 0.75),
	hclBand(50, 0.35, 0.65),
	hclBand(40, 0.25, 0.6),
	hclBand(40, 0.1, 0.8),
	hclBand(40, 0, 0.95),
}

// position places v within [0, span] on a scale of n steps. It returns the lower
// step and how far v is towards the next one.
func position(v float64, span float64, n int) (int, float64) {
	if span <= 0 || v <= 0 {
		return 0, 0
	}
	if v >= span {
		return n - 2, 1
	}
	f := float64(n-1) * v / span
	i := math.Floor(f)
	return int(i), f - i
}

// shade blends the two bands around elevation, each darkened towards its steep colour by slope
func (g gradient) shade(elevation float64, span float64, slope float64) colorful.Color {
	i, f := position(elevation, span, len(g))
	s := math.Min(slope/maxIncline, 1)

	lo := g[i].flat.BlendRgb(g[i].steep, s)
	hi := g[i+1].flat.BlendRgb(g[i+1].steep, s)
	return lo.BlendRgb(hi, f)
}
