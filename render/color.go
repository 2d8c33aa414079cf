package render

import (
	"image/color"

	"github.com/larschri/hgtconv/hgt"
)

// colorAt returns the pixel for a grid sample given the tile's lowest elevation and
// elevation span. Voids are fully transparent.
func (g gradient) colorAt(grid *hgt.Grid, row int, col int, min float64, span float64) color.RGBA {
	v := grid.At(row, col)
	if v == hgt.Void {
		return color.RGBA{}
	}

	r, gr, b := g.shade(float64(v)-min, span, incline(grid, row, col)).RGB255()
	return color.RGBA{R: r, G: gr, B: b, A: 255}
}
