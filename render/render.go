// Package render draws quick-look images of HGT tiles.
package render

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/larschri/hgtconv/hgt"
	"github.com/nfnt/resize"
)

func elevationRange(grid *hgt.Grid) (float64, float64) {
	min, max := math.MaxFloat64, -math.MaxFloat64
	for _, v := range grid.Samples {
		if v == hgt.Void {
			continue
		}
		min = math.Min(min, float64(v))
		max = math.Max(max, float64(v))
	}
	if min > max {
		return 0, 0
	}
	return min, max
}

// incline is the largest elevation difference to the east and south neighbours
func incline(grid *hgt.Grid, row int, col int) float64 {
	side := grid.Resolution.Side()
	v := grid.At(row, col)
	result := 0.0
	if col+1 < side {
		if e := grid.At(row, col+1); e != hgt.Void {
			result = math.Max(result, math.Abs(float64(e)-float64(v)))
		}
	}
	if row+1 < side {
		if s := grid.At(row+1, col); s != hgt.Void {
			result = math.Max(result, math.Abs(float64(s)-float64(v)))
		}
	}
	return result
}

// Preview renders grid with a hypsometric tint darkened on steep slopes. Voids are transparent.
// The image is scaled down to size x size pixels unless size is 0 or not smaller than the grid.
func Preview(grid *hgt.Grid, size int) image.Image {
	side := grid.Resolution.Side()
	min, max := elevationRange(grid)

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			img.SetRGBA(col, row, hypsometric.colorAt(grid, row, col, min, max-min))
		}
	}

	if size <= 0 || size >= side {
		return img
	}
	return resize.Resize(uint(size), uint(size), img, resize.Bilinear)
}

// WritePreview writes the Preview of grid as a PNG file
func WritePreview(fname string, grid *hgt.Grid, size int) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}

	err = (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(out, Preview(grid, size))
	if err != nil {
		out.Close()
		os.Remove(fname)
		return fmt.Errorf("failed during image encoding: %w", err)
	}
	return out.Close()
}
