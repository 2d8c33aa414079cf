package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/larschri/hgtconv/hgt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slopeGrid() *hgt.Grid {
	grid := hgt.Grid{
		Resolution: hgt.Resolution(4),
		Samples: []int16{
			0, 10, 20, 30,
			0, 10, 20, 30,
			500, 1000, 1500, 2000,
			hgt.Void, 32767, -32767, 2000,
		},
	}
	return &grid
}

func TestPreviewFullSize(t *testing.T) {
	img := Preview(slopeGrid(), 0)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())

	_, _, _, a := img.At(0, 3).RGBA()
	assert.Zero(t, a, "voids are transparent")

	_, _, _, a = img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)

	assert.NotEqual(t, img.At(0, 0), img.At(1, 3), "lowest and highest samples differ")
}

func TestPreviewScaled(t *testing.T) {
	side := hgt.SRTM3.Side()
	grid := &hgt.Grid{Resolution: hgt.SRTM3, Samples: make([]int16, side*side)}

	img := Preview(grid, 256)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestPosition(t *testing.T) {
	tests := []struct {
		v, span  float64
		wantStep int
		wantFrac float64
	}{
		{-1, 100, 0, 0},
		{0, 100, 0, 0},
		{100, 100, 7, 1},
		{150, 100, 7, 1},
		{50, 100, 4, 0},
		{25, 100, 2, 0},
		{30, 0, 0, 0},
	}

	for _, tt := range tests {
		step, frac := position(tt.v, tt.span, 9)
		assert.Equal(t, tt.wantStep, step, "v=%v span=%v", tt.v, tt.span)
		assert.InDelta(t, tt.wantFrac, frac, 1e-9, "v=%v span=%v", tt.v, tt.span)
	}
}

func TestShade(t *testing.T) {
	flat := hypsometric.shade(0, 100, 0)
	assert.True(t, flat.AlmostEqualRgb(hypsometric[0].flat))

	steep := hypsometric.shade(0, 100, 2*maxIncline)
	assert.True(t, steep.AlmostEqualRgb(hypsometric[0].steep))

	top := hypsometric.shade(100, 100, 0)
	assert.True(t, top.AlmostEqualRgb(hypsometric[len(hypsometric)-1].flat))

	_, _, l := hypsometric.shade(30, 100, 10).Hcl()
	_, _, lFlat := hypsometric.shade(30, 100, 0).Hcl()
	assert.Less(t, l, lFlat, "slopes are darker")
}

func TestColorAt(t *testing.T) {
	grid := slopeGrid()
	assert.Equal(t, color.RGBA{}, hypsometric.colorAt(grid, 3, 0, -32767, 65534))

	c := hypsometric.colorAt(grid, 0, 0, 0, 2000)
	assert.Equal(t, uint8(255), c.A)
}

func TestWritePreview(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "N00E000.png")
	require.NoError(t, WritePreview(fname, slopeGrid(), 0))

	f, err := os.Open(fname)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestWritePreviewMissingDirectory(t *testing.T) {
	err := WritePreview(filepath.Join(t.TempDir(), "missing", "x.png"), slopeGrid(), 0)
	assert.Error(t, err)
}
