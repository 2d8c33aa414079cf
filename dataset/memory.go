package dataset

import (
	"fmt"
	"os"
)

// MemRaster is a Raster held in memory. It records how it was used, which makes it
// convenient for exercising code that consumes rasters.
type MemRaster struct {
	XSize     int
	YSize     int
	Transform [6]float64
	NoData    *float64
	Projected bool
	Samples   []float64

	Reads  int
	Closed bool
}

func (r *MemRaster) Size() (int, int) {
	return r.XSize, r.YSize
}

func (r *MemRaster) GeoTransform() [6]float64 {
	return r.Transform
}

func (r *MemRaster) NoDataValue() (float64, bool) {
	if r.NoData == nil {
		return 0, false
	}
	return *r.NoData, true
}

func (r *MemRaster) Geographic() bool {
	return !r.Projected
}

func (r *MemRaster) ReadSamples() ([]float64, error) {
	r.Reads++
	if len(r.Samples) != r.XSize*r.YSize {
		return nil, fmt.Errorf("%d samples for a %d x %d raster", len(r.Samples), r.XSize, r.YSize)
	}
	return append([]float64(nil), r.Samples...), nil
}

func (r *MemRaster) Close() error {
	r.Closed = true
	return nil
}

// MemReader serves MemRasters by file name
type MemReader map[string]*MemRaster

func (m MemReader) Open(fname string) (Raster, error) {
	r, ok := m[fname]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", fname, os.ErrNotExist)
	}
	r.Closed = false
	return r, nil
}
