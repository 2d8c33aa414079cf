// Package dataset implements access to elevation rasters stored in files.
//
// A Raster is opened first and its metadata inspected, so that unsuitable files can be
// rejected before the samples are read.
package dataset

// Raster is an open elevation raster
type Raster interface {
	// Size returns the number of columns and rows
	Size() (xSize int, ySize int)

	// GeoTransform returns the affine transform from pixel/line to georeferenced coordinates
	GeoTransform() [6]float64

	// NoDataValue returns the sentinel marking samples without elevation, if the raster has one
	NoDataValue() (float64, bool)

	// Geographic reports whether the coordinates are longitude/latitude degrees
	Geographic() bool

	// ReadSamples reads all samples row by row, north row first
	ReadSamples() ([]float64, error)

	Close() error
}

// DatasetReader opens elevation rasters
type DatasetReader interface {
	Open(fname string) (Raster, error)
}
