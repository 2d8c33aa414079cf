package dataset

import (
	"fmt"

	"github.com/lukeroth/gdal"
)

// GDAL reads the first band of any raster format supported by the GDAL library
type GDAL struct{}

type gdalRaster struct {
	ds    gdal.Dataset
	band  gdal.RasterBand
	xSize int
	ySize int
}

func (GDAL) Open(fname string) (Raster, error) {
	ds, err := gdal.Open(fname, gdal.ReadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", fname, err)
	}

	if ds.RasterCount() < 1 {
		ds.Close()
		return nil, fmt.Errorf("%s has no raster bands", fname)
	}

	return &gdalRaster{
		ds:    ds,
		band:  ds.RasterBand(1),
		xSize: ds.RasterXSize(),
		ySize: ds.RasterYSize(),
	}, nil
}

func (r *gdalRaster) Size() (int, int) {
	return r.xSize, r.ySize
}

func (r *gdalRaster) GeoTransform() [6]float64 {
	return r.ds.GeoTransform()
}

func (r *gdalRaster) NoDataValue() (float64, bool) {
	return r.band.NoDataValue()
}

// Geographic is true for rasters without a coordinate system, since plain GeoTIFFs
// exported from elevation tools often lack one.
func (r *gdalRaster) Geographic() bool {
	wkt := r.ds.Projection()
	if wkt == "" {
		return true
	}

	sr := gdal.CreateSpatialReference(wkt)
	defer sr.Destroy()
	return sr.IsGeographic()
}

func (r *gdalRaster) ReadSamples() ([]float64, error) {
	buf := make([]float64, r.xSize*r.ySize)
	err := r.band.IO(gdal.Read, 0, 0, r.xSize, r.ySize, buf, r.xSize, r.ySize, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read elevation buffer: %w", err)
	}
	return buf, nil
}

func (r *gdalRaster) Close() error {
	r.ds.Close()
	return nil
}

// CreateGeoTIFF writes a single band Float32 GeoTIFF in the coordinate system given by epsg.
// A nil noData leaves the band without a no-data value.
func CreateGeoTIFF(fname string, xSize, ySize int, gt [6]float64, epsg int, noData *float64, samples []float32) error {
	if len(samples) != xSize*ySize {
		return fmt.Errorf("%d samples for a %d x %d raster", len(samples), xSize, ySize)
	}

	driver, err := gdal.GetDriverByName("GTiff")
	if err != nil {
		return err
	}

	sr := gdal.CreateSpatialReference("")
	defer sr.Destroy()
	if err := sr.FromEPSG(epsg); err != nil {
		return fmt.Errorf("unknown EPSG code %d: %w", epsg, err)
	}
	wkt, err := sr.ToWKT()
	if err != nil {
		return err
	}

	ds := driver.Create(fname, xSize, ySize, 1, gdal.Float32, nil)
	defer ds.Close()

	if err := ds.SetGeoTransform(gt); err != nil {
		return err
	}
	if err := ds.SetProjection(wkt); err != nil {
		return err
	}

	band := ds.RasterBand(1)
	if noData != nil {
		if err := band.SetNoDataValue(*noData); err != nil {
			return err
		}
	}
	return band.IO(gdal.Write, 0, 0, xSize, ySize, samples, xSize, ySize, 0, 0)
}
