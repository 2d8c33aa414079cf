package hgt

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// TileName identifies the 1x1 degree cell of a tile by its south-west corner
type TileName struct {
	Lat int
	Lon int
}

// String returns the file stem, e.g. N45E006 or S01W078
func (t TileName) String() string {
	ns, lat := 'N', t.Lat
	if lat < 0 {
		ns, lat = 'S', -lat
	}
	ew, lon := 'E', t.Lon
	if lon < 0 {
		ew, lon = 'W', -lon
	}
	return fmt.Sprintf("%c%02d%c%03d", ns, lat, ew, lon)
}

// FileName returns the SRTM file name of the tile
func (t TileName) FileName() string {
	return t.String() + ".hgt"
}

// NameTile computes the tile name of a width x height raster from its geotransform.
//
// Only north-up, axis aligned transforms are accepted. The south and west edges are snapped
// to whole degrees when they are less than a pixel away, since SRTM rasters overhang the
// cell by half a pixel on each side.
func NameTile(gt [6]float64, width, height int) (TileName, error) {
	if gt[2] != 0 || gt[4] != 0 {
		return TileName{}, fmt.Errorf("%w: rotated geotransform %v", ErrUnsupportedProjection, gt)
	}
	if gt[1] <= 0 || gt[5] >= 0 {
		return TileName{}, fmt.Errorf("%w: geotransform %v is not north-up", ErrUnsupportedProjection, gt)
	}

	west := snapDegree(gt[0], gt[1])
	south := snapDegree(gt[3]+float64(height)*gt[5], -gt[5])

	if west < -180 || west >= 180 || south < -90 || south >= 90 {
		return TileName{}, fmt.Errorf("%w: origin %.6f, %.6f is not in degrees",
			ErrUnsupportedProjection, gt[0], gt[3])
	}

	return TileName{
		Lat: int(math.Trunc(south)),
		Lon: int(math.Trunc(west)),
	}, nil
}

func snapDegree(v float64, pixelSize float64) float64 {
	r := math.Round(v)
	if math.Abs(v-r) < pixelSize {
		return r
	}
	return v
}

// ParseTileName parses a file name like N45E006.hgt. The directory and extension are ignored.
func ParseTileName(fname string) (TileName, error) {
	base := filepath.Base(fname)
	stem := strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
	if len(stem) != 7 {
		return TileName{}, fmt.Errorf("invalid tile name %q", base)
	}

	lat, err1 := strconv.ParseUint(stem[1:3], 10, 8)
	lon, err2 := strconv.ParseUint(stem[4:7], 10, 8)
	if err1 != nil || err2 != nil {
		return TileName{}, fmt.Errorf("invalid tile name %q", base)
	}

	t := TileName{Lat: int(lat), Lon: int(lon)}
	switch stem[0] {
	case 'N':
	case 'S':
		t.Lat = -t.Lat
	default:
		return TileName{}, fmt.Errorf("invalid tile name %q", base)
	}

	switch stem[3] {
	case 'E':
	case 'W':
		t.Lon = -t.Lon
	default:
		return TileName{}, fmt.Errorf("invalid tile name %q", base)
	}

	return t, nil
}
