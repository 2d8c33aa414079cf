package hgt

import "fmt"

// Resolution is the number of samples along each side of an SRTM tile.
type Resolution int

const (
	// SRTM1 tiles are sampled at one arc-second intervals
	SRTM1 Resolution = 3601

	// SRTM3 tiles are sampled at three arc-second intervals
	SRTM3 Resolution = 1201
)

// Void marks a sample without elevation data
const Void int16 = -32768

// Side returns the number of samples per row and column
func (r Resolution) Side() int {
	return int(r)
}

// FileSize is the exact size in bytes of an HGT file with this resolution
func (r Resolution) FileSize() int64 {
	return 2 * int64(r) * int64(r)
}

func (r Resolution) String() string {
	switch r {
	case SRTM1:
		return "SRTM1"
	case SRTM3:
		return "SRTM3"
	}
	return fmt.Sprintf("Resolution(%d)", int(r))
}

// ValidateSize returns the resolution of a width x height raster.
// Only square rasters with one of the two SRTM sides are accepted.
func ValidateSize(width, height int) (Resolution, error) {
	if width != height {
		return 0, fmt.Errorf("%w: %d x %d is not square", ErrUnsupportedSize, width, height)
	}

	switch Resolution(width) {
	case SRTM1, SRTM3:
		return Resolution(width), nil
	}
	return 0, fmt.Errorf("%w: %d x %d, expected %d x %d or %d x %d",
		ErrUnsupportedSize, width, height, SRTM3, SRTM3, SRTM1, SRTM1)
}

func resolutionFromFileSize(size int64) (Resolution, error) {
	for _, r := range []Resolution{SRTM3, SRTM1} {
		if r.FileSize() == size {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %d bytes is not a valid hgt file size", ErrUnsupportedSize, size)
}
