package hgt

import (
	"fmt"
	"math"
	"strings"
)

// RangePolicy decides what happens to samples that do not fit in an int16 after rounding
type RangePolicy int

const (
	// PolicyStrict fails the encoding with ErrValueOutOfRange
	PolicyStrict RangePolicy = iota

	// PolicyClamp clamps the sample into range and counts it in Grid.Clamped
	PolicyClamp
)

// Valid elevations. Void is reserved and never produced from a real sample.
const (
	MinElevation = -32767
	MaxElevation = 32767
)

const noDataTolerance = 1e-6

func (p RangePolicy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyClamp:
		return "clamp"
	}
	return fmt.Sprintf("RangePolicy(%d)", int(p))
}

// ParseRangePolicy parses "strict" or "clamp"
func ParseRangePolicy(s string) (RangePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PolicyStrict, nil
	case "clamp":
		return PolicyClamp, nil
	}
	return 0, fmt.Errorf("unknown range policy %q, expected strict or clamp", s)
}

// EncodeOptions is passed explicitly to Encode so that the no-data handling does not
// depend on raster library defaults.
type EncodeOptions struct {
	// NoData is the sentinel of the source raster. NaN samples are voids regardless.
	NoData *float64
	Policy RangePolicy
}

// Grid is an encoded SRTM tile. Samples are stored row by row, north row first.
type Grid struct {
	Resolution Resolution
	Samples    []int16

	// Clamped counts the samples clamped by PolicyClamp
	Clamped int

	// Voids counts the samples encoded as Void
	Voids int
}

// At returns the sample at the given row (from north) and column (from west)
func (g *Grid) At(row, col int) int16 {
	return g.Samples[row*g.Resolution.Side()+col]
}

// Encode converts row-major samples of a res x res raster into a Grid
func Encode(samples []float64, res Resolution, opts EncodeOptions) (*Grid, error) {
	side := res.Side()
	if len(samples) != side*side {
		return nil, fmt.Errorf("%w: %d samples for a %d x %d grid", ErrUnsupportedSize, len(samples), side, side)
	}

	grid := Grid{
		Resolution: res,
		Samples:    make([]int16, len(samples)),
	}

	for i, v := range samples {
		if isNoData(v, opts.NoData) {
			grid.Samples[i] = Void
			grid.Voids++
			continue
		}

		r := math.Round(v)
		if r < MinElevation || r > MaxElevation {
			if opts.Policy != PolicyClamp {
				return nil, fmt.Errorf("%w: %g at row %d, column %d", ErrValueOutOfRange, v, i/side, i%side)
			}
			r = math.Max(MinElevation, math.Min(MaxElevation, r))
			grid.Clamped++
		}
		grid.Samples[i] = int16(r)
	}

	return &grid, nil
}

func isNoData(v float64, noData *float64) bool {
	if math.IsNaN(v) {
		return true
	}
	if noData == nil {
		return false
	}

	nd := *noData
	if v == nd {
		return true
	}
	if math.IsNaN(nd) || math.IsInf(nd, 0) {
		return false
	}
	return math.Abs(v-nd) <= noDataTolerance*math.Max(1, math.Abs(nd))
}
