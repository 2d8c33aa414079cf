// Package convert turns elevation rasters into SRTM HGT tiles.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/larschri/hgtconv/dataset"
	"github.com/larschri/hgtconv/hgt"
	"github.com/larschri/hgtconv/render"
)

// Stage is a milestone of a conversion
type Stage int

const (
	StageOpen Stage = iota
	StageValidate
	StageEncode
	StageWrite
	StageDone

	// StageWarn reports a problem that does not fail the conversion
	StageWarn
)

func (s Stage) String() string {
	switch s {
	case StageOpen:
		return "open"
	case StageValidate:
		return "validate"
	case StageEncode:
		return "encode"
	case StageWrite:
		return "write"
	case StageDone:
		return "done"
	case StageWarn:
		return "warn"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Event is passed to the Observer. Tile is the zero value until the raster has been validated.
type Event struct {
	Stage   Stage
	Input   string
	Tile    hgt.TileName
	Message string
	Elapsed time.Duration
}

// Observer receives the events of a conversion. A Batch calls it from several goroutines.
type Observer func(Event)

// Options control a conversion
type Options struct {
	// OutputDir receives the tiles. Empty means the directory of each input.
	OutputDir string

	// NoData overrides the no-data value stored in the raster
	NoData *float64

	Policy hgt.RangePolicy

	// PreviewSize is the edge length of the PNG preview written next to each tile. 0 disables previews.
	PreviewSize int
}

// Result describes a finished conversion
type Result struct {
	Input      string
	Output     string
	Preview    string
	Tile       hgt.TileName
	Resolution hgt.Resolution
	Voids      int
	Clamped    int
	Elapsed    time.Duration

	// Err is set by Batch for inputs that failed
	Err error
}

// Converter converts rasters opened by Reader
type Converter struct {
	Reader   dataset.DatasetReader
	Options  Options
	Observer Observer

	// reserve claims output for input before it is written. release gives the claim
	// back if the write fails.
	reserve func(output string, input string) (release func(), err error)
}

func (c *Converter) notify(ev Event, start time.Time) {
	if c.Observer == nil {
		return
	}
	ev.Elapsed = time.Since(start)
	c.Observer(ev)
}

func (c *Converter) noData(raster dataset.Raster) *float64 {
	if c.Options.NoData != nil {
		return c.Options.NoData
	}
	if v, ok := raster.NoDataValue(); ok {
		return &v
	}
	return nil
}

// Convert writes the HGT tile for the raster in input. On failure no tile is written.
func (c *Converter) Convert(ctx context.Context, input string) (Result, error) {
	start := time.Now()
	res := Result{Input: input}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	info, err := os.Stat(input)
	if err != nil {
		return res, fmt.Errorf("%w: %w", hgt.ErrFileNotFound, err)
	}
	if info.IsDir() {
		return res, fmt.Errorf("%w: %s is a directory", hgt.ErrFileNotFound, input)
	}

	c.notify(Event{Stage: StageOpen, Input: input}, start)
	raster, err := c.Reader.Open(input)
	if err != nil {
		return res, fmt.Errorf("%w: %w", hgt.ErrFileNotFound, err)
	}
	defer raster.Close()

	xSize, ySize := raster.Size()
	res.Resolution, err = hgt.ValidateSize(xSize, ySize)
	if err != nil {
		return res, fmt.Errorf("%s: %w", input, err)
	}

	if !raster.Geographic() {
		return res, fmt.Errorf("%s: %w: coordinate system is not longitude/latitude", input, hgt.ErrUnsupportedProjection)
	}
	res.Tile, err = hgt.NameTile(raster.GeoTransform(), xSize, ySize)
	if err != nil {
		return res, fmt.Errorf("%s: %w", input, err)
	}
	c.notify(Event{Stage: StageValidate, Input: input, Tile: res.Tile, Message: res.Resolution.String()}, start)

	outputDir := c.Options.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(input)
	}
	output := filepath.Join(outputDir, res.Tile.FileName())

	samples, err := raster.ReadSamples()
	if err != nil {
		return res, fmt.Errorf("%w: %s: %w", hgt.ErrIO, input, err)
	}

	grid, err := hgt.Encode(samples, res.Resolution, hgt.EncodeOptions{
		NoData: c.noData(raster),
		Policy: c.Options.Policy,
	})
	if err != nil {
		return res, fmt.Errorf("%s: %w", input, err)
	}
	res.Voids = grid.Voids
	res.Clamped = grid.Clamped
	c.notify(Event{Stage: StageEncode, Input: input, Tile: res.Tile}, start)
	if grid.Clamped > 0 {
		c.notify(Event{
			Stage:   StageWarn,
			Input:   input,
			Tile:    res.Tile,
			Message: fmt.Sprintf("clamped %d samples to [%d, %d]", grid.Clamped, hgt.MinElevation, hgt.MaxElevation),
		}, start)
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if c.reserve != nil {
		release, err := c.reserve(output, input)
		if err != nil {
			return res, err
		}
		defer func() {
			if res.Output == "" {
				release()
			}
		}()
	}
	if err := hgt.WriteFile(output, grid); err != nil {
		return res, err
	}
	res.Output = output
	c.notify(Event{Stage: StageWrite, Input: input, Tile: res.Tile, Message: output}, start)

	if c.Options.PreviewSize > 0 {
		preview := strings.TrimSuffix(output, filepath.Ext(output)) + ".png"
		if err := render.WritePreview(preview, grid, c.Options.PreviewSize); err != nil {
			c.notify(Event{Stage: StageWarn, Input: input, Tile: res.Tile, Message: "preview failed: " + err.Error()}, start)
		} else {
			res.Preview = preview
		}
	}

	res.Elapsed = time.Since(start)
	c.notify(Event{Stage: StageDone, Input: input, Tile: res.Tile}, start)
	return res, nil
}
