package hgt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// Tile is an HGT file mapped into memory using mmap
type Tile struct {
	Name       TileName
	Resolution Resolution
	data       []byte
}

// Stats summarises the samples of a tile. Min and Max ignore voids.
type Stats struct {
	Min   int16
	Max   int16
	Voids int
	Valid int
}

// Open maps the HGT file fname into memory. The resolution is inferred from the file size
// and the tile name from the file name. The returned Tile must be closed.
func Open(fname string) (*Tile, error) {
	name, err := ParseTileName(fname)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fname)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, fname)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	res, err := resolutionFromFileSize(info.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	data, err := syscall.Mmap(int(file.Fd()), 0, int(info.Size()), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %s: %w", ErrIO, fname, err)
	}

	return &Tile{
		Name:       name,
		Resolution: res,
		data:       data,
	}, nil
}

// At returns the sample at the given row (from north) and column (from west)
func (t *Tile) At(row, col int) int16 {
	i := 2 * (row*t.Resolution.Side() + col)
	return int16(binary.BigEndian.Uint16(t.data[i:]))
}

// Grid copies the samples into a Grid
func (t *Tile) Grid() *Grid {
	grid := Grid{
		Resolution: t.Resolution,
		Samples:    make([]int16, len(t.data)/2),
	}
	for i := range grid.Samples {
		grid.Samples[i] = int16(binary.BigEndian.Uint16(t.data[2*i:]))
		if grid.Samples[i] == Void {
			grid.Voids++
		}
	}
	return &grid
}

// Stats scans all samples of the tile
func (t *Tile) Stats() Stats {
	var s Stats
	for i := 0; i < len(t.data); i += 2 {
		v := int16(binary.BigEndian.Uint16(t.data[i:]))
		if v == Void {
			s.Voids++
			continue
		}
		if s.Valid == 0 || v < s.Min {
			s.Min = v
		}
		if s.Valid == 0 || v > s.Max {
			s.Max = v
		}
		s.Valid++
	}
	return s
}

// Close unmaps the file
func (t *Tile) Close() error {
	if t.data == nil {
		return nil
	}
	err := syscall.Munmap(t.data)
	t.data = nil
	return err
}
