package hgt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write writes the samples of grid to w as big-endian int16 without header or padding
func Write(w io.Writer, grid *Grid) error {
	side := grid.Resolution.Side()
	if len(grid.Samples) != side*side {
		return fmt.Errorf("%w: grid has %d samples, expected %d", ErrUnsupportedSize, len(grid.Samples), side*side)
	}

	row := make([]byte, 2*side)
	for i := 0; i < side; i++ {
		for j, v := range grid.Samples[i*side : (i+1)*side] {
			binary.BigEndian.PutUint16(row[2*j:], uint16(v))
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes grid to fname. The data goes to a temporary file in the same directory
// which replaces fname only after it is completely written, so fname is never left truncated.
func WriteFile(fname string, grid *Grid) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(fname), "."+filepath.Base(fname)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriterSize(tmp, 1<<16)
	if err = Write(w, grid); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, fname, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, fname, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: syncing %s: %w", ErrIO, fname, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrIO, fname, err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err = os.Rename(tmp.Name(), fname); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
