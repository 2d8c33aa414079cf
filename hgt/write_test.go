package hgt

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid(res Resolution) *Grid {
	side := res.Side()
	grid := Grid{
		Resolution: res,
		Samples:    make([]int16, side*side),
	}
	for i := range grid.Samples {
		grid.Samples[i] = int16(i%4000 - 500)
	}
	grid.Samples[0] = Void
	grid.Samples[len(grid.Samples)-1] = MaxElevation
	return &grid
}

func TestWriteByteOrder(t *testing.T) {
	grid := &Grid{
		Resolution: Resolution(2),
		Samples:    []int16{0x0102, Void, -1, 32767},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, grid))
	assert.Equal(t, []byte{0x01, 0x02, 0x80, 0x00, 0xff, 0xff, 0x7f, 0xff}, buf.Bytes())
}

func TestWriteFileSize(t *testing.T) {
	for _, res := range []Resolution{SRTM3, SRTM1} {
		t.Run(res.String(), func(t *testing.T) {
			fname := filepath.Join(t.TempDir(), "N45E006.hgt")
			require.NoError(t, WriteFile(fname, testGrid(res)))

			info, err := os.Stat(fname)
			require.NoError(t, err)
			assert.Equal(t, 2*int64(res)*int64(res), info.Size())
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
		})
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	grid := testGrid(SRTM3)
	fname := filepath.Join(t.TempDir(), "S01W078.hgt")
	require.NoError(t, WriteFile(fname, grid))

	tile, err := Open(fname)
	require.NoError(t, err)
	defer tile.Close()

	assert.Equal(t, TileName{Lat: -1, Lon: -78}, tile.Name)
	assert.Equal(t, SRTM3, tile.Resolution)
	assert.Equal(t, Void, tile.At(0, 0))
	assert.Equal(t, grid.At(600, 17), tile.At(600, 17))
	assert.Equal(t, grid.Samples, tile.Grid().Samples)
	assert.Equal(t, 1, tile.Grid().Voids)

	stats := tile.Stats()
	assert.Equal(t, 1, stats.Voids)
	assert.Equal(t, 1201*1201-1, stats.Valid)
	assert.Equal(t, int16(-500), stats.Min)
	assert.Equal(t, int16(MaxElevation), stats.Max)
}

func TestWriteFileIdempotent(t *testing.T) {
	grid := testGrid(SRTM3)
	fname := filepath.Join(t.TempDir(), "N00E000.hgt")

	require.NoError(t, WriteFile(fname, grid))
	first, err := os.ReadFile(fname)
	require.NoError(t, err)

	require.NoError(t, WriteFile(fname, grid))
	second, err := os.ReadFile(fname)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestWriteFileFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()

	// the target is a non-empty directory, so the final rename fails
	target := filepath.Join(dir, "N00E000.hgt")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "keep"), 0755))

	err := WriteFile(target, testGrid(SRTM3))
	assert.ErrorIs(t, err, ErrIO)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "N00E000.hgt", entries[0].Name())
	assert.True(t, entries[0].IsDir())
}

func TestWriteFileMissingDirectory(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "N00E000.hgt")
	err := WriteFile(fname, testGrid(SRTM3))
	assert.ErrorIs(t, err, ErrIO)
	assert.NoFileExists(t, fname)
}

func TestWriteFileRejectsShortGrid(t *testing.T) {
	dir := t.TempDir()
	grid := &Grid{Resolution: SRTM3, Samples: make([]int16, 10)}

	err := WriteFile(filepath.Join(dir, "N00E000.hgt"), grid)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, ErrUnsupportedSize)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
