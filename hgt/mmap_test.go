package hgt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "N00E000.hgt"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	short := filepath.Join(dir, "N01E000.hgt")
	require.NoError(t, os.WriteFile(short, make([]byte, 1000), 0644))
	_, err = Open(short)
	assert.ErrorIs(t, err, ErrUnsupportedSize)

	badName := filepath.Join(dir, "tile.hgt")
	require.NoError(t, os.WriteFile(badName, make([]byte, SRTM3.FileSize()), 0644))
	_, err = Open(badName)
	assert.Error(t, err)
}

func TestTileCloseTwice(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "N10E010.hgt")
	require.NoError(t, WriteFile(fname, testGrid(SRTM3)))

	tile, err := Open(fname)
	require.NoError(t, err)
	assert.NoError(t, tile.Close())
	assert.NoError(t, tile.Close())
}

func TestTileGrid(t *testing.T) {
	want := testGrid(SRTM3)
	want.Samples[5] = Void
	fname := filepath.Join(t.TempDir(), "S33W071.hgt")
	require.NoError(t, WriteFile(fname, want))

	tile, err := Open(fname)
	require.NoError(t, err)
	defer tile.Close()

	assert.Equal(t, TileName{Lat: -33, Lon: -71}, tile.Name)
	assert.Equal(t, SRTM3, tile.Resolution)

	got := tile.Grid()
	assert.Equal(t, want.Samples, got.Samples)
	assert.Equal(t, 2, got.Voids)
	assert.Equal(t, want.Samples[1201+7], tile.At(1, 7))
}
