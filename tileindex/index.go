// Package tileindex describes produced tiles as a GeoJSON FeatureCollection, so that
// coverage can be checked in any GIS viewer.
package tileindex

import (
	"os"
	"sort"

	"github.com/larschri/hgtconv/hgt"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Entry is one tile of the index
type Entry struct {
	Tile       hgt.TileName
	Resolution hgt.Resolution
	Source     string
}

// Bound returns the 1x1 degree cell covered by the tile
func Bound(t hgt.TileName) orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(t.Lon), float64(t.Lat)},
		Max: orb.Point{float64(t.Lon + 1), float64(t.Lat + 1)},
	}
}

// FeatureCollection returns one polygon feature per entry, sorted by tile name
func FeatureCollection(entries []Entry) *geojson.FeatureCollection {
	sorted := append([]Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Tile.String() < sorted[j].Tile.String()
	})

	fc := geojson.NewFeatureCollection()
	for _, e := range sorted {
		f := geojson.NewFeature(Bound(e.Tile).ToPolygon())
		f.Properties["name"] = e.Tile.String()
		f.Properties["resolution"] = e.Resolution.String()
		f.Properties["source"] = e.Source
		fc.Append(f)
	}
	return fc
}

// WriteFile writes the FeatureCollection of entries to fname
func WriteFile(fname string, entries []Entry) error {
	data, err := FeatureCollection(entries).MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fname, data, 0644)
}
