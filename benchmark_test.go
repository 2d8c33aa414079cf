package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/larschri/hgtconv/convert"
	"github.com/larschri/hgtconv/dataset"
	"github.com/larschri/hgtconv/hgt"
)

func srtm1Raster() *dataset.MemRaster {
	n := hgt.SRTM1.Side()
	p := 1.0 / float64(n-1)
	samples := make([]float64, n*n)
	for i := range samples {
		samples[i] = float64(i%2469) + 0.3
	}
	return &dataset.MemRaster{
		XSize:     n,
		YSize:     n,
		Transform: [6]float64{8 - p/2, p, 0, 62 + p/2, 0, -p},
		Samples:   samples,
	}
}

func BenchmarkEncodeSRTM1(b *testing.B) {
	samples := srtm1Raster().Samples
	for i := 0; i < b.N; i++ {
		if _, err := hgt.Encode(samples, hgt.SRTM1, hgt.EncodeOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGaldhopiggen(b *testing.B) {
	dir := b.TempDir()
	input := filepath.Join(dir, "galdhopiggen.tif")
	if err := os.WriteFile(input, nil, 0644); err != nil {
		b.Fatal(err)
	}

	conv := convert.Converter{Reader: dataset.MemReader{input: srtm1Raster()}}
	for i := 0; i < b.N; i++ {
		if _, err := conv.Convert(context.Background(), input); err != nil {
			b.Fatal(err)
		}
	}
}
