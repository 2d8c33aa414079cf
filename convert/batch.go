package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrDuplicateTile is returned for an input whose tile was already written, or is
// being written, by another input of the same batch. Inputs that fail before
// writing do not claim their tile.
var ErrDuplicateTile = errors.New("duplicate tile")

// Batch runs independent conversions in parallel
type Batch struct {
	Converter *Converter

	// Workers limits the number of parallel conversions. Values below 1 mean one.
	Workers int
}

// Inputs expands paths into the files to convert. Directories are walked for
// .tif and .tiff files; other paths are returned unchanged.
func Inputs(paths []string) ([]string, error) {
	var inputs []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			inputs = append(inputs, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isGeoTIFF(path) {
				inputs = append(inputs, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return inputs, nil
}

func isGeoTIFF(fname string) bool {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".tif", ".tiff":
		return true
	}
	return false
}

// Run converts all inputs and returns one Result per input, in input order.
// The returned error joins the errors of all failed inputs.
func (b *Batch) Run(ctx context.Context, inputs []string) ([]Result, error) {
	var mu sync.Mutex
	outputs := map[string]string{}

	conv := *b.Converter
	conv.reserve = func(output string, input string) (func(), error) {
		mu.Lock()
		defer mu.Unlock()
		if prev, ok := outputs[output]; ok {
			return nil, fmt.Errorf("%w: %s and %s both produce %s", ErrDuplicateTile, prev, input, output)
		}
		outputs[output] = input
		return func() {
			mu.Lock()
			defer mu.Unlock()
			delete(outputs, output)
		}, nil
	}

	workers := b.Workers
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)

	results := make([]Result, len(inputs))
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			res, err := conv.Convert(ctx, input)
			res.Err = err
			results[i] = res
			return nil
		})
	}
	g.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return results, errors.Join(errs...)
}
