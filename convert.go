package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/larschri/hgtconv/convert"
	"github.com/larschri/hgtconv/dataset"
	"github.com/larschri/hgtconv/tileindex"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func addConvertFlags(flags *pflag.FlagSet) {
	flags.StringP("out", "o", "", "output directory (default: next to each input)")
	flags.Float64("nodata", 0, "no-data value, overrides the value stored in the raster")
	flags.String("range-policy", "strict", "strict or clamp elevations outside [-32767, 32767]")
	flags.IntP("workers", "j", 0, "parallel conversions (default: number of CPUs)")
	flags.Bool("preview", false, "write a PNG preview next to each tile")
	flags.Int("preview-size", 512, "edge length of the PNG preview")
	flags.String("index", "", "write a GeoJSON index of the produced tiles")
}

func newConvertCommand(reader dataset.DatasetReader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] PATH...",
		Short: "Convert GeoTIFF files, or directories of them, to HGT tiles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, reader, args)
		},
	}
	addConvertFlags(cmd.Flags())
	return cmd
}

// observe turns conversion milestones into log lines
func observe(logger *log.Logger) convert.Observer {
	return func(ev convert.Event) {
		switch ev.Stage {
		case convert.StageWarn:
			logger.Warn(ev.Message, "input", ev.Input, "tile", ev.Tile.String())
		case convert.StageWrite:
			logger.Info("wrote tile", "tile", ev.Tile.String(), "output", ev.Message, "elapsed", ev.Elapsed)
		case convert.StageValidate:
			logger.Debug(ev.Stage.String(), "input", ev.Input, "tile", ev.Tile.String(), "resolution", ev.Message)
		default:
			logger.Debug(ev.Stage.String(), "input", ev.Input, "elapsed", ev.Elapsed)
		}
	}
}

func runConvert(cmd *cobra.Command, reader dataset.DatasetReader, args []string) error {
	cfg, err := LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	inputs, err := convert.Inputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no GeoTIFF files found in %v", args)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	batch := convert.Batch{
		Converter: &convert.Converter{
			Reader:   reader,
			Options:  cfg.Options(),
			Observer: observe(logger),
		},
		Workers: cfg.Workers,
	}
	results, batchErr := batch.Run(ctx, inputs)

	var entries []tileindex.Entry
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			logger.Error("conversion failed", "input", res.Input, "err", res.Err)
			continue
		}
		entries = append(entries, tileindex.Entry{Tile: res.Tile, Resolution: res.Resolution, Source: res.Input})
	}

	if cfg.Index != "" && len(entries) > 0 {
		if err := tileindex.WriteFile(cfg.Index, entries); err != nil {
			return err
		}
		logger.Info("wrote index", "file", cfg.Index, "tiles", len(entries))
	}

	if batchErr != nil {
		return fmt.Errorf("%d of %d conversions failed", failed, len(results))
	}
	logger.Info("done", "tiles", len(entries))
	return nil
}
