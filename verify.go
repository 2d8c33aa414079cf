package main

import (
	"fmt"

	"github.com/larschri/hgtconv/hgt"
	"github.com/spf13/cobra"
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE.hgt...",
		Short: "Print resolution, elevation range and void count of HGT tiles",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runVerify,
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	failed := 0
	for _, fname := range args {
		if err := verifyTile(cmd, fname); err != nil {
			failed++
			logger.Error("verify failed", "file", fname, "err", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func verifyTile(cmd *cobra.Command, fname string) error {
	tile, err := hgt.Open(fname)
	if err != nil {
		return err
	}
	defer tile.Close()

	s := tile.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tmin=%d\tmax=%d\tvoids=%d\n",
		tile.Name, tile.Resolution, s.Min, s.Max, s.Voids)
	return nil
}
