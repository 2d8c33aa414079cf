package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/larschri/hgtconv/dataset"
	"github.com/spf13/cobra"
)

// newRootCommand builds the CLI. reader opens the inputs of the convert command.
func newRootCommand(reader dataset.DatasetReader) *cobra.Command {
	root := &cobra.Command{
		Use:           "hgtconv",
		Short:         "Convert GeoTIFF elevation rasters to SRTM HGT tiles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "YAML config file (env HGTCONV_CONFIG)")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error (env HGTCONV_LOG_LEVEL)")

	root.AddCommand(newConvertCommand(reader))
	root.AddCommand(newVerifyCommand())
	return root
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hgtconv",
		Level:           lvl,
	}), nil
}

func main() {
	if err := newRootCommand(dataset.GDAL{}).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
