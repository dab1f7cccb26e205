package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/ogs5/block"
	"github.com/dhamidi/ogs5/dialect"
)

var (
	flagDialect string
	flagSchema  string
	flagVerbose int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ogs5",
		Short: "Read, check and rewrite OGS5 input files",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(flagVerbose, nil)
		},
	}
	rootCmd.PersistentFlags().StringVar(&flagDialect, "dialect", "", "file type tag (BC, PCS, ...); inferred from the extension by default")
	rootCmd.PersistentFlags().StringVar(&flagSchema, "schema", "", "HCL file declaring additional dialects")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "log verbosity")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newBlocksCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveDialect picks the dialect for a file: an explicit --dialect tag
// wins, then a match from the --schema file, then the built-in catalog by
// file extension.
func resolveDialect(path string) (block.Dialect, error) {
	var extra []block.Dialect
	if flagSchema != "" {
		loaded, err := dialect.LoadFile(flagSchema)
		if err != nil {
			return block.Dialect{}, err
		}
		extra = loaded
	}
	ext := filepath.Ext(path)
	if flagDialect != "" {
		for _, d := range extra {
			if d.Name == flagDialect {
				return d, nil
			}
		}
		if d, ok := dialect.ByName(flagDialect); ok {
			return d, nil
		}
		return block.Dialect{}, fmt.Errorf("unknown dialect %q", flagDialect)
	}
	for _, d := range extra {
		if d.Ext == ext {
			return d, nil
		}
	}
	if d, ok := dialect.ByExt(ext); ok {
		return d, nil
	}
	return block.Dialect{}, fmt.Errorf("no dialect for extension %q; use --dialect or --schema", ext)
}
