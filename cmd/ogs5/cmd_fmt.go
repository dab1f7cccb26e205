package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ogs5/block"
)

func newFmtCmd() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a block file in canonical form",
		Long: `Parse a block file and print it back in canonical form:
comments stripped, keywords normalized against the dialect, canonical
indentation and line endings.

Use -w to overwrite the file in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			d, err := resolveDialect(path)
			if err != nil {
				return err
			}
			f := block.New(d)
			if err := f.ReadFile(path); err != nil {
				return fmt.Errorf("fmt: %w", err)
			}
			if overwrite {
				return f.Save(path)
			}
			return f.Write(os.Stdout)
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
