package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ogs5/block"
)

func newBlocksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocks <file>",
		Short: "Dump the keyword structure of a block file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			d, err := resolveDialect(path)
			if err != nil {
				return err
			}
			f := block.New(d)
			if err := f.ReadFile(path); err != nil {
				return fmt.Errorf("blocks: %w", err)
			}
			for i, b := range f.Tree.Blocks {
				fmt.Printf("block\t%d\t%s\n", i, b.Name)
				for _, e := range b.Entries {
					name := e.Name
					if name == "" {
						name = "(direct)"
					}
					fmt.Printf("sub\t%s\t%d rows\n", name, len(e.Rows))
				}
			}
			return nil
		},
	}
}
