package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ogs5/block"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse block files and report their structure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, path := range args {
				d, err := resolveDialect(path)
				if err != nil {
					return err
				}
				f := block.New(d)
				err = f.ReadFile(path)
				switch diag, ok := block.AsDiag(err); {
				case err == nil && f.IsEmpty():
					fmt.Printf("%s: ok (empty)\n", path)
				case err == nil:
					fmt.Printf("%s: ok (%d blocks)\n", path, f.BlockCount())
				case ok:
					fmt.Printf("%s: %s: %s\n", path, diag.Kind, diag.Msg)
					bad++
				default:
					return err
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d file(s) malformed", bad)
			}
			return nil
		},
	}
}
