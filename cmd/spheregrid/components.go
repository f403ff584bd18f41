package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newComponentsCmd(stdout io.Writer) *subCommand {
	sc := &subCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "components",
		Short: "List the connected regions of passable cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := sc.setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			gg, err := loadGrid(sc.Conf, log)
			if err != nil {
				return err
			}
			comps := gg.ConnectedComponents()
			fmt.Fprintf(stdout, "components: %d\n", len(comps))
			for k, comp := range comps {
				first := gg.CellAt(comp[0])
				fmt.Fprintf(stdout, "%d: %d cells from %v\n", k, len(comp), first)
			}

			return nil
		},
	}

	return sc
}
