package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBridgeCmd(stdout io.Writer) *subCommand {
	sc := &subCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "bridge",
		Short: "Show the fewest obstacles to open between two components",
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
			src, dst := sc.Conf.GetInt("src"), sc.Conf.GetInt("dst")
			route, cost, err := gg.Bridge(src, dst)
			if err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}
			log.Debug("bridge found", zap.Int("src", src), zap.Int("dst", dst), zap.Int("cost", cost))

			for _, c := range route {
				if !gg.Passable(c) {
					fmt.Fprintf(stdout, "open %v\n", c)
				}
			}
			fmt.Fprintf(stdout, "obstacles: %d\n", cost)

			return nil
		},
	}
	flags := sc.Cmd.Flags()
	flags.Int("src", 0, "Source component index.")
	flags.Int("dst", 1, "Destination component index.")

	return sc
}
