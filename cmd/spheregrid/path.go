package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Enanyy/SphereGrid/astar"
	"github.com/Enanyy/SphereGrid/gridgraph"
)

func newPathCmd(stdout io.Writer) *subCommand {
	sc := &subCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "path",
		Short: "Find a path between two cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := sc.setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runPath(sc.Conf, log, stdout)
		},
	}
	flags := sc.Cmd.Flags()
	flags.String("from", "", "Origin cell as x,y.")
	flags.String("to", "", "Goal cell as x,y.")

	return sc
}

func runPath(conf *viper.Viper, log *zap.Logger, out io.Writer) error {
	gg, err := loadGrid(conf, log)
	if err != nil {
		return err
	}
	from, err := endpoint(gg, conf, "from")
	if err != nil {
		return err
	}
	to, err := endpoint(gg, conf, "to")
	if err != nil {
		return err
	}

	pf := astar.New[gridgraph.Cell](
		astar.WithLogger(log),
		astar.WithCapacity(gg.Width*gg.Height),
	)
	var path []gridgraph.Cell
	found, err := pf.FindPath(&path, from, to, gg.Passable, gg.Neighbors, gg.Cost)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if !found {
		return fmt.Errorf("%w from %v to %v", errNoPath, from, to)
	}

	steps := make([]string, len(path))
	for i, c := range path {
		steps[i] = c.String()
	}
	st := pf.Stats()
	fmt.Fprint(out, gg.Render(path))
	fmt.Fprintf(out, "path: %s\n", strings.Join(steps, " -> "))
	fmt.Fprintf(out, "cost: %d\n", astar.PathCost(path, gg.Cost))
	fmt.Fprintf(out, "expanded: %d relaxed: %d max-frontier: %d\n",
		st.Expanded, st.Relaxed, st.MaxFrontier)

	return nil
}

// endpoint parses the named flag into a cell inside gg.
func endpoint(gg *gridgraph.GridGraph, conf *viper.Viper, key string) (gridgraph.Cell, error) {
	raw := conf.GetString(key)
	if raw == "" {
		return gridgraph.Cell{}, fmt.Errorf("%w: --%s is required", errUsage, key)
	}
	c, err := gridgraph.ParseCell(raw)
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: --%s: %v", errUsage, key, err)
	}
	if !gg.Contains(c) {
		return gridgraph.Cell{}, fmt.Errorf("%w: --%s %v outside %dx%d grid",
			errUsage, key, c, gg.Width, gg.Height)
	}

	return c, nil
}
