package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Enanyy/SphereGrid/gridgraph"
)

const envPrefix = "SPHEREGRID"

var (
	errUsage  = errors.New("spheregrid: usage")
	errNoPath = errors.New("spheregrid: no path")
)

// subCommand pairs a cobra command with the viper instance its flags,
// environment and config file resolve through.
type subCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "spheregrid",
		Short: "Path finding over grid maps",
		Long: `
spheregrid loads a grid map and answers path and connectivity queries on it.
Maps are YAML documents whose rows use '#' for obstacles, '.' for free cells
and digits for terrain values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "",
		"Configuration file. Overridden by environment variables and flags.")
	pf.String("map", "", "Grid map file.")
	pf.Int("conn", 0, "Connectivity, 4 or 8. 0 keeps the map file's setting.")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error.")

	for _, sc := range []*subCommand{newPathCmd(stdout), newComponentsCmd(stdout), newBridgeCmd(stdout)} {
		root.AddCommand(sc.Cmd)
		sc.Conf = newConf(sc.Cmd.Flags(), root.PersistentFlags())
	}

	return root
}

func newConf(flagSets ...*pflag.FlagSet) *viper.Viper {
	conf := viper.New()
	for _, fs := range flagSets {
		_ = conf.BindPFlags(fs)
	}
	conf.SetEnvPrefix(envPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	return conf
}

// setup reads the optional config file and builds the logger.
func (sc *subCommand) setup() (*zap.Logger, error) {
	if cfg := sc.Conf.GetString("config"); cfg != "" {
		sc.Conf.SetConfigFile(cfg)
		if err := sc.Conf.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: reading config %s: %v", errUsage, cfg, err)
		}
	}

	return newLogger(sc.Conf.GetString("log-level"))
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()

	return cfg.Build()
}

// loadGrid opens the configured map and applies the connectivity override.
func loadGrid(conf *viper.Viper, log *zap.Logger) (*gridgraph.GridGraph, error) {
	name := conf.GetString("map")
	if name == "" {
		return nil, fmt.Errorf("%w: --map is required", errUsage)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	defer f.Close()

	gg, err := gridgraph.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errUsage, name, err)
	}

	var conn gridgraph.Connectivity
	switch c := conf.GetInt("conn"); c {
	case 0:
		conn = gg.Conn
	case 4:
		conn = gridgraph.Conn4
	case 8:
		conn = gridgraph.Conn8
	default:
		return nil, fmt.Errorf("%w: --conn must be 4 or 8, got %d", errUsage, c)
	}
	if conn != gg.Conn {
		gg, err = gridgraph.NewGridGraph(gg.CellValues, gridgraph.GridOptions{
			PassableThreshold: gg.PassableThreshold,
			Conn:              conn,
			StraightCost:      gg.StraightCost,
			DiagonalCost:      gg.DiagonalCost,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
	}
	log.Info("map loaded",
		zap.String("file", name),
		zap.Int("width", gg.Width),
		zap.Int("height", gg.Height),
		zap.Int("obstacles", gg.ObstacleCount()),
	)

	return gg, nil
}
