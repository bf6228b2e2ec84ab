// Package commands implements the autonav CLI.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/katalvlaran/autonav/mission"
	"github.com/katalvlaran/autonav/navigation"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "AUTONAV"

var zerologrOnce sync.Once

// app is the state shared by every subcommand of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	log     logr.Logger
	nav     *navigation.Navigation
}

// Execute runs the CLI with os.Args and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Each call has its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logr.Discard()}

	root := &cobra.Command{
		Use:   "autonav",
		Short: "Waypoint routing for an autonomous vehicle",
		Long: `autonav loads a mission (waypoints and the distances between them),
computes every shortest route and answers route queries.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml)")
	pf.String("mission", "mission.yaml", "mission file")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")

	root.AddCommand(newRouteCmd(a), newTableCmd(a), newDriveCmd(a), newCheckCmd(a))

	return root
}

// init reads configuration, builds the logger and loads the mission.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.initConfig(cmd.Flags()); err != nil {
		return err
	}

	log, err := newLogger(cmd.ErrOrStderr(), a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.log = log

	path := a.v.GetString("mission")
	m, err := mission.Load(path)
	if err != nil {
		return err
	}
	a.nav, err = m.Build(navigation.WithLogger(a.log.WithName("navigation")))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	a.log.V(1).Info("mission loaded", "path", path, "name", m.Name, "nodes", len(m.Nodes))

	if comps, err := a.nav.Components(); err == nil && len(comps) > 1 {
		a.log.Info("mission graph is disconnected; some routes are unreachable", "components", len(comps))
	}

	return nil
}

// initConfig layers flags over AUTONAV_* env over the config file.
func (a *app) initConfig(flags *pflag.FlagSet) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.BindPFlags(flags); err != nil {
		return err
	}
	if a.cfgFile == "" {
		return nil
	}
	a.v.SetConfigFile(a.cfgFile)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

func newLogger(w io.Writer, level string) (logr.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return logr.Discard(), fmt.Errorf("log-level: %w", err)
	}

	zerologrOnce.Do(func() {
		zerologr.NameFieldName = "logger"
		zerologr.NameSeparator = "/"
		zerologr.SetMaxV(2)
	})

	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	zlog := zerolog.New(output).Level(lvl).With().Timestamp().Logger()

	return zerologr.New(&zlog), nil
}
