package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/tilekit/config"
	"github.com/lixenwraith/tilekit/layout"
)

var (
	version = "dev"     // semantic version, set via ldflags
	commit  = "unknown" // git commit SHA
	date    = "unknown" // build timestamp
)

// app carries state resolved before any subcommand runs
type app struct {
	cfgPath string
	verbose bool
	debug   bool

	cfg     *config.Config
	logger  *log.Logger
	logFile *os.File
}

// close releases the log file, if any
func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

func newRootCmd(a *app, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "tilekit",
		Short:        "Constraint layout and cell buffer toolkit for terminal UIs",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, f, err := setupLogging(cfg.Log.Dir, a.debug || cfg.Log.Debug, a.verbose, stderr)
			if err != nil {
				return err
			}
			a.logger, a.logFile = logger, f

			if !layout.InitCache(cfg.Layout.CacheSize, layout.WithLogger(logger)) {
				logger.Warn("layout cache already initialized", "requested", cfg.Layout.CacheSize)
			}
			logger.Debug("config loaded", "path", a.cfgPath, "cache_size", cfg.Layout.CacheSize)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tilekit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "tilekit.toml", "path to the TOML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	pf.BoolVar(&a.debug, "debug", false, "write debug logs to the log directory")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newPreviewCmd(a))
	root.AddCommand(newConfigCmd(a))
	return root
}
