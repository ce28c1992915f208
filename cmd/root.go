package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jdlms/flexheader/internal/app"
	"github.com/jdlms/flexheader/internal/config"
	"github.com/jdlms/flexheader/internal/logging"
	"github.com/jdlms/flexheader/internal/render"
	"github.com/jdlms/flexheader/internal/sample"
	"github.com/jdlms/flexheader/internal/types"
	log "github.com/sirupsen/logrus"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// cli holds what the persistent flags resolve to for one invocation
type cli struct {
	configPath string
	logFile    string
	settings   config.Config
	logCloser  io.Closer
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "flexheader",
		Short: "Table viewer with grouped multi-row headers",
		Long: "A terminal user interface showing sample records under a grouped, multi-row header " +
			"whose cells merge vertically where column groups are of uneven depth",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// This is the default behavior - start the TUI
			return c.startTUI(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/flexheader/config.toml)")
	rootCmd.PersistentFlags().StringVar(&c.logFile, "log-file", "", "log file, overriding the config file")

	rootCmd.AddCommand(newPrintCmd(c), newHeadersCmd(), newCheckCmd())
	return rootCmd
}

// Execute runs the command line
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func (c *cli) setup(cmd *cobra.Command) error {
	settings, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-file") {
		settings.LogFile = c.logFile
	}
	c.settings = settings

	// Setup logging to file to avoid interfering with TUI
	closer, err := logging.Setup(settings.LogFile)
	if err != nil {
		return err
	}
	c.logCloser = closer
	return nil
}

func (c *cli) close() {
	if c.logCloser != nil {
		c.logCloser.Close()
		c.logCloser = nil
	}
}

func (c *cli) startTUI(cmd *cobra.Command) error {
	defer c.close()

	t, err := sample.New()
	if err != nil {
		return fmt.Errorf("building sample table: %w", err)
	}

	// Without a terminal there is nothing to draw on, print the grid instead
	if f, ok := cmd.OutOrStdout().(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		log.Info("stdout is not a terminal, printing table")
		return render.Text(cmd.OutOrStdout(), t, render.Options{UppercaseHeaders: c.settings.UppercaseHeaders})
	}

	// Create app state with the table
	initialState := &types.AppState{
		Table:  t,
		Config: c.settings,
	}

	// Create and run the application
	appState := app.CreateApp(initialState)
	if err := appState.App.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}
