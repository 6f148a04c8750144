package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/clubgraph/internal/config"
	"github.com/katalvlaran/clubgraph/internal/logger"
)

var (
	dataPath string
	logLevel string
	noColor  bool

	state *app
)

var rootCmd = &cobra.Command{
	Use:   "clubgraph",
	Short: "Compare footballers and trace teammate connections",
	Long: `clubgraph loads a FIFA player export and links players who share a club.

Subcommands:
  compare  - Side-by-side attributes of two players
  connect  - Shortest teammate chain between two players
  path     - Same question answered over the materialized teammate graph
  stats    - Degree, density, clustering and PageRank of the teammate graph

Run without a subcommand for the interactive prompt.

Examples:
  clubgraph compare "L. Messi" "Neymar"
  clubgraph connect "L. Messi" "G. Buffon" --data players.csv
  clubgraph stats --top 5`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "",
		"Player CSV export (overrides CLUBGRAPH_DATA)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn, error (overrides CLUBGRAPH_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable styled output")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(interactiveCmd)
}

// setup resolves configuration, starts the logger and loads the roster.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if noColor {
		cfg.Styled = false
	}
	if err := logger.Init(cfg.IsProduction(), cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	state = newApp(cfg, logger.Get(), cmd.OutOrStdout())
	state.log.Debug("starting", zap.String("command", cmd.CommandPath()))

	return state.load()
}
