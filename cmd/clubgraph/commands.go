package main

import "github.com/spf13/cobra"

var (
	statsTop         int
	statsBetweenness bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <player> <player>",
	Short: "Compare two players side by side",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		state.compare(args[0], args[1])
	},
}

var connectCmd = &cobra.Command{
	Use:   "connect <player> <player>",
	Short: "Find the shortest chain of club teammates between two players",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		state.connect(args[0], args[1])
	},
}

var pathCmd = &cobra.Command{
	Use:   "path <player> <player>",
	Short: "Shortest path in the teammate graph",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		state.path(args[0], args[1])
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Structural statistics of the teammate graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return state.stats(statsTop, statsBetweenness)
	},
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for two players, compare them and connect them",
	Args:  cobra.NoArgs,
	RunE:  runInteractive,
}

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 0,
		"Number of PageRank leaders to list (0 = CLUBGRAPH_TOP_K)")
	statsCmd.Flags().BoolVar(&statsBetweenness, "betweenness", false,
		"Also rank players by betweenness centrality (slow on large rosters)")
}
