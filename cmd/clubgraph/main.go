// Command clubgraph compares players and explores the club teammate graph
// built from a FIFA player export.
package main

import (
	"os"

	"github.com/katalvlaran/clubgraph/internal/logger"
)

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
