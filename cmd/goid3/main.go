package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/goid3/pkg/log"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goid3",
		Short: "goid3 grows and prunes ID3 decision trees",
		Long:  `A tool to grow binary ID3 decision trees from CSV data, prune them against a validation set, and compare the entropy and variance split heuristics`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress details to stderr")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if config.verbose {
			log.SetLevel(log.LevelDebug)
		} else {
			log.SetLevel(log.LevelWarn)
		}
	}
	rootCmd.AddCommand(versionCmd(), runCmd(config))
	return rootCmd
}
