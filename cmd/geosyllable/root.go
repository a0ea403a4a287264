package main

import (
	"github.com/spf13/cobra"
)

var argsRoot struct {
	logFile string
	catalog string
}

var cmdRoot = &cobra.Command{
	Use:   "geosyllable",
	Short: "Root command for geosyllable",
	Long:  `Generate geosyllable configurations and base-cell permutations, and convert between coordinates and pronounceable addresses.`,
}

// Execute wires the command tree and runs it.
func Execute() error {
	cmdRoot.PersistentFlags().StringVar(&argsRoot.logFile, "log-file", "", "log file path (not read by any command; logs go to stderr)")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.catalog, "catalog", "geosyllable.db", "path to the config catalog database")

	cmdRoot.AddCommand(cmdConfig)
	cmdConfig.AddCommand(cmdConfigGenerate)
	cmdConfig.AddCommand(cmdConfigList)

	cmdRoot.AddCommand(cmdPermutation)
	cmdPermutation.AddCommand(cmdPermutationGenerate)
	cmdPermutation.AddCommand(cmdPermutationShow)

	cmdRoot.AddCommand(cmdEncode)
	cmdRoot.AddCommand(cmdDecode)
	cmdRoot.AddCommand(cmdEstimate)

	return cmdRoot.Execute()
}
