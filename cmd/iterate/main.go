package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version string

const (
	configF    = "config"
	verbosityF = "verbosity"
	outputF    = "output"
	datasetF   = "dataset"

	defaultConfig    = ""
	defaultVerbosity = INFO
	defaultOutput    = "table"
	defaultDataset   = ""

	configFlagUsage    = "The yaml configuration file."
	verbosityFlagUsage = "Verbosity of the logs. Options: debug, info, warn, error."
	outputUsage        = "Output format. Options: table, json, yaml."
	datasetUsage       = "Dataset file of records (.yaml, .yml, .json or .cbor)."
)

var cfgFile string

func NewCmd() *cobra.Command {
	iterateCmd := &cobra.Command{
		Use:           "iterate <command> [flags]",
		Short:         "Run collection operations over a dataset of records.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	verbosity := defaultVerbosity
	iterateCmd.PersistentFlags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	iterateCmd.PersistentFlags().Var(&verbosity, verbosityF, verbosityFlagUsage)
	iterateCmd.PersistentFlags().String(outputF, defaultOutput, outputUsage)
	iterateCmd.PersistentFlags().String(datasetF, defaultDataset, datasetUsage)

	iterateCmd.AddCommand(
		selectCmd(),
		sumCmd(),
		groupCmd(),
		distinctCmd(),
		minMaxCmd(),
		takeCmd(),
	)
	return iterateCmd
}

func main() {
	if err := NewCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
