package cmd

import (
	"context"

	"github.com/spf13/cobra"

	cnbrates "github.com/vclb/cnb-rates"
)

var (
	rootCmd = &cobra.Command{
		Use:     "cnb-rates",
		Short:   "CNB daily exchange rate fetcher",
		Version: "v1.0.0",
	}
	debug      bool
	configFile string
)

type (
	Config struct {
		Ctx         context.Context
		Currencies  []string
		RateService cnbrates.RateService
		Debug       *bool
	}
)

func Execute(config *Config) error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yml", "Path to config file")

	if config.Debug == nil {
		config.Debug = &debug
	}

	rootCmd.AddCommand(fetch(config))

	return rootCmd.Execute()
}
