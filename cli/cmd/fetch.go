package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	cnbrates "github.com/vclb/cnb-rates"
)

func handleFetch(config *Config, logger, errLogger *log.Logger) {
	currencies := make([]cnbrates.Currency, 0, len(config.Currencies))
	for _, code := range config.Currencies {
		currencies = append(currencies, cnbrates.NewCurrency(code))
	}

	rates := config.RateService.GetExchangeRates(config.Ctx, currencies)

	if len(rates) == 0 {
		errLogger.Println("no rates returned")
		return
	}

	for i, rate := range rates {
		logger.Printf("%d\t%s/%s\t%s\n", i, rate.Source, rate.Target, rate.Value)

		if config.Debug != nil && *config.Debug {
			errLogger.Printf("%d\tRate %s/%s returned: %s\n", i, rate.Source, rate.Target, rate.Value)
		}
	}
}

func fetchCobraCommand(
	standalone *bool,
	after *time.Duration,
	config *Config,
) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		logger := log.New(cmd.OutOrStdout(), "", 0)
		errLogger := log.New(cmd.OutOrStderr(), "fetch ", 0)

		handleFetch(config, logger, errLogger)

		if !*standalone {
			return
		}

		for {
			select {
			case <-time.After(*after):
				handleFetch(config, logger, errLogger)
			case <-config.Ctx.Done():
				return
			}
		}
	}
}

func fetch(config *Config) *cobra.Command {
	var standalone bool
	var after time.Duration

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch today's exchange rates for the configured currencies",
	}

	fetchCmd.Run = fetchCobraCommand(&standalone, &after, config)
	fetchCmd.Flags().BoolVar(&standalone, "standalone", false, "Start up a long running fetching process")
	fetchCmd.Flags().DurationVar(&after, "after", time.Duration(1)*time.Hour, "Fetching interval for the standalone process")

	return fetchCmd
}
