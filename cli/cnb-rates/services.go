package main

import (
	"github.com/go-kit/log"

	cnbrates "github.com/vclb/cnb-rates"
	"github.com/vclb/cnb-rates/fetchers"
	"github.com/vclb/cnb-rates/services"
)

func createRateService(config *Config, logger log.Logger) (cnbrates.RateService, error) {
	fetcher, err := fetchers.NewCNBFetcher(fetchers.CNBConfig{
		BaseURL:            config.BaseURL,
		DailyRatesEndpoint: config.DailyRatesEndpoint,
		Timeout:            config.Timeout,
		RetryCount:         config.RetryCount,
		Logger:             log.With(logger, "component", "cnb"),
	})
	if err != nil {
		return nil, err
	}

	service := services.NewRatesService(fetcher, config.TargetCurrency, log.With(logger, "component", "rates"))

	return services.NewLoggingService(log.With(logger, "component", "rate_service"), service), nil
}
