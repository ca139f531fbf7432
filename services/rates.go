package services

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	cnbrates "github.com/vclb/cnb-rates"
)

const DefaultTargetCurrency = "CZK"

// RatesService runs the fetch, decode and normalize pipeline. It is the only
// layer that collapses failures: whatever goes wrong downstream, the caller
// gets an empty slice and the cause ends up in the log.
type RatesService struct {
	fetcher cnbrates.Fetcher
	target  string
	logger  log.Logger
}

func NewRatesService(fetcher cnbrates.Fetcher, targetCurrency string, logger log.Logger) *RatesService {
	if targetCurrency == "" {
		targetCurrency = DefaultTargetCurrency
	}

	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &RatesService{
		fetcher: fetcher,
		target:  targetCurrency,
		logger:  logger,
	}
}

// GetExchangeRates returns per-unit rates for the requested currencies
// against the target currency. An empty request short-circuits without any
// transport call. The result is never nil and the method never returns an
// error; callers cannot distinguish an upstream failure from a response
// without matching currencies.
func (s *RatesService) GetExchangeRates(ctx context.Context, currencies []cnbrates.Currency) (rates []cnbrates.ExchangeRate) {
	rates = []cnbrates.ExchangeRate{}

	if len(currencies) == 0 {
		return rates
	}

	logger := log.With(s.logger, "fetch_id", uuid.New().String())

	defer func() {
		if cause := recover(); cause != nil {
			level.Error(logger).Log("msg", "daily rates processing failed", "panic", cause)
			rates = []cnbrates.ExchangeRate{}
		}
	}()

	entries, err := s.fetcher.Fetch(ctx)
	if err != nil {
		level.Error(logger).Log("msg", "daily rates fetch failed", "err", err)

		return rates
	}

	rates = normalizeRates(entries, cnbrates.NewCurrencySet(currencies), s.target)

	return rates
}
