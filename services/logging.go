package services

import (
	"context"
	"time"

	"github.com/go-kit/log"

	cnbrates "github.com/vclb/cnb-rates"
)

// loggingService decorates a RateService with request/response logging
type loggingService struct {
	logger log.Logger
	next   cnbrates.RateService
}

// NewLoggingService returns a new instance of a logging RateService
func NewLoggingService(logger log.Logger, next cnbrates.RateService) cnbrates.RateService {
	return &loggingService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingService) GetExchangeRates(ctx context.Context, currencies []cnbrates.Currency) (rates []cnbrates.ExchangeRate) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "get_exchange_rates",
			"requested", len(currencies),
			"returned", len(rates),
			"took", time.Since(begin),
		)
	}(time.Now())

	return s.next.GetExchangeRates(ctx, currencies)
}
