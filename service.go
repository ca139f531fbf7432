package cnbrates

import "context"

type (
	// Fetcher retrieves the raw daily rate entries from the upstream API.
	Fetcher interface {
		Fetch(ctx context.Context) ([]RawRate, error)
	}

	// RateService is the public entry point of the module. Implementations
	// never return an error: any upstream failure degrades to an empty
	// result and is reported through logging only.
	RateService interface {
		GetExchangeRates(ctx context.Context, currencies []Currency) []ExchangeRate
	}
)
