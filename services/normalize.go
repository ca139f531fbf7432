package services

import (
	"strings"

	"github.com/shopspring/decimal"

	cnbrates "github.com/vclb/cnb-rates"
)

// normalizeRates turns raw payload entries into per-unit exchange rates.
// Filter order matters: entries without a usable code go first, then the
// target currency itself, then everything nobody asked for. Survivors are
// divided by their batch amount. Input order is preserved and duplicate
// codes pass through independently.
func normalizeRates(entries []cnbrates.RawRate, requested cnbrates.CurrencySet, target string) []cnbrates.ExchangeRate {
	rates := make([]cnbrates.ExchangeRate, 0, len(entries))

	for _, entry := range entries {
		if entry.CurrencyCode == nil {
			continue
		}

		code := *entry.CurrencyCode
		if strings.TrimSpace(code) == "" {
			continue
		}

		if strings.EqualFold(code, target) {
			continue
		}

		if !requested.Contains(code) {
			continue
		}

		rates = append(rates, cnbrates.ExchangeRate{
			Source: cnbrates.NewCurrency(code),
			Target: cnbrates.NewCurrency(target),
			Value:  entry.Rate.Div(decimal.NewFromInt(entry.BatchAmount())),
		})
	}

	return rates
}
