package cnbrates

import (
	"strings"

	"github.com/shopspring/decimal"
)

type (
	// Currency identifies a currency by its short alphabetic code, e.g. "USD".
	// Codes are matched case-insensitively.
	Currency struct {
		Code string
	}

	// ExchangeRate is the rate of one unit of Source expressed in Target.
	ExchangeRate struct {
		Source Currency
		Target Currency
		Value  decimal.Decimal
	}

	// RawRate is a single entry of the upstream daily rates payload.
	// CurrencyCode may be absent, which marks the entry as skippable.
	// Amount is the batch amount the rate is quoted for; absent means 1.
	RawRate struct {
		CurrencyCode *string         `json:"currencyCode"`
		Amount       *int64          `json:"amount"`
		Rate         decimal.Decimal `json:"rate"`
	}

	// CurrencySet is a case-insensitive set of currency codes. Keys are
	// canonicalized to upper case on insertion and lookup.
	CurrencySet map[string]struct{}
)

func NewCurrency(code string) Currency {
	return Currency{Code: code}
}

func (c Currency) Equal(other Currency) bool {
	return strings.EqualFold(c.Code, other.Code)
}

func (c Currency) String() string {
	return c.Code
}

// BatchAmount returns the batch amount of the entry, defaulting to 1 when
// the field was absent from the payload.
func (r RawRate) BatchAmount() int64 {
	if r.Amount == nil {
		return 1
	}

	return *r.Amount
}

func NewCurrencySet(currencies []Currency) CurrencySet {
	set := make(CurrencySet, len(currencies))

	for _, c := range currencies {
		set[strings.ToUpper(c.Code)] = struct{}{}
	}

	return set
}

func (s CurrencySet) Contains(code string) bool {
	_, ok := s[strings.ToUpper(code)]

	return ok
}
