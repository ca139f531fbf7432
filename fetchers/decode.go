package fetchers

import (
	"encoding/json"
	"fmt"

	"github.com/go-kit/log/level"

	cnbrates "github.com/vclb/cnb-rates"
)

type dailyRatesResponse struct {
	Rates []cnbrates.RawRate `json:"rates"`
}

// decode parses the daily rates body. A body that is not valid JSON is a
// decode failure; a valid body without a rates field decodes to zero entries
// and only emits a warning.
func (f *CNBFetcher) decode(body []byte) ([]cnbrates.RawRate, error) {
	var payload dailyRatesResponse

	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if payload.Rates == nil {
		level.Warn(f.logger).Log("msg", "daily rates payload has no rates field")

		return []cnbrates.RawRate{}, nil
	}

	return payload.Rates, nil
}
