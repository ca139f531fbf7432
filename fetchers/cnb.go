package fetchers

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hashicorp/go-multierror"
	"github.com/sethvargo/go-retry"

	cnbrates "github.com/vclb/cnb-rates"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryCount = 3
)

type (
	// CNBConfig configures a CNBFetcher. BaseURL and DailyRatesEndpoint are
	// required; everything else falls back to a default.
	CNBConfig struct {
		BaseURL            string
		DailyRatesEndpoint string
		Timeout            time.Duration
		RetryCount         uint64
		Logger             log.Logger
	}

	// CNBFetcher retrieves the daily exchange rate list from the CNB API.
	// Transport failures are retried with exponential backoff; a successful
	// response is decoded into raw rate entries.
	CNBFetcher struct {
		url        string
		timeout    time.Duration
		retryCount uint64
		client     *http.Client
		logger     log.Logger

		// backoffUnit is the time unit of the 2^attempt backoff delay.
		backoffUnit time.Duration
	}
)

func NewCNBFetcher(config CNBConfig) (*CNBFetcher, error) {
	var invalid *multierror.Error

	if strings.TrimSpace(config.BaseURL) == "" {
		invalid = multierror.Append(invalid, ErrMissingBaseURL)
	}

	if strings.TrimSpace(config.DailyRatesEndpoint) == "" {
		invalid = multierror.Append(invalid, ErrMissingEndpoint)
	}

	if err := invalid.ErrorOrNil(); err != nil {
		return nil, err
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	logger := config.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &CNBFetcher{
		url:         config.BaseURL + config.DailyRatesEndpoint,
		timeout:     timeout,
		retryCount:  config.RetryCount,
		client:      &http.Client{},
		logger:      logger,
		backoffUnit: time.Second,
	}, nil
}

// Fetch performs one logical GET against the daily rates endpoint and decodes
// the response. Connectivity errors and non-2xx statuses are retried up to
// retryCount times, waiting 2^attempt backoff units between attempts. Decode
// failures are never retried.
func (f *CNBFetcher) Fetch(ctx context.Context) ([]cnbrates.RawRate, error) {
	backoff, err := retry.NewExponential(2 * f.backoffUnit)
	if err != nil {
		return nil, fmt.Errorf("build backoff: %w", err)
	}

	backoff = retry.WithMaxRetries(f.retryCount, backoff)

	var body []byte
	var attempt uint64

	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		raw, err := f.fetchBody(ctx)
		if err != nil {
			attempt++
			if attempt <= f.retryCount {
				delay := time.Duration(1<<attempt) * f.backoffUnit
				level.Warn(f.logger).Log(
					"msg", "retrying daily rates fetch",
					"attempt", attempt,
					"delay", delay,
					"cause", err,
				)
			}

			return retry.RetryableError(err)
		}

		body = raw

		return nil
	}); err != nil {
		return nil, fmt.Errorf("fetch daily rates: %w", err)
	}

	return f.decode(body)
}

// fetchBody is a single transport attempt. The configured timeout applies to
// each attempt individually, not to the whole retry sequence.
func (f *CNBFetcher) fetchBody(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build daily rates request: %w", err)
	}

	req.Header.Add("Accept", "application/json")

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("daily rates request: %w", err)
	}

	defer res.Body.Close()

	if err := statusError(res.StatusCode); err != nil {
		return nil, err
	}

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read daily rates body: %w", err)
	}

	return body, nil
}
