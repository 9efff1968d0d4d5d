package statsapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"

	"airstats/internal/domain"
	"airstats/internal/domain/entity"
	"airstats/internal/domain/value"
	"airstats/pkg/contextx"
	"airstats/pkg/errcodes"
	"airstats/pkg/httpx"
	"airstats/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const (
	endpointAllAirlines     = "/api/all-airlines"
	endpointCities          = "/api/cities"
	endpointAirlines        = "/api/airlines"
	endpointFlightFrequency = "/api/flight-frequency"

	DefaultTimeout = 15 * time.Second
)

type Config struct {
	BaseURL        string
	Timeout        time.Duration
	LogFieldMaxLen int
}

// Client — клиент HTTP API статистики перелётов.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	metrics    *metrics
}

// New создаёт клиент. transport == nil → http.DefaultTransport,
// reg == nil → метрики не регистрируются.
func New(cfg Config, transport http.RoundTripper, reg prometheus.Registerer) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("statsapi: base url %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(
				transport,
				httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			),
			Timeout: timeout,
		},
		metrics: newMetrics(reg),
	}, nil
}

// AllAirlines — GET /api/all-airlines.
func (c *Client) AllAirlines(ctx context.Context) ([]entity.AirlineSummary, error) {
	var dtos []airlineSummaryDTO
	if err := c.get(ctx, endpointAllAirlines, nil, &dtos); err != nil {
		return nil, err
	}

	return lo.Map(dtos, func(d airlineSummaryDTO, _ int) entity.AirlineSummary {
		return d.toDomain()
	}), nil
}

// Cities — GET /api/cities.
func (c *Client) Cities(ctx context.Context) ([]string, error) {
	var cities []string
	if err := c.get(ctx, endpointCities, nil, &cities); err != nil {
		return nil, err
	}

	return cities, nil
}

// SearchFlights — GET /api/airlines?from=&to=&date=.
func (c *Client) SearchFlights(ctx context.Context, query value.SearchQuery) ([]entity.FlightResult, error) {
	var dtos []flightResultDTO
	if err := c.get(ctx, endpointAirlines, query.Values(), &dtos); err != nil {
		return nil, err
	}

	return lo.Map(dtos, func(d flightResultDTO, _ int) entity.FlightResult {
		return d.toDomain()
	}), nil
}

// FlightFrequency — GET /api/flight-frequency?airline=.
func (c *Client) FlightFrequency(ctx context.Context, airline string) ([]entity.FrequencyPoint, error) {
	var dtos []frequencyPointDTO

	err := c.get(ctx, endpointFlightFrequency, url.Values{"airline": []string{airline}}, &dtos)
	if err != nil {
		return nil, err
	}

	return lo.Map(dtos, func(d frequencyPointDTO, _ int) entity.FrequencyPoint {
		return d.toDomain()
	}), nil
}

// Ping проверяет доступность API для /ready.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Cities(ctx)

	return err
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, dest any) error {
	start := time.Now()

	u := c.baseURL.JoinPath(endpoint)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(endpoint, outcomeUnavailable, start)

		return domain.WrapError(err, errcodes.StatsAPIUnavailable, "stats api "+endpoint+" is unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observe(endpoint, outcomeUnavailable, start)

		return domain.WrapError(err, errcodes.StatsAPIUnavailable, "stats api "+endpoint+": read body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.metrics.observe(endpoint, outcomeUnavailable, start)

		return domain.NewError(
			errcodes.StatsAPIUnavailable,
			fmt.Sprintf("stats api %s responded with status %d", endpoint, resp.StatusCode),
		)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		c.metrics.observe(endpoint, outcomeBadPayload, start)

		logger(ctx).ErrorContext(ctx, "statsapi: decode response",
			slog.String(logx.FieldEndpoint, endpoint),
			logx.Error(err),
		)

		return domain.WrapError(err, errcodes.StatsAPIBadPayload, "stats api "+endpoint+": bad payload")
	}

	c.metrics.observe(endpoint, outcomeOK, start)

	return nil
}
