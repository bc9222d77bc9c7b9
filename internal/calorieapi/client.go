package calorieapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"hikerhunger/internal/trip"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	CalculatePath  = "/v1/api/calculate-calories"
	DefaultTimeout = 15 * time.Second

	// Cap on error bodies kept for logging
	maxErrorBody = 4 << 10
)

// ErrTransport is the sentinel behind every TransportError
var ErrTransport = errors.New("calorie service request failed")

// TransportError reports a network failure or a non-2xx response.
// StatusCode is 0 when no response was received.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", ErrTransport, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// Options configures a Client
type Options struct {
	BaseURL string
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing calls; 0 means unlimited
	RequestsPerSecond float64
	Burst             int

	// HTTPClient overrides the instrumented default (tests)
	HTTPClient *http.Client
	Logger     *slog.Logger

	// Tracing for the default transport; nil falls back to the otel globals
	TracerProvider trace.TracerProvider
	Propagators    propagation.TextMapPropagator
}

// Client calls the calorie estimation service
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a new calorie service client
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		var otelOpts []otelhttp.Option
		if opts.TracerProvider != nil {
			otelOpts = append(otelOpts, otelhttp.WithTracerProvider(opts.TracerProvider))
		}
		if opts.Propagators != nil {
			otelOpts = append(otelOpts, otelhttp.WithPropagators(opts.Propagators))
		}
		httpClient = &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport, otelOpts...),
		}
	}

	limit := rate.Inf
	burst := opts.Burst
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		limiter:    rate.NewLimiter(limit, burst),
		logger:     opts.Logger,
	}
}

// BaseURL returns the service root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Calculate issues one GET with the given query and decodes the plan.
// Failures are returned as *TransportError or a decode error.
func (c *Client) Calculate(ctx context.Context, query url.Values) (*trip.PlanResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Err: err}
	}

	requestID := uuid.NewString()
	start := time.Now()

	body, err := c.get(ctx, CalculatePath, query, requestID)
	if err != nil {
		c.logger.Warn("calorie request failed",
			"request_id", requestID,
			"duration", time.Since(start),
			"error", err,
		)
		return nil, err
	}

	plan, legacy, err := decodePlan(body)
	if err != nil {
		c.logger.Warn("calorie response undecodable", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	if legacy {
		c.logger.Warn("calorie service returned deprecated nested envelope", "request_id", requestID)
	}

	c.logger.Info("calorie request",
		"request_id", requestID,
		"duration", time.Since(start),
		"days", len(plan.DailyBreakdown),
	)
	return plan, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, requestID string) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}
	return body, nil
}
