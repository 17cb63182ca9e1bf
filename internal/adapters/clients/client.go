package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/quotes-service/internal/adapters/clients"

	// maxBodyBytes caps how much of a JSON response is read.
	maxBodyBytes = 1 << 20
)

// Client calls one downstream service over HTTP.
type Client struct {
	service string
	baseURL string
	cfg     config.ClientConfig
	http    *http.Client
	breaker *CircuitBreaker
	logger  *slog.Logger

	tracer   trace.Tracer
	duration metric.Float64Histogram
	requests metric.Int64Counter

	// sleep waits between attempts; replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a client for service rooted at baseURL.
func New(service, baseURL string, cfg config.ClientConfig, logger *slog.Logger) (*Client, error) {
	if service == "" {
		return nil, errors.New("clients: service name is required")
	}
	if baseURL == "" {
		return nil, errors.New("clients: base url is required")
	}

	if cfg.Retry.MaxAttempts < 1 {
		cfg.Retry.MaxAttempts = 1
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "http_client"), slog.String("downstream", service))

	meter := otel.Meter(instrumentationName)

	duration, err := meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of outbound HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("clients: duration histogram: %w", err)
	}

	requests, err := meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Outbound HTTP requests by result"),
	)
	if err != nil {
		return nil, fmt.Errorf("clients: request counter: %w", err)
	}

	breaker := NewCircuitBreaker(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to State) {
		logger.Warn("circuit breaker state changed",
			slog.String("from", from.String()), slog.String("to", to.String()))
	})

	return &Client{
		service: service,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		cfg:     cfg,
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        cfg.Transport.MaxIdleConns,
				MaxIdleConnsPerHost: cfg.Transport.MaxIdleConnsPerHost,
				IdleConnTimeout:     cfg.Transport.IdleConnTimeout,
			},
		},
		breaker:  breaker,
		logger:   logger,
		tracer:   otel.Tracer(instrumentationName),
		duration: duration,
		requests: requests,
		sleep:    sleepContext,
	}, nil
}

// Service names the downstream.
func (c *Client) Service() string { return c.service }

// CircuitState reports the breaker state.
func (c *Client) CircuitState() State { return c.breaker.State() }

// GetJSON issues GET path and decodes a 2xx JSON body into out. Other
// statuses return a *StatusError.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), http.NoBody)
	if err != nil {
		return fmt.Errorf("clients: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &StatusError{Service: c.service, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("clients: decode %s response: %w", c.service, err)
	}

	return nil
}

// Do sends req through the breaker with retries. 5xx responses and network
// errors are retried; the caller owns the returned body.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.service),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if !c.breaker.Allow() {
		c.record(ctx, req.Method, 0, start, "circuit_open")
		logger.WarnContext(ctx, "request rejected by circuit breaker")
		return nil, ErrCircuitOpen
	}

	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.service,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL.String()),
			attribute.String("peer.service", c.service),
		),
	)
	defer span.End()

	propagateIDs(ctx, req)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.attempt(ctx, req, logger)
	if err != nil {
		c.breaker.Failure()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.record(ctx, req.Method, 0, start, "error")
		logger.ErrorContext(ctx, "request failed",
			slog.Duration("duration", time.Since(start)), slog.Any("error", err))

		return nil, err
	}

	c.breaker.Success()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, "HTTP "+strconv.Itoa(resp.StatusCode))
	}

	c.record(ctx, req.Method, resp.StatusCode, start, strconv.Itoa(resp.StatusCode/100)+"xx")
	logger.DebugContext(ctx, "request completed",
		slog.Int("status", resp.StatusCode), slog.Duration("duration", time.Since(start)))

	return resp, nil
}

func (c *Client) attempt(ctx context.Context, req *http.Request, logger *slog.Logger) (*http.Response, error) {
	var last error

	for n := range c.cfg.Retry.MaxAttempts {
		if n > 0 {
			wait := c.backoff(n)
			logger.DebugContext(ctx, "retrying request",
				slog.Int("attempt", n+1), slog.Duration("backoff", wait))

			if err := c.sleep(ctx, wait); err != nil {
				return nil, err
			}

			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, err
				}
				req.Body = body
			}
		}

		resp, err := c.http.Do(req.WithContext(ctx))
		switch {
		case err != nil && retryable(err):
			last = err
			continue
		case err != nil:
			return nil, err
		case resp.StatusCode >= http.StatusInternalServerError:
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			last = &StatusError{Service: c.service, Code: resp.StatusCode}
			continue
		}

		return resp, nil
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, c.cfg.Retry.MaxAttempts, last)
}

// backoff grows InitialInterval by Multiplier per attempt, capped at
// MaxInterval, with ±JitterFactor jitter.
func (c *Client) backoff(attempt int) time.Duration {
	r := c.cfg.Retry

	d := float64(r.InitialInterval) * math.Pow(r.Multiplier, float64(attempt-1))
	if r.MaxInterval > 0 && d > float64(r.MaxInterval) {
		d = float64(r.MaxInterval)
	}

	if r.JitterFactor > 0 {
		d += d * r.JitterFactor * (rand.Float64()*2 - 1)
	}

	return time.Duration(d)
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

func (c *Client) record(ctx context.Context, method string, status int, start time.Time, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", method),
		attribute.String("peer.service", c.service),
		attribute.String("result", result),
	}
	if status > 0 {
		attrs = append(attrs, attribute.Int("http.response.status_code", status))
	}

	opt := metric.WithAttributes(attrs...)
	c.duration.Record(ctx, time.Since(start).Seconds(), opt)
	c.requests.Add(ctx, 1, opt)
}

func propagateIDs(ctx context.Context, req *http.Request) {
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}
	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderCorrelationID, id)
	}
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
