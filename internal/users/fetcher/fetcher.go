// Package fetcher performs the single time-bounded upstream request and
// classifies every failure mode at the point where it occurs.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"usercards/internal/users/models"
	"usercards/internal/users/tracer"
)

// DefaultTimeout bounds one upstream request, cancellation included.
const DefaultTimeout = 10 * time.Second

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher retrieves the user list from a fixed upstream endpoint.
type Fetcher struct {
	url     string
	timeout time.Duration
	client  HTTPDoer
	tracer  tracer.Tracer
	logger  *slog.Logger
}

// Option configures the Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(client HTTPDoer) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		if timeout > 0 {
			f.timeout = timeout
		}
	}
}

// WithTracer sets the tracer used for fetch spans.
func WithTracer(t tracer.Tracer) Option {
	return func(f *Fetcher) {
		f.tracer = t
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// New creates a fetcher for the given upstream URL.
func New(url string, opts ...Option) *Fetcher {
	f := &Fetcher{
		url:     url,
		timeout: DefaultTimeout,
		tracer:  tracer.NewNoop(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{}
	}
	return f
}

// Fetch issues one GET to the upstream endpoint and returns a classified
// outcome. It never returns a raw error: every failure mode, an unexpected
// panic included, is captured as a FetchOutcome failure.
func (f *Fetcher) Fetch(ctx context.Context) (outcome models.FetchOutcome) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	ctx, span := f.tracer.Start(ctx, "users.fetch", tracer.String("url", f.url))
	defer func() {
		if r := recover(); r != nil {
			outcome = models.Failure(models.NewFetchError(
				models.KindUnknown,
				fmt.Sprintf("panic during fetch: %v", r),
				nil,
			))
		}
		// Avoid handing span.End a typed-nil *FetchError on success.
		var spanErr error
		if outcome.Err != nil {
			spanErr = outcome.Err
		}
		span.End(spanErr)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return models.Failure(models.NewFetchError(
			models.KindUnknown, "failed to create request", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		// The deadline expiring cancels the in-flight request; classify it
		// before the generic transport case.
		if ctx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
			return models.Failure(models.NewFetchError(
				models.KindTimeout, "request timeout", err))
		}
		return models.Failure(models.NewFetchError(
			models.KindNetworkUnreachable, err.Error(), err))
	}
	defer resp.Body.Close()

	span.SetAttributes(tracer.Int("status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		f.logger.Warn("upstream returned non-success status",
			"url", f.url,
			"status", resp.StatusCode,
		)
		return models.Failure(models.NewHTTPStatusError(resp.StatusCode, reasonPhrase(resp)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Failure(models.NewFetchError(
			models.KindUnknown, "failed to read response body", err))
	}

	users, err := models.DecodeUserList(body)
	if err != nil {
		return models.Failure(models.NewFetchError(
			models.KindInvalidPayloadShape, "expected array", err))
	}

	span.SetAttributes(tracer.Int("user_count", len(users)))
	return models.Success(users)
}

// reasonPhrase extracts the status reason from the response, falling back to
// the standard text for the code.
func reasonPhrase(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if strings.HasPrefix(resp.Status, prefix) {
		return strings.TrimPrefix(resp.Status, prefix)
	}
	return http.StatusText(resp.StatusCode)
}
