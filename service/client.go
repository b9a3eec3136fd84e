package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBaseURL     = "https://shootphoto.onrender.com/api"
	baseURLEnv         = "SHOOTIC_API_URL"
	defaultMaxAttempts = 3
	defaultRetryBase   = 200 * time.Millisecond
	defaultRetryCap    = 1200 * time.Millisecond
)

// Client wraps HTTP access to the Shootic booking API. All endpoints speak
// the {success, message, data} envelope.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	token       func() string
	maxAttempts int
	retryBase   time.Duration
	retryCap    time.Duration
}

// APIError is returned when the API responds with a non-2xx status or a
// non-success envelope.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return "shootic api error"
	}
	if e.Message != "" {
		return fmt.Sprintf("shootic api error: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("shootic api error: %s", e.Status)
}

// IsUnauthorized reports whether the error represents a 401 from the API.
// Callers must clear the stored session and return to the login entry point.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// NewClient creates a new API client. If httpClient is nil, a default client
// is used. The base URL comes from SHOOTIC_API_URL when set.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv(baseURLEnv)), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		maxAttempts: defaultMaxAttempts,
		retryBase:   defaultRetryBase,
		retryCap:    defaultRetryCap,
	}
}

// SetTokenSource installs the bearer token provider. An empty return value
// means no Authorization header is attached.
func (c *Client) SetTokenSource(token func() string) {
	c.token = token
}

// getJSON issues a GET with bounded retries on 429 and 5xx. Admin reads are
// idempotent, so transient failures are retried with capped backoff.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	maxAttempts := c.maxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := c.roundTrip(ctx, http.MethodGet, endpoint, nil, out)
		if err == nil {
			return nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if c.shouldRetryStatus(apiErr.StatusCode) && attempt < maxAttempts {
				if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
					return waitErr
				}
				continue
			}
			return err
		}
		if c.shouldRetryNetworkError(err) && attempt < maxAttempts {
			if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
				return waitErr
			}
			continue
		}
		return err
	}

	return errors.New("request failed after retries")
}

// postJSON issues a single-attempt POST. Submissions are never retried
// automatically; retry is user-initiated.
func (c *Client) postJSON(ctx context.Context, endpoint string, payload any, out any) error {
	return c.roundTrip(ctx, http.MethodPost, endpoint, payload, out)
}

func (c *Client) roundTrip(ctx context.Context, method string, endpoint string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	snippet, err := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("read response from %s: %w", endpoint, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(snippet, &env)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		message := env.Message
		if message == "" {
			message = strings.TrimSpace(string(snippet))
		}
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Message:    message,
		}
	}

	if decodeErr != nil {
		return fmt.Errorf("decode response from %s: %w", endpoint, decodeErr)
	}
	if !env.Success {
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Message:    env.Message,
		}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data from %s: %w", endpoint, err)
		}
	}
	return nil
}

func (c *Client) shouldRetryStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func (c *Client) shouldRetryNetworkError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c *Client) waitRetry(ctx context.Context, attempt int) error {
	delay := c.retryDelay(attempt)
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := c.retryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	cap := c.retryCap
	if cap <= 0 {
		cap = defaultRetryCap
	}

	delay := base
	for i := 1; i < attempt; i++ {
		if delay >= cap/2 {
			return cap
		}
		delay *= 2
	}
	if delay > cap {
		return cap
	}
	return delay
}
