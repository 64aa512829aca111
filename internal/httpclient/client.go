// Package httpclient wraps http.Client with a shared rate limit and retries
// on 429/503 responses for the upstream APIs.
package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/cesargomez89/tidarr/internal/constants"
)

// Options tunes the limiter and the retry loop. Zero values use the defaults.
type Options struct {
	Rate       rate.Limit
	Burst      int
	RetryCount int
	RetryBase  time.Duration
}

// Client wraps an http.Client to provide rate limiting and automatic retries.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	retryCount int
	retryBase  time.Duration
}

// NewClient creates a new rate-limited, retrying HTTP client.
func NewClient(httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: constants.DefaultHTTPTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     30 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		}
	}
	if opts.Rate == 0 {
		opts.Rate = rate.Limit(constants.DefaultRateLimit)
	}
	if opts.Burst == 0 {
		opts.Burst = constants.DefaultRateBurst
	}
	if opts.RetryCount == 0 {
		opts.RetryCount = constants.DefaultRetryCount
	}
	if opts.RetryBase == 0 {
		opts.RetryBase = constants.DefaultRetryBase
	}
	return &Client{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(opts.Rate, opts.Burst),
		retryCount: opts.RetryCount,
		retryBase:  opts.RetryBase,
	}
}

// Do executes an HTTP request with rate-limiting and retries.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < c.retryCount; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		attemptReq, err := rewind(ctx, req)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(attemptReq)
		backoffWait := time.Duration(attempt+1) * c.retryBase
		if err != nil {
			lastErr = err
		} else if resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := parseRetryAfter(resp)
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("rate limited (status %d)", resp.StatusCode)
			if retryAfter > backoffWait {
				backoffWait = retryAfter
			}
		} else {
			return resp, nil
		}

		if attempt == c.retryCount-1 {
			break
		}
		backoffTimer := time.NewTimer(backoffWait)
		select {
		case <-ctx.Done():
			backoffTimer.Stop()
			return nil, ctx.Err()
		case <-backoffTimer.C:
		}
	}
	return nil, lastErr
}

// rewind returns a copy of req bound to ctx with a fresh body.
func rewind(ctx context.Context, req *http.Request) (*http.Request, error) {
	r := req.Clone(ctx)
	if req.Body != nil && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		r.Body = body
	}
	return r, nil
}

// parseRetryAfter reads a Retry-After header and returns the duration to wait.
func parseRetryAfter(resp *http.Response) time.Duration {
	ra := resp.Header.Get("Retry-After")
	if ra == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(ra); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(ra); err == nil {
		return time.Until(t)
	}
	return 0
}
