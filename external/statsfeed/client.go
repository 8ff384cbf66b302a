// Package statsfeed talks to the upstream football statistics feed.
package statsfeed

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/soccer-insights/internal/domain/ingest"
	"github.com/riskibarqy/soccer-insights/internal/platform/resilience"
	"github.com/riskibarqy/soccer-insights/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL = "https://feed.soccer-insights.dev/v1"
	defaultTimeout = 20 * time.Second
	maxBodySize    = 6 << 20
)

var errFeedTransient = crerr.New("stats feed transient failure")

type ClientConfig struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *slog.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client implements usecase.FeedProvider against the stats feed HTTP
// API.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	maxRetries     int
	logger         *slog.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxBodySize,
		},
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type leaguesEnvelope struct {
	Data []ingest.LeagueRecord `json:"data"`
}

type seasonBundleEnvelope struct {
	Data struct {
		Season     ingest.SeasonRecord          `json:"season"`
		Teams      []ingest.TeamRecord          `json:"teams"`
		Matches    []ingest.MatchRecord         `json:"matches"`
		Statistics []ingest.MatchStatisticRecord `json:"statistics"`
	} `json:"data"`
}

func (c *Client) FetchLeagues(ctx context.Context) ([]ingest.LeagueRecord, error) {
	var envelope leaguesEnvelope
	if err := c.doJSON(ctx, "/leagues", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch leagues: %w", err)
	}
	return envelope.Data, nil
}

func (c *Client) FetchSeasonBundle(ctx context.Context, seasonID int64) (usecase.SeasonBundle, error) {
	if seasonID <= 0 {
		return usecase.SeasonBundle{}, fmt.Errorf("season id must be greater than zero")
	}

	path := "/seasons/" + strconv.FormatInt(seasonID, 10) + "/bundle"
	var envelope seasonBundleEnvelope
	if err := c.doJSON(ctx, path, nil, &envelope); err != nil {
		return usecase.SeasonBundle{}, fmt.Errorf("fetch season bundle season_id=%d: %w", seasonID, err)
	}

	return usecase.SeasonBundle{
		Season:     envelope.Data.Season,
		Teams:      envelope.Data.Teams,
		Matches:    envelope.Data.Matches,
		Statistics: envelope.Data.Statistics,
	}, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "stats feed circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: statistics feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.buildURL(path, query)

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errFeedTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}
	return nil
}

func (c *Client) buildURL(path string, query map[string]string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString(path)

	sep := byte('?')
	for key, value := range query {
		_ = buf.WriteByte(sep)
		_, _ = buf.WriteString(key)
		_ = buf.WriteByte('=')
		_, _ = buf.WriteString(value)
		sep = '&'
	}

	return buf.String()
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := c.doOnce(fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !stderrors.Is(err, errFeedTransient) {
			return nil, err
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "stats feed request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) doOnce(fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errFeedTransient, err)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status >= 200 && status < 300 {
		return body, nil
	}

	if isRetryableStatus(status) {
		return nil, fmt.Errorf("%w: feed status=%d body=%s", errFeedTransient, status, abbreviateBody(body))
	}
	return nil, fmt.Errorf("feed status=%d body=%s", status, abbreviateBody(body))
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == fasthttp.StatusRequestTimeout ||
		statusCode == fasthttp.StatusTooManyRequests ||
		statusCode >= fasthttp.StatusInternalServerError
}

func abbreviateBody(raw []byte) string {
	const max = 512
	value := strings.TrimSpace(string(raw))
	if len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}
