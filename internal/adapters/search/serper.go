package search

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"hermes/internal/metrics"
	"hermes/pkg/errors"
	"hermes/pkg/logger"
)

const defaultEndpoint = "https://google.serper.dev/search"

// Client is the narrow contract for the web-search backend: one free-text
// query in, the raw result document out, re-serialized as pretty JSON.
type Client interface {
	Search(ctx context.Context, query string) (string, error)
}

// Ensure SerperClient implements Client
var _ Client = (*SerperClient)(nil)

// SerperClient queries the Serper search API. The response body is treated
// opaquely; callers get it back as an indented JSON string.
type SerperClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
	log      *logger.Logger
}

// Config configures a SerperClient.
type Config struct {
	APIKey        string
	Endpoint      string
	Timeout       time.Duration
	RatePerMinute float64
}

// NewSerperClient creates a search client for the Serper API.
func NewSerperClient(cfg Config) (*SerperClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "serper API key is required")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerMinute/60.0), 1)
	}

	return &SerperClient{
		apiKey:   cfg.APIKey,
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
		limiter:  limiter,
		log:      logger.Get().With("component", "serper_search"),
	}, nil
}

// Search issues a query and returns the result document as pretty-printed JSON.
func (c *SerperClient) Search(ctx context.Context, query string) (string, error) {
	result, err := c.search(ctx, query)
	if err != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return "", err
	}
	metrics.SearchRequests.WithLabelValues("success").Inc()
	return result, nil
}

func (c *SerperClient) search(ctx context.Context, query string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", errors.Wrap(errors.ErrBackend, err.Error())
		}
	}

	body, err := json.Marshal(map[string]string{"q": query})
	if err != nil {
		return "", errors.Wrap(errors.ErrSerialization, "marshal search request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrapf(errors.ErrBackend, "create search request: %v", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(errors.ErrBackend, "send search request: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(errors.ErrBackend, "read search response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrapf(errors.ErrBackend, "search API error (%d): %s",
			resp.StatusCode, string(respBody))
	}

	// Re-serialize verbatim; the document structure is the search
	// backend's business, not ours.
	var doc json.RawMessage
	if err := json.Unmarshal(respBody, &doc); err != nil {
		return "", errors.Wrap(errors.ErrSerialization, "decode search response")
	}

	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrSerialization, "encode search context")
	}

	c.log.Debugw("search completed", "query", query, "bytes", len(pretty))

	return string(pretty), nil
}
