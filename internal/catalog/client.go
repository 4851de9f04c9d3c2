package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Source defines the single operation marquee needs from the catalog.
// This interface is implemented by *Client and can be used for testing.
type Source interface {
	FetchCharacters(ctx context.Context, query PageQuery) ([]Character, error)
}

// Ensure Client implements Source at compile time.
var _ Source = (*Client)(nil)

// Client talks to the Disney character API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBase   = "https://api.disneyapi.dev"
	defaultUserAgent = "marquee/0.1"
	requestTimeout   = 30 * time.Second

	defaultPage     = 1
	defaultPageSize = 100
)

// PageQuery configures /character requests.
type PageQuery struct {
	Page     int
	PageSize int
}

// NewClient builds a Client for the given API base URL.
func NewClient(apiBase string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchCharacters retrieves one page of characters. Any failure is reported
// as a *LoadError.
func (c *Client) FetchCharacters(ctx context.Context, query PageQuery) ([]Character, error) {
	if c == nil {
		return nil, &LoadError{Op: "fetch characters", Err: fmt.Errorf("client is nil")}
	}
	page := query.Page
	if page <= 0 {
		page = defaultPage
	}
	size := query.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("pageSize", strconv.Itoa(size))
	rel := &url.URL{Path: "character", RawQuery: values.Encode()}

	var payload CharacterListResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	chars, err := payload.Characters()
	if err != nil {
		return nil, &LoadError{Op: "decode characters", Err: err}
	}
	return chars, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	op := method + " " + reqURL.Path
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return &LoadError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &LoadError{Op: op, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &LoadError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("api returned status %d", resp.StatusCode)}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return &LoadError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// parseBaseURL keeps the path so that a base such as
// "http://host/mirror" resolves "character" beneath it.
func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_base %q: missing host", apiBase)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
