package comments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	types "github.com/yungbote/nogi-trainer/internal/domain"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

const DefaultBaseURL = "http://localhost:3000"

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Log        *logger.Logger
}

// Client talks to the comment API. It never retries.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        *logger.Logger
}

func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}

	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: hc,
		log:        log.With("client", "CommentsClient"),
	}, nil
}

func (c *Client) BaseURL() string { return c.baseURL }

// List fetches a page's comments, newest first. Any failure is logged and
// reported as an empty thread.
func (c *Client) List(ctx context.Context, pageID string) []types.Comment {
	var out []types.Comment
	if err := c.doJSON(ctx, http.MethodGet, "/api/comments/"+url.PathEscape(pageID), nil, &out); err != nil {
		c.log.Warn("load comments failed", "page_id", pageID, "error", err)
		return []types.Comment{}
	}
	if out == nil {
		out = []types.Comment{}
	}
	return out
}

// Create posts one comment and returns the stored record.
func (c *Client) Create(ctx context.Context, pageID, userName, text string) (*types.Comment, error) {
	in := types.CommentInput{PageID: pageID, UserName: userName, Text: text}
	var out types.Comment
	if err := c.doJSON(ctx, http.MethodPost, "/api/comments", in, &out); err != nil {
		c.log.Warn("post comment failed", "page_id", pageID, "error", err)
		return nil, err
	}
	return &out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	ctx2, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx2, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	_ = resp.Body.Close()
	if readErr != nil {
		return readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseHTTPError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

