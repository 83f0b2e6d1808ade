package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"botc-assets/core/fetch"
	"botc-assets/core/record"
	"botc-assets/core/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// maxPages bounds the listing walk in case the catalog keeps returning a next link.
const maxPages = 10000

// Client reads the remote script catalog.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *zap.Logger

	group singleflight.Group
}

// NewClient creates a catalog client for baseURL.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
		Logger:  logger,
	}
}

// FetchAll walks every page of the listing and returns the scripts in catalog order.
func (c *Client) FetchAll(ctx context.Context) ([]record.Record, error) {
	next := c.pageURL(1)
	records := []record.Record{}

	for n := 1; next != ""; n++ {
		if n > maxPages {
			return nil, &SourceUnavailableError{URL: next, Err: fmt.Errorf("more than %d pages", maxPages)}
		}
		c.Logger.Debug("Fetching catalog page", zap.Int("page", n), zap.String("url", next))

		body, err := fetch.Get(ctx, c.HTTP, next)
		if err != nil {
			return nil, &SourceUnavailableError{URL: next, Err: err}
		}

		var p page
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, &SourceUnavailableError{URL: next, Err: fmt.Errorf("decode page: %w", err)}
		}
		c.Logger.Debug("Decoded catalog page", zap.Int("page", n), zap.Int("results", len(p.Results)), zap.Int("count", utils.ToInt(p.Count)))
		for _, raw := range p.Results {
			r, err := toRecord(raw)
			if err != nil {
				return nil, err
			}
			records = append(records, r)
		}

		next = ""
		if p.Next != nil {
			next = c.resolve(*p.Next)
		}
	}

	c.Logger.Info("Fetched catalog", zap.Int("scripts", len(records)))
	return records, nil
}

// FetchOne returns the raw JSON of one script. Concurrent calls for the same id share one request.
// The shared request is not tied to any single caller; each caller stops waiting when its ctx ends.
func (c *Client) FetchOne(ctx context.Context, id string) ([]byte, error) {
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(id, func() (any, error) {
		u := fmt.Sprintf("%s/api/scripts/%s/?format=json", c.BaseURL, url.PathEscape(id))
		body, err := fetch.Get(shared, c.HTTP, u)
		if err != nil {
			var status *fetch.StatusError
			if errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("script %s: %w", id, ErrNotFound)
			}
			return nil, &SourceUnavailableError{URL: u, Err: err}
		}
		return body, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// FetchRecord returns one script converted to a remote record.
func (c *Client) FetchRecord(ctx context.Context, id string) (record.Record, error) {
	body, err := c.FetchOne(ctx, id)
	if err != nil {
		return record.Record{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return record.Record{}, fmt.Errorf("decode script %s: %w", id, err)
	}
	return toRecord(raw)
}

func (c *Client) pageURL(n int) string {
	return c.BaseURL + "/api/scripts/?format=json&page=" + strconv.Itoa(n)
}

// resolve turns a relative next link into an absolute one.
func (c *Client) resolve(next string) string {
	if next == "" {
		return ""
	}
	ref, err := url.Parse(next)
	if err != nil || ref.IsAbs() {
		return next
	}
	base, err := url.Parse(c.BaseURL + "/")
	if err != nil {
		return next
	}
	return base.ResolveReference(ref).String()
}
