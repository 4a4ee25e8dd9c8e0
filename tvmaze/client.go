// Package tvmaze provides a client for the TVMaze REST API.
package tvmaze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/viper"
	"github.com/vodo-app/vodo/constant"
	"github.com/vodo-app/vodo/key"
	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/media"
	"github.com/vodo-app/vodo/network"
)

var _ media.Catalog = (*Client)(nil)

// Client talks to a TVMaze compatible catalog. It is safe for concurrent use.
type Client struct {
	BaseURL   string
	HTTP      *http.Client
	UserAgent string
}

type Option func(*Client)

// WithBaseURL points the client at another catalog root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.BaseURL = u
	}
}

// WithHTTPClient replaces the shared network client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.HTTP = h
	}
}

// New returns a client for catalog.base_url using the shared network client.
func New(options ...Option) *Client {
	c := &Client{
		BaseURL:   viper.GetString(key.CatalogBaseURL),
		HTTP:      network.Client,
		UserAgent: constant.UserAgent,
	}

	for _, option := range options {
		option(c)
	}

	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	return c
}

// errNotFound is returned by get when the catalog answered 404 and the caller asked to
// treat that status as absence.
var errNotFound = errors.New("not found")

// get fetches path (relative to BaseURL) and decodes the JSON body into target.
// When notFoundAbsent is set a 404 yields errNotFound instead of a *RemoteFetchError.
func (c *Client) get(ctx context.Context, path string, query url.Values, target any, notFoundAbsent bool) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	log.Debugf("GET %s", u)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Error(err)
		return fmt.Errorf("tvmaze request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && notFoundAbsent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return errNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fetchErr := newRemoteFetchError(u, resp)
		log.Error(fetchErr)
		return fetchErr
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		log.Error(err)
		return fmt.Errorf("decode %s: %w", u, err)
	}

	return nil
}
