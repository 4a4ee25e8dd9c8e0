package tvmaze

import (
	"context"
	"fmt"
	"net/url"

	"github.com/samber/lo"
	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/media"
)

// searchResult is one entry of the /search/shows response.
type searchResult struct {
	Score float64     `json:"score"`
	Show  *media.Show `json:"show"`
}

// SearchShows returns the shows matching query in the order TVMaze ranked them.
func (c *Client) SearchShows(ctx context.Context, query string) ([]*media.Show, error) {
	log.Infof("Searching tvmaze for shows matching %q", query)

	var results []searchResult
	if err := c.get(ctx, "/search/shows", url.Values{"q": {query}}, &results, false); err != nil {
		return nil, fmt.Errorf("search shows %q: %w", query, err)
	}

	shows := lo.FilterMap(results, func(r searchResult, _ int) (*media.Show, bool) {
		return r.Show, r.Show != nil
	})

	log.Infof("Got response from tvmaze, found %d shows", len(shows))
	return shows, nil
}
