package tvmaze

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/samber/mo"
	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/media"
)

// EpisodeByID returns the episode with the given global id.
func (c *Client) EpisodeByID(ctx context.Context, id string) (*media.Episode, error) {
	log.Infof("Fetching episode %s", id)

	var episode media.Episode
	if err := c.get(ctx, "/episodes/"+url.PathEscape(id), nil, &episode, false); err != nil {
		return nil, fmt.Errorf("episode %s: %w", id, err)
	}

	return &episode, nil
}

// EpisodeByNumber returns the episode at the given season and number of a show.
// A 404 from the catalog means there is no such episode and yields an empty option;
// every other failure is returned as an error.
func (c *Client) EpisodeByNumber(ctx context.Context, showID string, season, number int) (mo.Option[*media.Episode], error) {
	log.Infof("Fetching episode S%02dE%02d of show %s", season, number, showID)

	query := url.Values{
		"season": {strconv.Itoa(season)},
		"number": {strconv.Itoa(number)},
	}

	var episode media.Episode
	err := c.get(ctx, "/shows/"+url.PathEscape(showID)+"/episodebynumber", query, &episode, true)
	switch {
	case errors.Is(err, errNotFound):
		log.Infof("Show %s has no episode S%02dE%02d", showID, season, number)
		return mo.None[*media.Episode](), nil
	case err != nil:
		return mo.None[*media.Episode](), fmt.Errorf("episode S%02dE%02d of show %s: %w", season, number, showID, err)
	}

	return mo.Some(&episode), nil
}
