package tvmaze

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/media"
)

// ShowByID returns the show with the given id including its embedded episodes.
func (c *Client) ShowByID(ctx context.Context, id string) (*media.Show, error) {
	log.Infof("Fetching show %s", id)

	var show media.Show
	if err := c.get(ctx, "/shows/"+url.PathEscape(id), url.Values{"embed": {"episodes"}}, &show, false); err != nil {
		return nil, fmt.Errorf("show %s: %w", id, err)
	}

	log.Infof("Got show %q with %d episodes", show.Name, len(show.Episodes()))
	return &show, nil
}
