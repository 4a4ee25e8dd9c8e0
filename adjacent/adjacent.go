// Package adjacent finds the episodes around a given one within its season.
package adjacent

import (
	"context"
	"fmt"

	"github.com/samber/mo"
	"github.com/sourcegraph/conc/pool"
	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/media"
)

// Lookup finds an episode by its coordinate within a show.
// The option is empty when there is no such episode.
type Lookup interface {
	EpisodeByNumber(ctx context.Context, showID string, season, number int) (mo.Option[*media.Episode], error)
}

// Adjacent holds the neighbours of an episode. Either may be absent.
type Adjacent struct {
	Previous mo.Option[*media.Episode]
	Next     mo.Option[*media.Episode]
}

// Resolve looks up the previous and next episodes of episode in the same season.
//
// Numbering within a season is assumed to start at 1 and have no gaps, so the
// previous episode is only requested when episode.Number > 1. Episodes in other
// seasons are never considered adjacent. Lookup errors are returned as is and
// never turned into an absent neighbour.
func Resolve(ctx context.Context, lookup Lookup, showID string, episode *media.Episode) (Adjacent, error) {
	adjacent := Adjacent{
		Previous: mo.None[*media.Episode](),
		Next:     mo.None[*media.Episode](),
	}

	p := pool.New().WithErrors().WithContext(ctx)

	if episode.Number > 1 {
		p.Go(func(ctx context.Context) error {
			previous, err := lookup.EpisodeByNumber(ctx, showID, episode.Season, episode.Number-1)
			if err != nil {
				return fmt.Errorf("previous episode: %w", err)
			}
			adjacent.Previous = previous
			return nil
		})
	}

	p.Go(func(ctx context.Context) error {
		next, err := lookup.EpisodeByNumber(ctx, showID, episode.Season, episode.Number+1)
		if err != nil {
			return fmt.Errorf("next episode: %w", err)
		}
		adjacent.Next = next
		return nil
	})

	if err := p.Wait(); err != nil {
		log.Error(err)
		return Adjacent{Previous: mo.None[*media.Episode](), Next: mo.None[*media.Episode]()}, err
	}

	return adjacent, nil
}

// Detail is an episode together with its neighbours.
type Detail struct {
	Episode *media.Episode
	Adjacent
}

// Details fetches the episode with episodeID and resolves its neighbours in show showID.
func Details(ctx context.Context, catalog media.Catalog, showID, episodeID string) (*Detail, error) {
	episode, err := catalog.EpisodeByID(ctx, episodeID)
	if err != nil {
		return nil, err
	}

	adjacent, err := Resolve(ctx, catalog, showID, episode)
	if err != nil {
		return nil, err
	}

	return &Detail{Episode: episode, Adjacent: adjacent}, nil
}
