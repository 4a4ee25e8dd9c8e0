// Package media defines the show and episode models shared by the catalog client, the
// season organizer, the adjacency resolver and every presentation layer.
package media

import (
	"context"

	"github.com/samber/mo"
)

// Catalog is the set of remote lookups the application needs from a show catalog.
type Catalog interface {
	// SearchShows returns the shows matching query, in the catalog's order.
	SearchShows(ctx context.Context, query string) ([]*Show, error)

	// ShowByID returns a show together with its embedded episodes.
	ShowByID(ctx context.Context, id string) (*Show, error)

	// EpisodeByID returns a single episode by its global id.
	EpisodeByID(ctx context.Context, id string) (*Episode, error)

	// EpisodeByNumber returns the episode at (season, number) of a show.
	// The option is empty when the catalog has no episode at that coordinate.
	EpisodeByNumber(ctx context.Context, showID string, season, number int) (mo.Option[*Episode], error)
}

// Image holds the artwork URLs the catalog provides for a show or an episode.
type Image struct {
	Medium   string `json:"medium" jsonschema:"description=URL of the medium sized image."`
	Original string `json:"original" jsonschema:"description=URL of the original image."`
}

// Cover returns the best available URL of img, or an empty string when there is none.
func Cover(img *Image) string {
	if img == nil {
		return ""
	}
	if img.Original != "" {
		return img.Original
	}
	return img.Medium
}
