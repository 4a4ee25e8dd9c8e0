// Package season groups the episodes of a show into seasons for display.
package season

import (
	"sort"

	"github.com/vodo-app/vodo/media"
)

// Season is one group of episodes sharing a season number.
type Season struct {
	Number   int              `json:"number" jsonschema:"description=Season number. Starts at 1."`
	Episodes []*media.Episode `json:"episodes" jsonschema:"description=Episodes of the season in catalog order."`
}

// Organize groups episodes by season, newest season first.
// Episodes keep the order they arrived in within their season.
func Organize(episodes []*media.Episode) []Season {
	index := make(map[int]int)
	seasons := make([]Season, 0)

	for _, episode := range episodes {
		if episode == nil {
			continue
		}

		i, ok := index[episode.Season]
		if !ok {
			i = len(seasons)
			index[episode.Season] = i
			seasons = append(seasons, Season{Number: episode.Season})
		}

		seasons[i].Episodes = append(seasons[i].Episodes, episode)
	}

	sort.Slice(seasons, func(i, j int) bool {
		return seasons[i].Number > seasons[j].Number
	})

	return seasons
}
