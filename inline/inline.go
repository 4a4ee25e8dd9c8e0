// Package inline implements the non-interactive, scriptable mode.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/vodo-app/vodo/adjacent"
	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/media"
	"github.com/vodo-app/vodo/query"
	"github.com/vodo-app/vodo/season"
)

func out(options *Options) io.Writer {
	if options.Out == nil {
		return os.Stdout
	}
	return options.Out
}

// Search prints the shows matching options.Query. With a picker only the picked show is printed.
func Search(ctx context.Context, options *Options) error {
	shows, err := options.Catalog.SearchShows(ctx, options.Query)
	if err != nil {
		return err
	}

	if err := query.Remember(options.Query, 1); err != nil {
		log.Warnf("remember query: %s", err)
	}

	if options.ShowPicker.IsPresent() {
		picker := options.ShowPicker.MustGet()
		if choice := picker(shows); choice != nil {
			shows = []*media.Show{choice}
		} else {
			shows = []*media.Show{}
		}
	}

	log.Infof("Printing %d shows for %q", len(shows), options.Query)

	if options.Json {
		return writeJson(out(options), &SearchOutput{Query: options.Query, Result: shows})
	}

	for _, show := range shows {
		if _, err := fmt.Fprintf(out(options), "%d\t%s\n", show.ID, show.Name); err != nil {
			return err
		}
	}

	return nil
}

// Show prints a show with its episodes grouped by season, newest first.
// When options.Season is set only that season is printed.
func Show(ctx context.Context, options *Options) error {
	show, err := options.Catalog.ShowByID(ctx, options.ShowID)
	if err != nil {
		return err
	}

	seasons := season.Organize(show.Episodes())
	if options.Season.IsPresent() {
		n := options.Season.MustGet()
		seasons = lo.Filter(seasons, func(s season.Season, _ int) bool {
			return s.Number == n
		})

		if len(seasons) == 0 {
			return fmt.Errorf("show %s has no season %d", options.ShowID, n)
		}
	}

	if options.Json {
		return writeJson(out(options), &ShowOutput{
			ID:      show.ID,
			Name:    show.Name,
			Summary: show.PlainSummary(),
			Image:   show.Image,
			Seasons: seasons,
		})
	}

	w := out(options)
	fmt.Fprintln(w, show.Name)
	for _, s := range seasons {
		fmt.Fprintf(w, "\nSeason %d\n", s.Number)
		for _, e := range s.Episodes {
			fmt.Fprintf(w, "  %d\t%s\t%s\t%d min\n", e.ID, e.Code(), e.Name, e.Runtime)
		}
	}

	return nil
}

// Episode prints an episode together with its previous and next episodes in the same season.
func Episode(ctx context.Context, options *Options) error {
	detail, err := adjacent.Details(ctx, options.Catalog, options.ShowID, options.EpisodeID)
	if err != nil {
		return err
	}

	if options.Json {
		return writeJson(out(options), &EpisodeOutput{
			Show:     options.ShowID,
			Episode:  detail.Episode,
			Previous: detail.Previous.OrEmpty(),
			Next:     detail.Next.OrEmpty(),
		})
	}

	w := out(options)
	episode := detail.Episode
	fmt.Fprintf(w, "%s %s\n", episode.Code(), episode.Name)
	fmt.Fprintf(w, "Episode %d | %d min", episode.Number, episode.Runtime)
	if episode.Airdate != "" {
		fmt.Fprintf(w, " | %s", episode.Airdate)
	}
	fmt.Fprintln(w)

	if summary := episode.PlainSummary(); summary != "" {
		fmt.Fprintf(w, "\n%s\n", summary)
	}

	if previous, ok := detail.Previous.Get(); ok {
		fmt.Fprintf(w, "\nPrevious: %d\t%s\t%s\n", previous.ID, previous.Code(), previous.Name)
	}
	if next, ok := detail.Next.Get(); ok {
		fmt.Fprintf(w, "Next: %d\t%s\t%s\n", next.ID, next.Code(), next.Name)
	}

	return nil
}
