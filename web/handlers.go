package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vodo-app/vodo/adjacent"
	"github.com/vodo-app/vodo/constant"
	"github.com/vodo-app/vodo/key"
	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/media"
	"github.com/vodo-app/vodo/season"
	"github.com/vodo-app/vodo/tvmaze"
)

type showsPage struct {
	meta
	Query string
	Shows []*media.Show
}

type showPage struct {
	meta
	Show    *media.Show
	Seasons []seasonView
}

// seasonView is a season header together with the link that expands or collapses it.
type seasonView struct {
	season.Season
	Expanded bool
	Toggle   string
}

type episodePage struct {
	meta
	ShowID   string
	Episode  *media.Episode
	Previous *media.Episode
	Next     *media.Episode
}

type errorPage struct {
	meta
	Status  int
	Message string
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": constant.Vodo,
	})
}

func (s *Server) handleShows(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		query = viper.GetString(key.CatalogDefaultQuery)
	}

	shows, err := s.catalog.SearchShows(c.Request.Context(), query)
	if err != nil {
		fail(c, err)
		return
	}

	page := showsPage{
		meta:  newMeta("Shows", fmt.Sprintf("Browse all available TV shows on %s.", siteTitle())),
		Query: query,
		Shows: shows,
	}
	c.HTML(http.StatusOK, "shows.html", page)
}

func (s *Server) handleShow(c *gin.Context) {
	showID := c.Param("showId")

	show, err := s.catalog.ShowByID(c.Request.Context(), showID)
	if err != nil {
		fail(c, err)
		return
	}

	selection := parseSelection(c.QueryArray("season"))
	seasons := lo.Map(season.Organize(show.Episodes()), func(s season.Season, _ int) seasonView {
		return seasonView{
			Season:   s,
			Expanded: selection.Contains(s.Number),
			Toggle:   seasonLink(showID, selection.Toggle(s.Number), s.Number),
		}
	})

	page := showPage{
		meta:    newMeta(show.Name, show.PlainSummary()),
		Show:    show,
		Seasons: seasons,
	}
	c.HTML(http.StatusOK, "show.html", page)
}

func (s *Server) handleEpisode(c *gin.Context) {
	showID := c.Param("showId")

	detail, err := adjacent.Details(c.Request.Context(), s.catalog, showID, c.Param("episodeId"))
	if err != nil {
		fail(c, err)
		return
	}

	page := episodePage{
		meta:     newMeta(detail.Episode.Name, detail.Episode.PlainSummary()),
		ShowID:   showID,
		Episode:  detail.Episode,
		Previous: detail.Previous.OrEmpty(),
		Next:     detail.Next.OrEmpty(),
	}
	c.HTML(http.StatusOK, "episode.html", page)
}

// parseSelection reads the expanded seasons from repeated season parameters, skipping malformed ones.
func parseSelection(values []string) season.Selection {
	numbers := lo.FilterMap(values, func(v string, _ int) (int, bool) {
		n, err := strconv.Atoi(v)
		return n, err == nil
	})
	return season.NewSelection(numbers...)
}

// seasonLink returns the show page URL with selection expanded, anchored at season n.
func seasonLink(showID string, selection season.Selection, n int) string {
	link := "/shows/" + url.PathEscape(showID)

	if selection.Len() > 0 {
		query := url.Values{
			"season": lo.Map(selection.Numbers(), func(n int, _ int) string { return strconv.Itoa(n) }),
		}
		link += "?" + query.Encode()
	}

	return fmt.Sprintf("%s#season-%d", link, n)
}

// fail renders the error page for err. A catalog 404 is reported as such; any other
// failure to reach the catalog is a bad gateway.
func fail(c *gin.Context, err error) {
	log.WithFields(logrus.Fields{
		"path":  c.Request.URL.Path,
		"error": err,
	}).Error("request failed")

	if fetchErr, ok := tvmaze.AsRemoteFetchError(err); ok && fetchErr.NotFound() {
		renderError(c, http.StatusNotFound, "This page could not be found.")
		return
	}

	renderError(c, http.StatusBadGateway, "The show catalog could not be reached. Please try again later.")
}

func renderError(c *gin.Context, status int, message string) {
	page := errorPage{
		meta:    newMeta(http.StatusText(status), message),
		Status:  status,
		Message: message,
	}
	c.HTML(status, "error.html", page)
}
