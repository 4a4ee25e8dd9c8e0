// Package tvmazetest runs an in-memory TVMaze catalog over HTTP for tests.
package tvmazetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/vodo-app/vodo/media"
)

// Server serves /search/shows, /shows/{id}, /episodes/{id} and
// /shows/{id}/episodebynumber from the shows it was created with.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	shows    []*media.Show
	failures map[string]int
	requests []string
}

// NewServer starts a server for shows. Close it when done.
func NewServer(shows ...*media.Show) *Server {
	s := &Server{
		shows:    shows,
		failures: make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Fail makes every request whose path and query equal target answer with status.
// target looks like "/episodes/1" or "/shows/1/episodebynumber?number=3&season=1".
func (s *Server) Fail(target string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[target] = status
}

// Requests returns the path and encoded query of every request served so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// Requested reports whether a request for target was served.
func (s *Server) Requested(target string) bool {
	for _, r := range s.Requests() {
		if r == target {
			return true
		}
	}
	return false
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.Query().Encode()
	}

	s.mu.Lock()
	s.requests = append(s.requests, target)
	status, failing := s.failures[target]
	s.mu.Unlock()

	if failing {
		writeJSON(w, status, map[string]any{"name": http.StatusText(status), "status": status})
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case len(parts) == 2 && parts[0] == "search" && parts[1] == "shows":
		s.search(w, r.URL.Query().Get("q"))
	case len(parts) == 2 && parts[0] == "shows":
		s.show(w, parts[1])
	case len(parts) == 3 && parts[0] == "shows" && parts[2] == "episodebynumber":
		season, _ := strconv.Atoi(r.URL.Query().Get("season"))
		number, _ := strconv.Atoi(r.URL.Query().Get("number"))
		s.episodeByNumber(w, parts[1], season, number)
	case len(parts) == 2 && parts[0] == "episodes":
		s.episode(w, parts[1])
	default:
		notFound(w)
	}
}

func (s *Server) search(w http.ResponseWriter, q string) {
	type result struct {
		Score float64     `json:"score"`
		Show  *media.Show `json:"show"`
	}

	results := []result{}
	for _, show := range s.shows {
		if strings.Contains(strings.ToLower(show.Name), strings.ToLower(q)) {
			results = append(results, result{Score: 1, Show: withoutEpisodes(show)})
		}
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) show(w http.ResponseWriter, id string) {
	if show := s.find(id); show != nil {
		writeJSON(w, http.StatusOK, show)
		return
	}
	notFound(w)
}

func (s *Server) episode(w http.ResponseWriter, id string) {
	for _, show := range s.shows {
		for _, e := range show.Episodes() {
			if e.Key() == id {
				writeJSON(w, http.StatusOK, e)
				return
			}
		}
	}
	notFound(w)
}

func (s *Server) episodeByNumber(w http.ResponseWriter, showID string, season, number int) {
	if show := s.find(showID); show != nil {
		for _, e := range show.Episodes() {
			if e.Season == season && e.Number == number {
				writeJSON(w, http.StatusOK, e)
				return
			}
		}
	}
	notFound(w)
}

func (s *Server) find(id string) *media.Show {
	for _, show := range s.shows {
		if show.Key() == id {
			return show
		}
	}
	return nil
}

func withoutEpisodes(show *media.Show) *media.Show {
	clone := *show
	clone.Embedded.Episodes = nil
	return &clone
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]any{"name": "Not Found", "message": "", "code": 0, "status": 404})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Episode builds an episode whose name and id derive from its coordinate.
func Episode(id, season, number int) *media.Episode {
	return &media.Episode{
		ID:      id,
		Name:    "Episode " + strconv.Itoa(number),
		Summary: "<p>Summary of episode " + strconv.Itoa(number) + "</p>",
		Airdate: "2016-04-0" + strconv.Itoa(number%10),
		Runtime: 11,
		Season:  season,
		Number:  number,
	}
}

// Show builds a show carrying episodes.
func Show(id int, name string, episodes ...*media.Episode) *media.Show {
	show := &media.Show{
		ID:      id,
		Name:    name,
		Summary: "<p>All about <b>" + name + "</b>.</p>",
	}
	show.Embedded.Episodes = episodes
	return show
}
