package tvmaze

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vodo-app/vodo/tvmaze/tvmazetest"
)

func TestSearchShows(t *testing.T) {
	Convey("Given a catalog answering a search with two wrapped shows", t, func() {
		var received *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = r
			_, _ = w.Write([]byte(`[{"score": 0.9, "show": {"id": 2, "name": "B"}}, {"score": 0.4, "show": {"id": 1, "name": "A"}}]`))
		}))
		defer server.Close()

		client := New(WithBaseURL(server.URL), WithHTTPClient(server.Client()))

		Convey("It unwraps them preserving the catalog order", func() {
			shows, err := client.SearchShows(context.Background(), "power puff")
			So(err, ShouldBeNil)
			So(shows, ShouldHaveLength, 2)
			So(shows[0].Name, ShouldEqual, "B")
			So(shows[1].Name, ShouldEqual, "A")

			So(received.URL.Path, ShouldEqual, "/search/shows")
			So(received.URL.Query().Get("q"), ShouldEqual, "power puff")
			So(received.Header.Get("Accept"), ShouldEqual, "application/json")
			So(received.Header.Get("User-Agent"), ShouldStartWith, "vodo/")
		})
	})

	Convey("Given a catalog with no matches", t, func() {
		server := tvmazetest.NewServer()
		defer server.Close()

		shows, err := New(WithBaseURL(server.URL)).SearchShows(context.Background(), "nothing")
		So(err, ShouldBeNil)
		So(shows, ShouldNotBeNil)
		So(shows, ShouldBeEmpty)
	})

	Convey("Given a failing catalog", t, func() {
		server := tvmazetest.NewServer()
		defer server.Close()
		server.Fail("/search/shows?q=x", http.StatusServiceUnavailable)

		_, err := New(WithBaseURL(server.URL)).SearchShows(context.Background(), "x")

		Convey("It returns a RemoteFetchError with the status", func() {
			fetchErr, ok := AsRemoteFetchError(err)
			So(ok, ShouldBeTrue)
			So(fetchErr.Status, ShouldEqual, http.StatusServiceUnavailable)
			So(fetchErr.Message, ShouldStartWith, "Service Unavailable")
		})
	})
}

func TestShowByID(t *testing.T) {
	Convey("Given a catalog holding a show with episodes", t, func() {
		server := tvmazetest.NewServer(tvmazetest.Show(6771, "The Powerpuff Girls",
			tvmazetest.Episode(10, 1, 1),
			tvmazetest.Episode(11, 1, 2),
		))
		defer server.Close()
		client := New(WithBaseURL(server.URL + "/"))

		Convey("It embeds the episodes", func() {
			show, err := client.ShowByID(context.Background(), "6771")
			So(err, ShouldBeNil)
			So(show.Name, ShouldEqual, "The Powerpuff Girls")
			So(show.Episodes(), ShouldHaveLength, 2)
			So(server.Requested("/shows/6771?embed=episodes"), ShouldBeTrue)
		})

		Convey("An unknown show is a RemoteFetchError, not an absence", func() {
			_, err := client.ShowByID(context.Background(), "404")
			fetchErr, ok := AsRemoteFetchError(err)
			So(ok, ShouldBeTrue)
			So(fetchErr.NotFound(), ShouldBeTrue)
		})
	})
}

func TestEpisodeByID(t *testing.T) {
	Convey("Given a catalog holding an episode", t, func() {
		server := tvmazetest.NewServer(tvmazetest.Show(1, "Show", tvmazetest.Episode(657308, 1, 1)))
		defer server.Close()
		client := New(WithBaseURL(server.URL))

		Convey("It fetches by global id", func() {
			episode, err := client.EpisodeByID(context.Background(), "657308")
			So(err, ShouldBeNil)
			So(episode.Season, ShouldEqual, 1)
			So(episode.Number, ShouldEqual, 1)
		})

		Convey("A server error surfaces as RemoteFetchError", func() {
			server.Fail("/episodes/657308", http.StatusInternalServerError)
			_, err := client.EpisodeByID(context.Background(), "657308")
			fetchErr, ok := AsRemoteFetchError(err)
			So(ok, ShouldBeTrue)
			So(fetchErr.Status, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestEpisodeByNumber(t *testing.T) {
	Convey("Given a catalog holding season 1 episodes 1 and 2", t, func() {
		server := tvmazetest.NewServer(tvmazetest.Show(1, "Show",
			tvmazetest.Episode(10, 1, 1),
			tvmazetest.Episode(11, 1, 2),
		))
		defer server.Close()
		client := New(WithBaseURL(server.URL))
		ctx := context.Background()

		Convey("An existing coordinate is present", func() {
			episode, err := client.EpisodeByNumber(ctx, "1", 1, 2)
			So(err, ShouldBeNil)
			So(episode.IsPresent(), ShouldBeTrue)
			So(episode.MustGet().ID, ShouldEqual, 11)
			So(server.Requested("/shows/1/episodebynumber?number=2&season=1"), ShouldBeTrue)
		})

		Convey("A missing coordinate is absent without error", func() {
			episode, err := client.EpisodeByNumber(ctx, "1", 1, 3)
			So(err, ShouldBeNil)
			So(episode.IsAbsent(), ShouldBeTrue)
		})

		Convey("Any other failure is an error, not an absence", func() {
			server.Fail("/shows/1/episodebynumber?number=2&season=1", http.StatusInternalServerError)
			episode, err := client.EpisodeByNumber(ctx, "1", 1, 2)
			So(episode.IsAbsent(), ShouldBeTrue)
			fetchErr, ok := AsRemoteFetchError(err)
			So(ok, ShouldBeTrue)
			So(fetchErr.Status, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestTransportErrors(t *testing.T) {
	Convey("Given a cancelled context", t, func() {
		server := tvmazetest.NewServer()
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(WithBaseURL(server.URL)).EpisodeByID(ctx, "1")

		Convey("The error is not a RemoteFetchError", func() {
			So(err, ShouldNotBeNil)
			_, ok := AsRemoteFetchError(err)
			So(ok, ShouldBeFalse)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})

	Convey("Given a catalog returning malformed json", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":`))
		}))
		defer server.Close()

		_, err := New(WithBaseURL(server.URL)).ShowByID(context.Background(), "1")
		So(err, ShouldNotBeNil)
		_, ok := AsRemoteFetchError(err)
		So(ok, ShouldBeFalse)
	})
}

func TestRemoteFetchError(t *testing.T) {
	Convey("RemoteFetchError", t, func() {
		err := &RemoteFetchError{URL: "https://api.tvmaze.com/episodes/1", Status: 502, Message: "Bad Gateway"}
		So(err.Error(), ShouldEqual, "remote fetch https://api.tvmaze.com/episodes/1: 502 Bad Gateway")
		So(err.NotFound(), ShouldBeFalse)
	})
}
