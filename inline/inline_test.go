package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vodo-app/vodo/filesystem"
	"github.com/vodo-app/vodo/media"
	"github.com/vodo-app/vodo/tvmaze"
	"github.com/vodo-app/vodo/tvmaze/tvmazetest"
)

func init() {
	filesystem.SetMemMapFs()
}

func catalog() (*tvmazetest.Server, media.Catalog) {
	server := tvmazetest.NewServer(
		tvmazetest.Show(6771, "The Powerpuff Girls",
			tvmazetest.Episode(100, 1, 1),
			tvmazetest.Episode(101, 1, 2),
			tvmazetest.Episode(200, 2, 1),
		),
		tvmazetest.Show(1955, "The Powerpuff Girls Z"),
	)
	return server, tvmaze.New(tvmaze.WithBaseURL(server.URL))
}

func TestSearch(t *testing.T) {
	Convey("Given a catalog", t, func() {
		server, c := catalog()
		defer server.Close()
		var buf bytes.Buffer

		Convey("JSON output carries the query and every match", func() {
			So(Search(context.Background(), &Options{Out: &buf, Catalog: c, Json: true, Query: "powerpuff"}), ShouldBeNil)

			var output SearchOutput
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "powerpuff")
			So(output.Result, ShouldHaveLength, 2)
			So(output.Result[0].ID, ShouldEqual, 6771)
		})

		Convey("No matches is an empty list, not null", func() {
			So(Search(context.Background(), &Options{Out: &buf, Catalog: c, Json: true, Query: "nothing"}), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, `"result": []`)
		})

		Convey("A picker narrows the result to one show", func() {
			picker := lo.Must(ParseShowPicker("last", "powerpuff"))
			So(Search(context.Background(), &Options{Out: &buf, Catalog: c, Query: "powerpuff", ShowPicker: mo.Some(picker)}), ShouldBeNil)
			So(buf.String(), ShouldEqual, "1955\tThe Powerpuff Girls Z\n")
		})
	})
}

func TestShow(t *testing.T) {
	Convey("Given a catalog", t, func() {
		server, c := catalog()
		defer server.Close()
		var buf bytes.Buffer

		Convey("JSON output lists seasons newest first", func() {
			So(Show(context.Background(), &Options{Out: &buf, Catalog: c, Json: true, ShowID: "6771"}), ShouldBeNil)

			var output ShowOutput
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Name, ShouldEqual, "The Powerpuff Girls")
			So(output.Summary, ShouldEqual, "All about The Powerpuff Girls.")
			So(output.Seasons, ShouldHaveLength, 2)
			So(output.Seasons[0].Number, ShouldEqual, 2)
			So(output.Seasons[1].Episodes, ShouldHaveLength, 2)
		})

		Convey("A season filter keeps only that season", func() {
			So(Show(context.Background(), &Options{Out: &buf, Catalog: c, ShowID: "6771", Season: mo.Some(1)}), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Season 1")
			So(buf.String(), ShouldNotContainSubstring, "Season 2")
			So(buf.String(), ShouldContainSubstring, "S01E02")
		})

		Convey("An unknown season is an error", func() {
			err := Show(context.Background(), &Options{Out: &buf, Catalog: c, ShowID: "6771", Season: mo.Some(9)})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestEpisode(t *testing.T) {
	Convey("Given a catalog", t, func() {
		server, c := catalog()
		defer server.Close()
		var buf bytes.Buffer

		Convey("JSON output of the first episode has no previous", func() {
			So(Episode(context.Background(), &Options{Out: &buf, Catalog: c, Json: true, ShowID: "6771", EpisodeID: "100"}), ShouldBeNil)

			var output EpisodeOutput
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Episode.ID, ShouldEqual, 100)
			So(output.Previous, ShouldBeNil)
			So(output.Next.ID, ShouldEqual, 101)
			So(buf.String(), ShouldContainSubstring, `"previous": null`)
		})

		Convey("Text output names both neighbours of a middle episode", func() {
			So(Episode(context.Background(), &Options{Out: &buf, Catalog: c, ShowID: "6771", EpisodeID: "101"}), ShouldBeNil)
			So(buf.String(), ShouldStartWith, "S01E02 Episode 2\n")
			So(buf.String(), ShouldContainSubstring, "Previous: 100\tS01E01")
			So(buf.String(), ShouldNotContainSubstring, "Next:")
		})
	})
}

func TestParseShowPicker(t *testing.T) {
	shows := []*media.Show{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}

	Convey("ParseShowPicker", t, func() {
		So(lo.Must(ParseShowPicker("first", ""))(shows).ID, ShouldEqual, 1)
		So(lo.Must(ParseShowPicker("last", ""))(shows).ID, ShouldEqual, 3)
		So(lo.Must(ParseShowPicker("exact", "b"))(shows).ID, ShouldEqual, 2)
		So(lo.Must(ParseShowPicker("exact", "z"))(shows), ShouldBeNil)
		So(lo.Must(ParseShowPicker("1", ""))(shows).ID, ShouldEqual, 2)
		So(lo.Must(ParseShowPicker("10", ""))(shows).ID, ShouldEqual, 3)
		So(lo.Must(ParseShowPicker("first", ""))(nil), ShouldBeNil)

		_, err := ParseShowPicker("middle", "")
		So(err, ShouldNotBeNil)
	})
}
