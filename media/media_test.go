package media

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const showJSON = `{
	"id": 6771,
	"name": "The Powerpuff Girls",
	"summary": "<p>The city of Townsville may be a beautiful, bustling metropolis.</p>",
	"image": {"medium": "https://static.tvmaze.com/m.jpg", "original": "https://static.tvmaze.com/o.jpg"},
	"_embedded": {"episodes": [
		{"id": 657308, "name": "Escape from Monster Island", "season": 1, "number": 1, "runtime": 11, "airdate": "2016-04-04", "image": null, "summary": null},
		{"id": 657309, "name": "Princess Buttercup", "season": 1, "number": 2, "runtime": null}
	]}
}`

func TestShow(t *testing.T) {
	Convey("Given a show decoded from catalog json", t, func() {
		var show Show
		So(json.Unmarshal([]byte(showJSON), &show), ShouldBeNil)

		Convey("Fields are populated", func() {
			So(show.ID, ShouldEqual, 6771)
			So(show.Key(), ShouldEqual, "6771")
			So(show.String(), ShouldEqual, "The Powerpuff Girls")
			So(show.Cover(), ShouldEqual, "https://static.tvmaze.com/o.jpg")
		})

		Convey("Embedded episodes keep catalog order", func() {
			So(show.Episodes(), ShouldHaveLength, 2)
			So(show.Episodes()[0].ID, ShouldEqual, 657308)
			So(show.Episodes()[1].ID, ShouldEqual, 657309)
		})

		Convey("Nulls decode to zero values", func() {
			ep := show.Episodes()[1]
			So(ep.Runtime, ShouldEqual, 0)
			So(ep.Image, ShouldBeNil)
			So(ep.Cover(), ShouldBeEmpty)
			So(ep.Summary, ShouldBeEmpty)
		})

		Convey("PlainSummary strips markup", func() {
			So(show.PlainSummary(), ShouldEqual, "The city of Townsville may be a beautiful, bustling metropolis.")
		})
	})

	Convey("A show without embedded episodes has none", t, func() {
		var show Show
		So(json.Unmarshal([]byte(`{"id": 1, "name": "Pilot Only"}`), &show), ShouldBeNil)
		So(show.Episodes(), ShouldBeEmpty)
	})
}

func TestEpisode(t *testing.T) {
	Convey("Episode", t, func() {
		ep := &Episode{ID: 12, Name: "Pilot", Season: 2, Number: 7}

		Convey("Code", func() {
			So(ep.Code(), ShouldEqual, "S02E07")
		})

		Convey("Key", func() {
			So(ep.Key(), ShouldEqual, "12")
		})
	})
}

func TestCover(t *testing.T) {
	Convey("Cover - Priority", t, func() {
		So(Cover(nil), ShouldBeEmpty)

		img := &Image{Medium: "med"}
		So(Cover(img), ShouldEqual, "med")

		img.Original = "orig"
		So(Cover(img), ShouldEqual, "orig")
	})
}
