package util

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vodo-app/vodo/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPlainText(t *testing.T) {
	Convey("PlainText", t, func() {
		Convey("Should strip inline tags", func() {
			So(PlainText("<p>The <b>Powerpuff Girls</b> save the day.</p>"), ShouldEqual, "The Powerpuff Girls save the day.")
		})
		Convey("Should separate paragraphs and breaks", func() {
			So(PlainText("<p>One</p><p>Two<br>Three</p>"), ShouldEqual, "One\nTwo\nThree")
		})
		Convey("Should decode entities", func() {
			So(PlainText("Tom &amp; Jerry"), ShouldEqual, "Tom & Jerry")
		})
		Convey("Should leave plain text alone", func() {
			So(PlainText("  no markup  "), ShouldEqual, "no markup")
			So(PlainText(""), ShouldEqual, "")
		})
		Convey("Should not keep script-like markup as tags", func() {
			So(PlainText(`<i onclick="x()">hi</i>`), ShouldEqual, "hi")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "episode", "episodes"), ShouldEqual, "1 episode")
		So(Quantify(2, "episode", "episodes"), ShouldEqual, "2 episodes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestMin(t *testing.T) {
	Convey("Min", t, func() {
		So(Min(4, 1, 2), ShouldEqual, 1)
		So(Min("b", "a"), ShouldEqual, "a")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		So(filesystem.API().WriteFile("/logs/a.log", []byte("x"), 0o644), ShouldBeNil)
		So(Delete("/logs"), ShouldBeNil)
		So(lo.Must(filesystem.API().Exists("/logs/a.log")), ShouldBeFalse)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)
		So(s.Pop(), ShouldEqual, 0)
	})
}
