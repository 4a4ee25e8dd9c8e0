package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vodo-app/vodo/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		So(compare("1.2.3", "1.2.3"), ShouldEqual, 0)
		So(compare("v1.3.0", "1.2.9"), ShouldEqual, 1)
		So(compare("0.1.0", "0.2.0"), ShouldEqual, -1)
		So(compare("2.0.0", "10.0.0"), ShouldEqual, -1)
		So(compare("1.2", "1.2.0"), ShouldEqual, 0)
		So(compare("1.3.0-rc.1", "1.2.0"), ShouldEqual, 1)

		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)

		_, err = Compare("1.2.3.4", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func compare(a, b string) int {
	c, err := Compare(a, b)
	So(err, ShouldBeNil)
	return c
}

func TestLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"tag_name": "v0.2.0"}`))
		}))
		defer server.Close()

		previous := ReleasesURL
		ReleasesURL = server.URL
		defer func() { ReleasesURL = previous }()

		Convey("The tag is returned without its prefix and cached", func() {
			v, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "0.2.0")

			v, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "0.2.0")
			So(hits.Load(), ShouldEqual, 1)
		})
	})
}
