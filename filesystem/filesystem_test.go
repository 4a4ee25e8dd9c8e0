package filesystem

import (
	"os"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestCreateAll(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("CreateAll creates missing parents", func() {
			f, err := CreateAll("/out/nested/result.json")
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)
			So(lo.Must(API().IsDir("/out/nested")), ShouldBeTrue)
			So(lo.Must(API().Exists("/out/nested/result.json")), ShouldBeTrue)
		})

		Convey("GacheFs writes through the active backend", func() {
			var fs GacheFs
			So(fs.MkdirAll("/cache", os.ModePerm), ShouldBeNil)
			f, err := fs.OpenFile("/cache/v.json", os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte(`"1.0.0"`))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)
			So(string(lo.Must(API().ReadFile("/cache/v.json"))), ShouldEqual, `"1.0.0"`)
		})
	})
}
