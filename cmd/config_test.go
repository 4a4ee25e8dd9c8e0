package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vodo-app/vodo/config"
	"github.com/vodo-app/vodo/key"
)

func TestParseValue(t *testing.T) {
	Convey("Values are converted to the type of the default", t, func() {
		v, err := parseValue(config.Default[key.NetworkTimeout], []string{"30"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 30)

		v, err = parseValue(config.Default[key.ServerOpenBrowser], []string{"true"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		v, err = parseValue(config.Default[key.ServerAddress], []string{":8080"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, ":8080")
	})

	Convey("Malformed values are rejected", t, func() {
		_, err := parseValue(config.Default[key.NetworkTimeout], []string{"soon"})
		So(err, ShouldNotBeNil)

		_, err = parseValue(config.Default[key.LogsWrite], []string{"maybe"})
		So(err, ShouldNotBeNil)

		_, err = parseValue(config.Default[key.LogsWrite], nil)
		So(err, ShouldNotBeNil)
	})
}

func TestUnknownKey(t *testing.T) {
	Convey("Unknown keys suggest the closest registered key", t, func() {
		_, err := lookupField("server.adress")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, key.ServerAddress)

		field, err := lookupField(key.SiteTitle)
		So(err, ShouldBeNil)
		So(field.Value, ShouldEqual, "VODo")
	})
}

func TestEnvNames(t *testing.T) {
	Convey("Every key is exposed with the VODO_ prefix", t, func() {
		names := envNames()
		So(names, ShouldContain, "VODO_SERVER_ADDRESS")
		So(names, ShouldContain, "VODO_CATALOG_BASE_URL")
		So(names, ShouldContain, "VODO_CONFIG_PATH")
		So(len(names), ShouldEqual, len(config.EnvExposed)+1)
	})
}
