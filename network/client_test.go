package network

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vodo-app/vodo/key"
)

func TestSetup(t *testing.T) {
	Convey("Given a configured timeout", t, func() {
		viper.Set(key.NetworkTimeout, 5)

		Convey("Setup applies it to the shared client", func() {
			Setup()
			So(Client.Timeout, ShouldEqual, 5*time.Second)
		})
	})

	Convey("New clones the default transport", t, func() {
		c := New(time.Second)
		So(c.Transport, ShouldNotBeNil)
		So(c.Timeout, ShouldEqual, time.Second)
	})
}
