package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vodo-app/vodo/filesystem"
	"github.com/vodo-app/vodo/key"
	"github.com/vodo-app/vodo/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Nothing is enabled", func() {
			So(Enabled(), ShouldBeFalse)
		})

		Convey("WithFields still returns a usable entry", func() {
			So(func() { WithFields(logrus.Fields{"path": "/shows"}).Info("request") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, true)
		So(Setup(), ShouldBeNil)

		Reset(func() {
			viper.Set(key.LogsWrite, false)
			_ = Setup()
		})

		Convey("Entries land in today's file", func() {
			Infof("fetched show %d", 6771)
			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			content := string(lo.Must(filesystem.API().ReadFile(path)))
			So(strings.Contains(content, "fetched show 6771"), ShouldBeTrue)
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})
	})
}
