package version

import (
	"context"
	"fmt"
	"time"

	"github.com/vodo-app/vodo/color"
	"github.com/vodo-app/vodo/constant"
	"github.com/vodo-app/vodo/icon"
	"github.com/vodo-app/vodo/key"
	"github.com/vodo-app/vodo/style"
	"github.com/vodo-app/vodo/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release than the running one is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	version, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/vodo-app/vodo/releases/tag/v"+version),
	)

}
