package main

import (
	"github.com/samber/lo"
	"github.com/vodo-app/vodo/cmd"
	"github.com/vodo-app/vodo/config"
	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/network"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	network.Setup()

	cmd.Execute()
}
