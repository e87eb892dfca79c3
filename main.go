// Package main is the entry point for the colordict application.
package main

import (
	"github.com/colordict-cli/colordict/cmd"
	"github.com/colordict-cli/colordict/config"
	"github.com/colordict-cli/colordict/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
