package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	sirisxcli "github.com/reoring/sirisx/internal/cli"
)

func main() {
	app := sirisxcli.App(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if err == nil {
		return
	}
	var exit cli.ExitCoder
	if errors.As(err, &exit) {
		if msg := exit.Error(); msg != "" {
			log.Error().Msg(msg)
		}
		os.Exit(exit.ExitCode())
	}
	log.Fatal().Err(err).Send()
}
