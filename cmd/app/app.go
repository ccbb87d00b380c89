package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"seichi.click/gamedata-translator/cmd/app/scrape"
	"seichi.click/gamedata-translator/cmd/app/server"
	"seichi.click/gamedata-translator/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "gamedata-translator",
		Description: "Aggregates the per-player statistics of the seichi game data server and serves them in the Prometheus text exposition format. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			scrape.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
