// Package scrape implements a one-shot scrape command: it performs a single
// fetch-and-render cycle against the game data server and writes the
// exposition to stdout. Useful for checking connectivity and eyeballing the
// output without a running server.
package scrape

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"

	"seichi.click/gamedata-translator/internal/app/appconfig"
	"seichi.click/gamedata-translator/internal/app/appcontext"
	"seichi.click/gamedata-translator/internal/infra"
	"seichi.click/gamedata-translator/internal/pkg/logger"
	"seichi.click/gamedata-translator/internal/presenter"
	"seichi.click/gamedata-translator/internal/repo"
	"seichi.click/gamedata-translator/internal/service"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "scrape",
		Usage: "fetch all player statistics once and print the rendered exposition",
		Action: func(c *cli.Context) error {
			return run(c.Context)
		},
	}
}

func run(ctx context.Context) error {
	conf, err := appconfig.Parse(appcontext.Declare(appcontext.EnvCLI))
	if err != nil {
		return err
	}
	logger.Configure(conf)

	conn, err := infra.GameData(conf)
	if err != nil {
		return err
	}
	defer conn.Close()

	playerStats := service.NewPlayerStats(repo.NewGameData(infra.GameDataClient(conn)))

	set, err := playerStats.Aggregate(ctx)
	if err != nil {
		return err
	}

	return presenter.NewPrometheus().Render(os.Stdout, set)
}
