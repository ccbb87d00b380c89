package appconfig

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"seichi.click/gamedata-translator/internal/app/appcontext"
	"seichi.click/gamedata-translator/internal/pkg/projectpath"
)

// Parse loads the process configuration from the environment, preceded by a
// best-effort .env load from the repository root. Variable names carry no
// application prefix: the game data endpoint key is shared verbatim with the
// deployment manifests of the servers this translator reads from.
func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load(filepath.Join(projectpath.Root, ".env"))
	if err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process("", &config)
	if err != nil {
		_ = envconfig.Usage("", &config)
		return nil, fmt.Errorf("failed to parse configuration: %w. More info on how to configure this translator is located at https://pkg.go.dev/seichi.click/gamedata-translator/internal/app/appconfig#Config", err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
