package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"seichi.click/gamedata-translator/internal/pkg/observability"
	"seichi.click/gamedata-translator/internal/presenter"
	"seichi.click/gamedata-translator/internal/service"
)

type Metrics struct {
	fx.In

	PlayerStatsService *service.PlayerStats
	Presenter          *presenter.Prometheus
}

func RegisterMetrics(app *fiber.App, c Metrics) {
	app.Get("/metrics", c.GetMetrics)
}

// GetMetrics aggregates the player statistics collections of the game data
// server and renders them in the Prometheus text exposition format. The
// response is assembled from scratch on every scrape; nothing is cached
// between requests.
func (c *Metrics) GetMetrics(ctx *fiber.Ctx) error {
	set, err := c.PlayerStatsService.Aggregate(ctx.UserContext())
	if err != nil {
		return err
	}

	body, err := c.Presenter.Present(set)
	if err != nil {
		return err
	}

	observability.RenderBytes.Observe(float64(len(body)))

	ctx.Set(fiber.HeaderContentType, presenter.ContentType)
	return ctx.SendString(body)
}
