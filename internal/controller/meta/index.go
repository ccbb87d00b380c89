package meta

import "github.com/gofiber/fiber/v2"

func RegisterIndex(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"@link":   "https://seichi.click/gamedata-translator",
			"message": "Seichi game data to Prometheus translator. Player statistics are exposed at /metrics.",
		})
	})
}
