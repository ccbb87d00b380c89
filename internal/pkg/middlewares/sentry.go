package middlewares

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"seichi.click/gamedata-translator/internal/constant"
)

func EnrichSentry() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if hub := fibersentry.GetHubFromContext(c); hub != nil {
			if id, ok := c.Locals(constant.ContextKeyRequestID).(string); ok {
				hub.Scope().SetTag("request_id", id)
			}
		}

		var r http.Request
		if err := fasthttpadaptor.ConvertRequest(c.Context(), &r, true); err != nil {
			return err
		}
		rootSpan := sentry.StartSpan(c.Context(), "translator", sentry.ContinueFromRequest(&r))
		defer rootSpan.Finish()

		return c.Next()
	}
}
