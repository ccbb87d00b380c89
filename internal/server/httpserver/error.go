package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// InternalErrorBody is the fixed plain-text body returned whenever a handler
// fails. Upstream failure details never leak to scrape clients: the full
// error chain goes to the log (and Sentry, when enabled) instead.
const InternalErrorBody = "Encountered internal server error. Please contact the server administrator to resolve the issue."

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	// Router-produced statuses (404 and friends) pass through untouched;
	// anything else is an internal failure and renders the fixed body.
	if e, ok := err.(*fiber.Error); ok && e.Code < fiber.StatusInternalServerError {
		log.Warn().
			Err(e).
			Str("method", ctx.Method()).
			Str("path", ctx.Path()).
			Int("status", e.Code).
			Msg("request failed")

		ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return ctx.Status(e.Code).SendString(e.Message)
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", fiber.StatusInternalServerError).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(fiber.StatusInternalServerError))
		hub.CaptureException(err)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return ctx.Status(fiber.StatusInternalServerError).SendString(InternalErrorBody)
}
