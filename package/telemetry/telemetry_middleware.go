package telemetry

import (
	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/attribute"
)

// Middleware traces preview server requests with the shared tracer.
func (r *Telemetry) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// * start span
		ctx, span := r.Tracer.Start(c.Context(), "glyph.preview.request")
		defer span.End()
		c.SetContext(ctx)

		// * set attributes
		span.SetAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.url", c.OriginalURL()),
			attribute.String("http.user_agent", c.Get("User-Agent")),
		)

		// * proceed to next
		err := c.Next()

		span.SetAttributes(attribute.Int("http.status_code", c.Response().StatusCode()))
		return err
	}
}
