package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dolphnet-api/pkg/logger"
)

// httpObserver registra peticiones terminadas. Lo implementa *metrics.Metrics.
type httpObserver interface {
	ObserveHTTP(route, method string, status int, elapsed time.Duration)
}

// Instrument mide cada petición por patrón de ruta, método y código de estado,
// y deja una línea debug por petición.
func Instrument(obs httpObserver, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		elapsed := time.Since(start)
		obs.ObserveHTTP(c.Route().Path, c.Method(), status, elapsed)
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("elapsed", elapsed).
			Msg("petición atendida")
		return err
	}
}
