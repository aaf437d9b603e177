package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dolphnet-api/internal/application/dto"
	"github.com/jhoicas/dolphnet-api/internal/application/notify"
	"github.com/jhoicas/dolphnet-api/internal/domain"
	"github.com/jhoicas/dolphnet-api/internal/domain/navigation"
)

// writeError traduce un error de caso de uso a la respuesta HTTP.
// Si el caso de uso generó un aviso para el usuario, viaja en la respuesta.
func writeError(c *fiber.Ctx, err error) error {
	body := dto.ErrorResponse{Message: err.Error()}
	var status int

	var ne *notify.Error
	if errors.As(err, &ne) {
		body.Notification = notify.ToDTO(ne.Notification)
	}

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		status, body.Code, body.Fields = fiber.StatusBadRequest, "VALIDATION", ve.Fields
	case errors.Is(err, domain.ErrInvalidInput):
		status, body.Code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrSessionRequired):
		status, body.Code, body.RedirectTo = fiber.StatusUnauthorized, "SESSION_REQUIRED", navigation.PathLogin
		body.Message = "sesión requerida"
	case errors.Is(err, domain.ErrForbidden):
		status, body.Code, body.RedirectTo = fiber.StatusForbidden, "FORBIDDEN", navigation.PathLogin
	case errors.Is(err, domain.ErrNotFound):
		status, body.Code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidTransition):
		status, body.Code = fiber.StatusConflict, "INVALID_TRANSITION"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		status, body.Code = fiber.StatusServiceUnavailable, "TIMEOUT"
	default:
		status, body.Code = fiber.StatusInternalServerError, "INTERNAL"
	}
	return c.Status(status).JSON(body)
}

// invalidBody respuesta para un cuerpo JSON que no se pudo leer.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// NotFound catch-all: cualquier ruta no registrada.
//
// @Summary      Ruta inexistente
// @Tags         pages
// @Produce      json
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /{path} [get]
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Code:    "NOT_FOUND",
		Message: "ruta no encontrada",
		Path:    c.Path(),
	})
}
