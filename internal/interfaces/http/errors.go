package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/openwarehouses/almacenes-api/internal/application/dto"
	"github.com/openwarehouses/almacenes-api/internal/domain"
)

// responderError traduce un error de dominio a su respuesta HTTP. Los errores
// no reconocidos son 500.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrSinPosiciones):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_POSITIONS", Message: "No se han encontrado posiciones para imprimir."})
	case errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un elemento con esa clave"})
	case errors.Is(err, domain.ErrSinSeleccion):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SELECTION", Message: "selecciona al menos un elemento para imprimir"})
	case errors.Is(err, domain.ErrNumeroInvalido),
		errors.Is(err, domain.ErrNombreInvalido),
		errors.Is(err, domain.ErrRangoInvalido),
		errors.Is(err, domain.ErrCopiasInvalidas),
		errors.Is(err, domain.ErrTamanoInvalido),
		errors.Is(err, domain.ErrPinInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrPinIncorrecto):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pin incorrecto"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
