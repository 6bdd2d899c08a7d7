package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openwarehouses/almacenes-api/internal/application/auth"
	"github.com/openwarehouses/almacenes-api/internal/application/dto"
)

// AuthHandler maneja el intercambio de PIN por token y el cambio de PIN.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Entrar godoc
// @Summary      Entrar al modo edición
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PinRequest  true  "pin"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/pin [post]
func (h *AuthHandler) Entrar(c *fiber.Ctx) error {
	var in dto.PinRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	token, err := h.uc.Entrar(in.Pin)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.TokenResponse{Token: token})
}

// CambiarPin godoc
// @Summary      Cambiar el PIN de edición
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CambiarPinRequest  true  "nuevo_pin"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/pin [put]
func (h *AuthHandler) CambiarPin(c *fiber.Ctx) error {
	var in dto.CambiarPinRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CambiarPin(in.NuevoPin); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
