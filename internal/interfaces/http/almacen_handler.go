package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openwarehouses/almacenes-api/internal/application/dto"
	"github.com/openwarehouses/almacenes-api/internal/application/usecase"
)

// AlmacenHandler maneja las peticiones HTTP del nivel almacén.
type AlmacenHandler struct {
	uc *usecase.JerarquiaUseCase
}

// NewAlmacenHandler construye el handler.
func NewAlmacenHandler(uc *usecase.JerarquiaUseCase) *AlmacenHandler {
	return &AlmacenHandler{uc: uc}
}

// List godoc
// @Summary      Listar almacenes (orden alfabético español)
// @Tags         almacenes
// @Produce      json
// @Success      200  {array}  dto.AlmacenResponse
// @Router       /api/almacenes [get]
func (h *AlmacenHandler) List(c *fiber.Ctx) error {
	almacenes := h.uc.Almacenes()
	out := make([]dto.AlmacenResponse, 0, len(almacenes))
	for _, a := range almacenes {
		out = append(out, dto.AlmacenResponse{Nombre: a.Nombre, Pasillos: a.Pasillos})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear almacén
// @Tags         almacenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearAlmacenRequest  true  "nombre"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/almacenes [post]
func (h *AlmacenHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearAlmacenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CrearAlmacen(in.Nombre); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Update godoc
// @Summary      Renombrar almacén
// @Tags         almacenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        nombre  path  string  true  "Nombre actual"
// @Param        body    body  dto.EditarAlmacenRequest  true  "nuevo_nombre"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{nombre} [put]
func (h *AlmacenHandler) Update(c *fiber.Ctx) error {
	nombre, err := paramNombre(c, "nombre")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.EditarAlmacenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.EditarAlmacen(nombre, in.NuevoNombre); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar almacenes
// @Tags         almacenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EliminarAlmacenesRequest  true  "nombres"
// @Success      200   {object}  dto.EliminadosResponse
// @Router       /api/almacenes [delete]
func (h *AlmacenHandler) Delete(c *fiber.Ctx) error {
	var in dto.EliminarAlmacenesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	eliminados := h.uc.EliminarAlmacenes(in.Nombres)
	return c.JSON(dto.EliminadosResponse{Eliminados: eliminados})
}
