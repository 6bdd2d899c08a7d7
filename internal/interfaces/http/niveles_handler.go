package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openwarehouses/almacenes-api/internal/application/dto"
	"github.com/openwarehouses/almacenes-api/internal/application/usecase"
)

// NivelesHandler maneja las peticiones HTTP de los cuatro niveles numerados
// (pasillos, estanterías, alturas y posiciones). Los cuerpos de petición son
// idénticos entre niveles; la ruta anidada identifica al padre.
type NivelesHandler struct {
	uc *usecase.JerarquiaUseCase
}

// NewNivelesHandler construye el handler.
func NewNivelesHandler(uc *usecase.JerarquiaUseCase) *NivelesHandler {
	return &NivelesHandler{uc: uc}
}

func cuerpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// ── pasillos ─────────────────────────────────────────────────────────────────

// ListPasillos godoc
// @Summary      Listar pasillos de un almacén (orden de alta)
// @Tags         pasillos
// @Produce      json
// @Param        almacen  path  string  true  "Nombre del almacén"
// @Success      200  {array}  dto.NivelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen}/pasillos [get]
func (h *NivelesHandler) ListPasillos(c *fiber.Ctx) error {
	almacen, err := paramNombre(c, "almacen")
	if err != nil {
		return responderError(c, err)
	}
	pasillos, err := h.uc.Pasillos(almacen)
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.NivelResponse, 0, len(pasillos))
	for _, p := range pasillos {
		out = append(out, dto.NivelResponse{Numero: p.Numero, Hijos: p.Hijos})
	}
	return c.JSON(out)
}

// CreatePasillo godoc
// @Summary      Crear pasillo
// @Tags         pasillos
// @Security     Bearer
// @Accept       json
// @Param        almacen  path  string  true  "Nombre del almacén"
// @Param        body     body  dto.CrearNivelRequest  true  "numero"
// @Success      201
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen}/pasillos [post]
func (h *NivelesHandler) CreatePasillo(c *fiber.Ctx) error {
	almacen, err := paramNombre(c, "almacen")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.CrearNivelRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.CrearPasillo(almacen, in.Numero); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// CreatePasillosRango godoc
// @Summary      Crear pasillos por rango
// @Tags         pasillos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        almacen  path  string  true  "Nombre del almacén"
// @Param        body     body  dto.CrearRangoRequest  true  "desde, hasta"
// @Success      200  {object}  dto.ResumenRangoResponse
// @Router       /api/almacenes/{almacen}/pasillos/rango [post]
func (h *NivelesHandler) CreatePasillosRango(c *fiber.Ctx) error {
	almacen, err := paramNombre(c, "almacen")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.CrearRangoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	resumen, err := h.uc.CrearPasillosRango(almacen, in.Desde, in.Hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ResumenRangoResponse{Creados: resumen.Creados, Omitidos: resumen.Omitidos})
}

// UpdatePasillo godoc
// @Summary      Renumerar pasillo
// @Tags         pasillos
// @Security     Bearer
// @Accept       json
// @Param        almacen  path  string  true  "Nombre del almacén"
// @Param        pasillo  path  int     true  "Número actual"
// @Param        body     body  dto.EditarNivelRequest  true  "nuevo_numero"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo} [put]
func (h *NivelesHandler) UpdatePasillo(c *fiber.Ctx) error {
	almacen, err := paramNombre(c, "almacen")
	if err != nil {
		return responderError(c, err)
	}
	numero, err := paramNumero(c, "pasillo")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.EditarNivelRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.EditarPasillo(almacen, numero, in.NuevoNumero); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeletePasillos godoc
// @Summary      Eliminar pasillos
// @Tags         pasillos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        almacen  path  string  true  "Nombre del almacén"
// @Param        body     body  dto.EliminarNivelesRequest  true  "numeros"
// @Success      200  {object}  dto.EliminadosResponse
// @Router       /api/almacenes/{almacen}/pasillos [delete]
func (h *NivelesHandler) DeletePasillos(c *fiber.Ctx) error {
	almacen, err := paramNombre(c, "almacen")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.EliminarNivelesRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	eliminados, err := h.uc.EliminarPasillos(almacen, in.Numeros)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.EliminadosResponse{Eliminados: eliminados})
}

// ── estanterías ──────────────────────────────────────────────────────────────

// ListEstanterias godoc
// @Summary      Listar estanterías de un pasillo (orden de alta)
// @Tags         estanterias
// @Produce      json
// @Success      200  {array}  dto.NivelResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias [get]
func (h *NivelesHandler) ListEstanterias(c *fiber.Ctx) error {
	almacen, err := paramNombre(c, "almacen")
	if err != nil {
		return responderError(c, err)
	}
	pasillo, err := paramNumero(c, "pasillo")
	if err != nil {
		return responderError(c, err)
	}
	estanterias, err := h.uc.Estanterias(almacen, pasillo)
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.NivelResponse, 0, len(estanterias))
	for _, e := range estanterias {
		out = append(out, dto.NivelResponse{Numero: e.Numero, Hijos: e.Hijos})
	}
	return c.JSON(out)
}

// CreateEstanteria godoc
// @Summary      Crear estantería
// @Tags         estanterias
// @Security     Bearer
// @Accept       json
// @Success      201
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias [post]
func (h *NivelesHandler) CreateEstanteria(c *fiber.Ctx) error {
	almacen, err := paramNombre(c, "almacen")
	if err != nil {
		return responderError(c, err)
	}
	pasillo, err := paramNumero(c, "pasillo")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.CrearNivelRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.CrearEstanteria(almacen, pasillo, in.Numero); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// CreateEstanteriasRango godoc
// @Summary      Crear estanterías por rango
// @Tags         estanterias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ResumenRangoResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias/rango [post]
func (h *NivelesHandler) CreateEstanteriasRango(c *fiber.Ctx) error {
	almacen, err := paramNombre(c, "almacen")
	if err != nil {
		return responderError(c, err)
	}
	pasillo, err := paramNumero(c, "pasillo")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.CrearRangoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	resumen, err := h.uc.CrearEstanteriasRango(almacen, pasillo, in.Desde, in.Hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ResumenRangoResponse{Creados: resumen.Creados, Omitidos: resumen.Omitidos})
}

// UpdateEstanteria godoc
// @Summary      Renumerar estantería
// @Tags         estanterias
// @Security     Bearer
// @Accept       json
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias/{estanteria} [put]
func (h *NivelesHandler) UpdateEstanteria(c *fiber.Ctx) error {
	almacen, err := paramNombre(c, "almacen")
	if err != nil {
		return responderError(c, err)
	}
	pasillo, err := paramNumero(c, "pasillo")
	if err != nil {
		return responderError(c, err)
	}
	numero, err := paramNumero(c, "estanteria")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.EditarNivelRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.EditarEstanteria(almacen, pasillo, numero, in.NuevoNumero); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteEstanterias godoc
// @Summary      Eliminar estanterías
// @Tags         estanterias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.EliminadosResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias [delete]
func (h *NivelesHandler) DeleteEstanterias(c *fiber.Ctx) error {
	almacen, err := paramNombre(c, "almacen")
	if err != nil {
		return responderError(c, err)
	}
	pasillo, err := paramNumero(c, "pasillo")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.EliminarNivelesRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	eliminados, err := h.uc.EliminarEstanterias(almacen, pasillo, in.Numeros)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.EliminadosResponse{Eliminados: eliminados})
}

// ── alturas ──────────────────────────────────────────────────────────────────

// ListAlturas godoc
// @Summary      Listar alturas de una estantería (orden de alta)
// @Tags         alturas
// @Produce      json
// @Success      200  {array}  dto.NivelResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias/{estanteria}/alturas [get]
func (h *NivelesHandler) ListAlturas(c *fiber.Ctx) error {
	almacen, pasillo, estanteria, err := rutaEstanteria(c)
	if err != nil {
		return responderError(c, err)
	}
	alturas, err := h.uc.Alturas(almacen, pasillo, estanteria)
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.NivelResponse, 0, len(alturas))
	for _, a := range alturas {
		out = append(out, dto.NivelResponse{Numero: a.Numero, Hijos: a.Hijos})
	}
	return c.JSON(out)
}

// CreateAltura godoc
// @Summary      Crear altura
// @Tags         alturas
// @Security     Bearer
// @Accept       json
// @Success      201
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias/{estanteria}/alturas [post]
func (h *NivelesHandler) CreateAltura(c *fiber.Ctx) error {
	almacen, pasillo, estanteria, err := rutaEstanteria(c)
	if err != nil {
		return responderError(c, err)
	}
	var in dto.CrearNivelRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.CrearAltura(almacen, pasillo, estanteria, in.Numero); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// CreateAlturasRango godoc
// @Summary      Crear alturas por rango
// @Tags         alturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ResumenRangoResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias/{estanteria}/alturas/rango [post]
func (h *NivelesHandler) CreateAlturasRango(c *fiber.Ctx) error {
	almacen, pasillo, estanteria, err := rutaEstanteria(c)
	if err != nil {
		return responderError(c, err)
	}
	var in dto.CrearRangoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	resumen, err := h.uc.CrearAlturasRango(almacen, pasillo, estanteria, in.Desde, in.Hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ResumenRangoResponse{Creados: resumen.Creados, Omitidos: resumen.Omitidos})
}

// UpdateAltura godoc
// @Summary      Renumerar altura
// @Tags         alturas
// @Security     Bearer
// @Accept       json
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias/{estanteria}/alturas/{altura} [put]
func (h *NivelesHandler) UpdateAltura(c *fiber.Ctx) error {
	almacen, pasillo, estanteria, err := rutaEstanteria(c)
	if err != nil {
		return responderError(c, err)
	}
	numero, err := paramNumero(c, "altura")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.EditarNivelRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.EditarAltura(almacen, pasillo, estanteria, numero, in.NuevoNumero); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAlturas godoc
// @Summary      Eliminar alturas
// @Tags         alturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.EliminadosResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias/{estanteria}/alturas [delete]
func (h *NivelesHandler) DeleteAlturas(c *fiber.Ctx) error {
	almacen, pasillo, estanteria, err := rutaEstanteria(c)
	if err != nil {
		return responderError(c, err)
	}
	var in dto.EliminarNivelesRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	eliminados, err := h.uc.EliminarAlturas(almacen, pasillo, estanteria, in.Numeros)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.EliminadosResponse{Eliminados: eliminados})
}

// ── posiciones ───────────────────────────────────────────────────────────────

// ListPosiciones godoc
// @Summary      Listar posiciones de una altura con su código (orden de alta)
// @Tags         posiciones
// @Produce      json
// @Success      200  {array}  dto.PosicionResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias/{estanteria}/alturas/{altura}/posiciones [get]
func (h *NivelesHandler) ListPosiciones(c *fiber.Ctx) error {
	almacen, pasillo, estanteria, altura, err := rutaAltura(c)
	if err != nil {
		return responderError(c, err)
	}
	posiciones, err := h.uc.Posiciones(almacen, pasillo, estanteria, altura)
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.PosicionResponse, 0, len(posiciones))
	for _, p := range posiciones {
		out = append(out, dto.PosicionResponse{Numero: p.Numero, Codigo: p.Codigo})
	}
	return c.JSON(out)
}

// CreatePosicion godoc
// @Summary      Crear posición (el código se deriva al crearla)
// @Tags         posiciones
// @Security     Bearer
// @Accept       json
// @Success      201
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias/{estanteria}/alturas/{altura}/posiciones [post]
func (h *NivelesHandler) CreatePosicion(c *fiber.Ctx) error {
	almacen, pasillo, estanteria, altura, err := rutaAltura(c)
	if err != nil {
		return responderError(c, err)
	}
	var in dto.CrearNivelRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.CrearPosicion(almacen, pasillo, estanteria, altura, in.Numero); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// CreatePosicionesRango godoc
// @Summary      Crear posiciones por rango
// @Tags         posiciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ResumenRangoResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias/{estanteria}/alturas/{altura}/posiciones/rango [post]
func (h *NivelesHandler) CreatePosicionesRango(c *fiber.Ctx) error {
	almacen, pasillo, estanteria, altura, err := rutaAltura(c)
	if err != nil {
		return responderError(c, err)
	}
	var in dto.CrearRangoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	resumen, err := h.uc.CrearPosicionesRango(almacen, pasillo, estanteria, altura, in.Desde, in.Hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ResumenRangoResponse{Creados: resumen.Creados, Omitidos: resumen.Omitidos})
}

// UpdatePosicion godoc
// @Summary      Renumerar posición (re-deriva su código)
// @Tags         posiciones
// @Security     Bearer
// @Accept       json
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias/{estanteria}/alturas/{altura}/posiciones/{posicion} [put]
func (h *NivelesHandler) UpdatePosicion(c *fiber.Ctx) error {
	almacen, pasillo, estanteria, altura, err := rutaAltura(c)
	if err != nil {
		return responderError(c, err)
	}
	numero, err := paramNumero(c, "posicion")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.EditarNivelRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.EditarPosicion(almacen, pasillo, estanteria, altura, numero, in.NuevoNumero); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeletePosiciones godoc
// @Summary      Eliminar posiciones
// @Tags         posiciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.EliminadosResponse
// @Router       /api/almacenes/{almacen}/pasillos/{pasillo}/estanterias/{estanteria}/alturas/{altura}/posiciones [delete]
func (h *NivelesHandler) DeletePosiciones(c *fiber.Ctx) error {
	almacen, pasillo, estanteria, altura, err := rutaAltura(c)
	if err != nil {
		return responderError(c, err)
	}
	var in dto.EliminarNivelesRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	eliminados, err := h.uc.EliminarPosiciones(almacen, pasillo, estanteria, altura, in.Numeros)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.EliminadosResponse{Eliminados: eliminados})
}

// rutaEstanteria resuelve los parámetros de ruta hasta estantería.
func rutaEstanteria(c *fiber.Ctx) (almacen string, pasillo, estanteria int, err error) {
	if almacen, err = paramNombre(c, "almacen"); err != nil {
		return
	}
	if pasillo, err = paramNumero(c, "pasillo"); err != nil {
		return
	}
	estanteria, err = paramNumero(c, "estanteria")
	return
}

// rutaAltura resuelve los parámetros de ruta hasta altura.
func rutaAltura(c *fiber.Ctx) (almacen string, pasillo, estanteria, altura int, err error) {
	if almacen, pasillo, estanteria, err = rutaEstanteria(c); err != nil {
		return
	}
	altura, err = paramNumero(c, "altura")
	return
}
