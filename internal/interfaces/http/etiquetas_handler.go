package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/openwarehouses/almacenes-api/internal/application/dto"
	"github.com/openwarehouses/almacenes-api/internal/application/labels"
	"github.com/openwarehouses/almacenes-api/internal/application/usecase"
	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
)

// EtiquetasHandler maneja la impresión de etiquetas y el reporte de posiciones.
type EtiquetasHandler struct {
	jerarquia *usecase.JerarquiaUseCase
	imprimir  *labels.ImprimirUseCase
	reporte   *labels.ReporteUseCase
	opciones  labels.OpcionesRender // simbología por defecto cuando la petición no la fija
}

// NewEtiquetasHandler construye el handler.
func NewEtiquetasHandler(jerarquia *usecase.JerarquiaUseCase, imprimir *labels.ImprimirUseCase, reporte *labels.ReporteUseCase, opciones labels.OpcionesRender) *EtiquetasHandler {
	return &EtiquetasHandler{jerarquia: jerarquia, imprimir: imprimir, reporte: reporte, opciones: opciones}
}

// Imprimir godoc
// @Summary      Generar el PDF de etiquetas de una selección
// @Description  Una página por etiqueta y copia, en orden etiqueta-luego-copia. Devuelve el PDF con X-Job-ID y X-Paginas.
// @Tags         etiquetas
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.ImprimirRequest  true  "selección, copias, tamano, qr, barras"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/etiquetas/imprimir [post]
func (h *EtiquetasHandler) Imprimir(c *fiber.Ctx) error {
	var in dto.ImprimirRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}

	switch in.Nivel {
	case "almacen", "pasillo", "estanteria", "altura", "posicion":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: fmt.Sprintf("nivel desconocido %q", in.Nivel)})
	}

	etiquetas, err := h.resolverSeleccion(in)
	if err != nil {
		return responderError(c, err)
	}

	copias := in.Copias
	if copias == 0 {
		copias = 1
	}
	tamano := entity.TamanoEtiqueta(in.Tamano)
	if in.Tamano == "" {
		tamano = entity.TamanoMedium
	}
	opts := h.opciones
	if in.QR != nil {
		opts.QR = *in.QR
	}
	if in.Barras != nil {
		opts.Barras = *in.Barras
	}

	resultado, err := h.imprimir.Imprimir(etiquetas, copias, tamano, opts)
	if err != nil {
		return responderError(c, err)
	}

	c.Set("X-Job-ID", resultado.JobID)
	c.Set("X-Paginas", strconv.Itoa(resultado.Paginas))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="etiquetas_%s.pdf"`, tamano))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(resultado.Contenido)
}

// resolverSeleccion traduce la petición al aplanado del nivel indicado.
func (h *EtiquetasHandler) resolverSeleccion(in dto.ImprimirRequest) ([]entity.Etiqueta, error) {
	switch in.Nivel {
	case "almacen":
		return h.jerarquia.EtiquetasParaAlmacenes(in.Almacenes)
	case "pasillo":
		return h.jerarquia.EtiquetasParaPasillos(in.Almacen, in.Numeros)
	case "estanteria":
		return h.jerarquia.EtiquetasParaEstanterias(in.Almacen, in.Pasillo, in.Numeros)
	case "altura":
		return h.jerarquia.EtiquetasParaAlturas(in.Almacen, in.Pasillo, in.Estanteria, in.Numeros)
	default: // posicion, validado arriba
		return h.jerarquia.EtiquetasParaPosiciones(in.Almacen, in.Pasillo, in.Estanteria, in.Altura, in.Numeros)
	}
}

// Reporte godoc
// @Summary      Listado PDF de todas las posiciones de un almacén
// @Tags         etiquetas
// @Produce      application/pdf
// @Param        nombre  path  string  true  "Nombre del almacén"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{nombre}/reporte [get]
func (h *EtiquetasHandler) Reporte(c *fiber.Ctx) error {
	nombre, err := paramNombre(c, "nombre")
	if err != nil {
		return responderError(c, err)
	}
	canonico, etiquetas, err := h.jerarquia.AplanarAlmacen(nombre)
	if err != nil {
		return responderError(c, err)
	}
	contenido, err := h.reporte.Generar(canonico, etiquetas)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reporte_%s.pdf"`, canonico))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(contenido)
}
