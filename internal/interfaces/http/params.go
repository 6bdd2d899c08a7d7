package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/openwarehouses/almacenes-api/internal/domain"
)

// paramNombre extrae y desescapa un parámetro de ruta textual (los nombres de
// almacén pueden llevar espacios y acentos).
func paramNombre(c *fiber.Ctx, clave string) (string, error) {
	crudo := c.Params(clave)
	nombre, err := url.PathUnescape(crudo)
	if err != nil {
		nombre = crudo
	}
	if strings.TrimSpace(nombre) == "" {
		return "", domain.ErrNombreInvalido
	}
	return nombre, nil
}

// paramNumero extrae un parámetro de ruta numérico positivo.
func paramNumero(c *fiber.Ctx, clave string) (int, error) {
	n, err := c.ParamsInt(clave)
	if err != nil || n <= 0 {
		return 0, domain.ErrNumeroInvalido
	}
	return n, nil
}
