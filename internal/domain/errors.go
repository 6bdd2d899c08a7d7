package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce a
// códigos de estado; los casos de uso los devuelven sin envolver en texto
// orientado al usuario.
var (
	ErrNoEncontrado    = errors.New("recurso no encontrado")
	ErrDuplicado       = errors.New("ya existe un elemento con esa clave")
	ErrNumeroInvalido  = errors.New("el número debe ser positivo")
	ErrNombreInvalido  = errors.New("el nombre no puede estar en blanco")
	ErrRangoInvalido   = errors.New("el inicio del rango no puede ser mayor que el fin")
	ErrSinSeleccion    = errors.New("no hay elementos seleccionados")
	ErrSinPosiciones   = errors.New("no se han encontrado posiciones para imprimir")
	ErrCopiasInvalidas = errors.New("el número de copias debe ser positivo")
	ErrTamanoInvalido  = errors.New("tamaño de etiqueta desconocido")
	ErrPinIncorrecto   = errors.New("pin incorrecto")
	ErrPinInvalido     = errors.New("el pin no puede estar en blanco")
)
