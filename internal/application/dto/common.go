package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EliminadosResponse resultado de un borrado en lote.
type EliminadosResponse struct {
	Eliminados int `json:"eliminados"`
}

// ResumenRangoResponse resultado de un alta por rango: números creados y
// números omitidos por existir ya.
type ResumenRangoResponse struct {
	Creados  []int `json:"creados"`
	Omitidos []int `json:"omitidos"`
}
