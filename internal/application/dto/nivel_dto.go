package dto

// Los cuatro niveles numerados comparten los mismos cuerpos de petición; solo
// la ruta identifica al padre.

// CrearNivelRequest alta de un elemento numerado.
type CrearNivelRequest struct {
	Numero int `json:"numero"`
}

// CrearRangoRequest alta en lote del rango [desde, hasta].
type CrearRangoRequest struct {
	Desde int `json:"desde"`
	Hasta int `json:"hasta"`
}

// EditarNivelRequest renumerado de un elemento.
type EditarNivelRequest struct {
	NuevoNumero int `json:"nuevo_numero"`
}

// EliminarNivelesRequest borrado en lote por número.
type EliminarNivelesRequest struct {
	Numeros []int `json:"numeros"`
}

// NivelResponse un elemento numerado con su conteo de hijos directos.
type NivelResponse struct {
	Numero int `json:"numero"`
	Hijos  int `json:"hijos"`
}

// PosicionResponse una posición con su código persistido.
type PosicionResponse struct {
	Numero int    `json:"numero"`
	Codigo string `json:"codigo"`
}
