package dto

// CrearAlmacenRequest alta de un almacén.
type CrearAlmacenRequest struct {
	Nombre string `json:"nombre"`
}

// EditarAlmacenRequest renombrado de un almacén.
type EditarAlmacenRequest struct {
	NuevoNombre string `json:"nuevo_nombre"`
}

// EliminarAlmacenesRequest borrado en lote por nombre.
type EliminarAlmacenesRequest struct {
	Nombres []string `json:"nombres"`
}

// AlmacenResponse un almacén en listados.
type AlmacenResponse struct {
	Nombre   string `json:"nombre"`
	Pasillos int    `json:"pasillos"`
}
