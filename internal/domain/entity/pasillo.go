package entity

// Pasillo es un pasillo numerado dentro de un almacén.
type Pasillo struct {
	Numero      int                    `json:"numero"`
	Estanterias Coleccion[*Estanteria] `json:"estanterias"`
}

// NuevoPasillo construye un pasillo vacío.
func NuevoPasillo(numero int) *Pasillo {
	return &Pasillo{Numero: numero}
}

// Num devuelve el número del pasillo (clave entre hermanos).
func (p *Pasillo) Num() int { return p.Numero }
