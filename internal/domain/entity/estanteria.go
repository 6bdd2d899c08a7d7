package entity

// Estanteria es una estantería numerada dentro de un pasillo.
type Estanteria struct {
	Numero  int                `json:"numero"`
	Alturas Coleccion[*Altura] `json:"alturas"`
}

// NuevaEstanteria construye una estantería vacía.
func NuevaEstanteria(numero int) *Estanteria {
	return &Estanteria{Numero: numero}
}

// Num devuelve el número de la estantería (clave entre hermanos).
func (e *Estanteria) Num() int { return e.Numero }
