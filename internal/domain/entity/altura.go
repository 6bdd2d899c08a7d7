package entity

// Altura es un nivel de altura numerado dentro de una estantería.
type Altura struct {
	Numero     int                  `json:"numero"`
	Posiciones Coleccion[*Posicion] `json:"posiciones"`
}

// NuevaAltura construye una altura vacía.
func NuevaAltura(numero int) *Altura {
	return &Altura{Numero: numero}
}

// Num devuelve el número de la altura (clave entre hermanos).
func (a *Altura) Num() int { return a.Numero }
