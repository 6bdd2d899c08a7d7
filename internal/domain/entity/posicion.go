package entity

// Posicion es la hoja de la jerarquía: un hueco físico numerado dentro de una
// altura. Codigo se fija al crear o renumerar la posición con los números de
// sus tres ancestros en ese momento y se persiste tal cual (no se recalcula
// al cargar).
type Posicion struct {
	Numero int    `json:"numero"`
	Codigo string `json:"codigo"`
}

// NuevaPosicion construye una posición con su código ya derivado.
func NuevaPosicion(numero int, codigo string) *Posicion {
	return &Posicion{Numero: numero, Codigo: codigo}
}

// Num devuelve el número de la posición (clave entre hermanos).
func (p *Posicion) Num() int { return p.Numero }
