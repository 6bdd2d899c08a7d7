package entity

// Etiqueta es la proyección imprimible de una posición junto con su
// ascendencia. Es efímera: se construye al aplanar la jerarquía para imprimir
// y nunca se persiste. El código se deriva de los números de ancestro vivos
// en el momento del aplanado.
type Etiqueta struct {
	Codigo     string `json:"codigo"`
	Pasillo    int    `json:"pasillo"`
	Estanteria int    `json:"estanteria"`
	Altura     int    `json:"altura"`
	Posicion   int    `json:"posicion"`
}

// TamanoEtiqueta clase de tamaño de la página de etiqueta.
type TamanoEtiqueta string

// Tamaños disponibles, con su rectángulo de página en puntos PDF.
const (
	TamanoSmall  TamanoEtiqueta = "small"  // 150×75
	TamanoMedium TamanoEtiqueta = "medium" // 250×120
	TamanoLarge  TamanoEtiqueta = "large"  // 400×200
)

var dimensiones = map[TamanoEtiqueta][2]float64{
	TamanoSmall:  {150, 75},
	TamanoMedium: {250, 120},
	TamanoLarge:  {400, 200},
}

// Valido indica si el tamaño es uno de los conocidos.
func (t TamanoEtiqueta) Valido() bool {
	_, ok := dimensiones[t]
	return ok
}

// Dimensiones devuelve (ancho, alto) de la página en puntos. Para un tamaño
// desconocido devuelve el rectángulo small; los puntos de entrada validan
// antes con Valido.
func (t TamanoEtiqueta) Dimensiones() (ancho, alto float64) {
	d, ok := dimensiones[t]
	if !ok {
		d = dimensiones[TamanoSmall]
	}
	return d[0], d[1]
}
