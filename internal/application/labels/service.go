// Package labels genera etiquetas imprimibles a partir de cualquier punto de
// la jerarquía (almacén, pasillo, estantería, altura o posición) y orquesta su
// impresión en PDF. El aplanado es recursivo en profundidad y respeta el orden
// de inserción de cada nivel.
package labels

import (
	"fmt"

	"github.com/openwarehouses/almacenes-api/internal/domain"
	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
)

// CodigoPara deriva el código puntuado de una posición a partir de los números
// de sus ancestros, en orden pasillo.estantería.altura.posición. Pura y total:
// no valida signo; los llamantes validan positividad antes de crear entidades.
func CodigoPara(pasillo, estanteria, altura, posicion int) string {
	return fmt.Sprintf("%d.%d.%d.%d", pasillo, estanteria, altura, posicion)
}

// ParaAlmacen genera etiquetas para todas las posiciones de un almacén.
func ParaAlmacen(a *entity.Almacen) []entity.Etiqueta {
	etiquetas := []entity.Etiqueta{}
	for _, p := range a.Pasillos.Items() {
		etiquetas = append(etiquetas, ParaPasillo(p)...)
	}
	return etiquetas
}

// ParaPasillo genera etiquetas para todas las posiciones de un pasillo.
func ParaPasillo(p *entity.Pasillo) []entity.Etiqueta {
	etiquetas := []entity.Etiqueta{}
	for _, e := range p.Estanterias.Items() {
		etiquetas = append(etiquetas, ParaEstanteria(p.Numero, e)...)
	}
	return etiquetas
}

// ParaEstanteria genera etiquetas para todas las posiciones de una estantería.
func ParaEstanteria(numPasillo int, e *entity.Estanteria) []entity.Etiqueta {
	etiquetas := []entity.Etiqueta{}
	for _, a := range e.Alturas.Items() {
		etiquetas = append(etiquetas, ParaAltura(numPasillo, e.Numero, a)...)
	}
	return etiquetas
}

// ParaAltura genera etiquetas para todas las posiciones de una altura.
func ParaAltura(numPasillo, numEstanteria int, a *entity.Altura) []entity.Etiqueta {
	etiquetas := []entity.Etiqueta{}
	for _, p := range a.Posiciones.Items() {
		etiquetas = append(etiquetas, ParaPosicion(numPasillo, numEstanteria, a.Numero, p))
	}
	return etiquetas
}

// ParaPosicion genera la etiqueta de una posición individual. El código se
// deriva de los números de ancestro vivos, no del campo Codigo persistido,
// para que un renumerado posterior de ancestros no imprima códigos obsoletos.
func ParaPosicion(numPasillo, numEstanteria, numAltura int, p *entity.Posicion) entity.Etiqueta {
	return entity.Etiqueta{
		Codigo:     CodigoPara(numPasillo, numEstanteria, numAltura, p.Numero),
		Pasillo:    numPasillo,
		Estanteria: numEstanteria,
		Altura:     numAltura,
		Posicion:   p.Numero,
	}
}

// GenerarParaSeleccion es el punto de entrada único desde "el usuario
// seleccionó N nodos" hasta la lista plana de etiquetas, independiente del
// nivel que inició la impresión.
//
// Selección vacía devuelve ErrSinSeleccion sin invocar el generador. Si la
// selección aplana a cero etiquetas (nodos sin posiciones debajo) devuelve
// ErrSinPosiciones. Los resultados se concatenan en el orden de la selección,
// sin deduplicar.
func GenerarParaSeleccion[T any](seleccion []T, generador func(T) []entity.Etiqueta) ([]entity.Etiqueta, error) {
	if len(seleccion) == 0 {
		return nil, domain.ErrSinSeleccion
	}
	todas := []entity.Etiqueta{}
	for _, item := range seleccion {
		todas = append(todas, generador(item)...)
	}
	if len(todas) == 0 {
		return nil, domain.ErrSinPosiciones
	}
	return todas, nil
}
