package usecase

import (
	"github.com/openwarehouses/almacenes-api/internal/application/labels"
	"github.com/openwarehouses/almacenes-api/internal/domain"
	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
)

// Resolución de selecciones a etiquetas. Cada método toma el candado una sola
// vez, resuelve los nodos seleccionados y los aplana con el servicio de
// etiquetas; los números de ancestro se capturan en el momento del aplanado.
//
// Selección vacía devuelve domain.ErrSinSeleccion; una selección que aplana a
// cero posiciones devuelve domain.ErrSinPosiciones. Un nodo seleccionado que
// no existe es domain.ErrNoEncontrado.

// AplanarAlmacen aplana un almacén completo bajo el candado y devuelve su
// nombre canónico junto con las etiquetas. A diferencia de la impresión, un
// almacén sin posiciones no es un error: el reporte vacío es válido.
func (uc *JerarquiaUseCase) AplanarAlmacen(nombre string) (string, []entity.Etiqueta, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.almacen(nombre)
	if err != nil {
		return "", nil, err
	}
	return a.Nombre, labels.ParaAlmacen(a), nil
}

// EtiquetasParaAlmacenes aplana los almacenes seleccionados por nombre.
func (uc *JerarquiaUseCase) EtiquetasParaAlmacenes(nombres []string) ([]entity.Etiqueta, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	seleccion := make([]*entity.Almacen, 0, len(nombres))
	for _, n := range nombres {
		a, err := uc.almacen(n)
		if err != nil {
			return nil, err
		}
		seleccion = append(seleccion, a)
	}
	return labels.GenerarParaSeleccion(seleccion, labels.ParaAlmacen)
}

// EtiquetasParaPasillos aplana los pasillos seleccionados de un almacén.
func (uc *JerarquiaUseCase) EtiquetasParaPasillos(nombreAlmacen string, numeros []int) ([]entity.Etiqueta, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.almacen(nombreAlmacen); err != nil {
		return nil, err
	}
	seleccion := make([]*entity.Pasillo, 0, len(numeros))
	for _, n := range numeros {
		p, err := uc.pasillo(nombreAlmacen, n)
		if err != nil {
			return nil, err
		}
		seleccion = append(seleccion, p)
	}
	return labels.GenerarParaSeleccion(seleccion, labels.ParaPasillo)
}

// EtiquetasParaEstanterias aplana las estanterías seleccionadas de un pasillo.
func (uc *JerarquiaUseCase) EtiquetasParaEstanterias(nombreAlmacen string, numPasillo int, numeros []int) ([]entity.Etiqueta, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.pasillo(nombreAlmacen, numPasillo); err != nil {
		return nil, err
	}
	seleccion := make([]*entity.Estanteria, 0, len(numeros))
	for _, n := range numeros {
		e, err := uc.estanteria(nombreAlmacen, numPasillo, n)
		if err != nil {
			return nil, err
		}
		seleccion = append(seleccion, e)
	}
	return labels.GenerarParaSeleccion(seleccion, func(e *entity.Estanteria) []entity.Etiqueta {
		return labels.ParaEstanteria(numPasillo, e)
	})
}

// EtiquetasParaAlturas aplana las alturas seleccionadas de una estantería.
func (uc *JerarquiaUseCase) EtiquetasParaAlturas(nombreAlmacen string, numPasillo, numEstanteria int, numeros []int) ([]entity.Etiqueta, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.estanteria(nombreAlmacen, numPasillo, numEstanteria); err != nil {
		return nil, err
	}
	seleccion := make([]*entity.Altura, 0, len(numeros))
	for _, n := range numeros {
		a, err := uc.altura(nombreAlmacen, numPasillo, numEstanteria, n)
		if err != nil {
			return nil, err
		}
		seleccion = append(seleccion, a)
	}
	return labels.GenerarParaSeleccion(seleccion, func(a *entity.Altura) []entity.Etiqueta {
		return labels.ParaAltura(numPasillo, numEstanteria, a)
	})
}

// EtiquetasParaPosiciones aplana las posiciones seleccionadas de una altura.
func (uc *JerarquiaUseCase) EtiquetasParaPosiciones(nombreAlmacen string, numPasillo, numEstanteria, numAltura int, numeros []int) ([]entity.Etiqueta, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	alt, err := uc.altura(nombreAlmacen, numPasillo, numEstanteria, numAltura)
	if err != nil {
		return nil, err
	}
	seleccion := make([]*entity.Posicion, 0, len(numeros))
	for _, n := range numeros {
		p, ok := alt.Posiciones.PorNumero(n)
		if !ok {
			return nil, domain.ErrNoEncontrado
		}
		seleccion = append(seleccion, p)
	}
	return labels.GenerarParaSeleccion(seleccion, func(p *entity.Posicion) []entity.Etiqueta {
		return []entity.Etiqueta{labels.ParaPosicion(numPasillo, numEstanteria, numAltura, p)}
	})
}
