package usecase

import (
	"github.com/openwarehouses/almacenes-api/internal/application/labels"
	"github.com/openwarehouses/almacenes-api/internal/domain"
	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
)

// ResumenRango es el resultado de un alta por rango: los números creados y
// los omitidos por existir ya entre los hermanos.
type ResumenRango struct {
	Creados  []int
	Omitidos []int
}

// ResumenNivel es la proyección de lectura de un elemento numerado: número y
// conteo de hijos directos, copiados bajo el candado.
type ResumenNivel struct {
	Numero int
	Hijos  int
}

// ResumenPosicion es la proyección de lectura de una posición.
type ResumenPosicion struct {
	Numero int
	Codigo string
}

// ── primitivas genéricas sobre un nivel ──────────────────────────────────────

func crearEn[T entity.Numerado](col *entity.Coleccion[T], numero int, nuevo func(int) T) error {
	if numero <= 0 {
		return domain.ErrNumeroInvalido
	}
	if !col.Agregar(nuevo(numero)) {
		return domain.ErrDuplicado
	}
	return nil
}

func crearRango[T entity.Numerado](col *entity.Coleccion[T], desde, hasta int, nuevo func(int) T) (*ResumenRango, error) {
	if desde <= 0 || hasta <= 0 {
		return nil, domain.ErrNumeroInvalido
	}
	if desde > hasta {
		return nil, domain.ErrRangoInvalido
	}
	resumen := &ResumenRango{}
	for n := desde; n <= hasta; n++ {
		if col.Agregar(nuevo(n)) {
			resumen.Creados = append(resumen.Creados, n)
		} else {
			resumen.Omitidos = append(resumen.Omitidos, n)
		}
	}
	return resumen, nil
}

func renumerarEn[T entity.Numerado](col *entity.Coleccion[T], numero, nuevoNumero int, aplicar func(T)) error {
	if nuevoNumero <= 0 {
		return domain.ErrNumeroInvalido
	}
	if !col.Contiene(numero) {
		return domain.ErrNoEncontrado
	}
	if !col.Renumerar(numero, nuevoNumero, aplicar) {
		return domain.ErrDuplicado
	}
	return nil
}

func eliminarDe[T entity.Numerado](col *entity.Coleccion[T], numeros []int) int {
	eliminados := 0
	for _, n := range numeros {
		if col.Eliminar(n) {
			eliminados++
		}
	}
	return eliminados
}

// ── resolución de padres ─────────────────────────────────────────────────────
// Todas requieren el candado tomado.

func (uc *JerarquiaUseCase) pasillo(nombreAlmacen string, numero int) (*entity.Pasillo, error) {
	a, err := uc.almacen(nombreAlmacen)
	if err != nil {
		return nil, err
	}
	p, ok := a.Pasillos.PorNumero(numero)
	if !ok {
		return nil, domain.ErrNoEncontrado
	}
	return p, nil
}

func (uc *JerarquiaUseCase) estanteria(nombreAlmacen string, numPasillo, numero int) (*entity.Estanteria, error) {
	p, err := uc.pasillo(nombreAlmacen, numPasillo)
	if err != nil {
		return nil, err
	}
	e, ok := p.Estanterias.PorNumero(numero)
	if !ok {
		return nil, domain.ErrNoEncontrado
	}
	return e, nil
}

func (uc *JerarquiaUseCase) altura(nombreAlmacen string, numPasillo, numEstanteria, numero int) (*entity.Altura, error) {
	e, err := uc.estanteria(nombreAlmacen, numPasillo, numEstanteria)
	if err != nil {
		return nil, err
	}
	a, ok := e.Alturas.PorNumero(numero)
	if !ok {
		return nil, domain.ErrNoEncontrado
	}
	return a, nil
}

// ── pasillos ─────────────────────────────────────────────────────────────────

// Pasillos lista los pasillos de un almacén en orden de inserción.
func (uc *JerarquiaUseCase) Pasillos(nombreAlmacen string) ([]ResumenNivel, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	a, err := uc.almacen(nombreAlmacen)
	if err != nil {
		return nil, err
	}
	out := make([]ResumenNivel, 0, a.Pasillos.Len())
	for _, p := range a.Pasillos.Items() {
		out = append(out, ResumenNivel{Numero: p.Numero, Hijos: p.Estanterias.Len()})
	}
	return out, nil
}

// CrearPasillo da de alta un pasillo con número positivo único en el almacén.
func (uc *JerarquiaUseCase) CrearPasillo(nombreAlmacen string, numero int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	a, err := uc.almacen(nombreAlmacen)
	if err != nil {
		return err
	}
	if err := crearEn(&a.Pasillos, numero, entity.NuevoPasillo); err != nil {
		return err
	}
	uc.guardar()
	return nil
}

// CrearPasillosRango da de alta los números [desde, hasta], omitiendo los ya
// existentes.
func (uc *JerarquiaUseCase) CrearPasillosRango(nombreAlmacen string, desde, hasta int) (*ResumenRango, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	a, err := uc.almacen(nombreAlmacen)
	if err != nil {
		return nil, err
	}
	resumen, err := crearRango(&a.Pasillos, desde, hasta, entity.NuevoPasillo)
	if err != nil {
		return nil, err
	}
	if len(resumen.Creados) > 0 {
		uc.guardar()
	}
	return resumen, nil
}

// EditarPasillo renumera un pasillo. Con el mismo número es un no-op correcto.
func (uc *JerarquiaUseCase) EditarPasillo(nombreAlmacen string, numero, nuevoNumero int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	a, err := uc.almacen(nombreAlmacen)
	if err != nil {
		return err
	}
	if numero == nuevoNumero {
		if !a.Pasillos.Contiene(numero) {
			return domain.ErrNoEncontrado
		}
		return nil
	}
	if err := renumerarEn(&a.Pasillos, numero, nuevoNumero, func(p *entity.Pasillo) {
		p.Numero = nuevoNumero
	}); err != nil {
		return err
	}
	uc.guardar()
	return nil
}

// EliminarPasillos borra los pasillos seleccionados; devuelve cuántos existían.
func (uc *JerarquiaUseCase) EliminarPasillos(nombreAlmacen string, numeros []int) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	a, err := uc.almacen(nombreAlmacen)
	if err != nil {
		return 0, err
	}
	eliminados := eliminarDe(&a.Pasillos, numeros)
	if eliminados > 0 {
		uc.guardar()
	}
	return eliminados, nil
}

// ── estanterías ──────────────────────────────────────────────────────────────

// Estanterias lista las estanterías de un pasillo en orden de inserción.
func (uc *JerarquiaUseCase) Estanterias(nombreAlmacen string, numPasillo int) ([]ResumenNivel, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p, err := uc.pasillo(nombreAlmacen, numPasillo)
	if err != nil {
		return nil, err
	}
	out := make([]ResumenNivel, 0, p.Estanterias.Len())
	for _, e := range p.Estanterias.Items() {
		out = append(out, ResumenNivel{Numero: e.Numero, Hijos: e.Alturas.Len()})
	}
	return out, nil
}

// CrearEstanteria da de alta una estantería en un pasillo.
func (uc *JerarquiaUseCase) CrearEstanteria(nombreAlmacen string, numPasillo, numero int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p, err := uc.pasillo(nombreAlmacen, numPasillo)
	if err != nil {
		return err
	}
	if err := crearEn(&p.Estanterias, numero, entity.NuevaEstanteria); err != nil {
		return err
	}
	uc.guardar()
	return nil
}

// CrearEstanteriasRango da de alta el rango [desde, hasta] en un pasillo.
func (uc *JerarquiaUseCase) CrearEstanteriasRango(nombreAlmacen string, numPasillo, desde, hasta int) (*ResumenRango, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p, err := uc.pasillo(nombreAlmacen, numPasillo)
	if err != nil {
		return nil, err
	}
	resumen, err := crearRango(&p.Estanterias, desde, hasta, entity.NuevaEstanteria)
	if err != nil {
		return nil, err
	}
	if len(resumen.Creados) > 0 {
		uc.guardar()
	}
	return resumen, nil
}

// EditarEstanteria renumera una estantería.
func (uc *JerarquiaUseCase) EditarEstanteria(nombreAlmacen string, numPasillo, numero, nuevoNumero int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p, err := uc.pasillo(nombreAlmacen, numPasillo)
	if err != nil {
		return err
	}
	if numero == nuevoNumero {
		if !p.Estanterias.Contiene(numero) {
			return domain.ErrNoEncontrado
		}
		return nil
	}
	if err := renumerarEn(&p.Estanterias, numero, nuevoNumero, func(e *entity.Estanteria) {
		e.Numero = nuevoNumero
	}); err != nil {
		return err
	}
	uc.guardar()
	return nil
}

// EliminarEstanterias borra las estanterías seleccionadas de un pasillo.
func (uc *JerarquiaUseCase) EliminarEstanterias(nombreAlmacen string, numPasillo int, numeros []int) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p, err := uc.pasillo(nombreAlmacen, numPasillo)
	if err != nil {
		return 0, err
	}
	eliminados := eliminarDe(&p.Estanterias, numeros)
	if eliminados > 0 {
		uc.guardar()
	}
	return eliminados, nil
}

// ── alturas ──────────────────────────────────────────────────────────────────

// Alturas lista las alturas de una estantería en orden de inserción.
func (uc *JerarquiaUseCase) Alturas(nombreAlmacen string, numPasillo, numEstanteria int) ([]ResumenNivel, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	e, err := uc.estanteria(nombreAlmacen, numPasillo, numEstanteria)
	if err != nil {
		return nil, err
	}
	out := make([]ResumenNivel, 0, e.Alturas.Len())
	for _, a := range e.Alturas.Items() {
		out = append(out, ResumenNivel{Numero: a.Numero, Hijos: a.Posiciones.Len()})
	}
	return out, nil
}

// CrearAltura da de alta una altura en una estantería.
func (uc *JerarquiaUseCase) CrearAltura(nombreAlmacen string, numPasillo, numEstanteria, numero int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	e, err := uc.estanteria(nombreAlmacen, numPasillo, numEstanteria)
	if err != nil {
		return err
	}
	if err := crearEn(&e.Alturas, numero, entity.NuevaAltura); err != nil {
		return err
	}
	uc.guardar()
	return nil
}

// CrearAlturasRango da de alta el rango [desde, hasta] en una estantería.
func (uc *JerarquiaUseCase) CrearAlturasRango(nombreAlmacen string, numPasillo, numEstanteria, desde, hasta int) (*ResumenRango, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	e, err := uc.estanteria(nombreAlmacen, numPasillo, numEstanteria)
	if err != nil {
		return nil, err
	}
	resumen, err := crearRango(&e.Alturas, desde, hasta, entity.NuevaAltura)
	if err != nil {
		return nil, err
	}
	if len(resumen.Creados) > 0 {
		uc.guardar()
	}
	return resumen, nil
}

// EditarAltura renumera una altura.
func (uc *JerarquiaUseCase) EditarAltura(nombreAlmacen string, numPasillo, numEstanteria, numero, nuevoNumero int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	e, err := uc.estanteria(nombreAlmacen, numPasillo, numEstanteria)
	if err != nil {
		return err
	}
	if numero == nuevoNumero {
		if !e.Alturas.Contiene(numero) {
			return domain.ErrNoEncontrado
		}
		return nil
	}
	if err := renumerarEn(&e.Alturas, numero, nuevoNumero, func(a *entity.Altura) {
		a.Numero = nuevoNumero
	}); err != nil {
		return err
	}
	uc.guardar()
	return nil
}

// EliminarAlturas borra las alturas seleccionadas de una estantería.
func (uc *JerarquiaUseCase) EliminarAlturas(nombreAlmacen string, numPasillo, numEstanteria int, numeros []int) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	e, err := uc.estanteria(nombreAlmacen, numPasillo, numEstanteria)
	if err != nil {
		return 0, err
	}
	eliminados := eliminarDe(&e.Alturas, numeros)
	if eliminados > 0 {
		uc.guardar()
	}
	return eliminados, nil
}

// ── posiciones ───────────────────────────────────────────────────────────────
// La posición es el único nivel con estado derivado: su código se estampa al
// crear y al renumerar con los números de ancestro vigentes en ese momento.

// Posiciones lista las posiciones de una altura en orden de inserción, con el
// código persistido tal cual está estampado.
func (uc *JerarquiaUseCase) Posiciones(nombreAlmacen string, numPasillo, numEstanteria, numAltura int) ([]ResumenPosicion, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	a, err := uc.altura(nombreAlmacen, numPasillo, numEstanteria, numAltura)
	if err != nil {
		return nil, err
	}
	out := make([]ResumenPosicion, 0, a.Posiciones.Len())
	for _, p := range a.Posiciones.Items() {
		out = append(out, ResumenPosicion{Numero: p.Numero, Codigo: p.Codigo})
	}
	return out, nil
}

// CrearPosicion da de alta una posición con su código derivado.
func (uc *JerarquiaUseCase) CrearPosicion(nombreAlmacen string, numPasillo, numEstanteria, numAltura, numero int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	a, err := uc.altura(nombreAlmacen, numPasillo, numEstanteria, numAltura)
	if err != nil {
		return err
	}
	nueva := func(n int) *entity.Posicion {
		return entity.NuevaPosicion(n, labels.CodigoPara(numPasillo, numEstanteria, numAltura, n))
	}
	if err := crearEn(&a.Posiciones, numero, nueva); err != nil {
		return err
	}
	uc.guardar()
	return nil
}

// CrearPosicionesRango da de alta el rango [desde, hasta] en una altura.
func (uc *JerarquiaUseCase) CrearPosicionesRango(nombreAlmacen string, numPasillo, numEstanteria, numAltura, desde, hasta int) (*ResumenRango, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	a, err := uc.altura(nombreAlmacen, numPasillo, numEstanteria, numAltura)
	if err != nil {
		return nil, err
	}
	nueva := func(n int) *entity.Posicion {
		return entity.NuevaPosicion(n, labels.CodigoPara(numPasillo, numEstanteria, numAltura, n))
	}
	resumen, err := crearRango(&a.Posiciones, desde, hasta, nueva)
	if err != nil {
		return nil, err
	}
	if len(resumen.Creados) > 0 {
		uc.guardar()
	}
	return resumen, nil
}

// EditarPosicion renumera una posición y re-estampa su código.
func (uc *JerarquiaUseCase) EditarPosicion(nombreAlmacen string, numPasillo, numEstanteria, numAltura, numero, nuevoNumero int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	a, err := uc.altura(nombreAlmacen, numPasillo, numEstanteria, numAltura)
	if err != nil {
		return err
	}
	if numero == nuevoNumero {
		if !a.Posiciones.Contiene(numero) {
			return domain.ErrNoEncontrado
		}
		return nil
	}
	if err := renumerarEn(&a.Posiciones, numero, nuevoNumero, func(p *entity.Posicion) {
		p.Numero = nuevoNumero
		p.Codigo = labels.CodigoPara(numPasillo, numEstanteria, numAltura, nuevoNumero)
	}); err != nil {
		return err
	}
	uc.guardar()
	return nil
}

// EliminarPosiciones borra las posiciones seleccionadas de una altura.
func (uc *JerarquiaUseCase) EliminarPosiciones(nombreAlmacen string, numPasillo, numEstanteria, numAltura int, numeros []int) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	a, err := uc.altura(nombreAlmacen, numPasillo, numEstanteria, numAltura)
	if err != nil {
		return 0, err
	}
	eliminados := eliminarDe(&a.Posiciones, numeros)
	if eliminados > 0 {
		uc.guardar()
	}
	return eliminados, nil
}
