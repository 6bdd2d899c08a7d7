// Package usecase contiene los casos de uso CRUD de la jerarquía física.
// Los cuatro niveles numerados (pasillo, estantería, altura, posición)
// comparten un único conjunto de primitivas genéricas; solo cambia la
// resolución del padre y, en posiciones, el recálculo del código.
package usecase

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/openwarehouses/almacenes-api/internal/domain"
	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
	"github.com/openwarehouses/almacenes-api/internal/domain/repository"
)

// JerarquiaUseCase mantiene el bosque de almacenes en memoria y lo
// re-serializa completo tras cada mutación correcta. Un fallo de E/S al
// guardar se registra y el estado en memoria sigue vigente (el archivo se
// reintenta en la siguiente mutación).
//
// El candado existe solo porque el servidor HTTP atiende en paralelo; no hay
// más semántica de coordinación que esa.
type JerarquiaUseCase struct {
	mu        sync.Mutex
	repo      repository.AlmacenRepository
	almacenes []*entity.Almacen
	colador   *collate.Collator
}

// NewJerarquiaUseCase carga el bosque desde el repositorio. Un archivo
// ilegible es un fallo de arranque, no algo que ocultar.
func NewJerarquiaUseCase(repo repository.AlmacenRepository) (*JerarquiaUseCase, error) {
	almacenes, err := repo.LoadAlmacenes()
	if err != nil {
		return nil, fmt.Errorf("cargar almacenes: %w", err)
	}
	return &JerarquiaUseCase{
		repo:      repo,
		almacenes: almacenes,
		colador:   collate.New(language.Spanish, collate.IgnoreCase),
	}, nil
}

// ResumenAlmacen es la proyección de lectura de un almacén: valores copiados
// bajo el candado, sin punteros al árbol vivo.
type ResumenAlmacen struct {
	Nombre   string
	Pasillos int
}

// Almacenes devuelve el listado de almacenes ordenado por nombre con colación
// española (correcta con acentos, sin distinguir mayúsculas). El orden de
// inserción solo se conserva en el archivo. Las lecturas fuera del candado
// trabajan siempre sobre estas proyecciones, nunca sobre el árbol.
func (uc *JerarquiaUseCase) Almacenes() []ResumenAlmacen {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]ResumenAlmacen, 0, len(uc.almacenes))
	for _, a := range uc.almacenes {
		out = append(out, ResumenAlmacen{Nombre: a.Nombre, Pasillos: a.Pasillos.Len()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return uc.colador.CompareString(out[i].Nombre, out[j].Nombre) < 0
	})
	return out
}

// CrearAlmacen da de alta un almacén con nombre no vacío y único (sin
// distinguir mayúsculas) entre todos los almacenes.
func (uc *JerarquiaUseCase) CrearAlmacen(nombre string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return domain.ErrNombreInvalido
	}
	for _, a := range uc.almacenes {
		if a.MismoNombre(nombre) {
			return domain.ErrDuplicado
		}
	}
	uc.almacenes = append(uc.almacenes, entity.NuevoAlmacen(nombre))
	uc.guardar()
	return nil
}

// EditarAlmacen renombra un almacén. Renombrar al propio nombre actual (sin
// distinguir mayúsculas) es un no-op correcto; no dispara el control de
// duplicados.
func (uc *JerarquiaUseCase) EditarAlmacen(nombre, nuevoNombre string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	actual, err := uc.almacen(nombre)
	if err != nil {
		return err
	}
	nuevoNombre = strings.TrimSpace(nuevoNombre)
	if nuevoNombre == "" {
		return domain.ErrNombreInvalido
	}
	if actual.MismoNombre(nuevoNombre) {
		return nil
	}
	for _, a := range uc.almacenes {
		if a.MismoNombre(nuevoNombre) {
			return domain.ErrDuplicado
		}
	}
	actual.Nombre = nuevoNombre
	uc.guardar()
	return nil
}

// EliminarAlmacenes borra los almacenes seleccionados y devuelve cuántos
// existían. Nombres inexistentes no son un error: sencillamente no cuentan.
func (uc *JerarquiaUseCase) EliminarAlmacenes(nombres []string) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	eliminados := 0
	restantes := uc.almacenes[:0]
	for _, a := range uc.almacenes {
		if contieneNombre(nombres, a.Nombre) {
			eliminados++
			continue
		}
		restantes = append(restantes, a)
	}
	uc.almacenes = restantes
	if eliminados > 0 {
		uc.guardar()
	}
	return eliminados
}

// almacen resuelve un almacén por nombre. Requiere el candado tomado.
func (uc *JerarquiaUseCase) almacen(nombre string) (*entity.Almacen, error) {
	for _, a := range uc.almacenes {
		if a.MismoNombre(nombre) {
			return a, nil
		}
	}
	return nil, domain.ErrNoEncontrado
}

// guardar re-serializa el bosque completo. Requiere el candado tomado.
func (uc *JerarquiaUseCase) guardar() {
	if err := uc.repo.SaveAlmacenes(uc.almacenes); err != nil {
		log.Error().Err(err).Msg("no se pudo guardar el bosque de almacenes; el estado en memoria sigue vigente")
	}
}

func contieneNombre(nombres []string, nombre string) bool {
	for _, n := range nombres {
		if strings.EqualFold(n, nombre) {
			return true
		}
	}
	return false
}
