package usecase_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwarehouses/almacenes-api/internal/application/usecase"
	"github.com/openwarehouses/almacenes-api/internal/domain"
	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
)

// repoEnMemoria implementa repository.AlmacenRepository para los tests, con
// contadores de guardado para verificar cuándo se persiste.
type repoEnMemoria struct {
	almacenes []*entity.Almacen
	pin       string
	guardados int
}

func (r *repoEnMemoria) LoadAlmacenes() ([]*entity.Almacen, error) { return r.almacenes, nil }
func (r *repoEnMemoria) SaveAlmacenes(a []*entity.Almacen) error {
	r.almacenes = a
	r.guardados++
	return nil
}
func (r *repoEnMemoria) LoadPin() (string, error) { return r.pin, nil }
func (r *repoEnMemoria) SavePin(pin string) error {
	r.pin = pin
	return nil
}

func nuevoUC(t *testing.T) (*usecase.JerarquiaUseCase, *repoEnMemoria) {
	t.Helper()
	repo := &repoEnMemoria{pin: "1234"}
	uc, err := usecase.NewJerarquiaUseCase(repo)
	require.NoError(t, err)
	return uc, repo
}

// montarHasta crea almacén → pasillo 2 → estantería 3 → altura 1.
func montarHasta(t *testing.T, uc *usecase.JerarquiaUseCase) {
	t.Helper()
	require.NoError(t, uc.CrearAlmacen("Central"))
	require.NoError(t, uc.CrearPasillo("Central", 2))
	require.NoError(t, uc.CrearEstanteria("Central", 2, 3))
	require.NoError(t, uc.CrearAltura("Central", 2, 3, 1))
}

// ── almacenes ────────────────────────────────────────────────────────────────

func TestCrearAlmacen_NombreDuplicadoSinDistinguirMayusculas(t *testing.T) {
	uc, repo := nuevoUC(t)

	require.NoError(t, uc.CrearAlmacen("Central"))
	guardadosAntes := repo.guardados

	assert.ErrorIs(t, uc.CrearAlmacen("  central "), domain.ErrDuplicado)
	assert.Equal(t, guardadosAntes, repo.guardados, "un alta rechazada no debe persistir nada")
	assert.Len(t, uc.Almacenes(), 1)
}

func TestCrearAlmacen_NombreEnBlanco(t *testing.T) {
	uc, _ := nuevoUC(t)
	assert.ErrorIs(t, uc.CrearAlmacen("   "), domain.ErrNombreInvalido)
}

func TestAlmacenes_OrdenAlfabeticoEspanol(t *testing.T) {
	uc, _ := nuevoUC(t)
	require.NoError(t, uc.CrearAlmacen("Ávila"))
	require.NoError(t, uc.CrearAlmacen("zaragoza"))
	require.NoError(t, uc.CrearAlmacen("Burgos"))

	var nombres []string
	for _, a := range uc.Almacenes() {
		nombres = append(nombres, a.Nombre)
	}
	// Colación española: Ávila delante de Burgos, sin distinguir mayúsculas.
	assert.Equal(t, []string{"Ávila", "Burgos", "zaragoza"}, nombres)
}

func TestEditarAlmacen_MismoNombreEsNoOp(t *testing.T) {
	uc, repo := nuevoUC(t)
	require.NoError(t, uc.CrearAlmacen("Central"))
	guardadosAntes := repo.guardados

	assert.NoError(t, uc.EditarAlmacen("Central", "CENTRAL"))
	assert.Equal(t, guardadosAntes, repo.guardados, "el renombrado al propio nombre no persiste")
}

func TestEditarAlmacen_DuplicadoYNoEncontrado(t *testing.T) {
	uc, _ := nuevoUC(t)
	require.NoError(t, uc.CrearAlmacen("Uno"))
	require.NoError(t, uc.CrearAlmacen("Dos"))

	assert.ErrorIs(t, uc.EditarAlmacen("Uno", "dos"), domain.ErrDuplicado)
	assert.ErrorIs(t, uc.EditarAlmacen("Tres", "Cuatro"), domain.ErrNoEncontrado)
}

func TestEliminarAlmacenes_CuentaSoloLosExistentes(t *testing.T) {
	uc, _ := nuevoUC(t)
	require.NoError(t, uc.CrearAlmacen("Uno"))
	require.NoError(t, uc.CrearAlmacen("Dos"))

	eliminados := uc.EliminarAlmacenes([]string{"uno", "Tres"})
	assert.Equal(t, 1, eliminados)
	assert.Len(t, uc.Almacenes(), 1)
}

// ── niveles numerados ────────────────────────────────────────────────────────

func TestCrearPasillo_Validaciones(t *testing.T) {
	uc, _ := nuevoUC(t)
	require.NoError(t, uc.CrearAlmacen("Central"))
	require.NoError(t, uc.CrearPasillo("Central", 1))

	assert.ErrorIs(t, uc.CrearPasillo("Central", 1), domain.ErrDuplicado)
	assert.ErrorIs(t, uc.CrearPasillo("Central", 0), domain.ErrNumeroInvalido)
	assert.ErrorIs(t, uc.CrearPasillo("Otro", 2), domain.ErrNoEncontrado)
}

func TestCrearPasillosRango_OmiteExistentes(t *testing.T) {
	uc, _ := nuevoUC(t)
	require.NoError(t, uc.CrearAlmacen("Central"))
	require.NoError(t, uc.CrearPasillo("Central", 2))

	resumen, err := uc.CrearPasillosRango("Central", 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, resumen.Creados)
	assert.Equal(t, []int{2}, resumen.Omitidos)

	pasillos, err := uc.Pasillos("Central")
	require.NoError(t, err)
	// El 2 conserva su puesto de alta original; los nuevos van detrás.
	var numeros []int
	for _, p := range pasillos {
		numeros = append(numeros, p.Numero)
	}
	assert.Equal(t, []int{2, 1, 3, 4}, numeros)
}

func TestCrearPasillosRango_RangoInvalido(t *testing.T) {
	uc, _ := nuevoUC(t)
	require.NoError(t, uc.CrearAlmacen("Central"))

	_, err := uc.CrearPasillosRango("Central", 5, 2)
	assert.ErrorIs(t, err, domain.ErrRangoInvalido)

	_, err = uc.CrearPasillosRango("Central", 0, 2)
	assert.ErrorIs(t, err, domain.ErrNumeroInvalido)
}

func TestEditarPasillo_NoOpYColision(t *testing.T) {
	uc, repo := nuevoUC(t)
	require.NoError(t, uc.CrearAlmacen("Central"))
	require.NoError(t, uc.CrearPasillo("Central", 1))
	require.NoError(t, uc.CrearPasillo("Central", 2))
	guardadosAntes := repo.guardados

	assert.NoError(t, uc.EditarPasillo("Central", 1, 1), "renumerar al mismo número es un no-op correcto")
	assert.Equal(t, guardadosAntes, repo.guardados)

	assert.ErrorIs(t, uc.EditarPasillo("Central", 1, 2), domain.ErrDuplicado)
	assert.ErrorIs(t, uc.EditarPasillo("Central", 9, 3), domain.ErrNoEncontrado)
}

func TestEliminarEstanterias_Cuenta(t *testing.T) {
	uc, _ := nuevoUC(t)
	montarHasta(t, uc)
	require.NoError(t, uc.CrearEstanteria("Central", 2, 4))

	eliminados, err := uc.EliminarEstanterias("Central", 2, []int{3, 9})
	require.NoError(t, err)
	assert.Equal(t, 1, eliminados)
}

// ── posiciones y códigos ─────────────────────────────────────────────────────

func TestCrearPosicion_EstampaElCodigo(t *testing.T) {
	uc, _ := nuevoUC(t)
	montarHasta(t, uc)

	require.NoError(t, uc.CrearPosicion("Central", 2, 3, 1, 5))

	posiciones, err := uc.Posiciones("Central", 2, 3, 1)
	require.NoError(t, err)
	require.Len(t, posiciones, 1)
	assert.Equal(t, "2.3.1.5", posiciones[0].Codigo)
}

func TestEditarPosicion_ReestampaElCodigo(t *testing.T) {
	uc, _ := nuevoUC(t)
	montarHasta(t, uc)
	require.NoError(t, uc.CrearPosicion("Central", 2, 3, 1, 5))

	require.NoError(t, uc.EditarPosicion("Central", 2, 3, 1, 5, 7))

	posiciones, err := uc.Posiciones("Central", 2, 3, 1)
	require.NoError(t, err)
	require.Len(t, posiciones, 1)
	assert.Equal(t, 7, posiciones[0].Numero)
	assert.Equal(t, "2.3.1.7", posiciones[0].Codigo)
}

func TestCrearPosicionesRango_EstampaCadaCodigo(t *testing.T) {
	uc, _ := nuevoUC(t)
	montarHasta(t, uc)

	resumen, err := uc.CrearPosicionesRango("Central", 2, 3, 1, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, resumen.Creados)

	posiciones, err := uc.Posiciones("Central", 2, 3, 1)
	require.NoError(t, err)
	var codigos []string
	for _, p := range posiciones {
		codigos = append(codigos, p.Codigo)
	}
	assert.Equal(t, []string{"2.3.1.1", "2.3.1.2", "2.3.1.3"}, codigos)
}

// ── aplanado a etiquetas ─────────────────────────────────────────────────────

func TestEtiquetasParaAlmacenes_CodigoVivoTrasRenumerarAncestro(t *testing.T) {
	uc, _ := nuevoUC(t)
	montarHasta(t, uc)
	require.NoError(t, uc.CrearPosicion("Central", 2, 3, 1, 5))

	// Renumerar el pasillo deja obsoleto el código persistido de la posición;
	// la impresión deriva del árbol vivo.
	require.NoError(t, uc.EditarPasillo("Central", 2, 7))

	etiquetas, err := uc.EtiquetasParaAlmacenes([]string{"Central"})
	require.NoError(t, err)
	require.Len(t, etiquetas, 1)
	assert.Equal(t, "7.3.1.5", etiquetas[0].Codigo)

	// El campo persistido, en cambio, conserva el estampado original.
	posiciones, err := uc.Posiciones("Central", 7, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, "2.3.1.5", posiciones[0].Codigo)
}

func TestEtiquetasParaPasillos_SeleccionVacia(t *testing.T) {
	uc, _ := nuevoUC(t)
	require.NoError(t, uc.CrearAlmacen("Central"))

	_, err := uc.EtiquetasParaPasillos("Central", nil)
	assert.ErrorIs(t, err, domain.ErrSinSeleccion)
}

func TestEtiquetasParaAlmacenes_SinPosiciones(t *testing.T) {
	uc, _ := nuevoUC(t)
	montarHasta(t, uc) // jerarquía completa pero sin posiciones

	_, err := uc.EtiquetasParaAlmacenes([]string{"Central"})
	assert.ErrorIs(t, err, domain.ErrSinPosiciones)
}

func TestEtiquetasParaEstanterias_NodoInexistente(t *testing.T) {
	uc, _ := nuevoUC(t)
	montarHasta(t, uc)

	_, err := uc.EtiquetasParaEstanterias("Central", 2, []int{3, 99})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

// Las lecturas devuelven copias tomadas bajo el candado, de modo que listar y
// aplanar pueden convivir con mutaciones concurrentes del bosque.
func TestLecturasConcurrentesConMutaciones(t *testing.T) {
	uc, _ := nuevoUC(t)
	montarHasta(t, uc)
	require.NoError(t, uc.CrearPosicion("Central", 2, 3, 1, 1))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(base int) {
			defer wg.Done()
			for n := 0; n < 25; n++ {
				_ = uc.CrearPasillo("Central", 100+base*25+n)
				_ = uc.CrearPosicion("Central", 2, 3, 1, 100+base*25+n)
			}
		}(i)
		go func() {
			defer wg.Done()
			for n := 0; n < 25; n++ {
				for _, a := range uc.Almacenes() {
					_ = a.Pasillos
				}
				if pasillos, err := uc.Pasillos("Central"); err == nil {
					for _, p := range pasillos {
						_ = p.Hijos
					}
				}
				if posiciones, err := uc.Posiciones("Central", 2, 3, 1); err == nil {
					for _, p := range posiciones {
						_ = p.Codigo
					}
				}
				nombre, etiquetas, err := uc.AplanarAlmacen("central")
				if err == nil {
					_ = fmt.Sprintf("%s:%d", nombre, len(etiquetas))
				}
			}
		}()
	}
	wg.Wait()

	nombre, etiquetas, err := uc.AplanarAlmacen("Central")
	require.NoError(t, err)
	assert.Equal(t, "Central", nombre)
	assert.Len(t, etiquetas, 101)
}

func TestEtiquetasParaPosiciones_OrdenDeSeleccion(t *testing.T) {
	uc, _ := nuevoUC(t)
	montarHasta(t, uc)
	_, err := uc.CrearPosicionesRango("Central", 2, 3, 1, 1, 3)
	require.NoError(t, err)

	etiquetas, err := uc.EtiquetasParaPosiciones("Central", 2, 3, 1, []int{3, 1})
	require.NoError(t, err)
	require.Len(t, etiquetas, 2)
	assert.Equal(t, "2.3.1.3", etiquetas[0].Codigo)
	assert.Equal(t, "2.3.1.1", etiquetas[1].Codigo)
}
