package labels_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwarehouses/almacenes-api/internal/application/labels"
	"github.com/openwarehouses/almacenes-api/internal/domain"
	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
)

// generadorFalso cuenta invocaciones y devuelve un documento sintético.
type generadorFalso struct {
	invocaciones int
	fallo        error
}

func (g *generadorFalso) GenerarPDF(etiquetas []entity.Etiqueta, copias int, tamano entity.TamanoEtiqueta, opts labels.OpcionesRender) (*labels.ResultadoPDF, error) {
	g.invocaciones++
	if g.fallo != nil {
		return nil, g.fallo
	}
	return &labels.ResultadoPDF{
		Contenido: []byte("%PDF-falso"),
		Paginas:   len(etiquetas) * copias,
	}, nil
}

func unaEtiqueta() []entity.Etiqueta {
	return []entity.Etiqueta{{Codigo: "2.3.1.5", Pasillo: 2, Estanteria: 3, Altura: 1, Posicion: 5}}
}

func TestImprimir_RenderizaUnaSolaVezYEscribeElArchivo(t *testing.T) {
	dir := t.TempDir()
	gen := &generadorFalso{}
	uc := labels.NewImprimirUseCase(gen, dir, false)

	resultado, err := uc.Imprimir(unaEtiqueta(), 3, entity.TamanoMedium, labels.OpcionesRender{})
	require.NoError(t, err)

	assert.Equal(t, 1, gen.invocaciones, "el documento se genera exactamente una vez por impresión")
	assert.Equal(t, 3, resultado.Paginas)
	assert.Equal(t, 3, resultado.Copias)
	assert.Equal(t, 1, resultado.Etiquetas)
	assert.NotEmpty(t, resultado.JobID)

	assert.Equal(t, filepath.Join(dir, "etiquetas_medium.pdf"), resultado.Archivo)
	data, err := os.ReadFile(resultado.Archivo)
	require.NoError(t, err)
	assert.Equal(t, resultado.Contenido, data)
}

func TestImprimir_Validaciones(t *testing.T) {
	uc := labels.NewImprimirUseCase(&generadorFalso{}, t.TempDir(), false)

	_, err := uc.Imprimir(unaEtiqueta(), 0, entity.TamanoSmall, labels.OpcionesRender{})
	assert.ErrorIs(t, err, domain.ErrCopiasInvalidas)

	_, err = uc.Imprimir(unaEtiqueta(), 1, "gigante", labels.OpcionesRender{})
	assert.ErrorIs(t, err, domain.ErrTamanoInvalido)

	_, err = uc.Imprimir(nil, 1, entity.TamanoSmall, labels.OpcionesRender{})
	assert.ErrorIs(t, err, domain.ErrSinPosiciones)
}

func TestImprimir_FalloDeRenderNoEscribeArchivo(t *testing.T) {
	dir := t.TempDir()
	gen := &generadorFalso{fallo: errors.New("fuente corrupta")}
	uc := labels.NewImprimirUseCase(gen, dir, false)

	_, err := uc.Imprimir(unaEtiqueta(), 1, entity.TamanoLarge, labels.OpcionesRender{})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "etiquetas_large.pdf"))
	assert.True(t, os.IsNotExist(statErr), "un render abortado no deja artefacto parcial")
}

func TestImprimir_NombreDeArchivoPorTamano(t *testing.T) {
	dir := t.TempDir()
	uc := labels.NewImprimirUseCase(&generadorFalso{}, dir, false)

	for _, tamano := range []entity.TamanoEtiqueta{entity.TamanoSmall, entity.TamanoMedium, entity.TamanoLarge} {
		resultado, err := uc.Imprimir(unaEtiqueta(), 1, tamano, labels.OpcionesRender{})
		require.NoError(t, err)
		assert.Equal(t, "etiquetas_"+string(tamano)+".pdf", filepath.Base(resultado.Archivo))
	}
}
