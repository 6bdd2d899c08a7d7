package labels

import (
	"fmt"

	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
)

// ReporteUseCase genera el listado PDF de posiciones de un almacén completo.
type ReporteUseCase struct {
	generador ReportePDFGenerator
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(generador ReportePDFGenerator) *ReporteUseCase {
	return &ReporteUseCase{generador: generador}
}

// Generar delega el documento en el backend sobre etiquetas ya aplanadas (el
// llamante las obtiene bajo su propio candado). Una lista vacía produce un
// listado vacío válido, no un error.
func (uc *ReporteUseCase) Generar(nombreAlmacen string, etiquetas []entity.Etiqueta) ([]byte, error) {
	contenido, err := uc.generador.GenerarReporte(nombreAlmacen, etiquetas)
	if err != nil {
		return nil, fmt.Errorf("reporte de posiciones: %w", err)
	}
	return contenido, nil
}
