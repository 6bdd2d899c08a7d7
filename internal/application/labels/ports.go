package labels

import "github.com/openwarehouses/almacenes-api/internal/domain/entity"

// OpcionesRender controla la simbología opcional de cada página.
type OpcionesRender struct {
	QR     bool // QR 25×25pt en la esquina inferior izquierda
	Barras bool // Code128 de media página × 25pt en la inferior derecha
}

// ResultadoPDF es el documento generado por el backend PDF.
type ResultadoPDF struct {
	Contenido []byte
	Paginas   int
}

// EtiquetaPDFGenerator es el puerto al backend de render de etiquetas.
// Cualquier fallo de codificación o E/S aborta el documento entero; nunca se
// devuelve un artefacto parcial.
type EtiquetaPDFGenerator interface {
	GenerarPDF(etiquetas []entity.Etiqueta, copias int, tamano entity.TamanoEtiqueta, opts OpcionesRender) (*ResultadoPDF, error)
}

// ReportePDFGenerator es el puerto al backend del listado de posiciones de un
// almacén.
type ReportePDFGenerator interface {
	GenerarReporte(nombreAlmacen string, etiquetas []entity.Etiqueta) ([]byte, error)
}
