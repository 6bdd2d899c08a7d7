// Package pdf implementa los backends de documentos del sistema: el motor de
// etiquetas (gofpdf, control punto a punto de página y fuente) y el reporte de
// posiciones por almacén (Maroto v2).
//
// Maquetación de una página de etiqueta:
//
//	┌──────────────────────────────────┐
//	│                                  │
//	│          2.3.1.5  (bold,         │  zona útil = alto − 30pt − 10pt
//	│          cuerpo auto-ajustado)   │
//	│                                  │
//	│  [QR 25×25]        [Code128 ▒▒]  │  franja inferior reservada 30pt
//	└──────────────────────────────────┘
package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/openwarehouses/almacenes-api/internal/application/labels"
	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
)

// Constantes de maquetación, en puntos PDF.
const (
	margenPagina      = 5.0
	reservaInferior   = 30.0
	paddingHorizontal = 20.0
	paddingVertical   = 10.0
	altoSimbologia    = 25.0
	ratioAnchoBarras  = 0.5

	// Helvetica: ascendente 718 y descendente −207 por mil de cuerpo. El
	// cuerpo máximo se deriva de la altura útil con esta proporción en vez de
	// comparar cuerpo contra altura a pelo.
	proporcionLineaHelvetica = 0.925
)

// GofpdfLabelRenderer implementa labels.EtiquetaPDFGenerator con gofpdf:
// una página por (etiqueta × copia), texto Helvetica-Bold centrado ajustado a
// la página y simbología opcional en la franja inferior.
type GofpdfLabelRenderer struct{}

// NewGofpdfLabelRenderer construye el motor de etiquetas.
func NewGofpdfLabelRenderer() *GofpdfLabelRenderer { return &GofpdfLabelRenderer{} }

// GenerarPDF genera el documento completo en memoria. Las páginas se emiten
// en orden etiqueta-luego-copia. Cualquier fallo aborta el documento entero.
func (r *GofpdfLabelRenderer) GenerarPDF(etiquetas []entity.Etiqueta, copias int, tamano entity.TamanoEtiqueta, opts labels.OpcionesRender) (*labels.ResultadoPDF, error) {
	ancho, alto := tamano.Dimensiones()

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: ancho, Ht: alto},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	for _, etiqueta := range etiquetas {
		for i := 0; i < copias; i++ {
			doc.AddPage()
			if err := dibujarPagina(doc, etiqueta.Codigo, ancho, alto, opts); err != nil {
				return nil, err
			}
		}
	}
	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("render de etiquetas: %w", err)
	}

	paginas := doc.PageCount()
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render de etiquetas: volcar documento: %w", err)
	}
	return &labels.ResultadoPDF{Contenido: buf.Bytes(), Paginas: paginas}, nil
}

// dibujarPagina pinta el código principal y, si procede, la simbología de la
// franja inferior sobre la página actual.
func dibujarPagina(doc *gofpdf.Fpdf, codigo string, ancho, alto float64, opts labels.OpcionesRender) error {
	alturaUtil := alto - reservaInferior - paddingVertical

	cuerpo := ajustarCuerpo(func(c float64) float64 {
		doc.SetFont("Helvetica", "B", c)
		return doc.GetStringWidth(codigo)
	}, ancho-paddingHorizontal, alturaUtil/proporcionLineaHelvetica)

	doc.SetFont("Helvetica", "B", cuerpo)
	anchoTexto := doc.GetStringWidth(codigo)
	x := (ancho - anchoTexto) / 2
	// Línea base medida desde abajo, centrada en la zona útil; gofpdf sitúa
	// la línea base desde arriba.
	lineaBase := reservaInferior + alturaUtil/2 - cuerpo/2
	doc.Text(x, alto-lineaBase, codigo)

	if opts.QR {
		imagen, err := codificarQR(codigo, int(altoSimbologia), int(altoSimbologia))
		if err != nil {
			return err
		}
		colocarImagen(doc, "qr:"+codigo, imagen,
			margenPagina, alto-margenPagina-altoSimbologia, altoSimbologia, altoSimbologia)
	}
	if opts.Barras {
		anchoBarras := ancho * ratioAnchoBarras
		imagen, err := codificarCode128(codigo, int(anchoBarras), int(altoSimbologia))
		if err != nil {
			return err
		}
		colocarImagen(doc, "c128:"+codigo, imagen,
			ancho-anchoBarras-margenPagina, alto-margenPagina-altoSimbologia, anchoBarras, altoSimbologia)
	}
	return nil
}

// colocarImagen registra el PNG una sola vez por nombre (las copias de la
// misma etiqueta lo reutilizan) y lo coloca en el rectángulo indicado.
func colocarImagen(doc *gofpdf.Fpdf, nombre string, imagen []byte, x, y, w, h float64) {
	opciones := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(nombre, opciones, bytes.NewReader(imagen))
	doc.ImageOptions(nombre, x, y, w, h, false, opciones, 0, "")
}

// ajustarCuerpo busca linealmente, desde 1 y de punto en punto, el mayor
// cuerpo entero que cumple las dos restricciones independientes: ancho del
// texto medido ≤ anchoMax y cuerpo ≤ cuerpoMax. Devuelve como mínimo 1.
func ajustarCuerpo(medir func(cuerpo float64) float64, anchoMax, cuerpoMax float64) float64 {
	cuerpo := 1.0
	for {
		siguiente := cuerpo + 1
		if siguiente > cuerpoMax || medir(siguiente) > anchoMax {
			return cuerpo
		}
		cuerpo = siguiente
	}
}
