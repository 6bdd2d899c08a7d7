package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
)

var (
	colorPrimario = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa labels.ReportePDFGenerator usando Maroto
// v2: el listado A4 de todas las posiciones de un almacén, con su código.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador de reportes.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerarReporte genera el PDF del listado y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerarReporte(nombreAlmacen string, etiquetas []entity.Etiqueta) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Listado de posiciones", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(encabezadoReporte(nombreAlmacen, len(etiquetas)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(filaCabeceraTabla())
	for _, r := range filasPosiciones(etiquetas) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// encabezadoReporte: nombre del almacén (izq) y total de posiciones (der).
func encabezadoReporte(nombreAlmacen string, total int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Almacén: "+nombreAlmacen, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d posición(es)", total), props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGris,
			}),
		),
	)
}

// filaCabeceraTabla: cabecera de la tabla de posiciones.
func filaCabeceraTabla() core.Row {
	h := func(etiqueta string, ancho int, a align.Type) core.Col {
		return col.New(ancho).Add(text.New(etiqueta, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimario, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Pasillo", 2, align.Center),
		h("Estantería", 2, align.Center),
		h("Altura", 2, align.Center),
		h("Posición", 2, align.Center),
		h("Código", 4, align.Left),
	)
}

// filasPosiciones: una fila por posición, en orden de aplanado.
func filasPosiciones(etiquetas []entity.Etiqueta) []core.Row {
	filas := make([]core.Row, 0, len(etiquetas))
	celda := func(valor string, ancho int, a align.Type) core.Col {
		return col.New(ancho).Add(text.New(valor, props.Text{
			Size: 8, Align: a, Top: 1,
		}))
	}
	for _, e := range etiquetas {
		filas = append(filas, row.New(6).Add(
			celda(fmt.Sprint(e.Pasillo), 2, align.Center),
			celda(fmt.Sprint(e.Estanteria), 2, align.Center),
			celda(fmt.Sprint(e.Altura), 2, align.Center),
			celda(fmt.Sprint(e.Posicion), 2, align.Center),
			celda(e.Codigo, 4, align.Left),
		))
	}
	return filas
}
