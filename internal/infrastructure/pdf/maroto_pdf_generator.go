// Package pdf genera el reporte de disponibilidad adjunto a la confirmación de SYNC_INVENTORY.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + instalación   │  REFERENCEID + fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ORIGEN: LOGICALID del emisor                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Declarado | Disponible | Recepción         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con la referencia + leyenda                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/inventario-oagis/internal/application/oagis"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportRenderer implementa mail.ReportRenderer usando Maroto v2.
type MarotoReportRenderer struct{}

// NewMarotoReportRenderer construye el generador.
func NewMarotoReportRenderer() *MarotoReportRenderer { return &MarotoReportRenderer{} }

// RenderAvailabilityReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportRenderer) RenderAvailabilityReport(_ context.Context, report oagis.AvailabilityReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Confirmación de inventario OAGIS", true).
		WithAuthor(nonEmpty(report.LogicalID, "OAGIS"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(originRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(report))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(report)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título e instalación (izq), referencia y fecha (der).
func headerRow(report oagis.AvailabilityReport) core.Row {
	fecha := report.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("CONFIRMACIÓN DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Instalación: "+nonEmpty(report.FacilityID, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SYNC_INVENTORY", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(report.ReferenceID, "—"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// originRow: sistema que envió el documento.
func originRow(report oagis.AvailabilityReport) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ORIGEN DEL MENSAJE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("LOGICALID: "+nonEmpty(report.LogicalID, "—"), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Declarado", 2, align.Right),
		h("Disponible", 3, align.Right),
		h("Recepción", 3, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRow: valores declarado y disponible; la recepción indica si hubo ajuste.
func tableDetailRow(report oagis.AvailabilityReport) core.Row {
	received := "Sin cambios"
	if report.Received {
		received = "Registrada"
	}
	return row.New(7).Add(
		col.New(4).Add(text.New(
			nonEmpty(report.ProductID, "—"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			nonEmpty(report.Declared, "—"),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			nonEmpty(report.AvailableTotal, "No disponible"),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			received,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
	)
}

// footerRows: QR con la referencia del mensaje y leyenda.
func footerRows(report oagis.AvailabilityReport) []core.Row {
	rows := []core.Row{row.New(3)}

	if report.ReferenceID != "" {
		rows = append(rows, row.New(40).Add(
			col.New(3).Add(code.NewQr(qrPayload(report), props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(9).Add(
				text.New("Referencia del mensaje OAGIS recibido.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
			),
		))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado automáticamente al procesar SYNC_INVENTORY. "+
				"El disponible corresponde al momento de la consulta.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func qrPayload(report oagis.AvailabilityReport) string {
	return fmt.Sprintf("%s|%s|%s", report.LogicalID, report.ReferenceID, report.ProductID)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
