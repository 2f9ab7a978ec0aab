// Package pdf implementa la generación del reporte de sugerencia de
// producción en PDF (Maroto v2).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título del reporte + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Unidades | V. Unitario | Total   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor total de producción sugerida                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/production-stock-api/internal/application/dto"
	"github.com/jhoicas/production-stock-api/internal/application/production"
)

var _ production.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa production.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSuggestionPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSuggestionPDF(
	_ context.Context,
	suggestion *dto.ProductionSuggestionResponse,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sugerencia de Producción", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, item := range suggestion.Products {
		m.AddRows(tableDetailRow(item))
	}
	if len(suggestion.Products) == 0 {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New("Sin producción posible con el stock actual de materias primas.", props.Text{
				Size: 9, Top: 2, Color: colorGray,
			})),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(suggestion))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("SUGERENCIA DE PRODUCCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Asignación greedy por valor unitario descendente", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Align: align.Right}
	return row.New(8).Add(
		col.New(2).Add(text.New("Código", header)),
		col.New(4).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Unidades", headerRight)),
		col.New(2).Add(text.New("V. Unitario", headerRight)),
		col.New(2).Add(text.New("V. Total", headerRight)),
	)
}

func tableDetailRow(item dto.ProductionSuggestionItem) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New(item.ProductCode, cell)),
		col.New(4).Add(text.New(item.ProductName, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", item.QuantityPossible), cellRight)),
		col.New(2).Add(text.New(item.UnitValue.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(item.TotalValue.StringFixed(2), cellRight)),
	)
}

func totalRow(suggestion *dto.ProductionSuggestionResponse) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Productos sugeridos: %d", len(suggestion.Products)), props.Text{
				Size: 9, Top: 3, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("TOTAL: "+suggestion.TotalProductionValue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}
