package report

// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                    │  Fecha de generación   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Valor total | Productos | Unidades | Stock bajo       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Precio | Stock | Estado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: umbral de stock bajo                                │
//	└─────────────────────────────────────────────────────────────┘

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/jhoicas/neowarehouse/internal/application/dto"
	"github.com/jhoicas/neowarehouse/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 190, Green: 30, Blue: 45}
	colorSuccess = &props.Color{Red: 20, Green: 130, Blue: 60}
)

// RenderPDF genera el PDF y devuelve sus bytes.
func (r *Renderer) RenderPDF(_ context.Context, report dto.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(r.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(report.Cards))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(report.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No hay productos registrados", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, rr := range tableDetailRows(report.Rows) {
		m.AddRows(rr)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Stock bajo: menos de %d unidades.", inventory.LowStockThreshold), props.Text{
			Size: 7, Color: colorGray, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(report dto.InventoryReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// kpiRow: una columna por tarjeta del dashboard.
func kpiRow(cards []dto.StatCard) core.Row {
	if len(cards) == 0 {
		return row.New(2)
	}
	size := 12 / len(cards)
	cols := make([]core.Col, 0, len(cards))
	for _, c := range cards {
		valueColor := kpiColor(c.Tone)
		cols = append(cols, col.New(size).Add(
			text.New(c.Title, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(c.Value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: valueColor, Top: 6,
			}),
			text.New(c.Subtitle, props.Text{
				Size: 6.5, Align: align.Center, Color: colorGray, Top: 13,
			}),
		))
	}
	return row.New(20).Add(cols...)
}

// kpiColor resalta en rojo las tarjetas de alerta.
func kpiColor(tone string) *props.Color {
	if tone == dto.ToneDanger {
		return colorDanger
	}
	return colorPrimary
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 3, align.Left),
		h("Precio", 2, align.Right),
		h("Stock", 1, align.Center),
		h("Estado", 2, align.Center),
	)
}

// tableDetailRows: una fila por producto; el stock bajo se destaca en rojo.
func tableDetailRows(rows []dto.ProductRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, p := range rows {
		status, statusColor := "OK", colorSuccess
		if p.LowStock {
			status, statusColor = "Stock bajo", colorDanger
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(p.CategoryLabel, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.PriceLabel, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.Itoa(p.Stock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(status, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: statusColor,
			})),
		))
	}
	return result
}
