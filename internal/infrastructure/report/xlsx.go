package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/neowarehouse/internal/application/dto"
)

const (
	sheetProducts = "Productos"
	sheetSummary  = "Resumen"
)

var productHeadings = []string{"ID", "Producto", "Descripción", "Categoría", "Precio", "Stock", "Stock bajo"}

// RenderXLSX genera la planilla: hoja "Productos" con una fila por producto y hoja
// "Resumen" con las estadísticas del dashboard.
func (r *Renderer) RenderXLSX(_ context.Context, report dto.InventoryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetProducts); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja resumen: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	for i, h := range productHeadings {
		if err := setCell(f, sheetProducts, i+1, 1, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheetProducts, "A1", "G1", bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}

	for i, p := range report.Rows {
		rowNo := i + 2
		low := "No"
		if p.LowStock {
			low = "Sí"
		}
		values := []any{p.ID, p.Name, p.Description, p.CategoryLabel, p.Price.InexactFloat64(), p.Stock, low}
		for j, v := range values {
			if err := setCell(f, sheetProducts, j+1, rowNo, v); err != nil {
				return nil, err
			}
		}
	}
	if err := f.SetColWidth(sheetProducts, "B", "D", 28); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}

	summary := [][]any{
		{"Reporte", report.Title},
		{"Generado", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Valor total del inventario", report.Stats.TotalInventoryValue.InexactFloat64()},
		{"Total de productos", report.Stats.TotalProducts},
		{"Unidades en stock", report.Stats.TotalStock},
		{"Productos con stock bajo", report.Stats.LowStockProducts},
		{"Precio promedio", report.Stats.AveragePrice.Round(2).InexactFloat64()},
	}
	for i, kv := range summary {
		for j, v := range kv {
			if err := setCell(f, sheetSummary, j+1, i+1, v); err != nil {
				return nil, err
			}
		}
	}
	if err := f.SetCellStyle(sheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo resumen: %w", err)
	}
	if err := f.SetColWidth(sheetSummary, "A", "A", 30); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, sheet string, colNo, rowNo int, value any) error {
	cell, err := excelize.CoordinatesToCellName(colNo, rowNo)
	if err != nil {
		return fmt.Errorf("xlsx: celda: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("xlsx: %s!%s: %w", sheet, cell, err)
	}
	return nil
}
