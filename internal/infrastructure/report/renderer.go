// Package report exporta el reporte de inventario a PDF (Maroto v2) y XLSX (excelize).
package report

import "github.com/jhoicas/neowarehouse/internal/application/ports"

// Renderer implementa ports.ReportRenderer con ambos formatos.
type Renderer struct {
	author string
}

var _ ports.ReportRenderer = (*Renderer)(nil)

// NewRenderer construye el renderer; author aparece en los metadatos del PDF.
func NewRenderer(author string) *Renderer {
	return &Renderer{author: author}
}
