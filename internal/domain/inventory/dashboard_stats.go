package inventory

import (
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LowStockThreshold un producto con menos unidades que este valor tiene stock bajo. Fijo.
const LowStockThreshold = 10

// DashboardStats estadísticas derivadas de la lista de productos.
type DashboardStats struct {
	TotalInventoryValue decimal.Decimal // Σ precio × stock
	TotalProducts       int
	TotalStock          int
	LowStockProducts    int // stock < LowStockThreshold
	AveragePrice        decimal.Decimal // Σ precio / TotalProducts; 0 si no hay productos
}

// IsLowStock indica si el producto está por debajo del umbral (10 no es bajo, 9 sí).
func IsLowStock(p entity.Product) bool {
	return p.Stock < LowStockThreshold
}

// ComputeDashboardStats reduce la lista en una sola pasada. Pura y sin dependencia del orden;
// se vuelve a invocar cada vez que cambia la lista.
func ComputeDashboardStats(products []entity.Product) DashboardStats {
	stats := DashboardStats{
		TotalInventoryValue: decimal.Zero,
		AveragePrice:        decimal.Zero,
	}
	priceSum := decimal.Zero
	for _, p := range products {
		stats.TotalInventoryValue = stats.TotalInventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		stats.TotalStock += p.Stock
		priceSum = priceSum.Add(p.Price)
		if IsLowStock(p) {
			stats.LowStockProducts++
		}
	}
	stats.TotalProducts = len(products)
	if stats.TotalProducts > 0 {
		stats.AveragePrice = priceSum.Div(decimal.NewFromInt(int64(stats.TotalProducts)))
	}
	return stats
}

// LowStockProducts devuelve los productos con stock bajo conservando el orden de entrada.
func LowStockProducts(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range products {
		if IsLowStock(p) {
			out = append(out, p)
		}
	}
	return out
}
