package inventory

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
)

// Stats indicadores agregados del tablero. Se recalculan en cada lectura (sin caché).
type Stats struct {
	TotalProducts       int
	TotalCategories     int
	ActiveProducts      int
	LowStockProducts    int
	PromotionalProducts int
	TotalStockValue     decimal.Decimal // Σ (precio promocional ?? precio) * stock
}

// ComputeStats calcula los indicadores sobre las colecciones actuales.
func ComputeStats(products []entity.Product, categories []entity.Category) Stats {
	s := Stats{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
		TotalStockValue: decimal.Zero,
	}
	for _, p := range products {
		if p.Active {
			s.ActiveProducts++
		}
		if p.IsLowStock() {
			s.LowStockProducts++
		}
		if p.OnPromotion() {
			s.PromotionalProducts++
		}
		s.TotalStockValue = s.TotalStockValue.Add(p.StockValue())
	}
	return s
}

// LowStock devuelve los productos con stock <= mínimo, en el orden recibido.
func LowStock(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// MostRecent devuelve hasta n productos ordenados por CreatedAt descendente.
func MostRecent(products []entity.Product, n int) []entity.Product {
	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, byRecent)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// CountByCategory cuenta productos por CategoryID (incluye referencias a categorías inexistentes).
func CountByCategory(products []entity.Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.CategoryID]++
	}
	return counts
}
