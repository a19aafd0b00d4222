package usecase

import (
	"context"
	"slices"

	"github.com/jhoicas/supermercado-dashboard/internal/application/dto"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/inventory"
)

const (
	dashboardRecent   = 5 // productos recientes en el widget
	dashboardLowStock = 5 // alertas de stock bajo listadas (el total va en Stats)
)

// DashboardUseCase arma el resumen de la pantalla principal. Todo se recalcula en cada llamada.
type DashboardUseCase struct {
	catalog Catalog
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(catalog Catalog) *DashboardUseCase {
	return &DashboardUseCase{catalog: catalog}
}

// Summary indicadores, alertas de stock bajo, últimos productos y conteo por categoría.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	products, categories, err := uc.catalog.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	idx := categoryIndex(categories)

	low := inventory.LowStock(products)
	if len(low) > dashboardLowStock {
		low = low[:dashboardLowStock]
	}

	// ── Conteo por categoría ──────────────────────────────────────────────────
	// Primero las categorías existentes en su orden; luego las referencias colgantes.
	counts := inventory.CountByCategory(products)
	perCategory := make([]dto.CategoryCountDTO, 0, len(categories))
	for _, c := range categories {
		perCategory = append(perCategory, dto.CategoryCountDTO{
			CategoryID: c.ID,
			Name:       c.Name,
			Color:      c.Color,
			Icon:       c.Icon,
			Count:      counts[c.ID],
		})
	}
	var dangling []string
	for id := range counts {
		if _, ok := idx[id]; !ok {
			dangling = append(dangling, id)
		}
	}
	slices.Sort(dangling)
	for _, id := range dangling {
		perCategory = append(perCategory, dto.CategoryCountDTO{
			CategoryID: id,
			Name:       UnknownCategoryName,
			Count:      counts[id],
		})
	}

	return &dto.DashboardSummaryDTO{
		Stats:      toStatsDTO(inventory.ComputeStats(products, categories)),
		LowStock:   toProductResponses(low, idx),
		Recent:     toProductResponses(inventory.MostRecent(products, dashboardRecent), idx),
		Categories: perCategory,
	}, nil
}

// Reload descarta la copia en memoria y relee ambas colecciones (cambios externos al proceso).
func (uc *DashboardUseCase) Reload(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if err := uc.catalog.Reload(ctx); err != nil {
		return nil, err
	}
	return uc.Summary(ctx)
}
