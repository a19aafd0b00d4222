package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	Stats      StatsDTO           `json:"stats"`
	LowStock   []ProductResponse  `json:"low_stock"`  // productos con stock <= mínimo
	Recent     []ProductResponse  `json:"recent"`     // últimos creados
	Categories []CategoryCountDTO `json:"categories"` // productos por categoría
}

// StatsDTO indicadores del tablero.
type StatsDTO struct {
	TotalProducts       int             `json:"total_products"`
	TotalCategories     int             `json:"total_categories"`
	ActiveProducts      int             `json:"active_products"`
	LowStockProducts    int             `json:"low_stock_products"`
	PromotionalProducts int             `json:"promotional_products"`
	TotalStockValue     decimal.Decimal `json:"total_stock_value"`
}

// CategoryCountDTO conteo de productos de una categoría. Las referencias colgantes
// se agrupan con nombre "Categoria desconhecida".
type CategoryCountDTO struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	Icon       string `json:"icon,omitempty"`
	Count      int    `json:"count"`
}
