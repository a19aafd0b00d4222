package usecase

import (
	"github.com/jhoicas/supermercado-dashboard/internal/application/dto"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/inventory"
)

// UnknownCategoryName nombre mostrado para productos cuya categoría ya no existe.
const UnknownCategoryName = "Categoria desconhecida"

func categoryIndex(categories []entity.Category) map[string]entity.Category {
	idx := make(map[string]entity.Category, len(categories))
	for _, c := range categories {
		idx[c.ID] = c
	}
	return idx
}

func categoryName(idx map[string]entity.Category, id string) string {
	if c, ok := idx[id]; ok {
		return c.Name
	}
	return UnknownCategoryName
}

func toProductResponse(p entity.Product, idx map[string]entity.Category) dto.ProductResponse {
	return dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		PromotionalPrice: p.PromotionalPrice,
		EffectivePrice:   p.EffectivePrice(),
		CategoryID:       p.CategoryID,
		CategoryName:     categoryName(idx, p.CategoryID),
		Code:             p.Code,
		Stock:            p.Stock,
		MinStock:         p.MinStock,
		Unit:             string(p.Unit),
		UnitLabel:        p.Unit.Label(),
		Brand:            p.Brand,
		Supplier:         p.Supplier,
		Image:            p.Image,
		Active:           p.Active,
		LowStock:         p.IsLowStock(),
		OnPromotion:      p.OnPromotion(),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toProductResponses(list []entity.Product, idx map[string]entity.Category) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p, idx))
	}
	return out
}

func toCategoryResponse(c entity.Category, count int) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Color:        c.Color,
		Icon:         c.Icon,
		ProductCount: count,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toStatsDTO(s inventory.Stats) dto.StatsDTO {
	return dto.StatsDTO{
		TotalProducts:       s.TotalProducts,
		TotalCategories:     s.TotalCategories,
		ActiveProducts:      s.ActiveProducts,
		LowStockProducts:    s.LowStockProducts,
		PromotionalProducts: s.PromotionalProducts,
		TotalStockValue:     s.TotalStockValue,
	}
}
